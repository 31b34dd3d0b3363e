package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/application/validation"
	"github.com/jhoicas/nexus-inventory/internal/domain"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
	"github.com/jhoicas/nexus-inventory/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y logout del API HTTP. El token firmado es la sesión serializada.
type AuthUseCase struct {
	dir      session.Verifier
	jwtCfg   JWTConfig
	validate *validation.Validator
	revoked  *Revocations
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(dir session.Verifier, jwtCfg JWTConfig, v *validation.Validator, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{dir: dir, jwtCfg: jwtCfg, validate: v, revoked: NewRevocations(), log: log}
}

// Login verifica email/password contra el directorio, genera JWT y retorna token + identidad.
// Credenciales que no coinciden devuelven domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := uc.validate.Validate(in); err != nil {
		return nil, err
	}
	id, ok := uc.dir.Verify(in.Email, in.Password)
	if !ok {
		uc.log.Info().Str("email", in.Email).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}
	token, claims, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID: id.ID,
		Name:   id.Name,
		Email:  id.Email,
		Role:   string(id.Role),
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}
	uc.log.Info().Str("user_id", id.ID).Str("role", string(id.Role)).Msg("login exitoso")
	return &dto.LoginResponse{
		Token:        token,
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         dto.NewUserResponse(*id),
		Capabilities: policy.For(id.Role),
	}, nil
}

// Token datos del token resuelto que el logout necesita.
type Token struct {
	JTI       string
	ExpiresAt time.Time
}

// Resolve valida el token y reconstruye la sesión. Un token inválido, expirado, revocado
// o con rol desconocido equivale a "sin sesión" y devuelve domain.ErrUnauthorized.
func (uc *AuthUseCase) Resolve(token string) (session.Session, Token, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token, uc.jwtCfg.Issuer)
	if err != nil {
		return session.Session{}, Token{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if uc.revoked.IsRevoked(claims.ID) {
		return session.Session{}, Token{}, fmt.Errorf("%w: token revocado", domain.ErrUnauthorized)
	}
	id := entity.Identity{ID: claims.UserID, Name: claims.Name, Email: claims.Email, Role: entity.Role(claims.Role)}
	if id.ID == "" || !id.Role.Valid() {
		return session.Session{}, Token{}, fmt.Errorf("%w: claims incompletos", domain.ErrUnauthorized)
	}
	tok := Token{JTI: claims.ID}
	if claims.ExpiresAt != nil {
		tok.ExpiresAt = claims.ExpiresAt.Time
	}
	return session.FromIdentity(&id), tok, nil
}

// Logout revoca el token hasta su expiración. Idempotente.
func (uc *AuthUseCase) Logout(tok Token) {
	if tok.JTI == "" {
		return
	}
	uc.revoked.Revoke(tok.JTI, tok.ExpiresAt)
	uc.log.Info().Str("jti", tok.JTI).Msg("sesión cerrada")
}

// Revocations lista de jti revocados; cada entrada vive hasta la expiración del token.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewRevocations crea la lista vacía.
func NewRevocations() *Revocations {
	return &Revocations{revoked: map[string]time.Time{}, now: time.Now}
}

// Revoke marca el jti. Las entradas vencidas se purgan en cada llamada.
func (r *Revocations) Revoke(jti string, exp time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for k, e := range r.revoked {
		if !e.IsZero() && e.Before(now) {
			delete(r.revoked, k)
		}
	}
	r.revoked[jti] = exp
}

// IsRevoked indica si el jti fue revocado.
func (r *Revocations) IsRevoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok
}

// Len entradas vigentes (tests).
func (r *Revocations) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}
