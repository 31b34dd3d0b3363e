// Package session mantiene la sesión autenticada actual y la persiste en un KVStore.
//
// Estados: LoggedOut ⇄ LoggedIn(identity). La sesión es un objeto explícito construido en main
// y pasado a quien lo necesite; no hay estado global.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
	"github.com/jhoicas/nexus-inventory/internal/domain/repository"
)

// StorageKey clave bajo la que se guarda la identidad serializada.
const StorageKey = "user"

// Session identidad actual más banderas derivadas. Sin identidad todas las banderas son false.
type Session struct {
	User            *entity.Identity `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	policy.Capabilities
}

// FromIdentity deriva la sesión de una identidad (nil = sin sesión).
func FromIdentity(id *entity.Identity) Session {
	if id == nil {
		return Session{}
	}
	u := *id
	return Session{User: &u, IsAuthenticated: true, Capabilities: policy.For(u.Role)}
}

// Role rol de la sesión o "" sin sesión.
func (s Session) Role() entity.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Allows atajo a policy.Allows sobre el rol de la sesión.
func (s Session) Allows(a policy.Action) bool {
	return s.IsAuthenticated && policy.Allows(s.Role(), a)
}

// Verifier verifica un par (email, secreto) contra el directorio.
type Verifier interface {
	Verify(email, secret string) (*entity.Identity, bool)
}

// Store guarda la sesión actual.
type Store struct {
	mu      sync.RWMutex
	kv      repository.KVStore
	dir     Verifier
	log     zerolog.Logger
	current *entity.Identity
}

// NewStore crea el store e intenta rehidratar la identidad persistida.
// Un blob mal formado se descarta: el store arranca sin sesión y nunca falla por ello.
func NewStore(ctx context.Context, kv repository.KVStore, dir Verifier, log zerolog.Logger) *Store {
	s := &Store{kv: kv, dir: dir, log: log}
	blob, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		log.Warn().Err(err).Msg("sesión: no se pudo leer la sesión persistida")
		return s
	}
	if !ok {
		return s
	}
	id, err := Decode(blob)
	if err != nil {
		log.Warn().Err(err).Msg("sesión: blob persistido inválido, se descarta")
		if rmErr := kv.Remove(ctx, StorageKey); rmErr != nil {
			log.Warn().Err(rmErr).Msg("sesión: no se pudo eliminar el blob inválido")
		}
		return s
	}
	s.current = id
	return s
}

// Authenticate verifica las credenciales. Si coinciden reemplaza la sesión (también en re-auth)
// y la persiste sin credencial. Si no, la sesión queda igual y devuelve false.
// El error solo reporta fallos del almacenamiento; en ese caso la sesión tampoco cambia.
func (s *Store) Authenticate(ctx context.Context, email, secret string) (bool, error) {
	id, ok := s.dir.Verify(email, secret)
	if !ok {
		s.log.Info().Str("email", email).Msg("sesión: credenciales rechazadas")
		return false, nil
	}
	blob, err := Encode(id)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, StorageKey, blob); err != nil {
		return false, fmt.Errorf("sesión: persistir identidad: %w", err)
	}
	s.current = id
	s.log.Info().Str("user_id", id.ID).Str("role", string(id.Role)).Msg("sesión iniciada")
	return true, nil
}

// Logout borra la identidad y el blob persistido. Idempotente.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.kv.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("sesión: eliminar identidad persistida: %w", err)
	}
	return nil
}

// Current devuelve la sesión actual.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FromIdentity(s.current)
}

// Encode serializa la identidad (JSON). El tipo no tiene campo de credencial.
func Encode(id *entity.Identity) ([]byte, error) {
	if id == nil {
		return nil, errors.New("sesión: identidad nil")
	}
	b, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("sesión: serializar identidad: %w", err)
	}
	return b, nil
}

// Decode valida y deserializa una identidad persistida.
func Decode(blob []byte) (*entity.Identity, error) {
	var id entity.Identity
	if err := json.Unmarshal(blob, &id); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if id.ID == "" || id.Email == "" {
		return nil, errors.New("identidad sin id o email")
	}
	if !id.Role.Valid() {
		return nil, fmt.Errorf("rol desconocido %q", id.Role)
	}
	return &id, nil
}
