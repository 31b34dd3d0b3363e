package dto

import (
	"time"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse identidad en respuestas (nunca lleva credencial).
type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// LoginResponse token firmado + identidad + banderas de rol.
type LoginResponse struct {
	Token        string              `json:"token"`
	ExpiresAt    time.Time           `json:"expiresAt"`
	User         UserResponse        `json:"user"`
	Capabilities policy.Capabilities `json:"capabilities"`
}

// MeResponse sesión actual para GET /api/auth/me.
type MeResponse struct {
	User            UserResponse        `json:"user"`
	IsAuthenticated bool                `json:"isAuthenticated"`
	Capabilities    policy.Capabilities `json:"capabilities"`
}

// SettingsResponse secciones de configuración visibles para el rol.
type SettingsResponse struct {
	Role     entity.Role `json:"role"`
	Sections []string    `json:"sections"`
	AppName  string      `json:"appName"`
	Currency string      `json:"currency"`
}

// NewUserResponse mapea la identidad.
func NewUserResponse(id entity.Identity) UserResponse {
	return UserResponse{ID: id.ID, Name: id.Name, Email: id.Email, Role: id.Role}
}
