package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

// SettingsHandler secciones de configuración visibles según el rol.
type SettingsHandler struct {
	appName  string
	currency string
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(appName, currency string) *SettingsHandler {
	return &SettingsHandler{appName: appName, currency: currency}
}

// Get godoc
// @Summary      Configuración visible para el rol
// @Description  La sección admin solo aparece para administradores.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	role := GetRole(c)
	return c.JSON(dto.SettingsResponse{
		Role:     role,
		Sections: policy.SettingsSections(role),
		AppName:  h.appName,
		Currency: h.currency,
	})
}
