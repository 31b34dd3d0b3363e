package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/inventory"
	"github.com/jhoicas/nexus-inventory/internal/domain/filter"
)

// InventoryHandler maneja las peticiones HTTP de artículos de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos
// @Description  Filtros combinados: texto en nombre/SKU/código de barras, categoría y nivel de stock.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "texto libre"
// @Param        category  query  string  false  "categoría o all"
// @Param        stock     query  string  false  "all | low | out"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	level, err := filter.ParseStockLevel(c.Query("stock"))
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.List(c.UserContext(), filter.InventoryQuery{
		Text:     c.Query("q"),
		Category: c.Query("category"),
		Stock:    level,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InventoryListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID (INV001)"
// @Success      200  {object}  entity.InventoryItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Create godoc
// @Summary      Crear artículo
// @Description  El ID se asigna en secuencia (INV###) y lastUpdated es la fecha de hoy.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryItemInput  true  "campos del artículo"
// @Success      201   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryItemInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	item, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update godoc
// @Summary      Actualizar artículo
// @Description  Solo se modifican los campos presentes; lastUpdated se renueva.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID"
// @Param        body  body  dto.InventoryItemInput  true  "campos a cambiar"
// @Success      200   {object}  entity.InventoryItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryItemInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	item, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary      Sugerencias de reposición
// @Description  Artículos con stock <= nivel de reorden, ordenados por faltante.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/inventory/reorder [get]
func (h *InventoryHandler) Reorder(c *fiber.Ctx) error {
	out, err := h.uc.ReorderSuggestions(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Catálogo de categorías
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/inventory/categories [get]
func (h *InventoryHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(dto.CategoriesResponse{Categories: h.uc.Categories()})
}
