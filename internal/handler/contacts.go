package handler

import (
	"net/http"

	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"
	"github.com/zorguiala/domdom/internal/repository"
	"github.com/zorguiala/domdom/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactsHandler serves one contact table (clients, suppliers or
// commercials); the router mounts one instance per table.
type ContactsHandler[T repository.Contact] struct {
	svc service.ContactService[T]
}

func NewClientsHandler(svc service.ContactService[model.Client]) *ContactsHandler[model.Client] {
	return &ContactsHandler[model.Client]{svc: svc}
}

func NewSuppliersHandler(svc service.ContactService[model.Supplier]) *ContactsHandler[model.Supplier] {
	return &ContactsHandler[model.Supplier]{svc: svc}
}

func NewCommercialsHandler(svc service.ContactService[model.Commercial]) *ContactsHandler[model.Commercial] {
	return &ContactsHandler[model.Commercial]{svc: svc}
}

func (h *ContactsHandler[T]) Create(c *gin.Context) {
	var req dto.ContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContactsHandler[T]) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler[T]) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactsHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
