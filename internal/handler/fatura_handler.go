package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FaturaHandler struct {
	faturaService service.FaturaService
}

func NewFaturaHandler(faturaService service.FaturaService) *FaturaHandler {
	return &FaturaHandler{faturaService: faturaService}
}

func (h *FaturaHandler) RegisterRoutes(router *gin.RouterGroup) {
	faturalar := router.Group("/faturalar")
	{
		faturalar.GET("", middleware.RequirePage("faturalar"), h.ListFaturalar)
		faturalar.GET("/:id", middleware.RequirePage("faturalar"), h.GetFatura)
		faturalar.POST("", middleware.RequireAction("fatura", "add"), h.CreateFatura)
		faturalar.PUT("/:id", middleware.RequireAction("fatura", "edit"), h.UpdateFatura)
		faturalar.DELETE("/:id", middleware.RequireAction("fatura", "delete"), h.DeleteFatura)
	}
}

// ListFaturalar returns paginated invoices with optional type/cari filter
// @Summary      List faturalar
// @Tags         faturalar
// @Security     BearerAuth
// @Produce      json
// @Param        page     query  int     false  "Page number (default: 1)"
// @Param        limit    query  int     false  "Items per page (default: 20)"
// @Param        type     query  string  false  "Filter by type: ALIS, SATIS"
// @Param        cari_id  query  string  false  "Filter by cari"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/faturalar [get]
func (h *FaturaHandler) ListFaturalar(c *gin.Context) {
	p := pagination.Parse(c)
	faturalar, total, err := h.faturaService.ListFaturalar(c.Request.Context(), c.Query("type"), c.Query("cari_id"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, faturalar, p.Page, p.Limit, total))
}

// GetFatura returns a single invoice with its line items
// @Summary      Get fatura
// @Tags         faturalar
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Fatura ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/faturalar/{id} [get]
func (h *FaturaHandler) GetFatura(c *gin.Context) {
	fatura, err := h.faturaService.GetFatura(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fatura))
}

// CreateFatura creates a new invoice. Totals are computed server-side from
// the line items; a missing invoice_no is generated as FTR-YYYYMMDD-NNNNN.
// @Summary      Create fatura
// @Tags         faturalar
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateFaturaRequest  true  "Fatura payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/faturalar [post]
func (h *FaturaHandler) CreateFatura(c *gin.Context) {
	var req service.CreateFaturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fatura, err := h.faturaService.CreateFatura(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, fatura))
}

// UpdateFatura replaces an invoice's header and line items atomically
// @Summary      Update fatura
// @Tags         faturalar
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Fatura ID"
// @Param        payload  body  service.UpdateFaturaRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/faturalar/{id} [put]
func (h *FaturaHandler) UpdateFatura(c *gin.Context) {
	var req service.UpdateFaturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fatura, err := h.faturaService.UpdateFatura(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, fatura))
}

// DeleteFatura deletes an invoice together with its line items
// @Summary      Delete fatura
// @Tags         faturalar
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Fatura ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/faturalar/{id} [delete]
func (h *FaturaHandler) DeleteFatura(c *gin.Context) {
	if err := h.faturaService.DeleteFatura(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Fatura deleted successfully"}))
}
