package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CariHandler struct {
	cariService service.CariService
}

func NewCariHandler(cariService service.CariService) *CariHandler {
	return &CariHandler{cariService: cariService}
}

func (h *CariHandler) RegisterRoutes(router *gin.RouterGroup) {
	cariler := router.Group("/cariler")
	{
		cariler.GET("", middleware.RequirePage("cariler"), h.ListCariler)
		cariler.GET("/:id", middleware.RequirePage("cariler"), h.GetCari)
		cariler.POST("", middleware.RequireAction("cari", "add"), h.CreateCari)
		cariler.PUT("/:id", middleware.RequireAction("cari", "edit"), h.UpdateCari)
		cariler.DELETE("/:id", middleware.RequireAction("cari", "delete"), h.DeleteCari)
	}
}

// ListCariler returns paginated cariler with optional type/search filter
// @Summary      List cariler
// @Tags         cariler
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 20)"
// @Param        type    query     string  false  "Filter by type: SUPPLIER, CUSTOMER, BOTH"
// @Param        search  query     string  false  "Search by name, phone, email, tax number"
// @Success      200     {object}  response.PaginatedResponse
// @Router       /api/cariler [get]
func (h *CariHandler) ListCariler(c *gin.Context) {
	p := pagination.Parse(c)
	cariler, total, err := h.cariService.ListCariler(c.Request.Context(), c.Query("type"), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, cariler, p.Page, p.Limit, total))
}

// GetCari returns a single cari by id
// @Summary      Get cari
// @Tags         cariler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Cari ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/cariler/{id} [get]
func (h *CariHandler) GetCari(c *gin.Context) {
	cari, err := h.cariService.GetCari(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cari))
}

// CreateCari creates a new cari
// @Summary      Create cari
// @Tags         cariler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateCariRequest  true  "Cari payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/cariler [post]
func (h *CariHandler) CreateCari(c *gin.Context) {
	var req service.CreateCariRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cari, err := h.cariService.CreateCari(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, cari))
}

// UpdateCari updates an existing cari
// @Summary      Update cari
// @Tags         cariler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Cari ID"
// @Param        payload  body  service.UpdateCariRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/cariler/{id} [put]
func (h *CariHandler) UpdateCari(c *gin.Context) {
	var req service.UpdateCariRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cari, err := h.cariService.UpdateCari(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cari))
}

// DeleteCari deletes a cari (soft delete), blocked while invoices reference it
// @Summary      Delete cari
// @Tags         cariler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Cari ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/cariler/{id} [delete]
func (h *CariHandler) DeleteCari(c *gin.Context) {
	if err := h.cariService.DeleteCari(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Cari deleted successfully"}))
}
