package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type MalzemeHandler struct {
	malzemeService service.MalzemeService
}

func NewMalzemeHandler(malzemeService service.MalzemeService) *MalzemeHandler {
	return &MalzemeHandler{malzemeService: malzemeService}
}

// RegisterRoutes mounts the material endpoints. The group is /urunler for
// compatibility with the frontend's existing route names.
func (h *MalzemeHandler) RegisterRoutes(router *gin.RouterGroup) {
	urunler := router.Group("/urunler")
	{
		urunler.GET("", middleware.RequirePage("urunler"), h.ListMalzemeler)
		urunler.GET("/:id", middleware.RequirePage("urunler"), h.GetMalzeme)
		urunler.POST("", middleware.RequireAction("malzeme", "add"), h.CreateMalzeme)
		urunler.PUT("/:id", middleware.RequireAction("malzeme", "edit"), h.UpdateMalzeme)
		urunler.DELETE("/:id", middleware.RequireAction("malzeme", "delete"), h.DeleteMalzeme)
	}
}

// ListMalzemeler returns paginated materials with optional category/search filter
// @Summary      List malzemeler
// @Tags         urunler
// @Security     BearerAuth
// @Produce      json
// @Param        page         query  int     false  "Page number (default: 1)"
// @Param        limit        query  int     false  "Items per page (default: 20)"
// @Param        kategori_id  query  string  false  "Filter by category"
// @Param        search       query  string  false  "Search by name or code"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/urunler [get]
func (h *MalzemeHandler) ListMalzemeler(c *gin.Context) {
	p := pagination.Parse(c)
	malzemeler, total, err := h.malzemeService.ListMalzemeler(c.Request.Context(), c.Query("kategori_id"), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, malzemeler, p.Page, p.Limit, total))
}

// GetMalzeme returns a single material by id
// @Summary      Get malzeme
// @Tags         urunler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Malzeme ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/urunler/{id} [get]
func (h *MalzemeHandler) GetMalzeme(c *gin.Context) {
	malzeme, err := h.malzemeService.GetMalzeme(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, malzeme))
}

// CreateMalzeme creates a new material
// @Summary      Create malzeme
// @Tags         urunler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateMalzemeRequest  true  "Malzeme payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/urunler [post]
func (h *MalzemeHandler) CreateMalzeme(c *gin.Context) {
	var req service.CreateMalzemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	malzeme, err := h.malzemeService.CreateMalzeme(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, malzeme))
}

// UpdateMalzeme updates an existing material
// @Summary      Update malzeme
// @Tags         urunler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Malzeme ID"
// @Param        payload  body  service.UpdateMalzemeRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/urunler/{id} [put]
func (h *MalzemeHandler) UpdateMalzeme(c *gin.Context) {
	var req service.UpdateMalzemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	malzeme, err := h.malzemeService.UpdateMalzeme(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, malzeme))
}

// DeleteMalzeme deletes a material, blocked while active zimmets reference it
// @Summary      Delete malzeme
// @Tags         urunler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Malzeme ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/urunler/{id} [delete]
func (h *MalzemeHandler) DeleteMalzeme(c *gin.Context) {
	if err := h.malzemeService.DeleteMalzeme(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Malzeme deleted successfully"}))
}
