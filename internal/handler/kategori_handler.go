package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type KategoriHandler struct {
	kategoriService service.KategoriService
}

func NewKategoriHandler(kategoriService service.KategoriService) *KategoriHandler {
	return &KategoriHandler{kategoriService: kategoriService}
}

func (h *KategoriHandler) RegisterRoutes(router *gin.RouterGroup) {
	kategoriler := router.Group("/kategoriler")
	{
		kategoriler.GET("", middleware.RequirePage("kategoriler"), h.ListKategoriler)
		kategoriler.GET("/:id", middleware.RequirePage("kategoriler"), h.GetKategori)
		kategoriler.POST("", middleware.RequireAction("kategori", "add"), h.CreateKategori)
		kategoriler.PUT("/:id", middleware.RequireAction("kategori", "edit"), h.UpdateKategori)
		kategoriler.DELETE("/:id", middleware.RequireAction("kategori", "delete"), h.DeleteKategori)
	}
}

// ListKategoriler returns paginated categories with optional search
// @Summary      List kategoriler
// @Tags         kategoriler
// @Security     BearerAuth
// @Produce      json
// @Param        page    query  int     false  "Page number (default: 1)"
// @Param        limit   query  int     false  "Items per page (default: 20)"
// @Param        search  query  string  false  "Search by name"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/kategoriler [get]
func (h *KategoriHandler) ListKategoriler(c *gin.Context) {
	p := pagination.Parse(c)
	kategoriler, total, err := h.kategoriService.ListKategoriler(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, kategoriler, p.Page, p.Limit, total))
}

// GetKategori returns a single category by id
// @Summary      Get kategori
// @Tags         kategoriler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Kategori ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/kategoriler/{id} [get]
func (h *KategoriHandler) GetKategori(c *gin.Context) {
	kategori, err := h.kategoriService.GetKategori(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, kategori))
}

// CreateKategori creates a new category
// @Summary      Create kategori
// @Tags         kategoriler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateKategoriRequest  true  "Kategori payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/kategoriler [post]
func (h *KategoriHandler) CreateKategori(c *gin.Context) {
	var req service.CreateKategoriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	kategori, err := h.kategoriService.CreateKategori(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, kategori))
}

// UpdateKategori updates an existing category
// @Summary      Update kategori
// @Tags         kategoriler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "Kategori ID"
// @Param        payload  body  service.UpdateKategoriRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/kategoriler/{id} [put]
func (h *KategoriHandler) UpdateKategori(c *gin.Context) {
	var req service.UpdateKategoriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	kategori, err := h.kategoriService.UpdateKategori(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, kategori))
}

// DeleteKategori deletes a category, blocked while materials reference it
// @Summary      Delete kategori
// @Tags         kategoriler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Kategori ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/kategoriler/{id} [delete]
func (h *KategoriHandler) DeleteKategori(c *gin.Context) {
	if err := h.kategoriService.DeleteKategori(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Kategori deleted successfully"}))
}
