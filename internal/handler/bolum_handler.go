package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BolumHandler struct {
	bolumService service.BolumService
}

func NewBolumHandler(bolumService service.BolumService) *BolumHandler {
	return &BolumHandler{bolumService: bolumService}
}

func (h *BolumHandler) RegisterRoutes(router *gin.RouterGroup) {
	bolumler := router.Group("/bolumler")
	{
		bolumler.GET("", middleware.RequirePage("bolumler"), h.ListBolumler)
		bolumler.GET("/:id", middleware.RequirePage("bolumler"), h.GetBolum)
		bolumler.POST("", middleware.RequireAction("bolum", "add"), h.CreateBolum)
		bolumler.PUT("/:id", middleware.RequireAction("bolum", "edit"), h.UpdateBolum)
		bolumler.DELETE("/:id", middleware.RequireAction("bolum", "delete"), h.DeleteBolum)
	}
}

// ListBolumler returns paginated departments with optional search
// @Summary      List bolumler
// @Tags         bolumler
// @Security     BearerAuth
// @Produce      json
// @Param        page    query  int     false  "Page number (default: 1)"
// @Param        limit   query  int     false  "Items per page (default: 20)"
// @Param        search  query  string  false  "Search by name"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/bolumler [get]
func (h *BolumHandler) ListBolumler(c *gin.Context) {
	p := pagination.Parse(c)
	bolumler, total, err := h.bolumService.ListBolumler(c.Request.Context(), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, bolumler, p.Page, p.Limit, total))
}

// GetBolum returns a single department by id
// @Summary      Get bolum
// @Tags         bolumler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Bolum ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/bolumler/{id} [get]
func (h *BolumHandler) GetBolum(c *gin.Context) {
	bolum, err := h.bolumService.GetBolum(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, bolum))
}

// CreateBolum creates a new department
// @Summary      Create bolum
// @Tags         bolumler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateBolumRequest  true  "Bolum payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/bolumler [post]
func (h *BolumHandler) CreateBolum(c *gin.Context) {
	var req service.CreateBolumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bolum, err := h.bolumService.CreateBolum(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, bolum))
}

// UpdateBolum updates an existing department
// @Summary      Update bolum
// @Tags         bolumler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Bolum ID"
// @Param        payload  body  service.UpdateBolumRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/bolumler/{id} [put]
func (h *BolumHandler) UpdateBolum(c *gin.Context) {
	var req service.UpdateBolumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bolum, err := h.bolumService.UpdateBolum(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, bolum))
}

// DeleteBolum deletes a department
// @Summary      Delete bolum
// @Tags         bolumler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Bolum ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/bolumler/{id} [delete]
func (h *BolumHandler) DeleteBolum(c *gin.Context) {
	if err := h.bolumService.DeleteBolum(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Bolum deleted successfully"}))
}
