package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ZimmetHandler struct {
	zimmetService service.ZimmetService
}

func NewZimmetHandler(zimmetService service.ZimmetService) *ZimmetHandler {
	return &ZimmetHandler{zimmetService: zimmetService}
}

func (h *ZimmetHandler) RegisterRoutes(router *gin.RouterGroup) {
	zimmetler := router.Group("/zimmetler")
	{
		zimmetler.GET("", middleware.RequirePage("zimmetler"), h.ListZimmetler)
		zimmetler.GET("/:id", middleware.RequirePage("zimmetler"), h.GetZimmet)
		zimmetler.POST("", middleware.RequireAction("zimmet", "add"), h.CreateZimmet)
		zimmetler.PUT("/:id", middleware.RequireAction("zimmet", "edit"), h.UpdateZimmet)
		zimmetler.PUT("/:id/iade", middleware.RequireAction("zimmet", "edit"), h.ReturnZimmet)
		zimmetler.DELETE("/:id", middleware.RequireAction("zimmet", "delete"), h.DeleteZimmet)
	}
}

// ListZimmetler returns paginated assignments with optional status/holder filter
// @Summary      List zimmetler
// @Tags         zimmetler
// @Security     BearerAuth
// @Produce      json
// @Param        page         query  int     false  "Page number (default: 1)"
// @Param        limit        query  int     false  "Items per page (default: 20)"
// @Param        status       query  string  false  "Filter by status: ACTIVE, RETURNED"
// @Param        personel_id  query  string  false  "Filter by staff member"
// @Param        bolum_id     query  string  false  "Filter by department"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/zimmetler [get]
func (h *ZimmetHandler) ListZimmetler(c *gin.Context) {
	p := pagination.Parse(c)
	zimmetler, total, err := h.zimmetService.ListZimmetler(
		c.Request.Context(), c.Query("status"), c.Query("personel_id"), c.Query("bolum_id"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, zimmetler, p.Page, p.Limit, total))
}

// GetZimmet returns a single assignment by id
// @Summary      Get zimmet
// @Tags         zimmetler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Zimmet ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/zimmetler/{id} [get]
func (h *ZimmetHandler) GetZimmet(c *gin.Context) {
	zimmet, err := h.zimmetService.GetZimmet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, zimmet))
}

// CreateZimmet assigns a material to a staff member or department
// @Summary      Create zimmet
// @Tags         zimmetler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateZimmetRequest  true  "Zimmet payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/zimmetler [post]
func (h *ZimmetHandler) CreateZimmet(c *gin.Context) {
	var req service.CreateZimmetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	zimmet, err := h.zimmetService.CreateZimmet(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, zimmet))
}

// UpdateZimmet edits an active assignment's quantity, holder or note
// @Summary      Update zimmet
// @Tags         zimmetler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Zimmet ID"
// @Param        payload  body  service.UpdateZimmetRequest  true  "Zimmet payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/zimmetler/{id} [put]
func (h *ZimmetHandler) UpdateZimmet(c *gin.Context) {
	var req service.UpdateZimmetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	zimmet, err := h.zimmetService.UpdateZimmet(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, zimmet))
}

// ReturnZimmet marks an active assignment as returned
// @Summary      Return zimmet
// @Tags         zimmetler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Zimmet ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/zimmetler/{id}/iade [put]
func (h *ZimmetHandler) ReturnZimmet(c *gin.Context) {
	zimmet, err := h.zimmetService.ReturnZimmet(c.Request.Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, zimmet))
}

// DeleteZimmet deletes a returned assignment
// @Summary      Delete zimmet
// @Tags         zimmetler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Zimmet ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/zimmetler/{id} [delete]
func (h *ZimmetHandler) DeleteZimmet(c *gin.Context) {
	if err := h.zimmetService.DeleteZimmet(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Zimmet deleted successfully"}))
}
