package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PersonelHandler struct {
	personelService service.PersonelService
}

func NewPersonelHandler(personelService service.PersonelService) *PersonelHandler {
	return &PersonelHandler{personelService: personelService}
}

func (h *PersonelHandler) RegisterRoutes(router *gin.RouterGroup) {
	personeller := router.Group("/personeller")
	{
		personeller.GET("", middleware.RequirePage("personeller"), h.ListPersoneller)
		personeller.GET("/:id", middleware.RequirePage("personeller"), h.GetPersonel)
		personeller.POST("", middleware.RequireAction("personel", "add"), h.CreatePersonel)
		personeller.PUT("/:id", middleware.RequireAction("personel", "edit"), h.UpdatePersonel)
		personeller.DELETE("/:id", middleware.RequireAction("personel", "delete"), h.DeletePersonel)
	}
}

// ListPersoneller returns paginated staff with optional department/search filter
// @Summary      List personeller
// @Tags         personeller
// @Security     BearerAuth
// @Produce      json
// @Param        page      query  int     false  "Page number (default: 1)"
// @Param        limit     query  int     false  "Items per page (default: 20)"
// @Param        bolum_id  query  string  false  "Filter by department"
// @Param        search    query  string  false  "Search by name or title"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/personeller [get]
func (h *PersonelHandler) ListPersoneller(c *gin.Context) {
	p := pagination.Parse(c)
	personeller, total, err := h.personelService.ListPersoneller(c.Request.Context(), c.Query("bolum_id"), c.Query("search"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, personeller, p.Page, p.Limit, total))
}

// GetPersonel returns a single staff member by id
// @Summary      Get personel
// @Tags         personeller
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Personel ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/personeller/{id} [get]
func (h *PersonelHandler) GetPersonel(c *gin.Context) {
	personel, err := h.personelService.GetPersonel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, personel))
}

// CreatePersonel creates a new staff member
// @Summary      Create personel
// @Tags         personeller
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreatePersonelRequest  true  "Personel payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/personeller [post]
func (h *PersonelHandler) CreatePersonel(c *gin.Context) {
	var req service.CreatePersonelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	personel, err := h.personelService.CreatePersonel(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, personel))
}

// UpdatePersonel updates an existing staff member
// @Summary      Update personel
// @Tags         personeller
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "Personel ID"
// @Param        payload  body  service.UpdatePersonelRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/personeller/{id} [put]
func (h *PersonelHandler) UpdatePersonel(c *gin.Context) {
	var req service.UpdatePersonelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	personel, err := h.personelService.UpdatePersonel(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, personel))
}

// DeletePersonel deletes a staff member (soft delete)
// @Summary      Delete personel
// @Tags         personeller
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Personel ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/personeller/{id} [delete]
func (h *PersonelHandler) DeletePersonel(c *gin.Context) {
	if err := h.personelService.DeletePersonel(c.Request.Context(), actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Personel deleted successfully"}))
}
