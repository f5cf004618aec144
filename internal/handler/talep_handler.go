package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TalepHandler struct {
	talepService service.TalepService
}

func NewTalepHandler(talepService service.TalepService) *TalepHandler {
	return &TalepHandler{talepService: talepService}
}

func (h *TalepHandler) RegisterRoutes(router *gin.RouterGroup) {
	talepler := router.Group("/talepler")
	{
		// any authenticated user can file a request or list their own
		talepler.POST("", h.CreateTalep)
		talepler.GET("/user/:userId", h.ListTaleplerByUser)

		talepler.GET("", middleware.RequirePage("talepler"), h.ListTalepler)
		talepler.GET("/bekleyen-sayisi", middleware.RequirePage("talepler"), h.PendingCount)
		talepler.GET("/:id", middleware.RequirePage("talepler"), h.GetTalep)
		talepler.PUT("/:id/onayla", middleware.RequireAction("talep", "edit"), h.ApproveTalep)
		talepler.PUT("/:id/reddet", middleware.RequireAction("talep", "edit"), h.RejectTalep)
	}
}

// CreateTalep files a change request on behalf of the authenticated user
// @Summary      Create talep
// @Tags         talepler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateTalepRequest  true  "Talep payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/talepler [post]
func (h *TalepHandler) CreateTalep(c *gin.Context) {
	var req service.CreateTalepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	talep, err := h.talepService.CreateTalep(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, talep))
}

// GetTalep returns a single request with requester and reviewer
// @Summary      Get talep
// @Tags         talepler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Talep ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/talepler/{id} [get]
func (h *TalepHandler) GetTalep(c *gin.Context) {
	talep, err := h.talepService.GetTalep(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, talep))
}

// ListTalepler returns paginated requests with optional status filter
// @Summary      List talepler
// @Tags         talepler
// @Security     BearerAuth
// @Produce      json
// @Param        page    query  int     false  "Page number (default: 1)"
// @Param        limit   query  int     false  "Items per page (default: 20)"
// @Param        status  query  string  false  "Filter by status: PENDING, APPROVED, REJECTED"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/talepler [get]
func (h *TalepHandler) ListTalepler(c *gin.Context) {
	p := pagination.Parse(c)
	talepler, total, err := h.talepService.ListTalepler(c.Request.Context(), c.Query("status"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, talepler, p.Page, p.Limit, total))
}

// ListTaleplerByUser returns the given user's own requests
// @Summary      List talepler by user
// @Tags         talepler
// @Security     BearerAuth
// @Produce      json
// @Param        userId  path   string  true   "User ID"
// @Param        page    query  int     false  "Page number (default: 1)"
// @Param        limit   query  int     false  "Items per page (default: 20)"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/talepler/user/{userId} [get]
func (h *TalepHandler) ListTaleplerByUser(c *gin.Context) {
	p := pagination.Parse(c)
	talepler, total, err := h.talepService.ListTaleplerByUser(c.Request.Context(), c.Param("userId"), p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, talepler, p.Page, p.Limit, total))
}

// ApproveTalep marks a pending request approved
// @Summary      Approve talep
// @Tags         talepler
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Talep ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/talepler/{id}/onayla [put]
func (h *TalepHandler) ApproveTalep(c *gin.Context) {
	talep, err := h.talepService.ApproveTalep(c.Request.Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, talep))
}

// RejectTalep marks a pending request rejected with a mandatory reason
// @Summary      Reject talep
// @Tags         talepler
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Talep ID"
// @Param        payload  body  service.RejectTalepRequest  true  "Rejection payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.ErrorBody
// @Router       /api/talepler/{id}/reddet [put]
func (h *TalepHandler) RejectTalep(c *gin.Context) {
	var req service.RejectTalepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	talep, err := h.talepService.RejectTalep(c.Request.Context(), actorFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, talep))
}

// PendingCount returns the number of requests awaiting review
// @Summary      Pending talep count
// @Tags         talepler
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/talepler/bekleyen-sayisi [get]
func (h *TalepHandler) PendingCount(c *gin.Context) {
	count, err := h.talepService.PendingCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"count": count}))
}
