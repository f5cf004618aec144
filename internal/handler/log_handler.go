package handler

import (
	"net/http"

	"depo-backend/internal/middleware"
	"depo-backend/internal/service"
	"depo-backend/pkg/pagination"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", middleware.RequirePage("logs"), h.ListLogs)
	}
}

// ListLogs returns the audit trail, newest first, with optional filters
// @Summary      List system logs
// @Tags         logs
// @Security     BearerAuth
// @Produce      json
// @Param        page         query  int     false  "Page number (default: 1)"
// @Param        limit        query  int     false  "Items per page (default: 20)"
// @Param        start_date   query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date     query  string  false  "End date (YYYY-MM-DD, inclusive)"
// @Param        user_id      query  string  false  "Filter by acting user"
// @Param        action       query  string  false  "Filter by action tag"
// @Param        entity_type  query  string  false  "Filter by entity type"
// @Success      200  {object}  response.PaginatedResponse
// @Router       /api/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	p := pagination.Parse(c)
	q := service.LogQuery{
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		UserID:     c.Query("user_id"),
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Page:       p.Page,
		Limit:      p.Limit,
	}

	logs, total, err := h.logService.ListLogs(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, logs, p.Page, p.Limit, total))
}
