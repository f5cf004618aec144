package handler

import (
	"log"
	"net/http"

	"depo-backend/internal/service"
	"depo-backend/pkg/apperror"
	"depo-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const unexpectedErrMsg = "beklenmeyen bir hata oluştu"

// respondError maps service errors to the wire: business rules surface
// verbatim as 400, missing entities as 404, everything else is logged
// server-side and returned as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperror.IsBusiness(err):
		c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	case apperror.IsNotFound(err):
		c.JSON(http.StatusNotFound, response.Error(err.Error()))
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, response.Error(unexpectedErrMsg))
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
}

// actorFromContext rebuilds the acting user from the values RequireAuth stored
func actorFromContext(c *gin.Context) service.Actor {
	actor := service.Actor{IP: c.ClientIP()}
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			if id, err := uuid.Parse(s); err == nil {
				actor.ID = id
			}
		}
	}
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			actor.Username = s
		}
	}
	return actor
}
