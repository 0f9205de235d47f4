// internal/handlers/context.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/parisollie/tienda-backend/internal/services"
	"github.com/parisollie/tienda-backend/internal/utils"
)

// currentSession resolves the caller's session from the id the session
// middleware placed in the context. Writes an error response and returns
// false if the middleware did not run.
func currentSession(c *gin.Context, sessions *services.SessionService) (*services.Session, bool) {
	sidStr, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "session middleware not configured")
		return nil, false
	}

	sid, err := uuid.Parse(sidStr)
	if err != nil {
		utils.InternalErrorResponse(c, "invalid session id")
		return nil, false
	}

	return sessions.Get(sid), true
}
