// Package api holds the shared plumbing for HTTP endpoints: the error
// envelope, the endpoint resolvers, and the module mounting helpers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymuslim/hymuslim-server/internal/http/middleware"
	"github.com/hymuslim/hymuslim-server/internal/model"
)

// Error is the envelope every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

// Handler is an endpoint without an authenticated account.
type Handler func(ctx *gin.Context) (any, *Error)

// AuthHandler is an endpoint that requires the authenticated account.
type AuthHandler func(ctx *gin.Context, user *model.User) (any, *Error)

// ResolveEndpoint adapts a Handler into a gin handler, writing either the
// payload or the error envelope.
func ResolveEndpoint(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, apiErr := h(ctx)
		writeResult(ctx, payload, apiErr)
	}
}

// ResolveEndpointWithAuth adapts an AuthHandler, pulling the current account
// out of the context set by JWTMiddleware.
func ResolveEndpointWithAuth(h AuthHandler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		payload, apiErr := h(ctx, user)
		writeResult(ctx, payload, apiErr)
	}
}

func writeResult(ctx *gin.Context, payload any, apiErr *Error) {
	// Endpoints that set their own status (e.g. 201 Created) write directly.
	if ctx.Writer.Written() {
		return
	}
	if apiErr != nil {
		ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}
	if payload == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}
