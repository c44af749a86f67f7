package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sakinah-tech/minbar/internal/http/middleware"
	"github.com/sakinah-tech/minbar/internal/model"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)
type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}
