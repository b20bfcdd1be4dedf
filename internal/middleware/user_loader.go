package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/internal/repository"
	"github.com/movieweb-dev/movieweb/internal/types"
	"github.com/movieweb-dev/movieweb/internal/utils"
)

// UserLoader resolves the :user_id path parameter into a stored user and
// puts it on the context for the handlers downstream. Requests naming an
// unknown user never reach a handler.
func UserLoader(users *repository.Users) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := utils.GetUserID(ctx)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		user, err := users.Get(ctx.Request.Context(), userID)

		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}

			log.Printf("Failed to load user %d: %v", userID, err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}
