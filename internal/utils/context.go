package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/internal/models"
	"github.com/movieweb-dev/movieweb/internal/types"
)

// CurrentUser returns the user the loader middleware resolved from the
// :user_id path parameter.
func CurrentUser(ctx *gin.Context) (models.User, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return models.User{}, fmt.Errorf("no user resolved for this request")
	}

	user, ok := value.(models.User)

	if !ok {
		return models.User{}, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}
