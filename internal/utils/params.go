package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetUserID(ctx *gin.Context) (uint, error) {
	userIDStr := ctx.Param("user_id")

	if userIDStr == "" {
		return 0, errors.New("User ID not found")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid User ID")
	}

	return uint(userID), nil
}

func GetMovieID(ctx *gin.Context) (uint, error) {
	movieIDStr := ctx.Param("movie_id")

	if movieIDStr == "" {
		return 0, errors.New("Movie ID not found")
	}

	movieID, err := strconv.ParseUint(movieIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Movie ID")
	}

	return uint(movieID), nil
}
