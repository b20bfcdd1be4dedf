package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/movieweb-dev/movieweb/internal/repository"
	"github.com/movieweb-dev/movieweb/internal/types"
)

type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type UsersHandler struct {
	users *repository.Users
}

func NewUsersHandler(users *repository.Users) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Name must not be empty"})
		return
	}

	user, err := h.users.Create(ctx.Request.Context(), name)

	if err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:   user.ID,
			Name: user.Name,
		},
	})
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.users.All(ctx.Request.Context())

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, types.UserResponse{
			ID:   user.ID,
			Name: user.Name,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"users": response})
}
