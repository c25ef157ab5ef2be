package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lcdc/selections-go/dto"
	"github.com/lcdc/selections-go/response"
	"github.com/lcdc/selections-go/services"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.service.RegisterUser(input)
	if err != nil {
		if err == services.ErrUsernameTaken {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.service.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UserID:   user.UserID,
		Username: user.Username,
		Role:     string(user.Role),
	})
}
