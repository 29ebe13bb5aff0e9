package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type RegisterPayload struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload RegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.AuthSvc.Register(services.RegisterInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	token, user, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the authenticated account as loaded by the auth middleware.
func (ctrl *AuthController) Me(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, middleware.CurrentUser(c))
}
