package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.UserSvc.List()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := ctrl.UserSvc.Get(id, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := ctrl.UserSvc.Update(id, patch, middleware.CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.UserSvc.Delete(id, middleware.CurrentUser(c)); err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
