package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub-backend/domain"
	"stayhub-backend/utils"
)

// RespondError translates a domain error into the HTTP reply. Controllers
// never branch on error kinds themselves; everything funnels through
// here so status codes stay consistent across the API.
func RespondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err),
		domain.IsInvalidRange(err),
		domain.IsInvalidOffer(err),
		domain.IsCapacityExceeded(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case domain.IsForbidden(err):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case domain.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err),
		domain.IsInvalidState(err),
		domain.IsUnavailable(err):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}

// parseIDParam reads a positive numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, name+" must be a positive number")
		return 0, false
	}
	return uint(id), true
}
