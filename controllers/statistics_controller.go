package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type StatisticsController struct {
	StatsSvc *services.StatisticsService
}

func NewStatisticsController(svc *services.StatisticsService) *StatisticsController {
	return &StatisticsController{StatsSvc: svc}
}

func (ctrl *StatisticsController) GetDashboard(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Dashboard()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ctrl *StatisticsController) GetOccupancy(c *gin.Context) {
	report, err := ctrl.StatsSvc.Occupancy()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (ctrl *StatisticsController) GetFinancial(c *gin.Context) {
	stats, err := ctrl.StatsSvc.Financial()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ctrl *StatisticsController) GetRegularCustomers(c *gin.Context) {
	customers, err := ctrl.StatsSvc.RegularCustomers()
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}
