package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Summary godoc
// @Summary Dashboard summary
// @Description Entity counts, booking status breakdown, review stats, total paid revenue and revenue for the current month
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Success 200 {object} utils.APIResponse{data=response_models.DashboardSummary}
// @Failure 500 {object} utils.APIResponse
// @Router /dashboard/summary [get]
func (d *DashboardController) Summary(c *gin.Context) {
	out, err := d.dashboardService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Dashboard summary fetched successfully")
}

// MonthlyRevenue godoc
// @Summary Paid revenue per month
// @Description Twelve buckets for the year, empty months included
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Param year query int false "Calendar year (defaults to the current year)"
// @Success 200 {object} utils.APIResponse{data=response_models.MonthlyRevenue}
// @Failure 400 {object} utils.APIResponse
// @Router /dashboard/revenue/monthly [get]
func (d *DashboardController) MonthlyRevenue(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "year must be a number")
			return
		}
		year = y
	}

	out, err := d.dashboardService.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Monthly revenue fetched successfully")
}

// TopPackages godoc
// @Summary Best selling packages
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Param limit query int false "Number of packages" default(5)
// @Success 200 {object} utils.APIResponse{data=[]response_models.TopPackage}
// @Failure 400 {object} utils.APIResponse
// @Router /dashboard/top-packages [get]
func (d *DashboardController) TopPackages(c *gin.Context) {
	limit, err := utils.ParseLimit(c, services.DefaultTopPackages, services.MaxDashboardLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	out, err := d.dashboardService.TopPackages(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Top packages fetched successfully")
}

// RecentActivity godoc
// @Summary Recent bookings, reviews and sign ups
// @Tags Dashboard
// @Produce json
// @Security CookieAuth
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} utils.APIResponse{data=[]response_models.ActivityItem}
// @Failure 400 {object} utils.APIResponse
// @Router /dashboard/recent-activity [get]
func (d *DashboardController) RecentActivity(c *gin.Context) {
	limit, err := utils.ParseLimit(c, services.DefaultRecentActivity, services.MaxDashboardLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	out, err := d.dashboardService.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Recent activity fetched successfully")
}
