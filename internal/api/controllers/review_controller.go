package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type ReviewController struct {
	service services.ReviewServiceInterface
}

func NewReviewController(service services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{service: service}
}

// List godoc
// @Summary Faceted review search
// @Description Facets, total and average rating cover the whole filtered set; items are paginated.
// @Tags Reviews
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Title, comment, user name or package title"
// @Param rating query int false "Exact rating"
// @Param min_rating query int false "Minimum rating"
// @Param package_id query string false "Package ID"
// @Param status query string false "pending, approved, rejected"
// @Param sort query string false "newest, oldest, rating_high, rating_low"
// @Success 200 {object} utils.APIResponse{data=response_models.ReviewSearchResponse}
// @Router /reviews [get]
func (r *ReviewController) List(c *gin.Context) {
	var filter request_models.ReviewFilter
	page, limit, ok := bindFilter(c, &filter)
	if !ok {
		return
	}
	filter.Page, filter.Limit = page, limit
	filter.Query = strings.TrimSpace(filter.Query)

	out, err := r.service.Search(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Reviews fetched successfully")
}

// Search godoc
// @Summary Faceted review search with a required query
// @Tags Reviews
// @Produce json
// @Security CookieAuth
// @Param q query string true "Title, comment, user name or package title"
// @Success 200 {object} utils.APIResponse{data=response_models.ReviewSearchResponse}
// @Router /reviews/search [get]
func (r *ReviewController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	r.List(c)
}

// Get godoc
// @Summary Get a review
// @Tags Reviews
// @Produce json
// @Security CookieAuth
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Review}
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [get]
func (r *ReviewController) Get(c *gin.Context) {
	review, err := r.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, review, "Review fetched successfully")
}

// Create godoc
// @Summary Create a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body request_models.ReviewRequest true "Review"
// @Success 201 {object} utils.APIResponse{data=db_models.Review}
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewController) Create(c *gin.Context) {
	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	review, err := r.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, review, "Review created successfully")
}

// Update godoc
// @Summary Update or moderate a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Review ID"
// @Param request body request_models.ReviewUpdateRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=db_models.Review}
// @Router /reviews/{id} [put]
func (r *ReviewController) Update(c *gin.Context) {
	var req request_models.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	review, err := r.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, review, "Review updated successfully")
}

// Delete godoc
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Security CookieAuth
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Router /reviews/{id} [delete]
func (r *ReviewController) Delete(c *gin.Context) {
	if err := r.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted successfully")
}
