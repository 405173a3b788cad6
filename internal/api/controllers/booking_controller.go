package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type BookingController struct {
	service services.BookingServiceInterface
}

func NewBookingController(service services.BookingServiceInterface) *BookingController {
	return &BookingController{service: service}
}

// List godoc
// @Summary List bookings
// @Tags Bookings
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Contact, payment reference, user or package"
// @Param status query string false "pending, confirmed, completed, cancelled"
// @Param payment_status query string false "pending, paid, failed, refunded"
// @Param package_id query string false "Package ID"
// @Param user_id query string false "User ID"
// @Param from query string false "Travel date from (YYYY-MM-DD)"
// @Param to query string false "Travel date to (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /bookings [get]
func (b *BookingController) List(c *gin.Context) {
	var filter request_models.BookingFilter
	page, limit, ok := bindFilter(c, &filter)
	if !ok {
		return
	}
	filter.Page, filter.Limit = page, limit
	filter.Query = strings.TrimSpace(filter.Query)

	out, err := b.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Bookings fetched successfully")
}

// Search godoc
// @Summary Search bookings
// @Tags Bookings
// @Produce json
// @Security CookieAuth
// @Param q query string true "Contact, payment reference, user or package"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/search [get]
func (b *BookingController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	b.List(c)
}

// Get godoc
// @Summary Get a booking
// @Tags Bookings
// @Produce json
// @Security CookieAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Booking}
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/{id} [get]
func (b *BookingController) Get(c *gin.Context) {
	booking, err := b.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// Create godoc
// @Summary Create a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body request_models.BookingRequest true "Booking"
// @Success 201 {object} utils.APIResponse{data=db_models.Booking}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) Create(c *gin.Context) {
	var req request_models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	booking, err := b.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, booking, "Booking created successfully")
}

// Update godoc
// @Summary Update a booking
// @Description Only fields present in the body change. Status and payment status follow their transition rules.
// @Tags Bookings
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Booking ID"
// @Param request body request_models.BookingUpdateRequest true "Changes"
// @Success 200 {object} utils.APIResponse{data=db_models.Booking}
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/{id} [put]
func (b *BookingController) Update(c *gin.Context) {
	var req request_models.BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	booking, err := b.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking updated successfully")
}

// Delete godoc
// @Summary Delete a booking
// @Tags Bookings
// @Produce json
// @Security CookieAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Router /bookings/{id} [delete]
func (b *BookingController) Delete(c *gin.Context) {
	if err := b.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking deleted successfully")
}
