package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type HotelController struct {
	service services.HotelServiceInterface
}

func NewHotelController(service services.HotelServiceInterface) *HotelController {
	return &HotelController{service: service}
}

// List godoc
// @Summary List hotels
// @Tags Hotels
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /hotels [get]
func (h *HotelController) List(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	out, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Hotels fetched successfully")
}

// Search godoc
// @Summary Search hotels
// @Tags Hotels
// @Produce json
// @Security CookieAuth
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /hotels/search [get]
func (h *HotelController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	h.List(c)
}

// Picker godoc
// @Summary Hotel picker
// @Tags Hotels
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /hotels/picker [get]
func (h *HotelController) Picker(c *gin.Context) {
	items, err := h.service.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Hotels fetched successfully")
}

// Get godoc
// @Summary Get a hotel
// @Tags Hotels
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Hotel}
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{id} [get]
func (h *HotelController) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Hotel fetched successfully")
}

// Create godoc
// @Summary Create a hotel
// @Description JSON body, or multipart with a JSON "data" field and an optional "image" file.
// @Tags Hotels
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param request body request_models.HotelRequest true "Hotel"
// @Success 201 {object} utils.APIResponse{data=db_models.Hotel}
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /hotels [post]
func (h *HotelController) Create(c *gin.Context) {
	var req request_models.HotelRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Create(c.Request.Context(), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, out, "Hotel created successfully")
}

// Update godoc
// @Summary Replace a hotel
// @Tags Hotels
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Param request body request_models.HotelRequest true "Hotel"
// @Success 200 {object} utils.APIResponse{data=db_models.Hotel}
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{id} [put]
func (h *HotelController) Update(c *gin.Context) {
	var req request_models.HotelRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Hotel updated successfully")
}

// Delete godoc
// @Summary Delete a hotel
// @Tags Hotels
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{id} [delete]
func (h *HotelController) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel deleted successfully")
}
