package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type LocationController struct {
	service services.LocationServiceInterface
}

func NewLocationController(service services.LocationServiceInterface) *LocationController {
	return &LocationController{service: service}
}

// List godoc
// @Summary List locations
// @Tags Locations
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /locations [get]
func (h *LocationController) List(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	out, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Locations fetched successfully")
}

// Search godoc
// @Summary Search locations
// @Tags Locations
// @Produce json
// @Security CookieAuth
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /locations/search [get]
func (h *LocationController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	h.List(c)
}

// Picker godoc
// @Summary Location picker
// @Tags Locations
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /locations/picker [get]
func (h *LocationController) Picker(c *gin.Context) {
	items, err := h.service.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Locations fetched successfully")
}

// Get godoc
// @Summary Get a location
// @Tags Locations
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Location}
// @Failure 404 {object} utils.APIResponse
// @Router /locations/{id} [get]
func (h *LocationController) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Location fetched successfully")
}

// Create godoc
// @Summary Create a location
// @Description JSON body, or multipart with a JSON "data" field and an optional "image" file.
// @Tags Locations
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param request body request_models.LocationRequest true "Location"
// @Success 201 {object} utils.APIResponse{data=db_models.Location}
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /locations [post]
func (h *LocationController) Create(c *gin.Context) {
	var req request_models.LocationRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Create(c.Request.Context(), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, out, "Location created successfully")
}

// Update godoc
// @Summary Replace a location
// @Tags Locations
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Param request body request_models.LocationRequest true "Location"
// @Success 200 {object} utils.APIResponse{data=db_models.Location}
// @Failure 404 {object} utils.APIResponse
// @Router /locations/{id} [put]
func (h *LocationController) Update(c *gin.Context) {
	var req request_models.LocationRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Location updated successfully")
}

// Delete godoc
// @Summary Delete a location
// @Tags Locations
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /locations/{id} [delete]
func (h *LocationController) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Location deleted successfully")
}
