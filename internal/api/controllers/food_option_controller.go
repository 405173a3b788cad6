package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type FoodOptionController struct {
	service services.FoodOptionServiceInterface
}

func NewFoodOptionController(service services.FoodOptionServiceInterface) *FoodOptionController {
	return &FoodOptionController{service: service}
}

// List godoc
// @Summary List food options
// @Tags FoodOptions
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /food-options [get]
func (h *FoodOptionController) List(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	out, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Food options fetched successfully")
}

// Search godoc
// @Summary Search food options
// @Tags FoodOptions
// @Produce json
// @Security CookieAuth
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /food-options/search [get]
func (h *FoodOptionController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	h.List(c)
}

// Picker godoc
// @Summary Food option picker
// @Tags FoodOptions
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /food-options/picker [get]
func (h *FoodOptionController) Picker(c *gin.Context) {
	items, err := h.service.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Food options fetched successfully")
}

// Get godoc
// @Summary Get a food option
// @Tags FoodOptions
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse{data=db_models.FoodOption}
// @Failure 404 {object} utils.APIResponse
// @Router /food-options/{id} [get]
func (h *FoodOptionController) Get(c *gin.Context) {
	out, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Food option fetched successfully")
}

// Create godoc
// @Summary Create a food option
// @Description JSON body, or multipart with a JSON "data" field and an optional "image" file.
// @Tags FoodOptions
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param request body request_models.FoodOptionRequest true "Food option"
// @Success 201 {object} utils.APIResponse{data=db_models.FoodOption}
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /food-options [post]
func (h *FoodOptionController) Create(c *gin.Context) {
	var req request_models.FoodOptionRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Create(c.Request.Context(), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, out, "Food option created successfully")
}

// Update godoc
// @Summary Replace a food option
// @Tags FoodOptions
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Param request body request_models.FoodOptionRequest true "Food option"
// @Success 200 {object} utils.APIResponse{data=db_models.FoodOption}
// @Failure 404 {object} utils.APIResponse
// @Router /food-options/{id} [put]
func (h *FoodOptionController) Update(c *gin.Context) {
	var req request_models.FoodOptionRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	out, err := h.service.Update(c.Request.Context(), c.Param("id"), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Food option updated successfully")
}

// Delete godoc
// @Summary Delete a food option
// @Tags FoodOptions
// @Produce json
// @Security CookieAuth
// @Param id path string true "ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /food-options/{id} [delete]
func (h *FoodOptionController) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Food option deleted successfully")
}
