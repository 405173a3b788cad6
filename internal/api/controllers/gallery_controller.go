package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/middleware"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type GalleryController struct {
	service services.GalleryServiceInterface
}

func NewGalleryController(service services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{service: service}
}

// List godoc
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Title, caption or category"
// @Param category query string false "Exact category"
// @Success 200 {object} utils.APIResponse
// @Router /gallery [get]
func (g *GalleryController) List(c *gin.Context) {
	var filter request_models.GalleryFilter
	page, limit, ok := bindFilter(c, &filter)
	if !ok {
		return
	}
	filter.Page, filter.Limit = page, limit
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Category = strings.ToLower(filter.Category)

	out, err := g.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Gallery images fetched successfully")
}

// Search godoc
// @Summary Search gallery images
// @Tags Gallery
// @Produce json
// @Security CookieAuth
// @Param q query string true "Title, caption or category"
// @Success 200 {object} utils.APIResponse
// @Router /gallery/search [get]
func (g *GalleryController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	g.List(c)
}

// Picker godoc
// @Summary Gallery picker
// @Tags Gallery
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /gallery/picker [get]
func (g *GalleryController) Picker(c *gin.Context) {
	items, err := g.service.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Gallery images fetched successfully")
}

// Get godoc
// @Summary Get a gallery image
// @Tags Gallery
// @Produce json
// @Security CookieAuth
// @Param id path string true "Image ID"
// @Success 200 {object} utils.APIResponse{data=db_models.GalleryImage}
// @Failure 404 {object} utils.APIResponse
// @Router /gallery/{id} [get]
func (g *GalleryController) Get(c *gin.Context) {
	img, err := g.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, img, "Gallery image fetched successfully")
}

// Create godoc
// @Summary Upload a gallery image
// @Description Multipart with a JSON "data" field and a required "image" file.
// @Tags Gallery
// @Accept mpfd
// @Produce json
// @Security CookieAuth
// @Param data formData string true "GalleryImageRequest as JSON"
// @Param image formData file true "Image (jpeg, png, webp, gif; max 5 MiB)"
// @Success 201 {object} utils.APIResponse{data=db_models.GalleryImage}
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /gallery [post]
func (g *GalleryController) Create(c *gin.Context) {
	var req request_models.GalleryImageRequest
	file, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	img, err := g.service.Create(c.Request.Context(), c.GetString(middleware.CtxUserID), req, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, img, "Gallery image uploaded successfully")
}

// Update godoc
// @Summary Update a gallery image
// @Tags Gallery
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "Image ID"
// @Param request body request_models.GalleryImageRequest true "Metadata"
// @Success 200 {object} utils.APIResponse{data=db_models.GalleryImage}
// @Router /gallery/{id} [put]
func (g *GalleryController) Update(c *gin.Context) {
	var req request_models.GalleryImageRequest
	file, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	img, err := g.service.Update(c.Request.Context(), c.Param("id"), req, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, img, "Gallery image updated successfully")
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Security CookieAuth
// @Param id path string true "Image ID"
// @Success 200 {object} utils.APIResponse
// @Router /gallery/{id} [delete]
func (g *GalleryController) Delete(c *gin.Context) {
	if err := g.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Gallery image deleted successfully")
}
