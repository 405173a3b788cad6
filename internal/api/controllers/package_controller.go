package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type PackageController struct {
	service services.PackageServiceInterface
}

func NewPackageController(service services.PackageServiceInterface) *PackageController {
	return &PackageController{service: service}
}

// List godoc
// @Summary List packages
// @Tags Packages
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Title, destination or slug"
// @Param destination query string false "Destination contains"
// @Param active query bool false "Only active or inactive packages"
// @Param min_price query int false "Minimum price (minor units)"
// @Param max_price query int false "Maximum price (minor units)"
// @Success 200 {object} utils.APIResponse
// @Router /packages [get]
func (p *PackageController) List(c *gin.Context) {
	var filter request_models.PackageFilter
	page, limit, ok := bindFilter(c, &filter)
	if !ok {
		return
	}
	filter.Page, filter.Limit = page, limit
	filter.Query = strings.TrimSpace(filter.Query)

	out, err := p.service.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, out, "Packages fetched successfully")
}

// Search godoc
// @Summary Search packages
// @Tags Packages
// @Produce json
// @Security CookieAuth
// @Param q query string true "Title, destination or slug"
// @Success 200 {object} utils.APIResponse
// @Router /packages/search [get]
func (p *PackageController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	p.List(c)
}

// Picker godoc
// @Summary Package picker
// @Tags Packages
// @Produce json
// @Security CookieAuth
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /packages/picker [get]
func (p *PackageController) Picker(c *gin.Context) {
	items, err := p.service.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Packages fetched successfully")
}

// Get godoc
// @Summary Get a package with hotels, food options and itinerary
// @Tags Packages
// @Produce json
// @Security CookieAuth
// @Param id path string true "Package ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Package}
// @Failure 404 {object} utils.APIResponse
// @Router /packages/{id} [get]
func (p *PackageController) Get(c *gin.Context) {
	pkg, err := p.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package fetched successfully")
}

// Create godoc
// @Summary Create a package
// @Description JSON body, or multipart with a JSON "data" field and an optional "image" file.
// @Tags Packages
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param request body request_models.PackageRequest true "Package"
// @Success 201 {object} utils.APIResponse{data=db_models.Package}
// @Failure 400 {object} utils.APIResponse
// @Router /packages [post]
func (p *PackageController) Create(c *gin.Context) {
	var req request_models.PackageRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	pkg, err := p.service.Create(c.Request.Context(), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, pkg, "Package created successfully")
}

// Update godoc
// @Summary Replace a package
// @Tags Packages
// @Accept json,mpfd
// @Produce json
// @Security CookieAuth
// @Param id path string true "Package ID"
// @Param request body request_models.PackageRequest true "Package"
// @Success 200 {object} utils.APIResponse{data=db_models.Package}
// @Router /packages/{id} [put]
func (p *PackageController) Update(c *gin.Context) {
	var req request_models.PackageRequest
	img, ok := bindCatalogRequest(c, &req)
	if !ok {
		return
	}
	pkg, err := p.service.Update(c.Request.Context(), c.Param("id"), req, img)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pkg, "Package updated successfully")
}

// Delete godoc
// @Summary Delete a package
// @Tags Packages
// @Produce json
// @Security CookieAuth
// @Param id path string true "Package ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /packages/{id} [delete]
func (p *PackageController) Delete(c *gin.Context) {
	if err := p.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Package deleted successfully")
}
