package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const (
	formDataField  = "data"
	formImageField = "image"
)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}

// bindPayload reads a JSON body, or the JSON "data" field of a multipart form.
// On failure the 400 response has already been written.
func bindPayload(c *gin.Context, dst interface{}) bool {
	var err error
	if isMultipart(c) {
		raw := c.PostForm(formDataField)
		if raw == "" {
			raw = "{}"
		}
		err = binding.JSON.BindBody([]byte(raw), dst)
	} else {
		err = c.ShouldBindJSON(dst)
	}
	if err != nil {
		utils.RespondBindingError(c, err)
		return false
	}
	return true
}

// formImage returns the optional "image" file of a multipart request.
func formImage(c *gin.Context) (*media.Image, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(formImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, utils.ErrInvalidImage
	}
	return media.ReadImage(fh)
}

// bindCatalogRequest combines bindPayload and formImage for create/update.
func bindCatalogRequest(c *gin.Context, dst interface{}) (*media.Image, bool) {
	if !bindPayload(c, dst) {
		return nil, false
	}
	img, err := formImage(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return img, true
}

// bindListFilter reads page, limit and q.
func bindListFilter(c *gin.Context) (request_models.ListFilter, bool) {
	var f request_models.ListFilter
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return f, false
	}
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.RespondBindingError(c, err)
		return f, false
	}
	f.Page, f.Limit = page, limit
	f.Query = strings.TrimSpace(f.Query)
	return f, true
}

// bindFilter binds an entity filter that embeds ListFilter; pagination is
// returned separately and the caller copies it in.
func bindFilter(c *gin.Context, dst interface{}) (int, int, bool) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return 0, 0, false
	}
	if err := c.ShouldBindQuery(dst); err != nil {
		utils.RespondBindingError(c, err)
		return 0, 0, false
	}
	return page, limit, true
}

// requireQuery guards the search endpoints, which need a non-empty q.
func requireQuery(c *gin.Context) bool {
	if strings.TrimSpace(c.Query("q")) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return false
	}
	return true
}
