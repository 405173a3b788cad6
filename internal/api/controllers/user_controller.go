package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/middleware"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param q query string false "Name or email"
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (u *UserController) List(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	users, err := u.userService.List(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// Search godoc
// @Summary Search users
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param q query string true "Name or email"
// @Success 200 {object} utils.APIResponse
// @Router /users/search [get]
func (u *UserController) Search(c *gin.Context) {
	if !requireQuery(c) {
		return
	}
	u.List(c)
}

// Picker godoc
// @Summary User picker
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param q query string false "Name or email"
// @Success 200 {object} utils.APIResponse{data=[]response_models.PickerItem}
// @Router /users/picker [get]
func (u *UserController) Picker(c *gin.Context) {
	items, err := u.userService.Picker(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Users fetched successfully")
}

// Get godoc
// @Summary Get a user
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (u *UserController) Get(c *gin.Context) {
	user, err := u.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}

// Create godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body request_models.CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (u *UserController) Create(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}
	user, err := u.userService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, user, "User created successfully")
}

// Delete godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Security CookieAuth
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (u *UserController) Delete(c *gin.Context) {
	if err := u.userService.Delete(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "User deleted successfully")
}
