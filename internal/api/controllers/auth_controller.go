package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/services"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/middleware"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
	cookie         config.AuthConfig
}

func NewAuthController(accountService services.AccountServiceInterface, cfg *config.Config) *AuthController {
	return &AuthController{accountService: accountService, cookie: cfg.Auth}
}

// Register godoc
// @Summary Register an admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Sign in
// @Description Verifies the credentials and sets the HttpOnly session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.LoginResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	out, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.CookieName, out.Token, int(a.cookie.TokenTTL.Seconds()), "/",
		a.cookie.CookieDomain, a.cookie.CookieSecure, true)

	utils.RespondSuccess(c, out, "Login successful")
}

// Logout godoc
// @Summary Sign out
// @Description Revokes the current token and clears the session cookie.
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	err := a.accountService.Logout(c.Request.Context(), c.GetString(middleware.CtxTokenID), middleware.TokenRemaining(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.CookieName, "", -1, "/", a.cookie.CookieDomain, a.cookie.CookieSecure, true)

	utils.RespondSuccess(c, nil, "Logged out")
}

// Me godoc
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} utils.APIResponse{data=response_models.AccountResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	account, err := a.accountService.Me(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, account, "Account fetched successfully")
}
