package controllers

import (
	"errors"
	"net/http"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// SignUpRequest is the sign-up form
type SignUpRequest struct {
	Phone           string `json:"phone" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Login handles POST /v1/auth/login
func (ctl *Controller) Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	req.Username = utils.NormalizeUsername(req.Username)
	utils.LogDebug("Login attempt for %s", req.Username)

	user, err := ctl.API.Login(c.Request.Context(), req)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			utils.LogError("Login rejected for %s", req.Username)
			utils.Unauthorized(c, utils.ErrInvalidCredentials)
			return
		}
		respondAPIError(c, "Login", err)
		return
	}

	if err := utils.SetAuthSession(c, utils.AuthSession{Token: user.AccessToken, Role: user.Role}); err != nil {
		utils.LogError("Failed to save session for %s: %v", req.Username, err)
		utils.InternalServerError(c, utils.ErrGeneric, nil)
		return
	}

	utils.LogInfo("User %s logged in with role %s", req.Username, user.Role)
	utils.Success(c, utils.MsgLoginSuccess, gin.H{
		"username":    req.Username,
		"role":        user.Role,
		"isAdmin":     user.Role == models.RoleAdmin,
		"accessToken": user.AccessToken,
	})
}

// SignUp handles POST /v1/auth/sign-up
func (ctl *Controller) SignUp(c *gin.Context) {
	utils.LogInfo("SignUp called")

	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid sign-up request: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	username := utils.NormalizeUsername(req.Username)
	if valid, msg := utils.ValidateUsername(username); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}
	if !utils.IsValidPhone(req.Phone) {
		utils.BadRequest(c, utils.ErrInvalidPhone, nil)
		return
	}
	if valid, msg := utils.ValidateConfirmPassword(req.Password, req.ConfirmPassword); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	err := ctl.API.SignUp(c.Request.Context(), models.SignUpRequest{
		Phone:    req.Phone,
		Username: username,
		Password: req.Password,
	})
	if err != nil {
		respondAPIError(c, "Sign up", err)
		return
	}

	utils.LogInfo("User %s signed up", username)
	utils.Created(c, utils.MsgSignUpSuccess, gin.H{"username": username})
}

// Logout handles POST /v1/auth/logout
func (ctl *Controller) Logout(c *gin.Context) {
	utils.LogInfo("Logout called")
	if err := utils.ClearAuthSession(c); err != nil {
		utils.LogError("Failed to clear session: %v", err)
		utils.InternalServerError(c, utils.ErrGeneric, nil)
		return
	}
	utils.Success(c, utils.MsgLogoutSuccess, nil)
}

// Me handles GET /v1/auth/me behind AuthMiddleware
func (ctl *Controller) Me(c *gin.Context) {
	auth, ok := middleware.CurrentAuth(c)
	if !ok {
		utils.Unauthorized(c, utils.ErrUnauthorized)
		return
	}
	utils.Success(c, "Session is active", gin.H{
		"role":    auth.Role,
		"isAdmin": auth.IsAdmin(),
	})
}
