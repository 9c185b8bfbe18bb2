package controllers

import (
	"errors"
	"net/http"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/middleware"
	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// StoreProvider picks the promotion store for a request
type StoreProvider func(c *gin.Context) promotion.Store

// SessionStoreProvider keeps each visitor's deadline in their session cookie
func SessionStoreProvider(c *gin.Context) promotion.Store {
	return promotion.NewSessionStore(sessions.Default(c))
}

// SharedStoreProvider serves one store to every request
func SharedStoreProvider(store promotion.Store) StoreProvider {
	return func(*gin.Context) promotion.Store { return store }
}

// Controller carries the collaborators of every handler
type Controller struct {
	API            *api.Client
	Promotion      *promotion.Engine
	Store          StoreProvider
	PromotionScope string
	Drafts         *checkout.Registry
	Geography      *geography.Dataset
	Sampler        promotion.Sampler
}

// client returns the API client carrying the caller's token, if any
func (ctl *Controller) client(c *gin.Context) *api.Client {
	if auth, ok := middleware.CurrentAuth(c); ok {
		return ctl.API.WithToken(auth.Token)
	}
	if auth, ok := utils.GetAuthSession(c); ok {
		return ctl.API.WithToken(auth.Token)
	}
	return ctl.API
}

// FromAPIError maps a remote failure to the error the visitor sees. Remote
// messages are only passed through for 4xx answers.
func FromAPIError(err error) *utils.AppError {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return utils.BadGatewayError(utils.ErrGeneric, err)
	}
	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		return utils.NotFoundError("Not found", err)
	case apiErr.StatusCode == http.StatusUnauthorized:
		return utils.UnauthorizedError(utils.ErrUnauthorized, err)
	case apiErr.StatusCode == http.StatusForbidden:
		return utils.NewAppError(http.StatusForbidden, utils.ErrForbidden, err)
	case apiErr.StatusCode == http.StatusConflict:
		return utils.ConflictError(messageOr(apiErr.Message, utils.ErrGeneric), err)
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		return utils.BadRequestError(messageOr(apiErr.Message, utils.ErrGeneric), err)
	default:
		return utils.BadGatewayError(utils.ErrGeneric, err)
	}
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

// respondAPIError logs and sends a remote failure
func respondAPIError(c *gin.Context, action string, err error) {
	appErr := FromAPIError(err)
	utils.LogError("%s failed: %v", action, err)
	utils.AbortWithAppError(c, appErr)
}
