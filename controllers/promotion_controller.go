package controllers

import (
	"io"

	"github.com/Govind-619/Storefront/promotion"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) window(c *gin.Context) promotion.Window {
	key := promotion.Key(ctl.PromotionScope, c.Query("productId"))
	return ctl.Promotion.GetOrCreateWindow(c.Request.Context(), ctl.Store(c), key)
}

// GetCountdown handles GET /v1/promotion/countdown
func (ctl *Controller) GetCountdown(c *gin.Context) {
	utils.LogInfo("GetCountdown called")
	w := ctl.window(c)
	utils.Success(c, "Countdown retrieved successfully", gin.H{
		"expiresAt": w.ExpiryTimestamp(),
		"countdown": ctl.Promotion.Current(w),
	})
}

// StreamCountdown handles GET /v1/promotion/countdown/stream as server-sent
// events, one "countdown" event per tick until zero or disconnect.
func (ctl *Controller) StreamCountdown(c *gin.Context) {
	utils.LogInfo("StreamCountdown called")
	w := ctl.window(c)
	ticks := ctl.Promotion.Tick(c.Request.Context(), w)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(out io.Writer) bool {
		countdown, ok := <-ticks
		if !ok {
			return false
		}
		c.SSEvent("countdown", countdown)
		return !countdown.IsZero()
	})
	utils.LogDebug("Countdown stream closed")
}
