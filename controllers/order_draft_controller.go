package controllers

import (
	"context"
	"errors"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/geography"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// workflow returns the visitor's order workflow for the product in the
// path, starting one when the session holds none or it was evicted.
func (ctl *Controller) workflow(c *gin.Context) (*checkout.Workflow, bool) {
	productID := c.Param("id")
	if w, ok := ctl.Drafts.Get(utils.GetDraftID(c, productID)); ok && w.ProductID() == productID {
		return w, true
	}

	ctx := c.Request.Context()
	product, err := ctl.API.GetProduct(ctx, productID)
	if err != nil {
		if api.IsNotFound(err) && utils.GetDraftID(c, productID) != "" {
			if err := utils.ClearDraftID(c, productID); err != nil {
				utils.LogError("Failed to forget draft of removed product %s: %v", productID, err)
			}
		}
		respondAPIError(c, "Get product "+productID, err)
		return nil, false
	}
	// without the tier list the draft could submit a quantity for a tiered product
	tiers, err := ctl.API.ListTiersByProduct(ctx, productID)
	if err != nil {
		respondAPIError(c, "List tiers of "+productID, err)
		return nil, false
	}

	w := checkout.NewWorkflow(product, tiers, ctl.Geography, ctl.API)
	id := ctl.Drafts.Add(w)
	if err := utils.SetDraftID(c, productID, id); err != nil {
		utils.LogError("Failed to remember draft %s: %v", id, err)
		ctl.Drafts.Remove(id)
		utils.InternalServerError(c, utils.ErrGeneric, nil)
		return nil, false
	}
	utils.LogInfo("Started order draft %s for product %s", id, productID)
	return w, true
}

// respondDraftError maps workflow errors to responses
func respondDraftError(c *gin.Context, w *checkout.Workflow, err error) {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.LogInfo("Order draft rejected: %v", verr)
		utils.ValidationError(c, "Please check the highlighted fields", verr.Fields, w.Snapshot())
	case errors.Is(err, checkout.ErrSubmissionInProgress), errors.Is(err, checkout.ErrAlreadySubmitted), errors.Is(err, checkout.ErrNotSubmitted):
		utils.LogInfo("Order draft conflict: %v", err)
		utils.Conflict(c, err.Error(), nil)
	case errors.Is(err, checkout.ErrSubmissionFailed):
		utils.LogError("Order submission failed: %v", err)
		utils.BadGateway(c, utils.ErrOrderSubmission, w.Snapshot())
	case errors.Is(err, checkout.ErrUnknownOption), errors.Is(err, checkout.ErrInvalidQuantity),
		errors.Is(err, geography.ErrUnknownCity), errors.Is(err, geography.ErrUnknownDistrict), errors.Is(err, geography.ErrUnknownWard):
		utils.LogInfo("Invalid order draft change: %v", err)
		utils.BadRequest(c, err.Error(), nil)
	default:
		utils.LogError("Unexpected order draft error: %v", err)
		utils.InternalServerError(c, utils.ErrGeneric, nil)
	}
}

// GetOrderDraft handles GET /v1/products/:id/order
func (ctl *Controller) GetOrderDraft(c *gin.Context) {
	utils.LogInfo("GetOrderDraft called for product %s", c.Param("id"))
	w, ok := ctl.workflow(c)
	if !ok {
		return
	}
	utils.Success(c, "Order draft retrieved successfully", w.Snapshot())
}

// UpdateOrderDraft handles PATCH /v1/products/:id/order
func (ctl *Controller) UpdateOrderDraft(c *gin.Context) {
	utils.LogInfo("UpdateOrderDraft called for product %s", c.Param("id"))

	var patch checkout.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.LogError("Invalid order draft patch: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	w, ok := ctl.workflow(c)
	if !ok {
		return
	}
	if err := w.Apply(patch); err != nil {
		respondDraftError(c, w, err)
		return
	}
	utils.Success(c, "Order draft updated", w.Snapshot())
}

// DeleteOrderDraft handles DELETE /v1/products/:id/order, starting over with an empty draft
func (ctl *Controller) DeleteOrderDraft(c *gin.Context) {
	utils.LogInfo("DeleteOrderDraft called for product %s", c.Param("id"))
	w, ok := ctl.workflow(c)
	if !ok {
		return
	}
	if err := w.Reset(); err != nil {
		respondDraftError(c, w, err)
		return
	}
	utils.Success(c, "Order draft cleared", w.Snapshot())
}

// SubmitOrderDraft handles POST /v1/products/:id/order/submit
func (ctl *Controller) SubmitOrderDraft(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("SubmitOrderDraft called for product %s", productID)
	w, ok := ctl.workflow(c)
	if !ok {
		return
	}

	// the remote call outlives a client disconnect: an order the service
	// accepted must not leave the draft Failed and open to a duplicate retry
	confirmation, err := w.Submit(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		respondDraftError(c, w, err)
		return
	}
	utils.LogInfo("Order %s submitted for product %s", confirmation.Order.ID, productID)
	utils.Created(c, utils.MsgOrderPlaced, gin.H{
		"confirmation": confirmation,
		"draft":        w.Snapshot(),
	})
}

// ConfirmOrderDraft handles POST /v1/products/:id/order/confirm
func (ctl *Controller) ConfirmOrderDraft(c *gin.Context) {
	utils.LogInfo("ConfirmOrderDraft called for product %s", c.Param("id"))
	w, ok := ctl.workflow(c)
	if !ok {
		return
	}
	confirmation, err := w.Confirm()
	if err != nil {
		respondDraftError(c, w, err)
		return
	}
	utils.Success(c, utils.MsgOrderConfirmed, confirmation)
}
