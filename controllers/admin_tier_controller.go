package controllers

import (
	"fmt"

	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

func validateTier(t *models.ProductTier) error {
	if t.ProductID == "" {
		return fmt.Errorf("productId is required")
	}
	if t.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if err := utils.ValidatePrice(t.Price); err != nil {
		return err
	}
	if t.ShippingFee.IsNegative() {
		return fmt.Errorf("shipping fee cannot be negative")
	}
	t.Description = utils.SanitizeString(t.Description)
	return nil
}

// AdminListTiers handles GET /v1/admin/product-tiers
func (ctl *Controller) AdminListTiers(c *gin.Context) {
	utils.LogInfo("AdminListTiers called")
	tiers, err := ctl.client(c).ListTiers(c.Request.Context())
	if err != nil {
		respondAPIError(c, "List tiers", err)
		return
	}
	utils.Success(c, "Product tiers retrieved successfully", gin.H{"productTiers": tiers})
}

// AdminGetTier handles GET /v1/admin/product-tiers/:id
func (ctl *Controller) AdminGetTier(c *gin.Context) {
	tierID := c.Param("id")
	utils.LogInfo("AdminGetTier called for %s", tierID)
	tier, err := ctl.client(c).GetTier(c.Request.Context(), tierID)
	if err != nil {
		respondAPIError(c, "Get tier "+tierID, err)
		return
	}
	utils.Success(c, "Product tier retrieved successfully", gin.H{"productTier": tier})
}

// AdminCreateTier handles POST /v1/admin/product-tiers
func (ctl *Controller) AdminCreateTier(c *gin.Context) {
	utils.LogInfo("AdminCreateTier called")

	var tier models.ProductTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		utils.LogError("Invalid tier payload: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := validateTier(&tier); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	created, err := ctl.client(c).CreateTier(c.Request.Context(), &tier)
	if err != nil {
		respondAPIError(c, "Create tier", err)
		return
	}
	utils.LogInfo("Tier %s created for product %s", created.ID, created.ProductID)
	utils.Created(c, utils.MsgCreateSuccess, gin.H{"productTier": created})
}

// AdminUpdateTier handles PUT /v1/admin/product-tiers/:id
func (ctl *Controller) AdminUpdateTier(c *gin.Context) {
	tierID := c.Param("id")
	utils.LogInfo("AdminUpdateTier called for %s", tierID)

	var tier models.ProductTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := validateTier(&tier); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	updated, err := ctl.client(c).UpdateTier(c.Request.Context(), tierID, &tier)
	if err != nil {
		respondAPIError(c, "Update tier "+tierID, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"productTier": updated})
}

// AdminDeleteTier handles DELETE /v1/admin/product-tiers/:id
func (ctl *Controller) AdminDeleteTier(c *gin.Context) {
	tierID := c.Param("id")
	utils.LogInfo("AdminDeleteTier called for %s", tierID)
	if err := ctl.client(c).DeleteTier(c.Request.Context(), tierID); err != nil {
		respondAPIError(c, "Delete tier "+tierID, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
