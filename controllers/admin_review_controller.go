package controllers

import (
	"encoding/json"
	"strings"

	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// AdminCreateReview handles POST /v1/admin/reviews. The multipart form
// carries the review JSON in "review", an optional "reviewerImage" and any
// number of "images"; files are uploaded before the review is stored.
func (ctl *Controller) AdminCreateReview(c *gin.Context) {
	utils.LogInfo("AdminCreateReview called")

	var review models.Review
	multipartForm := strings.HasPrefix(c.ContentType(), "multipart/")
	if multipartForm {
		if err := json.Unmarshal([]byte(c.PostForm("review")), &review); err != nil {
			utils.LogError("Invalid review field: %v", err)
			utils.BadRequest(c, "Invalid review data", err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&review); err != nil {
		utils.LogError("Invalid review payload: %v", err)
		utils.BadRequest(c, "Invalid review data", err.Error())
		return
	}

	if review.ProductID == "" {
		utils.BadRequest(c, "productId is required", nil)
		return
	}
	if err := utils.ValidateRating(review.Rating); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	review.Content = utils.SanitizeString(review.Content)
	review.ReviewerName = utils.PersonName(review.ReviewerName)

	ctx := c.Request.Context()
	client := ctl.client(c)
	if multipartForm {
		form, err := c.MultipartForm()
		if err != nil {
			utils.BadRequest(c, "Invalid multipart form", err.Error())
			return
		}
		if headers := form.File["reviewerImage"]; len(headers) > 0 {
			urls, err := uploadHeaders(ctx, client, headers[:1])
			if err != nil {
				respondUploadError(c, err)
				return
			}
			review.ReviewerImage = &urls[0]
		}
		if headers := form.File["images"]; len(headers) > 0 {
			urls, err := uploadHeaders(ctx, client, headers)
			if err != nil {
				respondUploadError(c, err)
				return
			}
			review.Images = urls
		}
	}
	if review.Images == nil {
		review.Images = []string{}
	}

	created, err := client.CreateReview(ctx, &review)
	if err != nil {
		respondAPIError(c, "Create review", err)
		return
	}
	utils.LogInfo("Review %s created for product %s", created.ID, created.ProductID)
	utils.Created(c, utils.MsgCreateSuccess, gin.H{"review": created})
}
