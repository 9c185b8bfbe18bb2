package controllers

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/Govind-619/Storefront/api"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

// uploadHeaders validates and uploads files one at a time, in order
func uploadHeaders(ctx context.Context, client *api.Client, headers []*multipart.FileHeader) ([]string, error) {
	if err := utils.ValidateImageFiles(headers); err != nil {
		return nil, utils.BadRequestError(err.Error(), err)
	}
	files := make([]api.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return nil, utils.BadRequestError("Failed to read "+h.Filename, err)
		}
		defer f.Close()
		files = append(files, api.File{Name: h.Filename, Content: f})
	}

	urls, err := client.UploadImages(ctx, files)
	if err != nil {
		return urls, FromAPIError(fmt.Errorf("upload %s: %w", headers[len(urls)].Filename, err))
	}
	utils.LogDebug("Uploaded %d images", len(urls))
	return urls, nil
}

// respondUploadError sends the AppError produced by uploadHeaders
func respondUploadError(c *gin.Context, err error) {
	utils.LogError("Image upload failed: %v", err)
	if appErr := utils.GetAppError(err); appErr != nil {
		utils.AbortWithAppError(c, appErr)
		return
	}
	utils.InternalServerError(c, utils.ErrGeneric, nil)
}

// UploadImage handles POST /v1/admin/upload, proxying one image to the remote service
func (ctl *Controller) UploadImage(c *gin.Context) {
	utils.LogInfo("UploadImage called")

	header, err := c.FormFile("file")
	if err != nil {
		utils.LogError("No file in upload request: %v", err)
		utils.BadRequest(c, "File is required", nil)
		return
	}

	urls, err := uploadHeaders(c.Request.Context(), ctl.client(c), []*multipart.FileHeader{header})
	if err != nil {
		respondUploadError(c, err)
		return
	}
	utils.Success(c, utils.MsgUploadSuccess, gin.H{"fileUrl": urls[0]})
}
