package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
)

func validateProduct(p *models.Product) error {
	p.Name = utils.SanitizeString(p.Name)
	if err := utils.ValidateStringLength(p.Name, 2, 200); err != nil {
		return fmt.Errorf("name %w", err)
	}
	if err := utils.ValidatePrice(p.Price); err != nil {
		return err
	}
	if err := utils.ValidateDiscountPercentage(p.DiscountPercentage); err != nil {
		return err
	}
	if err := utils.ValidateStock(p.StockQuantity); err != nil {
		return err
	}
	for i := range p.Sizes {
		p.Sizes[i].SizeName = strings.TrimSpace(p.Sizes[i].SizeName)
		if p.Sizes[i].SizeName == "" {
			return fmt.Errorf("size %d has no name", i+1)
		}
	}
	for i := range p.Attributes {
		if !p.Attributes[i].Kind.Valid() {
			return fmt.Errorf("attribute %d has unknown type %q", i+1, p.Attributes[i].Kind)
		}
	}
	return nil
}

// bindProduct reads a product from a JSON body or from the "product" field of a multipart form
func bindProduct(c *gin.Context) (*models.Product, bool, error) {
	var p models.Product
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		raw := c.PostForm("product")
		if raw == "" {
			return nil, true, errors.New("product field is required")
		}
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, true, err
		}
		return &p, true, nil
	}
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, false, err
	}
	return &p, false, nil
}

// AdminListProducts handles GET /v1/admin/products
func (ctl *Controller) AdminListProducts(c *gin.Context) {
	utils.LogInfo("AdminListProducts called")
	products, err := ctl.client(c).ListProducts(c.Request.Context())
	if err != nil {
		respondAPIError(c, "List products", err)
		return
	}
	pagination := utils.NewPagination(c, utils.MaxPaginationLimit)
	start, end := pagination.Bounds(len(products))
	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": products[start:end]}, pagination)
}

// AdminCreateProduct handles POST /v1/admin/products. Multipart requests
// carry the product JSON in "product", gallery files in "images" (the first
// becomes the main image) and per-attribute files in "attributeImages[<i>]".
// Files are uploaded one after another before the product is created.
func (ctl *Controller) AdminCreateProduct(c *gin.Context) {
	utils.LogInfo("AdminCreateProduct called")

	product, multipartForm, err := bindProduct(c)
	if err != nil {
		utils.LogError("Invalid product payload: %v", err)
		utils.BadRequest(c, "Invalid product data", err.Error())
		return
	}
	if err := validateProduct(product); err != nil {
		utils.LogError("Product validation failed: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()
	client := ctl.client(c)

	if multipartForm {
		form, err := c.MultipartForm()
		if err != nil {
			utils.BadRequest(c, "Invalid multipart form", err.Error())
			return
		}

		if images := form.File["images"]; len(images) > 0 {
			urls, err := uploadHeaders(ctx, client, images)
			if err != nil {
				respondUploadError(c, err)
				return
			}
			product.ProductImage = urls[0]
			product.SubImages = append([]string{}, urls[1:]...)
		}

		for i := range product.Attributes {
			headers := form.File[fmt.Sprintf("attributeImages[%d]", i)]
			if len(headers) == 0 {
				continue
			}
			urls, err := uploadHeaders(ctx, client, headers[:1])
			if err != nil {
				respondUploadError(c, err)
				return
			}
			product.Attributes[i].Image = urls[0]
		}
	}

	created, err := client.CreateProduct(ctx, product)
	if err != nil {
		respondAPIError(c, "Create product", err)
		return
	}
	utils.LogInfo("Product %s created", created.ID)
	utils.Created(c, utils.MsgCreateSuccess, gin.H{"product": created})
}

// AdminUpdateProduct handles PUT /v1/admin/products/:id; a multipart "image" replaces the main image
func (ctl *Controller) AdminUpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("AdminUpdateProduct called for %s", productID)

	product, multipartForm, err := bindProduct(c)
	if err != nil {
		utils.LogError("Invalid product payload: %v", err)
		utils.BadRequest(c, "Invalid product data", err.Error())
		return
	}
	if err := validateProduct(product); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()
	client := ctl.client(c)
	if multipartForm {
		if header, err := c.FormFile("image"); err == nil {
			urls, err := uploadHeaders(ctx, client, []*multipart.FileHeader{header})
			if err != nil {
				respondUploadError(c, err)
				return
			}
			product.ProductImage = urls[0]
		}
	}

	updated, err := client.UpdateProduct(ctx, productID, product)
	if err != nil {
		respondAPIError(c, "Update product "+productID, err)
		return
	}
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"product": updated})
}

// AdminDeleteProduct handles DELETE /v1/admin/products/:id
func (ctl *Controller) AdminDeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("AdminDeleteProduct called for %s", productID)
	if err := ctl.client(c).DeleteProduct(c.Request.Context(), productID); err != nil {
		respondAPIError(c, "Delete product "+productID, err)
		return
	}
	utils.Success(c, utils.MsgDeleteSuccess, nil)
}
