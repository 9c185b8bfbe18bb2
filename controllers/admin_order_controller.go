package controllers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// AdminUpdateOrderRequest is the body of PUT /v1/admin/orders/:id. Status is
// a string so unknown values can be rejected with a readable message.
type AdminUpdateOrderRequest struct {
	CustomerName    *string  `json:"customerName"`
	PhoneNumber     *string  `json:"phoneNumber"`
	ShippingAddress *string  `json:"shippingAddress"`
	Tiers           []string `json:"tiers"`
	Sizes           []string `json:"sizes"`
	Codes           []string `json:"codes"`
	Colors          []string `json:"colors"`
	Note            *string  `json:"note"`
	Quantity        *int     `json:"quantity"`
	Status          *string  `json:"status"`
}

func filterOrders(orders []models.Order, status string) []models.Order {
	if status == "" {
		return orders
	}
	filtered := []models.Order{}
	for _, o := range orders {
		if strings.EqualFold(string(o.Status), status) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// AdminListOrders handles GET /v1/admin/orders, newest first, optionally filtered by ?status=
func (ctl *Controller) AdminListOrders(c *gin.Context) {
	utils.LogInfo("AdminListOrders called")

	orders, err := ctl.client(c).ListOrders(c.Request.Context())
	if err != nil {
		respondAPIError(c, "List orders", err)
		return
	}
	orders = filterOrders(orders, c.Query("status"))
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })

	pagination := utils.NewPagination(c, 20)
	start, end := pagination.Bounds(len(orders))
	utils.SuccessWithPagination(c, "Orders retrieved successfully", gin.H{
		"orders":   orders[start:end],
		"statuses": models.OrderStatuses,
	}, pagination)
}

// AdminOrderOptions handles GET /v1/admin/orders/:id/options: the tier,
// size, code and color choices of the order's product for the edit form
func (ctl *Controller) AdminOrderOptions(c *gin.Context) {
	orderID := c.Param("id")
	utils.LogInfo("AdminOrderOptions called for order %s", orderID)
	ctx := c.Request.Context()
	client := ctl.client(c)

	orders, err := client.ListOrders(ctx)
	if err != nil {
		respondAPIError(c, "List orders", err)
		return
	}
	var order *models.Order
	for i := range orders {
		if orders[i].ID == orderID {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		utils.NotFound(c, "Order not found")
		return
	}

	product, err := client.GetProduct(ctx, order.ProductID)
	if err != nil {
		respondAPIError(c, "Get product "+order.ProductID, err)
		return
	}
	tiers, err := client.ListTiersByProduct(ctx, order.ProductID)
	if err != nil {
		respondAPIError(c, "List tiers of "+order.ProductID, err)
		return
	}

	utils.Success(c, "Order options retrieved successfully", gin.H{
		"order":    order,
		"options":  checkout.OptionsFor(product, tiers),
		"statuses": models.OrderStatuses,
	})
}

// AdminUpdateOrder handles PUT /v1/admin/orders/:id
func (ctl *Controller) AdminUpdateOrder(c *gin.Context) {
	orderID := c.Param("id")
	utils.LogInfo("AdminUpdateOrder called for order %s", orderID)

	var req AdminUpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order update payload: %v", err)
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	update := models.UpdateOrderRequest{
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		ShippingAddress: req.ShippingAddress,
		Tiers:           req.Tiers,
		Sizes:           req.Sizes,
		Codes:           req.Codes,
		Colors:          req.Colors,
		Note:            req.Note,
		Quantity:        req.Quantity,
	}
	if req.Status != nil {
		status, ok := models.ParseOrderStatus(*req.Status)
		if !ok {
			utils.LogError("Unknown order status %q", *req.Status)
			utils.BadRequest(c, fmt.Sprintf("Invalid status %q", *req.Status), gin.H{"allowed": models.OrderStatuses})
			return
		}
		update.Status = &status
	}
	if req.PhoneNumber != nil && !utils.IsValidPhone(*req.PhoneNumber) {
		utils.BadRequest(c, utils.ErrInvalidPhone, nil)
		return
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		utils.BadRequest(c, checkout.ErrInvalidQuantity.Error(), nil)
		return
	}

	order, err := ctl.client(c).UpdateOrder(c.Request.Context(), orderID, update)
	if err != nil {
		respondAPIError(c, "Update order "+orderID, err)
		return
	}
	utils.LogInfo("Order %s updated, status %s", orderID, order.Status)
	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"order": order})
}

// AdminExportOrders handles GET /v1/admin/orders/export as an xlsx sheet
func (ctl *Controller) AdminExportOrders(c *gin.Context) {
	utils.LogInfo("AdminExportOrders called")

	orders, err := ctl.client(c).ListOrders(c.Request.Context())
	if err != nil {
		respondAPIError(c, "List orders", err)
		return
	}
	status := c.Query("status")
	orders = filterOrders(orders, status)

	file, err := buildOrderSheet(orders, time.Now())
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	suffix := "all"
	if status != "" {
		suffix = strings.ToLower(status)
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", suffix))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Exported %d orders", len(orders))
}

func buildOrderSheet(orders []models.Order, generatedAt time.Time) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(strings.ToUpper(utils.AppName) + " - Orders")
	titleRow = sheet.AddRow()
	titleRow.AddCell().SetString("Generated: " + generatedAt.Format("2006-01-02 15:04"))
	sheet.AddRow()

	headers := []string{"Order ID", "Date", "Product", "Customer", "Phone", "Address", "Tiers", "Sizes", "Codes", "Colors", "Quantity", "Total", "Status", "Note"}
	headerRow := sheet.AddRow()
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(style)
	}

	total := 0.0
	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.ID)
		row.AddCell().SetString(o.CreatedAt.Format("2006-01-02 15:04"))
		name := o.ProductName
		if name == "" {
			name = o.ProductID
		}
		row.AddCell().SetString(name)
		row.AddCell().SetString(o.CustomerName)
		row.AddCell().SetString(o.PhoneNumber)
		row.AddCell().SetString(o.ShippingAddress)
		row.AddCell().SetString(strings.Join(o.Tiers, ", "))
		row.AddCell().SetString(strings.Join(o.Sizes, ", "))
		row.AddCell().SetString(strings.Join(o.Codes, ", "))
		row.AddCell().SetString(strings.Join(o.Colors, ", "))
		row.AddCell().SetInt(o.Quantity)
		amount, _ := o.TotalPrice.Float64()
		row.AddCell().SetFloat(amount)
		row.AddCell().SetString(string(o.Status))
		row.AddCell().SetString(o.Note)
		total += amount
	}

	sheet.AddRow()
	summary := sheet.AddRow()
	summary.AddCell().SetString("Orders")
	summary.AddCell().SetInt(len(orders))
	summary.Cells[0].SetStyle(style)
	summary = sheet.AddRow()
	summary.AddCell().SetString("Total")
	summary.AddCell().SetFloat(total)
	summary.Cells[0].SetStyle(style)

	return file, nil
}
