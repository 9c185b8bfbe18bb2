package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/Govind-619/Storefront/checkout"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// DownloadReceipt handles GET /v1/products/:id/order/receipt for a placed order
func (ctl *Controller) DownloadReceipt(c *gin.Context) {
	utils.LogInfo("DownloadReceipt called for product %s", c.Param("id"))

	w, ok := ctl.workflow(c)
	if !ok {
		return
	}
	view := w.Snapshot()
	if view.Confirmation == nil || view.Confirmation.Order == nil {
		utils.LogError("Receipt requested before an order was placed")
		utils.Conflict(c, checkout.ErrNotSubmitted.Error(), nil)
		return
	}

	pdfBytes, err := renderReceipt(view.Confirmation)
	if err != nil {
		utils.LogError("Failed to render receipt: %v", err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	orderID := view.Confirmation.Order.ID
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
	utils.LogInfo("Receipt generated for order %s", orderID)
}

func renderReceipt(conf *checkout.Confirmation) ([]byte, error) {
	order := conf.Order
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "ORDER RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, "Order ID: "+order.ID)
	pdf.Ln(8)
	if !order.CreatedAt.IsZero() {
		pdf.Cell(100, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
		pdf.Ln(8)
	}
	pdf.Cell(100, 8, "Status: "+string(order.Status))
	pdf.Ln(8)
	pdf.Cell(100, 8, "Payment: cash on delivery")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Deliver To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, tr(conf.CustomerName))
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+conf.PhoneNumber)
	pdf.Ln(6)
	pdf.MultiCell(0, 8, tr(conf.ShippingAddress), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 8, "Options", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	name := conf.ProductName
	if name == "" {
		name = order.ProductName
	}
	pdf.CellFormat(90, 8, tr(name), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, tr(receiptOptions(order.Sizes, order.Codes, order.Colors, order.Quantity)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, tr(utils.FormatPrice(decimal.NewFromInt(conf.NetPrice), "")), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	if order.TotalPrice.IsPositive() {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(140, 10, "Total:", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 10, tr(utils.FormatPrice(order.TotalPrice, "")), "", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for your order!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func receiptOptions(sizes, codes, colors []string, quantity int) string {
	var parts []string
	if len(sizes) > 0 {
		parts = append(parts, "Size "+strings.Join(sizes, "/"))
	}
	if len(codes) > 0 {
		parts = append(parts, "Code "+strings.Join(codes, "/"))
	}
	if len(colors) > 0 {
		parts = append(parts, "Color "+strings.Join(colors, "/"))
	}
	if quantity > 0 {
		parts = append(parts, fmt.Sprintf("x%d", quantity))
	}
	return strings.Join(parts, ", ")
}
