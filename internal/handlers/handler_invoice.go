package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/middleware"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	searchService  portssvc.SearchSvc
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, searchService portssvc.SearchSvc) {
	h := &invoiceHandler{invoiceService: invoiceService, searchService: searchService}

	invoices := rg.Group("/facturas")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/buscar", h.searchInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.replaceInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// createInvoice godoc
// @Summary Create an invoice, credit note or debit note
// @Description Subtotal, IVA and total are computed from the items.
// @Tags facturas
// @Accept  json
// @Produce  json
// @Param   factura body dto.InvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	rec, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Error al crear la factura")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", rec.InvoiceID), slog.String("total", rec.Total.String()))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(*rec))
}

// listInvoices godoc
// @Summary List invoices of one type, newest first
// @Tags facturas
// @Produce  json
// @Param   tipo query string true "venta or compra"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListByTypeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	recs, err := h.searchService.SearchInvoices(c.Request.Context(), domain.InvoiceType(params.Tipo), "", domain.DateRange{})
	if err != nil {
		respondError(c, logger, err, "Error al obtener las facturas")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(recs))
}

// searchInvoices godoc
// @Summary Search invoices by party name and date range
// @Description An empty result is returned, not an error, when no party matches.
// @Tags facturas
// @Produce  json
// @Param   tipo   query string true  "venta or compra"
// @Param   nombre query string false "Party name fragment"
// @Param   desde  query string false "From date (YYYY-MM-DD, inclusive)"
// @Param   hasta  query string false "To date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas/buscar [get]
func (h *invoiceHandler) searchInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, dates, ok := bindSearch(c, logger)
	if !ok {
		return
	}

	recs, err := h.searchService.SearchInvoices(c.Request.Context(), domain.InvoiceType(params.Tipo), params.Nombre, dates)
	if err != nil {
		respondError(c, logger, err, "Error al buscar facturas")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(recs))
}

// getInvoice godoc
// @Summary Get an invoice with its items
// @Tags facturas
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rec, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Error al obtener la factura")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(*rec))
}

// replaceInvoice godoc
// @Summary Replace an invoice and all its items
// @Tags facturas
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   factura body dto.InvoiceRequest true "Invoice"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas/{id} [put]
func (h *invoiceHandler) replaceInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	rec, err := h.invoiceService.ReplaceInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Error al actualizar la factura")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(*rec))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Tags facturas
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /facturas/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		respondError(c, logger, err, "Error al eliminar la factura")
		return
	}
	logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Factura eliminada"})
}

// bindSearch binds the shared /buscar query and parses its date bounds.
func bindSearch(c *gin.Context, logger *slog.Logger) (dto.SearchParams, domain.DateRange, bool) {
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return params, domain.DateRange{}, false
	}
	from, err := dto.ParseOptionalDate("desde", params.Desde)
	if err != nil {
		respondError(c, logger, err, "Error al leer las fechas")
		return params, domain.DateRange{}, false
	}
	to, err := dto.ParseOptionalDate("hasta", params.Hasta)
	if err != nil {
		respondError(c, logger, err, "Error al leer las fechas")
		return params, domain.DateRange{}, false
	}
	return params, domain.DateRange{From: from, To: to}, true
}
