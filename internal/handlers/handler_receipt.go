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

type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
	searchService  portssvc.SearchSvc
}

func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade, searchService portssvc.SearchSvc) {
	h := &receiptHandler{receiptService: receiptService, searchService: searchService}

	receipts := rg.Group("/recibos")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/buscar", h.searchReceipts)
		receipts.GET("/:id", h.getReceipt)
		receipts.PUT("/:id", h.replaceReceipt)
		receipts.DELETE("/:id", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Create a receipt with its checks
// @Description The total is cash + transfer + other + the sum of the checks.
// @Tags recibos
// @Accept  json
// @Produce  json
// @Param   recibo body dto.ReceiptRequest true "Receipt"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, _ := middleware.GetUserIDFromContext(c)

	rec, err := h.receiptService.CreateReceipt(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Error al crear el recibo")
		return
	}

	logger.Info("Receipt created", slog.String("receipt_id", rec.ReceiptID), slog.String("total", rec.Total.String()))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(*rec))
}

// listReceipts godoc
// @Summary List receipts of one type, newest first
// @Tags recibos
// @Produce  json
// @Param   tipo query string true "cobro or pago"
// @Success 200 {array} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListByTypeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	recs, err := h.searchService.SearchReceipts(c.Request.Context(), domain.ReceiptType(params.Tipo), "", domain.DateRange{})
	if err != nil {
		respondError(c, logger, err, "Error al obtener los recibos")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponses(recs))
}

// searchReceipts godoc
// @Summary Search receipts by party name and date range
// @Tags recibos
// @Produce  json
// @Param   tipo   query string true  "cobro or pago"
// @Param   nombre query string false "Party name fragment"
// @Param   desde  query string false "From date (YYYY-MM-DD, inclusive)"
// @Param   hasta  query string false "To date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos/buscar [get]
func (h *receiptHandler) searchReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, dates, ok := bindSearch(c, logger)
	if !ok {
		return
	}

	recs, err := h.searchService.SearchReceipts(c.Request.Context(), domain.ReceiptType(params.Tipo), params.Nombre, dates)
	if err != nil {
		respondError(c, logger, err, "Error al buscar recibos")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponses(recs))
}

// getReceipt godoc
// @Summary Get a receipt with its checks
// @Tags recibos
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rec, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Error al obtener el recibo")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(*rec))
}

// replaceReceipt godoc
// @Summary Replace a receipt and all its checks
// @Tags recibos
// @Accept  json
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Param   recibo body dto.ReceiptRequest true "Receipt"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos/{id} [put]
func (h *receiptHandler) replaceReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	rec, err := h.receiptService.ReplaceReceipt(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Error al actualizar el recibo")
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(*rec))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Tags recibos
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recibos/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")
	if err := h.receiptService.DeleteReceipt(c.Request.Context(), receiptID); err != nil {
		respondError(c, logger, err, "Error al eliminar el recibo")
		return
	}
	logger.Info("Receipt deleted", slog.String("receipt_id", receiptID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recibo eliminado"})
}
