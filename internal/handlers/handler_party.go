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

// partyHandler serves one party kind. The same handler backs /clientes and
// /proveedores.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	kind         domain.PartyKind
}

func newPartyHandler(ps portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{partyService: ps, kind: kind}
}

// registerPartyRoutes registers CRUD routes for a party kind under path.
func registerPartyRoutes(rg *gin.RouterGroup, path string, kind domain.PartyKind, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService, kind)

	parties := rg.Group(path)
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
		parties.DELETE("/:id", h.deleteParty)
	}
}

// createParty godoc
// @Summary Create a client or supplier
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.PartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate CUIT"
// @Security BearerAuth
// @Router /clientes [post]
// @Router /proveedores [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No autorizado"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), h.kind, req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Error al crear el "+string(h.kind))
		return
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(h.kind)))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List clients or suppliers ordered by name
// @Tags parties
// @Produce  json
// @Success 200 {array} dto.PartyResponse
// @Security BearerAuth
// @Router /clientes [get]
// @Router /proveedores [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parties, err := h.partyService.ListParties(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, logger, err, "Error al obtener los registros")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponses(parties))
}

// getParty godoc
// @Summary Get a client or supplier
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [get]
// @Router /proveedores/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	party, err := h.partyService.GetParty(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Error al obtener el "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// updateParty godoc
// @Summary Replace a client or supplier
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.PartyRequest true "Party details"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [put]
// @Router /proveedores/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	party, err := h.partyService.UpdateParty(c.Request.Context(), h.kind, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Error al actualizar el "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a client or supplier
// @Description Parties with invoices or receipts cannot be deleted.
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Party has documents"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [delete]
// @Router /proveedores/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")
	if err := h.partyService.DeleteParty(c.Request.Context(), h.kind, partyID); err != nil {
		respondError(c, logger, err, "Error al eliminar el "+string(h.kind))
		return
	}
	logger.Info("Party deleted", slog.String("party_id", partyID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Eliminado correctamente"})
}
