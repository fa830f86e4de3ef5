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

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
	searchService  portssvc.SearchSvc
	resolver       portssvc.PartyResolverSvc
}

func registerBalanceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &balanceHandler{
		balanceService: services.Balance,
		searchService:  services.Search,
		resolver:       services.Party,
	}

	balances := rg.Group("/balance")
	{
		balances.GET("/buscar", h.searchBalances)
		for path, role := range map[string]domain.InvoiceType{
			"/clientes":    domain.InvoiceTypeSale,
			"/proveedores": domain.InvoiceTypePurchase,
		} {
			balances.GET(path, h.allBalances(role))
			balances.GET(path+"/por-nombre", h.balanceByName(role))
			balances.GET(path+"/:id", h.balanceByID(role))
		}
	}
}

// allBalances godoc
// @Summary All-time balance of every client or supplier
// @Tags balance
// @Produce  json
// @Success 200 {array} dto.BalanceResponse
// @Security BearerAuth
// @Router /balance/clientes [get]
// @Router /balance/proveedores [get]
func (h *balanceHandler) allBalances(role domain.InvoiceType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		balances, err := h.balanceService.ComputeBalancesForAllParties(c.Request.Context(), role)
		if err != nil {
			respondError(c, logger, err, "Error al calcular los saldos")
			return
		}
		c.JSON(http.StatusOK, dto.ToBalanceResponses(balances))
	}
}

// balanceByID godoc
// @Summary All-time balance of one client or supplier
// @Tags balance
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/clientes/{id} [get]
// @Router /balance/proveedores/{id} [get]
func (h *balanceHandler) balanceByID(role domain.InvoiceType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		balance, err := h.balanceService.ComputeBalance(c.Request.Context(), c.Param("id"), role)
		if err != nil {
			respondError(c, logger, err, "Error al calcular el saldo")
			return
		}
		c.JSON(http.StatusOK, dto.ToBalanceResponse(*balance))
	}
}

// balanceByName godoc
// @Summary All-time balance of the party matching a name
// @Description An exact (case-insensitive) name match wins; otherwise the fragment must match exactly one party.
// @Tags balance
// @Produce  json
// @Param   nombre query string true "Name or name fragment"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse "Ambiguous name"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/clientes/por-nombre [get]
// @Router /balance/proveedores/por-nombre [get]
func (h *balanceHandler) balanceByName(role domain.InvoiceType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		name := c.Query("nombre")

		party, err := h.resolver.ResolveSingle(c.Request.Context(), role.PartyKind(), name)
		if err != nil {
			respondError(c, logger, err, "Error al buscar la entidad")
			return
		}
		logger.Debug("Resolved party by name", slog.String("party_id", party.PartyID))

		balances, err := h.balanceService.ComputeBalancesForParties(c.Request.Context(), role, []domain.Party{*party}, domain.DateRange{})
		if err != nil {
			respondError(c, logger, err, "Error al calcular el saldo")
			return
		}
		c.JSON(http.StatusOK, dto.ToBalanceResponse(balances[0]))
	}
}

// searchBalances godoc
// @Summary Balances restricted to matching parties and a date range
// @Tags balance
// @Produce  json
// @Param   tipo   query string true  "venta or compra"
// @Param   nombre query string false "Party name fragment"
// @Param   desde  query string false "From date (YYYY-MM-DD, inclusive)"
// @Param   hasta  query string false "To date (YYYY-MM-DD, inclusive)"
// @Success 200 {array} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/buscar [get]
func (h *balanceHandler) searchBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, dates, ok := bindSearch(c, logger)
	if !ok {
		return
	}

	balances, err := h.searchService.SearchBalances(c.Request.Context(), domain.InvoiceType(params.Tipo), params.Nombre, dates)
	if err != nil {
		respondError(c, logger, err, "Error al calcular los saldos")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponses(balances))
}
