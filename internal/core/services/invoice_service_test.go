package services_test

import (
	"context"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoices *MockInvoiceRepository
	parties  *MockPartyRepository
	service  portssvc.InvoiceSvcFacade
	ctx      context.Context
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.invoices = new(MockInvoiceRepository)
	suite.parties = new(MockPartyRepository)
	suite.service = services.NewInvoiceService(suite.invoices, suite.parties)
	suite.ctx = context.Background()
}

func saleRequest() dto.InvoiceRequest {
	return dto.InvoiceRequest{
		Number:   "A-0001",
		Date:     "2024-03-10",
		Type:     "venta",
		ClientID: ptr("c1"),
		Items: []dto.LineItemRequest{
			{Description: "Tornillos", Quantity: dec("2"), UnitPrice: dec("100")},
			{Description: "Flete", Quantity: dec("1"), UnitPrice: dec("50.50")},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ComputesTotals() {
	acme := client("c1", "Acme")
	suite.parties.On("FindPartyByID", suite.ctx, domain.PartyClient, "c1").Return(&acme, nil).Once()
	suite.invoices.On("CreateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.LineItem")).Return(nil).Once()

	rec, err := suite.service.CreateInvoice(suite.ctx, saleRequest(), "u1")

	suite.Require().NoError(err)
	suite.Equal("Acme", rec.PartyName)
	suite.Equal(domain.SubtypeInvoice, rec.Subtype)
	suite.True(dec("250.50").Equal(rec.Subtotal), rec.Subtotal.String())
	suite.True(dec("52.61").Equal(rec.Tax), rec.Tax.String())
	suite.True(dec("303.11").Equal(rec.Total), rec.Total.String())
	suite.True(rec.Subtotal.Add(rec.Tax).Equal(rec.Total))
	suite.Require().Len(rec.Items, 2)
	suite.Equal(1, rec.Items[0].Position)
	suite.Equal(rec.InvoiceID, rec.Items[1].InvoiceID)
	suite.NotEmpty(rec.Items[1].LineItemID)
	suite.Equal("u1", rec.CreatedBy)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RequiresItems() {
	req := saleRequest()
	req.Items = nil

	_, err := suite.service.CreateInvoice(suite.ctx, req, "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.parties.AssertNotCalled(suite.T(), "FindPartyByID", mock.Anything, mock.Anything, mock.Anything)
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsBadInput() {
	tests := []struct {
		name   string
		mutate func(*dto.InvoiceRequest)
	}{
		{"unknown type", func(r *dto.InvoiceRequest) { r.Type = "alquiler" }},
		{"unknown subtype", func(r *dto.InvoiceRequest) { r.Subtype = "remito" }},
		{"bad date", func(r *dto.InvoiceRequest) { r.Date = "10/03/2024" }},
		{"sale with supplier", func(r *dto.InvoiceRequest) { r.SupplierID = ptr("p1") }},
		{"purchase with client", func(r *dto.InvoiceRequest) { r.Type = "compra" }},
		{"zero quantity", func(r *dto.InvoiceRequest) { r.Items[0].Quantity = dec("0") }},
		{"negative price", func(r *dto.InvoiceRequest) { r.Items[1].UnitPrice = dec("-1") }},
		{"blank description", func(r *dto.InvoiceRequest) { r.Items[0].Description = "  " }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := saleRequest()
			tt.mutate(&req)

			_, err := suite.service.CreateInvoice(suite.ctx, req, "u1")

			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MissingPartyIsValidation() {
	suite.parties.On("FindPartyByID", suite.ctx, domain.PartyClient, "c1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(suite.ctx, saleRequest(), "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RoundsItemsBeforeTotals() {
	acme := client("c1", "Acme")
	req := saleRequest()
	req.Items = []dto.LineItemRequest{
		{Description: "Cable", Quantity: dec("0.333"), UnitPrice: dec("3")},
		{Description: "Precinto", Quantity: dec("1"), UnitPrice: dec("0.125")},
	}
	var stored []domain.LineItem
	var header domain.Invoice
	suite.parties.On("FindPartyByID", suite.ctx, domain.PartyClient, "c1").Return(&acme, nil).Once()
	suite.invoices.On("CreateInvoice", suite.ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.LineItem")).
		Run(func(args mock.Arguments) {
			header = args.Get(1).(domain.Invoice)
			stored = args.Get(2).([]domain.LineItem)
		}).
		Return(nil).Once()

	rec, err := suite.service.CreateInvoice(suite.ctx, req, "u1")

	suite.Require().NoError(err)
	suite.Require().Len(stored, 2)
	suite.True(dec("0.33").Equal(stored[0].Quantity), stored[0].Quantity.String())
	suite.True(dec("0.13").Equal(stored[1].UnitPrice), stored[1].UnitPrice.String())
	sum := stored[0].Amount().Add(stored[1].Amount())
	suite.True(sum.Equal(header.Subtotal), "subtotal %s != items %s", header.Subtotal, sum)
	suite.True(dec("1.12").Equal(rec.Subtotal), rec.Subtotal.String())
	suite.True(dec("0.24").Equal(rec.Tax), rec.Tax.String())
	suite.True(dec("1.36").Equal(rec.Total), rec.Total.String())
	suite.True(dec("0.33").Equal(rec.Items[0].Quantity))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_QuantityRoundingToZeroIsRejected() {
	req := saleRequest()
	req.Items[0].Quantity = dec("0.004")

	_, err := suite.service.CreateInvoice(suite.ctx, req, "u1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestReplaceInvoice_RequiresItems() {
	req := saleRequest()
	req.Items = []dto.LineItemRequest{}

	rec, err := suite.service.ReplaceInvoice(suite.ctx, "f1", req, "u1")

	suite.Nil(rec)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.invoices.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
	suite.invoices.AssertNotCalled(suite.T(), "ReplaceInvoice", mock.Anything, mock.Anything, mock.Anything)
	suite.parties.AssertNotCalled(suite.T(), "FindPartyByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestReplaceInvoice_KeepsIdentityAndCreator() {
	acme := client("c1", "Acme")
	existing := sale("f1", "c1", "factura", "10", "2024-01-01")
	existing.CreatedBy = "u0"
	req := saleRequest()
	req.Subtype = "nota de crédito"

	suite.invoices.On("FindInvoiceByID", suite.ctx, "f1").Return(&existing, nil).Once()
	suite.parties.On("FindPartyByID", suite.ctx, domain.PartyClient, "c1").Return(&acme, nil).Once()
	suite.invoices.On("ReplaceInvoice", suite.ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID == "f1" && inv.CreatedBy == "u0" && inv.LastUpdatedBy == "u2" && inv.Subtype == domain.SubtypeCreditNote
	}), mock.Anything).Return(nil).Once()

	rec, err := suite.service.ReplaceInvoice(suite.ctx, "f1", req, "u2")

	suite.Require().NoError(err)
	suite.Equal("f1", rec.InvoiceID)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestReplaceInvoice_NotFound() {
	suite.invoices.On("FindInvoiceByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ReplaceInvoice(suite.ctx, "missing", saleRequest(), "u2")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_DecoratesPartyName() {
	inv := sale("f1", "c1", "factura", "10", "2024-01-01")
	acme := client("c1", "Acme")
	suite.invoices.On("FindInvoiceByID", suite.ctx, "f1").Return(&inv, nil).Once()
	suite.parties.On("FindPartyByID", suite.ctx, domain.PartyClient, "c1").Return(&acme, nil).Once()

	rec, err := suite.service.GetInvoice(suite.ctx, "f1")

	suite.Require().NoError(err)
	suite.Equal("Acme", rec.PartyName)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice() {
	suite.invoices.On("DeleteInvoice", suite.ctx, "f1").Return(nil).Once()
	suite.invoices.On("DeleteInvoice", suite.ctx, "f2").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteInvoice(suite.ctx, "f1"))
	suite.ErrorIs(suite.service.DeleteInvoice(suite.ctx, "f2"), apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
