package services_test

import (
	"context"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SearchServiceTestSuite struct {
	suite.Suite
	parties  *MockPartyRepository
	invoices *MockInvoiceRepository
	receipts *MockReceiptRepository
	service  portssvc.SearchSvc
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.parties = new(MockPartyRepository)
	suite.invoices = new(MockInvoiceRepository)
	suite.receipts = new(MockReceiptRepository)
	resolver := services.NewPartyService(suite.parties)
	balances := services.NewBalanceService(suite.parties, suite.invoices, suite.receipts)
	suite.service = services.NewSearchService(resolver, suite.parties, suite.invoices, suite.receipts, balances)
}

func (suite *SearchServiceTestSuite) TestSearchInvoices_NoMatchSkipsLedger() {
	ctx := context.Background()
	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartyClient, "zzz").Return([]domain.Party{}, nil).Once()

	records, err := suite.service.SearchInvoices(ctx, domain.InvoiceTypeSale, "  zzz ", domain.DateRange{})

	suite.Require().NoError(err)
	suite.NotNil(records)
	suite.Empty(records)
	suite.invoices.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything)
	suite.parties.AssertNotCalled(suite.T(), "ListParties", mock.Anything, mock.Anything)
}

func (suite *SearchServiceTestSuite) TestSearchInvoices_DecoratesAndOrdersNewestFirst() {
	ctx := context.Background()
	from := day("2024-01-01")
	dates := domain.DateRange{From: &from}

	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartyClient, "ac").Return([]domain.Party{
		client("c1", "Acme"), client("c3", "Acuario"),
	}, nil).Once()
	suite.invoices.On("ListInvoices", mock.Anything, domain.InvoiceFilter{
		Type: domain.InvoiceTypeSale, PartyIDs: []string{"c1", "c3"}, DateRange: dates,
	}).Return([]domain.Invoice{
		sale("f1", "c1", "factura", "100", "2024-01-05"),
		sale("f2", "c3", "factura", "200", "2024-03-01"),
		sale("f3", "c1", "nota de débito", "10", "2024-02-01"),
	}, nil).Once()

	records, err := suite.service.SearchInvoices(ctx, domain.InvoiceTypeSale, "ac", dates)

	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal([]string{"f2", "f3", "f1"}, []string{records[0].InvoiceID, records[1].InvoiceID, records[2].InvoiceID})
	suite.Equal("Acuario", records[0].PartyName)
	suite.Equal("Acme", records[1].PartyName)
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *SearchServiceTestSuite) TestSearchInvoices_NoFragmentCoversEveryParty() {
	suite.parties.On("ListParties", mock.Anything, domain.PartyClient).Return([]domain.Party{client("c1", "Acme")}, nil).Once()
	suite.invoices.On("ListInvoices", mock.Anything, domain.InvoiceFilter{Type: domain.InvoiceTypeSale}).Return([]domain.Invoice{
		sale("f1", "c1", "factura", "100", "2024-01-05"),
	}, nil).Once()

	records, err := suite.service.SearchInvoices(context.Background(), domain.InvoiceTypeSale, "", domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Acme", records[0].PartyName)
	suite.parties.AssertNotCalled(suite.T(), "FindPartiesByNameFragment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SearchServiceTestSuite) TestSearchReceipts_SupplierPayments() {
	ctx := context.Background()
	supplierID := "p1"
	payment := domain.Receipt{
		ReceiptID:  "r1",
		Type:       domain.ReceiptTypePayment,
		SupplierID: &supplierID,
		Cash:       dec("50"),
		Date:       day("2024-05-01"),
	}

	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartySupplier, "Distri").Return([]domain.Party{
		{PartyID: "p1", Kind: domain.PartySupplier, Name: "Distribuidora Sur"},
	}, nil).Once()
	suite.receipts.On("ListReceipts", mock.Anything, domain.ReceiptFilter{
		Type: domain.ReceiptTypePayment, PartyIDs: []string{"p1"},
	}).Return([]domain.Receipt{payment}, nil).Once()

	records, err := suite.service.SearchReceipts(ctx, domain.ReceiptTypePayment, "Distri", domain.DateRange{})

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal("Distribuidora Sur", records[0].PartyName)
}

func (suite *SearchServiceTestSuite) TestSearchReceipts_NoMatchSkipsLedger() {
	ctx := context.Background()
	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartyClient, "nadie").Return([]domain.Party{}, nil).Once()

	records, err := suite.service.SearchReceipts(ctx, domain.ReceiptTypeCollection, "nadie", domain.DateRange{})

	suite.Require().NoError(err)
	suite.Empty(records)
	suite.receipts.AssertNotCalled(suite.T(), "ListReceipts", mock.Anything, mock.Anything)
}

func (suite *SearchServiceTestSuite) TestSearch_InvalidRole() {
	ctx := context.Background()

	_, err := suite.service.SearchInvoices(ctx, domain.InvoiceType("cobro"), "", domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SearchReceipts(ctx, domain.ReceiptType("venta"), "", domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SearchBalances(ctx, domain.InvoiceType(""), "", domain.DateRange{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SearchServiceTestSuite) TestSearchBalances_WithFragment() {
	ctx := context.Background()
	to := day("2024-01-31")
	dates := domain.DateRange{To: &to}

	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartyClient, "acme").Return([]domain.Party{client("c1", "Acme")}, nil).Once()
	suite.invoices.On("ListInvoices", mock.Anything, domain.InvoiceFilter{
		Type: domain.InvoiceTypeSale, PartyIDs: []string{"c1"}, DateRange: dates,
	}).Return([]domain.Invoice{sale("f1", "c1", "factura", "121", "2024-01-10")}, nil).Once()
	suite.receipts.On("ListReceipts", mock.Anything, domain.ReceiptFilter{
		Type: domain.ReceiptTypeCollection, PartyIDs: []string{"c1"}, DateRange: dates,
	}).Return([]domain.Receipt{collection("r1", "c1", "21", "2024-01-11")}, nil).Once()

	balances, err := suite.service.SearchBalances(ctx, domain.InvoiceTypeSale, "acme", dates)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 1)
	suite.True(dec("100").Equal(balances[0].Saldo), balances[0].Saldo.String())
	suite.parties.AssertNotCalled(suite.T(), "ListParties", mock.Anything, mock.Anything)
}

func (suite *SearchServiceTestSuite) TestSearchBalances_WithoutFragment() {
	suite.parties.On("ListParties", mock.Anything, domain.PartyClient).Return([]domain.Party{client("c1", "Acme"), client("c2", "Beta")}, nil).Once()
	suite.invoices.On("ListInvoices", mock.Anything, domain.InvoiceFilter{Type: domain.InvoiceTypeSale}).Return([]domain.Invoice{}, nil).Once()
	suite.receipts.On("ListReceipts", mock.Anything, domain.ReceiptFilter{Type: domain.ReceiptTypeCollection}).Return([]domain.Receipt{}, nil).Once()

	balances, err := suite.service.SearchBalances(context.Background(), domain.InvoiceTypeSale, " ", domain.DateRange{})

	suite.Require().NoError(err)
	suite.Len(balances, 2)
}

func (suite *SearchServiceTestSuite) TestSearchBalances_NoMatchIsEmpty() {
	ctx := context.Background()
	suite.parties.On("FindPartiesByNameFragment", ctx, domain.PartySupplier, "x").Return([]domain.Party{}, nil).Once()

	balances, err := suite.service.SearchBalances(ctx, domain.InvoiceTypePurchase, "x", domain.DateRange{})

	suite.Require().NoError(err)
	suite.Empty(balances)
	suite.invoices.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything)
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
