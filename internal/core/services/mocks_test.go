package services_test

import (
	"context"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartiesByNameFragment(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error) {
	args := m.Called(ctx, kind, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	return m.Called(ctx, party).Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	return m.Called(ctx, party).Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error {
	return m.Called(ctx, kind, partyID).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	return m.Called(ctx, invoice, items).Error(0)
}

func (m *MockInvoiceRepository) ReplaceInvoice(ctx context.Context, invoice domain.Invoice, items []domain.LineItem) error {
	return m.Called(ctx, invoice, items).Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return m.Called(ctx, invoiceID).Error(0)
}

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, filter domain.ReceiptFilter) ([]domain.Receipt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error {
	return m.Called(ctx, receipt, checks).Error(0)
}

func (m *MockReceiptRepository) ReplaceReceipt(ctx context.Context, receipt domain.Receipt, checks []domain.Check) error {
	return m.Called(ctx, receipt, checks).Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	return m.Called(ctx, receiptID).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string, updatedBy string, updatedAt time.Time) error {
	return m.Called(ctx, userID, passwordHash, updatedBy, updatedAt).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
