package handlers_test

import (
	"context"
	"time"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock PartyService ---
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) GetParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, kind, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) ResolveByName(ctx context.Context, kind domain.PartyKind, fragment string) ([]domain.Party, error) {
	args := m.Called(ctx, kind, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyService) ResolveSingle(ctx context.Context, kind domain.PartyKind, fragment string) (*domain.Party, error) {
	args := m.Called(ctx, kind, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.PartyRequest, creatorUserID string) (*domain.Party, error) {
	args := m.Called(ctx, kind, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) UpdateParty(ctx context.Context, kind domain.PartyKind, partyID string, req dto.PartyRequest, requestingUserID string) (*domain.Party, error) {
	args := m.Called(ctx, kind, partyID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyService) DeleteParty(ctx context.Context, kind domain.PartyKind, partyID string) error {
	return m.Called(ctx, kind, partyID).Error(0)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.InvoiceRequest, creatorUserID string) (*domain.InvoiceRecord, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceRecord), args.Error(1)
}

func (m *MockInvoiceService) ReplaceInvoice(ctx context.Context, invoiceID string, req dto.InvoiceRequest, requestingUserID string) (*domain.InvoiceRecord, error) {
	args := m.Called(ctx, invoiceID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceRecord), args.Error(1)
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.InvoiceRecord, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceRecord), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return m.Called(ctx, invoiceID).Error(0)
}

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) ComputeBalance(ctx context.Context, partyID string, role domain.InvoiceType) (*domain.Balance, error) {
	args := m.Called(ctx, partyID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceService) ComputeBalancesForAllParties(ctx context.Context, role domain.InvoiceType) ([]domain.Balance, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceService) ComputeBalancesInRange(ctx context.Context, role domain.InvoiceType, dates domain.DateRange) ([]domain.Balance, error) {
	args := m.Called(ctx, role, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceService) ComputeBalancesForParties(ctx context.Context, role domain.InvoiceType, parties []domain.Party, dates domain.DateRange) ([]domain.Balance, error) {
	args := m.Called(ctx, role, parties, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

// --- Mock SearchService ---
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchInvoices(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.InvoiceRecord, error) {
	args := m.Called(ctx, role, nameFragment, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceRecord), args.Error(1)
}

func (m *MockSearchService) SearchReceipts(ctx context.Context, role domain.ReceiptType, nameFragment string, dates domain.DateRange) ([]domain.ReceiptRecord, error) {
	args := m.Called(ctx, role, nameFragment, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReceiptRecord), args.Error(1)
}

func (m *MockSearchService) SearchBalances(ctx context.Context, role domain.InvoiceType, nameFragment string, dates domain.DateRange) ([]domain.Balance, error) {
	args := m.Called(ctx, role, nameFragment, dates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetPassword(ctx context.Context, userID string, newPassword string, requestingUserID string) error {
	return m.Called(ctx, userID, newPassword, requestingUserID).Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
