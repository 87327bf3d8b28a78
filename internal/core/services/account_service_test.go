package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/core/services"
	"github.com/finveld/bank_backoffice/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccountsWithNonZeroBalance(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

// --- CreateAccount Tests ---
func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.OwnerID == ownerID &&
			account.Balance.IsZero() &&
			account.Status == domain.AccountStatusOpen &&
			account.ClosureReason == nil &&
			account.ClosureDate == nil
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(ownerID, account.OwnerID)
	suite.True(account.Balance.IsZero())
	suite.Equal(domain.AccountStatusOpen, account.Status)
	suite.NotEmpty(account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OwnerMissing() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, ownerID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- GetAccountByID Tests ---
func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- UpdateAccount Tests ---
func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(10),
		Status:    domain.AccountStatusOpen,
	}
	req := dto.UpdateAccountRequest{
		Balance: decimal.NewFromInt(250),
		Status:  "OPEN",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.AccountID == accountID && account.Balance.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, accountID, req)

	suite.Require().NoError(err)
	suite.True(account.Balance.Equal(decimal.NewFromInt(250)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NegativeBalanceRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(10),
		Status:    domain.AccountStatusOpen,
	}
	req := dto.UpdateAccountRequest{
		Balance: decimal.NewFromInt(-5),
		Status:  "OPEN",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, accountID, req)

	suite.Require().Error(err)
	suite.Nil(account)
	var notValid *apperrors.NotValidError
	suite.Require().ErrorAs(err, &notValid)
	suite.Contains(notValid.Violations, "Balance cannot be negative")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

// --- DeleteAccount Tests ---
func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.Zero,
		Status:    domain.AccountStatusOpen,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// A negative balance blocks deletion even though it would not block closure.
func (suite *AccountServiceTestSuite) TestDeleteAccount_NegativeBalanceBlocked() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(-25),
		Status:    domain.AccountStatusOpen,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	err := suite.service.DeleteAccount(ctx, accountID)

	suite.Require().Error(err)
	var notZero *apperrors.BalanceNotZeroError
	suite.Require().ErrorAs(err, &notZero)
	suite.Equal([]string{accountID}, notZero.AccountIDs)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

// --- CloseAccount Tests ---
func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.Zero,
		Status:    domain.AccountStatusOpen,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.Status == domain.AccountStatusClosed &&
			account.ClosureReason != nil && *account.ClosureReason == domain.ClosedByOwner &&
			account.ClosureDate != nil && !account.ClosureDate.After(time.Now())
	})).Return(nil).Once()

	account, err := suite.service.CloseAccount(ctx, accountID, domain.ClosedByOwner)

	suite.Require().NoError(err)
	suite.Equal(domain.AccountStatusClosed, account.Status)
	suite.Require().NotNil(account.ClosureReason)
	suite.Equal(domain.ClosedByOwner, *account.ClosureReason)
	suite.NotNil(account.ClosureDate)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_PositiveBalanceBlocked() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(100),
		Status:    domain.AccountStatusOpen,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	account, err := suite.service.CloseAccount(ctx, accountID, domain.ClosedByBank)

	suite.Require().Error(err)
	suite.Nil(account)
	var notZero *apperrors.BalanceNotZeroError
	suite.Require().ErrorAs(err, &notZero)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

// Closure only blocks on positive balances; an overdrawn account can be
// closed. Deletion is stricter and blocks on any nonzero balance.
func (suite *AccountServiceTestSuite) TestCloseAccount_NegativeBalanceAllowed() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(-25),
		Status:    domain.AccountStatusOpen,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CloseAccount(ctx, accountID, domain.ClosedByBank)

	suite.Require().NoError(err)
	suite.Equal(domain.AccountStatusClosed, account.Status)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
