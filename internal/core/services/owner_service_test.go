package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	"github.com/finveld/bank_backoffice/internal/core/domain"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/core/services"
	"github.com/finveld/bank_backoffice/internal/dto"
)

// --- Mock OwnerRepository ---
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.AccountOwner, error) {
	args := m.Called(ctx, ownerID)
	var owner *domain.AccountOwner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.AccountOwner)
	}
	return owner, args.Error(1)
}

func (m *MockOwnerRepository) ListOwners(ctx context.Context) ([]domain.AccountOwner, error) {
	args := m.Called(ctx)
	var owners []domain.AccountOwner
	if args.Get(0) != nil {
		owners = args.Get(0).([]domain.AccountOwner)
	}
	return owners, args.Error(1)
}

func (m *MockOwnerRepository) SaveOwner(ctx context.Context, owner domain.AccountOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) UpdateOwner(ctx context.Context, owner domain.AccountOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// --- Mock AccountReaderSvc ---
type MockAccountReaderSvc struct {
	mock.Mock
}

func (m *MockAccountReaderSvc) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountReaderSvc) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountReaderSvc) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountReaderSvc) FindAccountsWithNonZeroBalance(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

// --- Test Suite ---
type OwnerServiceTestSuite struct {
	suite.Suite
	mockOwnerRepo  *MockOwnerRepository
	mockAccountSvc *MockAccountReaderSvc
	service        portssvc.OwnerSvcFacade
}

func (suite *OwnerServiceTestSuite) SetupTest() {
	suite.mockOwnerRepo = new(MockOwnerRepository)
	suite.mockAccountSvc = new(MockAccountReaderSvc)
	suite.service = services.NewOwnerService(suite.mockOwnerRepo, suite.mockAccountSvc)
}

// --- CreateOwner Tests ---
func (suite *OwnerServiceTestSuite) TestCreateOwner_Success() {
	ctx := context.Background()
	req := dto.CreateOwnerRequest{Name: "Ada Lovelace"}

	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.MatchedBy(func(owner domain.AccountOwner) bool {
		return owner.Name == req.Name && owner.OwnerID != ""
	})).Return(nil).Once()

	owner, err := suite.service.CreateOwner(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(owner)
	suite.Equal(req.Name, owner.Name)
	suite.NotEmpty(owner.OwnerID)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestCreateOwner_NameTooLong() {
	ctx := context.Background()
	req := dto.CreateOwnerRequest{Name: strings.Repeat("x", domain.OwnerNameMaxLength)}

	owner, err := suite.service.CreateOwner(ctx, req)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var notValid *apperrors.NotValidError
	suite.Require().ErrorAs(err, &notValid)
	suite.Contains(notValid.Violations, "Name is too long")
	suite.mockOwnerRepo.AssertNotCalled(suite.T(), "SaveOwner", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestCreateOwner_SaveError() {
	ctx := context.Background()
	req := dto.CreateOwnerRequest{Name: "Ada Lovelace"}
	expectedErr := assert.AnError

	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.AnythingOfType("domain.AccountOwner")).Return(expectedErr).Once()

	owner, err := suite.service.CreateOwner(ctx, req)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, expectedErr)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- GetOwnerByID Tests ---
func (suite *OwnerServiceTestSuite) TestGetOwnerByID_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expected := &domain.AccountOwner{OwnerID: ownerID, Name: "Found Owner"}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(expected, nil).Once()

	owner, err := suite.service.GetOwnerByID(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Equal(expected, owner)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestGetOwnerByID_NotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	owner, err := suite.service.GetOwnerByID(ctx, ownerID)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- ListOwners Tests ---
func (suite *OwnerServiceTestSuite) TestListOwners_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockOwnerRepo.On("ListOwners", ctx).Return(nil, nil).Once()

	owners, err := suite.service.ListOwners(ctx)

	suite.Require().NoError(err)
	suite.NotNil(owners)
	suite.Empty(owners)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- UpdateOwner Tests ---
func (suite *OwnerServiceTestSuite) TestUpdateOwner_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	existing := &domain.AccountOwner{OwnerID: ownerID, Name: "Old Name"}
	req := dto.UpdateOwnerRequest{Name: "New Name"}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(existing, nil).Once()
	suite.mockOwnerRepo.On("UpdateOwner", ctx, mock.MatchedBy(func(owner domain.AccountOwner) bool {
		return owner.OwnerID == ownerID && owner.Name == "New Name"
	})).Return(nil).Once()

	owner, err := suite.service.UpdateOwner(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Equal("New Name", owner.Name)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestUpdateOwner_NotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	owner, err := suite.service.UpdateOwner(ctx, ownerID, dto.UpdateOwnerRequest{Name: "New Name"})

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- DeleteOwner Tests ---
func (suite *OwnerServiceTestSuite) TestDeleteOwner_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	existing := &domain.AccountOwner{OwnerID: ownerID, Name: "To Delete"}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(existing, nil).Once()
	suite.mockAccountSvc.On("FindAccountsWithNonZeroBalance", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockOwnerRepo.On("DeleteOwner", ctx, ownerID).Return(nil).Once()

	err := suite.service.DeleteOwner(ctx, ownerID)

	suite.Require().NoError(err)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
}

// Deletion is blocked even when the funded account belongs to a different
// owner; the balance scan spans the whole store.
func (suite *OwnerServiceTestSuite) TestDeleteOwner_BlockedByAnyFundedAccount() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	existing := &domain.AccountOwner{OwnerID: ownerID, Name: "To Delete"}
	otherOwnersAccount := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   uuid.NewString(),
		Balance:   decimal.NewFromInt(50),
		Status:    domain.AccountStatusOpen,
	}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(existing, nil).Once()
	suite.mockAccountSvc.On("FindAccountsWithNonZeroBalance", ctx).Return([]domain.Account{otherOwnersAccount}, nil).Once()

	err := suite.service.DeleteOwner(ctx, ownerID)

	suite.Require().Error(err)
	var notZero *apperrors.BalanceNotZeroError
	suite.Require().ErrorAs(err, &notZero)
	suite.Equal([]string{otherOwnersAccount.AccountID}, notZero.AccountIDs)
	suite.mockOwnerRepo.AssertNotCalled(suite.T(), "DeleteOwner", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestDeleteOwner_NotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteOwner(ctx, ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "FindAccountsWithNonZeroBalance", mock.Anything)
}

func TestOwnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerServiceTestSuite))
}
