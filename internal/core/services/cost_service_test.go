package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/core/services"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CostRepository ---
type MockCostRepository struct {
	mock.Mock
}

func (m *MockCostRepository) SaveCost(ctx context.Context, cost domain.CostRecord) error {
	args := m.Called(ctx, cost)
	return args.Error(0)
}

func (m *MockCostRepository) FindCostsByMonth(ctx context.Context, year int, month int) ([]domain.CostRecord, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostRecord), args.Error(1)
}

func (m *MockCostRepository) DeleteAllCosts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Convert(amount decimal.Decimal, from string, to string) decimal.Decimal {
	args := m.Called(amount, from, to)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockConverterService) LoadRates(ctx context.Context, url string) (domain.RateTable, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func (m *MockConverterService) SupportedCurrencies() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockConverterService) Rates() domain.RateTable {
	args := m.Called()
	return args.Get(0).(domain.RateTable)
}

var _ portssvc.ConverterSvcFacade = (*MockConverterService)(nil)

// --- Test Suite ---
type CostServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockCostRepository
	mockConverter *MockConverterService
	service       portssvc.CostSvcFacade
}

func (suite *CostServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCostRepository)
	suite.mockConverter = new(MockConverterService)
	suite.service = services.NewCostService(suite.mockRepo, suite.mockConverter)
}

// --- Test Cases ---

func (suite *CostServiceTestSuite) TestAddCost_Success() {
	ctx := context.Background()
	req := dto.CreateCostRequest{
		Sum:         decimal.RequireFromString("12.5"),
		Currency:    "USD",
		Category:    "Food",
		Description: "lunch",
	}

	before := time.Now()
	suite.mockRepo.On("SaveCost", ctx, mock.MatchedBy(func(c domain.CostRecord) bool {
		return c.CostID != "" &&
			c.Sum.Equal(req.Sum) &&
			c.Currency == "USD" &&
			c.Category == "Food" &&
			c.Description == "lunch" &&
			c.Year == c.CreatedAt.Year() &&
			c.Month == int(c.CreatedAt.Month()) &&
			c.Day == c.CreatedAt.Day()
	})).Return(nil).Once()

	cost, err := suite.service.AddCost(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(cost)
	suite.NotEmpty(cost.CostID)
	suite.True(cost.Sum.Equal(req.Sum))
	suite.False(cost.CreatedAt.Before(before))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestAddCost_LowercaseCurrencyNormalized() {
	ctx := context.Background()
	req := dto.CreateCostRequest{
		Sum:         decimal.NewFromInt(5),
		Currency:    "ils",
		Category:    "Travel",
		Description: "bus",
	}

	suite.mockRepo.On("SaveCost", ctx, mock.MatchedBy(func(c domain.CostRecord) bool {
		return c.Currency == "ILS"
	})).Return(nil).Once()

	cost, err := suite.service.AddCost(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("ILS", cost.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestAddCost_NegativeSumRejected() {
	ctx := context.Background()
	req := dto.CreateCostRequest{
		Sum:         decimal.NewFromInt(-5),
		Currency:    "USD",
		Category:    "Food",
		Description: "x",
	}

	cost, err := suite.service.AddCost(ctx, req)

	suite.Require().Error(err)
	suite.Nil(cost)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCost")
}

func (suite *CostServiceTestSuite) TestAddCost_ZeroSumRejected() {
	ctx := context.Background()
	req := dto.CreateCostRequest{
		Sum:         decimal.Zero,
		Currency:    "USD",
		Category:    "Food",
		Description: "x",
	}

	cost, err := suite.service.AddCost(ctx, req)

	suite.Require().Error(err)
	suite.Nil(cost)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CostServiceTestSuite) TestAddCost_MissingFieldsRejected() {
	ctx := context.Background()

	for _, req := range []dto.CreateCostRequest{
		{Sum: decimal.NewFromInt(1), Currency: "", Category: "Food", Description: "x"},
		{Sum: decimal.NewFromInt(1), Currency: "USD", Category: " ", Description: "x"},
		{Sum: decimal.NewFromInt(1), Currency: "USD", Category: "Food", Description: ""},
	} {
		cost, err := suite.service.AddCost(ctx, req)
		suite.Require().Error(err)
		suite.Nil(cost)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCost")
}

func (suite *CostServiceTestSuite) TestAddCost_StorageError() {
	ctx := context.Background()
	req := dto.CreateCostRequest{
		Sum:         decimal.NewFromInt(3),
		Currency:    "USD",
		Category:    "Food",
		Description: "coffee",
	}
	expectedErr := apperrors.ErrStorage

	suite.mockRepo.On("SaveCost", ctx, mock.AnythingOfType("domain.CostRecord")).Return(expectedErr).Once()

	cost, err := suite.service.AddCost(ctx, req)

	suite.Require().Error(err)
	suite.Nil(cost)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestGetReport_ConvertsAndSums() {
	ctx := context.Background()
	stored := []domain.CostRecord{
		{
			CostID: "c1", Sum: decimal.NewFromInt(10), Currency: "USD",
			Category: "Food", Description: "lunch", Year: 2026, Month: 8, Day: 3,
		},
		{
			CostID: "c2", Sum: decimal.NewFromInt(18), Currency: "GBP",
			Category: "Travel", Description: "train", Year: 2026, Month: 8, Day: 14,
		},
	}

	suite.mockRepo.On("FindCostsByMonth", ctx, 2026, 8).Return(stored, nil).Once()
	suite.mockConverter.On("Convert", stored[0].Sum, "USD", "USD").Return(decimal.NewFromInt(10)).Once()
	suite.mockConverter.On("Convert", stored[1].Sum, "GBP", "USD").Return(decimal.NewFromInt(10)).Once()

	report, err := suite.service.GetReport(ctx, 2026, 8, "USD")

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal("USD", report.Total.Currency)
	suite.True(decimal.NewFromInt(20).Equal(report.Total.Total))
	suite.Require().Len(report.Costs, 2)

	// Original sum kept alongside the converted one, with the day projection.
	suite.True(stored[1].Sum.Equal(report.Costs[1].Sum))
	suite.Equal("GBP", report.Costs[1].Currency)
	suite.Equal(14, report.Costs[1].Day)
	suite.True(decimal.NewFromInt(10).Equal(report.Costs[1].ConvertedSum))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestGetReport_SameCurrencyEchoesSum() {
	ctx := context.Background()
	sum := decimal.RequireFromString("33.33")
	stored := []domain.CostRecord{
		{CostID: "c1", Sum: sum, Currency: "ILS", Category: "Food", Description: "x", Year: 2026, Month: 1, Day: 2},
	}

	suite.mockRepo.On("FindCostsByMonth", ctx, 2026, 1).Return(stored, nil).Once()
	suite.mockConverter.On("Convert", sum, "ILS", "ILS").Return(sum).Once()

	report, err := suite.service.GetReport(ctx, 2026, 1, "ILS")

	suite.Require().NoError(err)
	suite.True(sum.Equal(report.Costs[0].ConvertedSum))
	suite.True(sum.Equal(report.Total.Total))
}

func (suite *CostServiceTestSuite) TestGetReport_EmptyMonthZeroTotal() {
	ctx := context.Background()

	suite.mockRepo.On("FindCostsByMonth", ctx, 2026, 2).Return([]domain.CostRecord{}, nil).Once()

	report, err := suite.service.GetReport(ctx, 2026, 2, "USD")

	suite.Require().NoError(err)
	suite.Empty(report.Costs)
	suite.True(report.Total.Total.IsZero())
	suite.Equal("USD", report.Total.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestGetReport_InvalidMonthRejected() {
	ctx := context.Background()

	report, err := suite.service.GetReport(ctx, 2026, 13, "USD")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCostsByMonth")
}

func (suite *CostServiceTestSuite) TestGetReport_StorageError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCostsByMonth", ctx, 2026, 3).Return(nil, expectedErr).Once()

	report, err := suite.service.GetReport(ctx, 2026, 3, "USD")

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestClearAll_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteAllCosts", ctx).Return(nil).Once()

	err := suite.service.ClearAll(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CostServiceTestSuite) TestClearAll_StorageError() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteAllCosts", ctx).Return(apperrors.ErrStorage).Once()

	err := suite.service.ClearAll(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CostServiceTestSuite))
}
