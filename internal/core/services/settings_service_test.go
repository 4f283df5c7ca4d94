package services_test

import (
	"context"
	"testing"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/core/services"
	"github.com/idanlevi/cost_manager_app/internal/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) SaveSetting(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingsRepository) FindSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) DeleteSetting(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestSetRateURL_Success() {
	ctx := context.Background()
	url := "https://rates.example.com/latest"

	suite.mockRepo.On("SaveSetting", ctx, models.SettingKeyRateURL, url).Return(nil).Once()

	err := suite.service.SetRateURL(ctx, url)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSetRateURL_RejectsInvalidURL() {
	ctx := context.Background()

	for _, url := range []string{"", "not-a-url", "ftp://rates.example.com", "/relative/path"} {
		err := suite.service.SetRateURL(ctx, url)
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSetting")
}

func (suite *SettingsServiceTestSuite) TestGetRateURL_Success() {
	ctx := context.Background()
	url := "https://rates.example.com/latest"

	suite.mockRepo.On("FindSetting", ctx, models.SettingKeyRateURL).Return(url, nil).Once()

	got, err := suite.service.GetRateURL(ctx)

	suite.Require().NoError(err)
	suite.Equal(url, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestGetRateURL_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindSetting", ctx, models.SettingKeyRateURL).Return("", apperrors.ErrNotFound).Once()

	got, err := suite.service.GetRateURL(ctx)

	suite.Require().Error(err)
	suite.Empty(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestClearRateURL_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteSetting", ctx, models.SettingKeyRateURL).Return(nil).Once()

	err := suite.service.ClearRateURL(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
