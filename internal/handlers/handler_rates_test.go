package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Rates and settings routes share the suite from handler_cost_test.go.

func (suite *CostHandlerTestSuite) TestGetRates_OK() {
	table := domain.RateTable{
		"USD": decimal.NewFromInt(1),
		"GBP": decimal.RequireFromString("1.8"),
	}
	suite.mockConverter.On("Rates").Return(table).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rates, 2)
	suite.True(decimal.RequireFromString("1.8").Equal(resp.Rates["GBP"]))
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestGetSupportedCurrencies_OK() {
	suite.mockConverter.On("SupportedCurrencies").Return([]string{"EURO", "GBP", "ILS", "USD"}).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/rates/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"EURO", "GBP", "ILS", "USD"}, resp.Currencies)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestRefreshRates_WithBodyURL() {
	url := "https://rates.example.com/latest"
	table := domain.RateTable{"USD": decimal.NewFromInt(1)}

	suite.mockConverter.On("LoadRates", mock.Anything, url).Return(table, nil).Once()

	body := []byte(fmt.Sprintf(`{"url": %q}`, url))
	w := suite.authedRequest(http.MethodPost, "/api/v1/rates/refresh", body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
	suite.mockSettings.AssertNotCalled(suite.T(), "GetRateURL")
}

func (suite *CostHandlerTestSuite) TestRefreshRates_BodyURLWithoutContentLength() {
	url := "https://rates.example.com/latest"
	table := domain.RateTable{"USD": decimal.NewFromInt(1)}

	suite.mockConverter.On("LoadRates", mock.Anything, url).Return(table, nil).Once()

	body := []byte(fmt.Sprintf(`{"url": %q}`, url))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rates/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateToken())
	// Chunked transfer: the body is present but the length is unknown.
	req.ContentLength = -1
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
	suite.mockSettings.AssertNotCalled(suite.T(), "GetRateURL")
}

func (suite *CostHandlerTestSuite) TestRefreshRates_UsesSavedURL() {
	url := "https://rates.example.com/saved"
	table := domain.RateTable{"USD": decimal.NewFromInt(1)}

	suite.mockSettings.On("GetRateURL", mock.Anything).Return(url, nil).Once()
	suite.mockConverter.On("LoadRates", mock.Anything, url).Return(table, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/rates/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSettings.AssertExpectations(suite.T())
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestRefreshRates_NoURLConfigured() {
	suite.mockSettings.On("GetRateURL", mock.Anything).Return("", apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodPost, "/api/v1/rates/refresh", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConverter.AssertNotCalled(suite.T(), "LoadRates")
}

func (suite *CostHandlerTestSuite) TestRefreshRates_FetchErrorIsBadGateway() {
	url := "https://rates.example.com/latest"

	suite.mockConverter.On("LoadRates", mock.Anything, url).
		Return(nil, fmt.Errorf("%w: rate endpoint returned status 500", apperrors.ErrFetch)).Once()

	body := []byte(fmt.Sprintf(`{"url": %q}`, url))
	w := suite.authedRequest(http.MethodPost, "/api/v1/rates/refresh", body)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestSetRateURL_OK() {
	url := "https://rates.example.com/latest"

	suite.mockSettings.On("SetRateURL", mock.Anything, url).Return(nil).Once()

	body := []byte(fmt.Sprintf(`{"url": %q}`, url))
	w := suite.authedRequest(http.MethodPut, "/api/v1/settings/rate-url", body)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateURLResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(url, resp.URL)
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestSetRateURL_InvalidURLIsBadRequest() {
	body := []byte(`{"url": "not-a-url"}`)
	w := suite.authedRequest(http.MethodPut, "/api/v1/settings/rate-url", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSettings.AssertNotCalled(suite.T(), "SetRateURL")
}

func (suite *CostHandlerTestSuite) TestGetRateURL_NotFound() {
	suite.mockSettings.On("GetRateURL", mock.Anything).Return("", apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/settings/rate-url", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *CostHandlerTestSuite) TestClearRateURL_NoContent() {
	suite.mockSettings.On("ClearRateURL", mock.Anything).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/settings/rate-url", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSettings.AssertExpectations(suite.T())
}
