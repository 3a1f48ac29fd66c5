package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wordnum/wordnum_app/internal/apperrors"
	"github.com/wordnum/wordnum_app/internal/core/domain"
	portssvc "github.com/wordnum/wordnum_app/internal/core/ports/services"
	"github.com/wordnum/wordnum_app/internal/dto"
	"github.com/wordnum/wordnum_app/internal/handlers"
	"github.com/wordnum/wordnum_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Convert(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig, override *domain.CurrencyNames) (string, error) {
	args := m.Called(ctx, amount, locale, override)
	return args.String(0), args.Error(1)
}

func (m *MockConverterService) ConvertWithoutCurrency(ctx context.Context, amount decimal.Decimal, locale *domain.LocaleConfig) (string, error) {
	args := m.Called(ctx, amount, locale)
	return args.String(0), args.Error(1)
}

// --- Mock LocaleService ---
type MockLocaleService struct {
	mock.Mock
}

func (m *MockLocaleService) GetLocaleByCode(ctx context.Context, code string) (*domain.LocaleConfig, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocaleConfig), args.Error(1)
}

func (m *MockLocaleService) ListLocales(ctx context.Context) ([]domain.LocaleConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocaleConfig), args.Error(1)
}

func (m *MockLocaleService) DefaultLocaleCode() string {
	args := m.Called()
	return args.String(0)
}

// --- Test Suite ---
type ConvertHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockConverter *MockConverterService
	mockLocale    *MockLocaleService
}

func (suite *ConvertHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockConverter = new(MockConverterService)
	suite.mockLocale = new(MockLocaleService)

	cfg := &config.Config{Port: "8080", DefaultLocale: "en-US", RateLimit: "100-M"}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Converter: suite.mockConverter,
		Locale:    suite.mockLocale,
	}, limiter.New(memory.NewStore(), rate))
}

func (suite *ConvertHandlerTestSuite) postConvert(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ConvertHandlerTestSuite) TestConvert_Success() {
	locale := &domain.LocaleConfig{Code: "en-US"}
	amount := decimal.RequireFromString("1234.56")

	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "en-US").Return(locale, nil).Once()
	suite.mockConverter.On("Convert", mock.Anything, amount, locale, (*domain.CurrencyNames)(nil)).
		Return("one thousand two hundred thirty-four dollars and fifty-six cents", nil).Once()

	w := suite.postConvert(dto.ConvertRequest{Amount: amount, Locale: "en-US"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("one thousand two hundred thirty-four dollars and fifty-six cents", resp.Words)
	suite.Equal("en-US", resp.Locale)
	suite.mockConverter.AssertExpectations(suite.T())
	suite.mockLocale.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_DefaultLocaleApplied() {
	locale := &domain.LocaleConfig{Code: "en-US"}

	suite.mockLocale.On("DefaultLocaleCode").Return("en-US").Once()
	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "en-US").Return(locale, nil).Once()
	suite.mockConverter.On("Convert", mock.Anything, mock.AnythingOfType("decimal.Decimal"), locale, (*domain.CurrencyNames)(nil)).
		Return("zero dollars and zero cents", nil).Once()

	w := suite.postConvert(map[string]any{"amount": "0"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLocale.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_WithoutCurrency() {
	locale := &domain.LocaleConfig{Code: "en-US"}
	amount := decimal.RequireFromString("5.5")

	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "en-US").Return(locale, nil).Once()
	suite.mockConverter.On("ConvertWithoutCurrency", mock.Anything, amount, locale).
		Return("five point fifty", nil).Once()

	w := suite.postConvert(dto.ConvertRequest{Amount: amount, Locale: "en-US", WithoutCurrency: true})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_LocaleNotFound() {
	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "xx-XX").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.postConvert(dto.ConvertRequest{Amount: decimal.NewFromInt(1), Locale: "xx-XX"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLocale.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_OutOfRange() {
	locale := &domain.LocaleConfig{Code: "en-US"}
	amount := decimal.New(1, 20)

	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "en-US").Return(locale, nil).Once()
	suite.mockConverter.On("Convert", mock.Anything, mock.AnythingOfType("decimal.Decimal"), locale, (*domain.CurrencyNames)(nil)).
		Return("", apperrors.ErrRange).Once()

	w := suite.postConvert(dto.ConvertRequest{Amount: amount, Locale: "en-US"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestConvert_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", bytes.NewReader([]byte(`{"amount": "not-a-number"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConvertHandlerTestSuite) TestListLocales() {
	suite.mockLocale.On("ListLocales", mock.Anything).Return([]domain.LocaleConfig{
		{Code: "en-US", Currency: domain.CurrencyNames{Major: "dollars", Minor: "cents"}},
		{Code: "tr-TR", Currency: domain.CurrencyNames{Major: "lira", Minor: "kuruş"}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locales", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.LocaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("en-US", resp[0].Code)
	suite.mockLocale.AssertExpectations(suite.T())
}

func (suite *ConvertHandlerTestSuite) TestGetLocaleByCode_NotFound() {
	suite.mockLocale.On("GetLocaleByCode", mock.Anything, "xx-XX").Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locales/xx-XX", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLocale.AssertExpectations(suite.T())
}

func TestConvertHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConvertHandlerTestSuite))
}
