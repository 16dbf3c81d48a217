package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/core/services"
	"github.com/harutok/warikan/internal/dto"
	"github.com/harutok/warikan/internal/handlers"
	"github.com/harutok/warikan/internal/platform/config"
	"github.com/harutok/warikan/internal/repositories/memory"
)

// stubRateProvider serves a fixed table, optionally with a degraded-fetch
// error, so handler tests never touch the network.
type stubRateProvider struct {
	table    *domain.RateTable
	fetchErr error
}

func (s *stubRateProvider) GetRates(ctx context.Context) (*domain.RateTable, error) {
	return s.table, s.fetchErr
}

func (s *stubRateProvider) RefreshRates(ctx context.Context) (*domain.RateTable, error) {
	return s.table, s.fetchErr
}

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
	rates  *stubRateProvider
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	memberRepo := memory.NewMemberRepository()
	paymentRepo := memory.NewPaymentRepository()
	suite.rates = &stubRateProvider{
		table: &domain.RateTable{
			BaseCurrency: "USD",
			Rates: map[string]decimal.Decimal{
				"USDJPY": decimal.RequireFromString("150"),
				"USDEUR": decimal.RequireFromString("0.8"),
			},
			FetchedAt:  time.Now(),
			ValidUntil: time.Now().Add(time.Hour),
		},
	}

	container := &portssvc.ServiceContainer{
		Member:     services.NewMemberService(memberRepo),
		Payment:    services.NewPaymentService(paymentRepo, memberRepo, suite.rates),
		Rates:      suite.rates,
		Settlement: services.NewSettlementService(memberRepo, paymentRepo),
	}

	cfg := &config.Config{RefreshRateLimit: "100-M"}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlersTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) createMember(name string) dto.MemberResponse {
	w := suite.request(http.MethodPost, "/api/v1/members", gin.H{"name": name})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.MemberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListCurrencies() {
	w := suite.request(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res, len(domain.SupportedCurrencies))
	suite.Equal(domain.AccountingCurrency, res[0].CurrencyCode)
}

func (suite *HandlersTestSuite) TestMemberLifecycle() {
	created := suite.createMember("Alice")
	suite.NotEmpty(created.MemberID)

	w := suite.request(http.MethodGet, "/api/v1/members", nil)
	suite.Equal(http.StatusOK, w.Code)
	var list []dto.MemberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Require().Len(list, 1)
	suite.Equal("Alice", list[0].Name)

	w = suite.request(http.MethodDelete, "/api/v1/members/"+created.MemberID, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.request(http.MethodDelete, "/api/v1/members/"+created.MemberID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCreateMember_MissingNameRejected() {
	w := suite.request(http.MethodPost, "/api/v1/members", gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreatePayment_NormalizedInResponse() {
	payer := suite.createMember("Alice")

	w := suite.request(http.MethodPost, "/api/v1/payments", gin.H{
		"payerID":      payer.MemberID,
		"amount":       "100",
		"currencyCode": "USD",
		"description":  "Hotel",
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.NormalizedAmount.Equal(decimal.RequireFromString("15000")), "got %s", res.NormalizedAmount)
	suite.True(res.RateApplied.Equal(decimal.RequireFromString("150")))
}

func (suite *HandlersTestSuite) TestCreatePayment_UnsupportedCurrencyRejectedAtBinding() {
	payer := suite.createMember("Alice")

	w := suite.request(http.MethodPost, "/api/v1/payments", gin.H{
		"payerID":      payer.MemberID,
		"amount":       "100",
		"currencyCode": "XXX",
		"description":  "Mystery",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpdatePayment_NotFound() {
	payer := suite.createMember("Alice")

	w := suite.request(http.MethodPut, "/api/v1/payments/missing", gin.H{
		"payerID":      payer.MemberID,
		"amount":       "10",
		"currencyCode": "JPY",
		"description":  "Taxi",
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestGetSettlement() {
	alice := suite.createMember("Alice")
	suite.createMember("Bob")

	w := suite.request(http.MethodPost, "/api/v1/payments", gin.H{
		"payerID":      alice.MemberID,
		"amount":       "3000",
		"currencyCode": "JPY",
		"description":  "Dinner",
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.request(http.MethodGet, "/api/v1/settlement", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.SettlementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res.Entries, 2)
	suite.True(res.Total.Equal(decimal.RequireFromString("3000")))
	suite.True(res.FairShare.Equal(decimal.RequireFromString("1500")))
	suite.True(res.Entries[0].Delta.Equal(decimal.RequireFromString("1500")))
	suite.True(res.Entries[1].Delta.Equal(decimal.RequireFromString("-1500")))
}

func (suite *HandlersTestSuite) TestGetRates() {
	w := suite.request(http.MethodGet, "/api/v1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RateTableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.BaseCurrency)
	suite.True(res.Rates["USDJPY"].Equal(decimal.RequireFromString("150")))
	suite.Empty(res.Warning)
}

func (suite *HandlersTestSuite) TestGetRates_DegradedFetchStillAnswers200() {
	suite.rates.fetchErr = fmt.Errorf("%w: connection refused", apperrors.ErrRateFetch)

	w := suite.request(http.MethodGet, "/api/v1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RateTableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.NotEmpty(res.Warning)
	suite.NotEmpty(res.Rates)
}

func (suite *HandlersTestSuite) TestRefreshRates() {
	w := suite.request(http.MethodPost, "/api/v1/rates/refresh", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.RateTableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.BaseCurrency)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
