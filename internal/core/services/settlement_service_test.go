package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/harutok/warikan/internal/core/domain"
	"github.com/harutok/warikan/internal/core/services"
	"github.com/harutok/warikan/internal/repositories/memory"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	memberRepo  *memory.MemberRepository
	paymentRepo *memory.PaymentRepository
	service     *services.SettlementService
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.memberRepo = memory.NewMemberRepository()
	suite.paymentRepo = memory.NewPaymentRepository()
	suite.service = services.NewSettlementService(suite.memberRepo, suite.paymentRepo)
}

func (suite *SettlementServiceTestSuite) addMember(id, name string) {
	suite.Require().NoError(suite.memberRepo.SaveMember(context.Background(), domain.Member{
		MemberID:  id,
		Name:      name,
		CreatedAt: time.Now(),
	}))
}

func (suite *SettlementServiceTestSuite) addPayment(id, payerID, normalized string) {
	amount := decimal.RequireFromString(normalized)
	suite.Require().NoError(suite.paymentRepo.SavePayment(context.Background(), domain.Payment{
		PaymentID:        id,
		PayerID:          payerID,
		Description:      "test",
		CurrencyCode:     domain.AccountingCurrency,
		OriginalAmount:   amount,
		RateApplied:      decimal.NewFromInt(1),
		NormalizedAmount: amount,
		CreatedAt:        time.Now(),
		LastUpdatedAt:    time.Now(),
	}))
}

func (suite *SettlementServiceTestSuite) TestGetSettlement_EmptyRoster() {
	summary, err := suite.service.GetSettlement(context.Background())

	suite.Require().NoError(err)
	suite.Empty(summary.Entries)
	suite.True(summary.Total.IsZero())
	suite.True(summary.FairShare.IsZero())
}

func (suite *SettlementServiceTestSuite) TestGetSettlement_SinglePayer() {
	suite.addMember("a", "Alice")
	suite.addMember("b", "Bob")
	suite.addPayment("p1", "a", "3000")

	summary, err := suite.service.GetSettlement(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(summary.Entries, 2)
	suite.True(summary.Total.Equal(decimal.RequireFromString("3000")))
	suite.True(summary.FairShare.Equal(decimal.RequireFromString("1500")))
	suite.True(summary.Entries[0].Delta.Equal(decimal.RequireFromString("1500")))
	suite.True(summary.Entries[1].Delta.Equal(decimal.RequireFromString("-1500")))
}

func (suite *SettlementServiceTestSuite) TestGetSettlement_FairShareRounded() {
	suite.addMember("a", "Alice")
	suite.addMember("b", "Bob")
	suite.addMember("c", "Carol")
	suite.addPayment("p1", "a", "100")

	summary, err := suite.service.GetSettlement(context.Background())

	suite.Require().NoError(err)
	// 100 / 3 = 33.333... -> 33.33 in the summary.
	suite.True(summary.FairShare.Equal(decimal.RequireFromString("33.33")), "got %s", summary.FairShare)
}

func (suite *SettlementServiceTestSuite) TestGetSettlement_RosterOrder() {
	suite.addMember("c", "Carol")
	suite.addMember("a", "Alice")
	suite.addPayment("p1", "a", "10")

	summary, err := suite.service.GetSettlement(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(summary.Entries, 2)
	suite.Equal("Carol", summary.Entries[0].Name)
	suite.Equal("Alice", summary.Entries[1].Name)
}

func (suite *SettlementServiceTestSuite) TestGetSettlement_DeletedPayerStillCounted() {
	suite.addMember("a", "Alice")
	suite.addMember("b", "Bob")
	suite.addPayment("p1", "b", "80")
	suite.Require().NoError(suite.memberRepo.DeleteMember(context.Background(), "b"))

	summary, err := suite.service.GetSettlement(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(summary.Entries, 1)
	// Bob is gone but the payment remains: Alice owes the full fair share.
	suite.True(summary.Total.Equal(decimal.RequireFromString("80")))
	suite.True(summary.Entries[0].Delta.Equal(decimal.RequireFromString("-80")), "got %s", summary.Entries[0].Delta)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
