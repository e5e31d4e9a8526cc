package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentSessionTestSuite struct {
	suite.Suite
	basis   domain.LedgerBasis
	created time.Time
	session *PaymentSession
}

func (suite *PaymentSessionTestSuite) SetupTest() {
	suite.basis = domain.LedgerBasis{Total: d("150")}
	suite.created = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	first := NewPaymentEntry(domain.PaymentInput{Currency: domain.EUR, Quantity: d("80"), ProofPath: "proofs/first.png"}, suite.created)
	suite.session = NewPaymentSession([]domain.PaymentEntry{first})
}

func (suite *PaymentSessionTestSuite) TestStartsIdle() {
	suite.IsType(Idle{}, suite.session.State())
	suite.Len(suite.session.Payments(), 1)
}

func (suite *PaymentSessionTestSuite) TestDraftCommit() {
	suite.Require().NoError(suite.session.OpenDraft())
	suite.IsType(Drafting{}, suite.session.State())

	suite.Require().NoError(suite.session.UpdateDraft(domain.PaymentInput{
		SitePE: "Lima", MethodPE: "Transfer", Currency: domain.PEN, Quantity: d("200"), ExchangeRate: d("4"),
	}))

	preview := suite.session.Summary(FlatPolicy{}, suite.basis)
	suite.Equal("130.00", Format(preview.OnAccount))
	suite.Equal("20.00", Format(preview.Balance))

	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	entry, err := suite.session.CommitDraft(now)
	suite.Require().NoError(err)
	suite.Equal("50.00", Format(entry.Amount))
	suite.Equal(now, entry.CreatedAt)
	suite.IsType(Idle{}, suite.session.State())

	after := suite.session.Summary(FlatPolicy{}, suite.basis)
	suite.Equal(Format(preview.OnAccount), Format(after.OnAccount))
	suite.Len(suite.session.Payments(), 2)
}

func (suite *PaymentSessionTestSuite) TestDraftDiscard() {
	suite.Require().NoError(suite.session.OpenDraft())
	suite.Require().NoError(suite.session.UpdateDraft(domain.PaymentInput{Currency: domain.EUR, Quantity: d("70")}))
	suite.Require().NoError(suite.session.DiscardDraft())

	suite.IsType(Idle{}, suite.session.State())
	suite.Len(suite.session.Payments(), 1)
	suite.Equal("80.00", Format(suite.session.Summary(FlatPolicy{}, suite.basis).OnAccount))
}

func (suite *PaymentSessionTestSuite) TestEditSaveRecomputes() {
	suite.Require().NoError(suite.session.BeginEdit(0))
	state, ok := suite.session.State().(Editing)
	suite.Require().True(ok)
	suite.Equal(0, state.Index)
	suite.True(state.Fields.Quantity.Equal(d("80")))

	suite.Require().NoError(suite.session.UpdateEdit(domain.PaymentInput{Currency: domain.USD, Quantity: d("100"), ExchangeRate: d("0.9")}))
	suite.Equal("90.00", Format(suite.session.Summary(FlatPolicy{}, suite.basis).OnAccount))

	saved, err := suite.session.SaveEdit()
	suite.Require().NoError(err)
	suite.Equal("90.00", Format(saved.Amount))
	suite.Equal("$ 100.00", saved.Total)
	suite.Equal(suite.created, saved.CreatedAt)
	suite.Equal("proofs/first.png", saved.ProofPath)
	suite.Equal("60.00", Format(suite.session.Summary(FlatPolicy{}, suite.basis).Balance))
}

func (suite *PaymentSessionTestSuite) TestEditCancelKeepsEntry() {
	before := suite.session.Payments()[0]
	suite.Require().NoError(suite.session.BeginEdit(0))
	suite.Require().NoError(suite.session.UpdateEdit(domain.PaymentInput{Currency: domain.EUR, Quantity: d("1")}))
	suite.Require().NoError(suite.session.CancelEdit())

	suite.Equal(before, suite.session.Payments()[0])
	suite.IsType(Idle{}, suite.session.State())
}

func (suite *PaymentSessionTestSuite) TestDelete() {
	removed, err := suite.session.Delete(0)
	suite.Require().NoError(err)
	suite.Equal("80.00", Format(removed.Amount))
	suite.Empty(suite.session.Payments())
}

func (suite *PaymentSessionTestSuite) TestInvalidTransitions() {
	_, err := suite.session.CommitDraft(time.Now())
	suite.ErrorIs(err, ErrInvalidTransition)
	suite.ErrorIs(suite.session.DiscardDraft(), ErrInvalidTransition)
	suite.ErrorIs(suite.session.UpdateEdit(domain.PaymentInput{}), ErrInvalidTransition)
	_, err = suite.session.SaveEdit()
	suite.ErrorIs(err, ErrInvalidTransition)

	suite.Require().NoError(suite.session.OpenDraft())
	suite.ErrorIs(suite.session.OpenDraft(), ErrInvalidTransition)
	suite.ErrorIs(suite.session.BeginEdit(0), ErrInvalidTransition)
	_, err = suite.session.Delete(0)
	suite.ErrorIs(err, ErrInvalidTransition)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentSessionTestSuite) TestIndexOutOfRange() {
	suite.ErrorIs(suite.session.BeginEdit(1), ErrPaymentIndex)
	suite.ErrorIs(suite.session.BeginEdit(-1), ErrPaymentIndex)
	_, err := suite.session.Delete(3)
	suite.ErrorIs(err, ErrPaymentIndex)
	suite.IsType(Idle{}, suite.session.State())
}

func TestPaymentSession(t *testing.T) {
	suite.Run(t, new(PaymentSessionTestSuite))
}

func TestNewPaymentSession_CopiesInput(t *testing.T) {
	payments := []domain.PaymentEntry{payment(domain.EUR, "10", "1")}
	session := NewPaymentSession(payments)
	_, err := session.Delete(0)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
