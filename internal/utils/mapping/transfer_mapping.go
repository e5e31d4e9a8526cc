package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelTransfer converts a domain MoneyTransfer to a model MoneyTransfer
func ToModelTransfer(d domain.MoneyTransfer) models.MoneyTransfer {
	return models.MoneyTransfer{
		TransferID:           d.TransferID,
		ClientID:             d.ClientID,
		AgentID:              nullable(d.AgentID),
		BeneficiaryName:      d.BeneficiaryName,
		BeneficiaryDocument:  d.BeneficiaryDocument,
		BeneficiaryBank:      d.BeneficiaryBank,
		BeneficiaryAccount:   d.BeneficiaryAccount,
		TransferMode:         string(d.Mode),
		AmountSent:           d.AmountSent,
		ExchangeRate:         d.ExchangeRate,
		CommissionPercentage: d.CommissionPercentage,
		Commission:           d.Commission,
		AmountReceived:       d.AmountReceived,
		TotalAmount:          d.TotalAmount,
		OnAccount:            d.OnAccount,
		Balance:              d.Balance,
		NetProfit:            d.NetProfit,
		PaymentDetails:       ToModelPaymentDetails(d.Payments),
		ExpenseDetails:       ToModelExpenseDetails(d.Expenses),
		Documents:            ToModelDocuments(d.Documents),
		Status:               string(d.Status),
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model MoneyTransfer to a domain MoneyTransfer
func ToDomainTransfer(m models.MoneyTransfer) domain.MoneyTransfer {
	return domain.MoneyTransfer{
		TransferID:           m.TransferID,
		ClientID:             m.ClientID,
		Client:               ToDomainProfile(m.Client),
		AgentID:              deref(m.AgentID),
		Agent:                ToDomainProfile(m.Agent),
		BeneficiaryName:      m.BeneficiaryName,
		BeneficiaryDocument:  m.BeneficiaryDocument,
		BeneficiaryBank:      m.BeneficiaryBank,
		BeneficiaryAccount:   m.BeneficiaryAccount,
		Mode:                 domain.TransferMode(m.TransferMode),
		AmountSent:           m.AmountSent,
		ExchangeRate:         m.ExchangeRate,
		CommissionPercentage: m.CommissionPercentage,
		Commission:           m.Commission,
		AmountReceived:       m.AmountReceived,
		TotalAmount:          m.TotalAmount,
		OnAccount:            m.OnAccount,
		Balance:              m.Balance,
		NetProfit:            m.NetProfit,
		Payments:             ToDomainPaymentEntries(m.PaymentDetails),
		Expenses:             ToDomainExpenseEntries(m.ExpenseDetails),
		Documents:            ToDomainDocuments(m.Documents),
		Status:               domain.Status(m.Status),
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransferSlice converts a slice of model transfers to domain transfers
func ToDomainTransferSlice(ms []models.MoneyTransfer) []domain.MoneyTransfer {
	ds := make([]domain.MoneyTransfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransfer(m)
	}
	return ds
}
