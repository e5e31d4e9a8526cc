package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelTranslation converts a domain Translation to a model Translation
func ToModelTranslation(d domain.Translation) models.Translation {
	return models.Translation{
		TranslationID:  d.TranslationID,
		ServiceType:    string(d.ServiceType),
		ClientID:       d.ClientID,
		AgentID:        nullable(d.AgentID),
		Description:    d.Description,
		DocumentType:   d.DocumentType,
		SourceLanguage: d.SourceLanguage,
		TargetLanguage: d.TargetLanguage,
		Quantity:       d.Quantity,
		NetAmount:      d.NetAmount,
		TotalAmount:    d.TotalAmount,
		Commission:     d.Commission,
		OnAccount:      d.OnAccount,
		Balance:        d.Balance,
		PaymentDetails: ToModelPaymentDetails(d.Payments),
		Documents:      ToModelDocuments(d.Documents),
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTranslation converts a model Translation to a domain Translation
func ToDomainTranslation(m models.Translation) domain.Translation {
	return domain.Translation{
		TranslationID:  m.TranslationID,
		ServiceType:    domain.ServiceKind(m.ServiceType),
		ClientID:       m.ClientID,
		Client:         ToDomainProfile(m.Client),
		AgentID:        deref(m.AgentID),
		Agent:          ToDomainProfile(m.Agent),
		Description:    m.Description,
		DocumentType:   m.DocumentType,
		SourceLanguage: m.SourceLanguage,
		TargetLanguage: m.TargetLanguage,
		Quantity:       m.Quantity,
		NetAmount:      m.NetAmount,
		TotalAmount:    m.TotalAmount,
		Commission:     m.Commission,
		OnAccount:      m.OnAccount,
		Balance:        m.Balance,
		Payments:       ToDomainPaymentEntries(m.PaymentDetails),
		Documents:      ToDomainDocuments(m.Documents),
		Status:         domain.Status(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTranslationSlice converts a slice of model translations to domain translations
func ToDomainTranslationSlice(ms []models.Translation) []domain.Translation {
	ds := make([]domain.Translation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTranslation(m)
	}
	return ds
}
