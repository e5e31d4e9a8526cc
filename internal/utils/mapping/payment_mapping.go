package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// ToModelPaymentDetail converts a domain payment to its stored JSON form.
func ToModelPaymentDetail(d domain.PaymentEntry) models.PaymentDetail {
	return models.PaymentDetail{
		SedeIT:        d.SiteIT,
		SedePE:        d.SitePE,
		MetodoIT:      d.MethodIT,
		MetodoPE:      d.MethodPE,
		Cantidad:      accounting.Format(d.Amount),
		Moneda:        string(d.Currency),
		MontoOriginal: accounting.Format(d.OriginalAmount),
		TipoCambio:    accounting.FormatRate(d.ExchangeRate),
		Total:         d.Total,
		CreatedAt:     d.CreatedAt,
		ProofPath:     d.ProofPath,
	}
}

// ToDomainPaymentEntry converts a stored payment. Amounts go through the
// lenient parser so legacy rows with malformed strings read as zero.
func ToDomainPaymentEntry(m models.PaymentDetail) domain.PaymentEntry {
	currency := domain.ParseCurrency(m.Moneda)
	if currency == "" {
		currency = domain.EUR
	}
	return domain.PaymentEntry{
		SiteIT:         m.SedeIT,
		SitePE:         m.SedePE,
		MethodIT:       m.MetodoIT,
		MethodPE:       m.MetodoPE,
		Amount:         accounting.ParseAmount(m.Cantidad),
		Currency:       currency,
		OriginalAmount: accounting.ParseAmount(m.MontoOriginal),
		ExchangeRate:   accounting.ParseAmount(m.TipoCambio),
		Total:          m.Total,
		CreatedAt:      m.CreatedAt,
		ProofPath:      m.ProofPath,
	}
}

func ToModelPaymentDetails(ds []domain.PaymentEntry) []models.PaymentDetail {
	ms := make([]models.PaymentDetail, len(ds))
	for i, d := range ds {
		ms[i] = ToModelPaymentDetail(d)
	}
	return ms
}

func ToDomainPaymentEntries(ms []models.PaymentDetail) []domain.PaymentEntry {
	ds := make([]domain.PaymentEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentEntry(m)
	}
	return ds
}

func ToModelExpenseDetails(ds []domain.ExpenseEntry) []models.ExpenseDetail {
	ms := make([]models.ExpenseDetail, len(ds))
	for i, d := range ds {
		ms[i] = models.ExpenseDetail{
			PaymentDetail: ToModelPaymentDetail(d.PaymentEntry),
			Category:      d.Category,
			Description:   d.Description,
		}
	}
	return ms
}

func ToDomainExpenseEntries(ms []models.ExpenseDetail) []domain.ExpenseEntry {
	ds := make([]domain.ExpenseEntry, len(ms))
	for i, m := range ms {
		ds[i] = domain.ExpenseEntry{
			PaymentEntry: ToDomainPaymentEntry(m.PaymentDetail),
			Category:     m.Category,
			Description:  m.Description,
		}
	}
	return ds
}

func ToModelDocuments(ds []domain.Document) []models.Document {
	ms := make([]models.Document, len(ds))
	for i, d := range ds {
		ms[i] = models.Document{
			Name:        d.Name,
			Path:        d.Path,
			Storage:     string(d.Storage),
			ContentType: d.ContentType,
			Size:        d.Size,
			UploadedAt:  d.UploadedAt,
		}
	}
	return ms
}

// ToDomainDocuments converts stored documents; rows without a storage tag
// predate the images bucket and live in r2.
func ToDomainDocuments(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		storage := domain.StorageTag(m.Storage)
		if !storage.Valid() {
			storage = domain.StorageR2
		}
		ds[i] = domain.Document{
			Name:        m.Name,
			Path:        m.Path,
			Storage:     storage,
			ContentType: m.ContentType,
			Size:        m.Size,
			UploadedAt:  m.UploadedAt,
		}
	}
	return ds
}
