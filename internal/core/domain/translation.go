package domain

import "github.com/shopspring/decimal"

// Translation covers document translations and the catch-all "other
// services"; ServiceType tells them apart.
type Translation struct {
	TranslationID  string          `json:"translation_id"`
	ServiceType    ServiceKind     `json:"service_type"`
	ClientID       string          `json:"client_id"`
	Client         *Profile        `json:"client,omitempty"`
	AgentID        string          `json:"agent_id"`
	Agent          *Profile        `json:"agent,omitempty"`
	Description    string          `json:"description"`
	DocumentType   string          `json:"document_type"`
	SourceLanguage string          `json:"source_language"`
	TargetLanguage string          `json:"target_language"`
	Quantity       int             `json:"quantity"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Commission     decimal.Decimal `json:"commission"`
	OnAccount      decimal.Decimal `json:"on_account"`
	Balance        decimal.Decimal `json:"balance"`
	Payments       []PaymentEntry  `json:"payment_details"`
	Documents      []Document      `json:"documents"`
	Status         Status          `json:"status"`
	AuditFields
}

// LedgerBasis returns the flat EUR basis of the service.
func (t Translation) LedgerBasis() LedgerBasis {
	return LedgerBasis{Total: t.TotalAmount}
}
