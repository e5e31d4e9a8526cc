package models

import "github.com/shopspring/decimal"

// Translation is a row of the translations table, which also holds
// miscellaneous services.
type Translation struct {
	TranslationID  string
	ServiceType    string
	ClientID       string
	AgentID        *string
	Description    string
	DocumentType   string
	SourceLanguage string
	TargetLanguage string
	Quantity       int
	NetAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	Commission     decimal.Decimal
	OnAccount      decimal.Decimal
	Balance        decimal.Decimal
	PaymentDetails []PaymentDetail
	Documents      []Document
	Status         string
	Client         ProfileRef
	Agent          ProfileRef
	AuditFields
}
