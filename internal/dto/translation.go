package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// TranslationRequest is the body of a translation / other service submission.
type TranslationRequest struct {
	ServiceType    domain.ServiceKind `json:"service_type" binding:"omitempty,oneof=translation other"`
	ClientID       string             `json:"client_id" binding:"required"`
	AgentID        string             `json:"agent_id"`
	Description    string             `json:"description"`
	DocumentType   string             `json:"document_type"`
	SourceLanguage string             `json:"source_language"`
	TargetLanguage string             `json:"target_language"`
	Quantity       int                `json:"quantity" binding:"min=0"`
	NetAmount      Amount             `json:"net_amount"`
	TotalAmount    Amount             `json:"total_amount"`
	Payments       []PaymentRequest   `json:"payment_details" binding:"dive"`
	Documents      []domain.Document  `json:"documents"`
	Status         domain.Status      `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}

// TranslationResponse is the API view of a translation or other service.
type TranslationResponse struct {
	TranslationID  string             `json:"translation_id"`
	ServiceType    domain.ServiceKind `json:"service_type"`
	ClientID       string             `json:"client_id"`
	Client         *domain.Profile    `json:"client,omitempty"`
	AgentID        string             `json:"agent_id"`
	Agent          *domain.Profile    `json:"agent,omitempty"`
	Description    string             `json:"description"`
	DocumentType   string             `json:"document_type"`
	SourceLanguage string             `json:"source_language"`
	TargetLanguage string             `json:"target_language"`
	Quantity       int                `json:"quantity"`
	NetAmount      string             `json:"net_amount"`
	TotalAmount    string             `json:"total_amount"`
	Commission     string             `json:"commission"`
	OnAccount      string             `json:"on_account"`
	Balance        string             `json:"balance"`
	Payments       []PaymentResponse  `json:"payment_details"`
	Documents      []domain.Document  `json:"documents"`
	Status         domain.Status      `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	CreatedBy      string             `json:"created_by"`
	LastUpdatedAt  time.Time          `json:"last_updated_at"`
}

// ListTranslationsParams adds the service type filter to ListParams.
type ListTranslationsParams struct {
	ListParams
	ServiceType string `form:"service_type" binding:"omitempty,oneof=translation other"`
}

// ListTranslationsResponse is a page of translations.
type ListTranslationsResponse struct {
	Translations []TranslationResponse `json:"translations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTranslationResponse converts a domain translation.
func ToTranslationResponse(t *domain.Translation) TranslationResponse {
	documents := t.Documents
	if documents == nil {
		documents = []domain.Document{}
	}
	return TranslationResponse{
		TranslationID:  t.TranslationID,
		ServiceType:    t.ServiceType,
		ClientID:       t.ClientID,
		Client:         t.Client,
		AgentID:        t.AgentID,
		Agent:          t.Agent,
		Description:    t.Description,
		DocumentType:   t.DocumentType,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		Quantity:       t.Quantity,
		NetAmount:      accounting.Format(t.NetAmount),
		TotalAmount:    accounting.Format(t.TotalAmount),
		Commission:     accounting.Format(t.Commission),
		OnAccount:      accounting.Format(t.OnAccount),
		Balance:        accounting.Format(t.Balance),
		Payments:       ToPaymentResponses(t.Payments),
		Documents:      documents,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		CreatedBy:      t.CreatedBy,
		LastUpdatedAt:  t.LastUpdatedAt,
	}
}

// ToTranslationResponses converts a slice of translations.
func ToTranslationResponses(translations []domain.Translation) []TranslationResponse {
	responses := make([]TranslationResponse, len(translations))
	for i := range translations {
		responses[i] = ToTranslationResponse(&translations[i])
	}
	return responses
}
