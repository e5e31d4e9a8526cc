package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// buildPayments converts submitted payments, attaching freshly stored proofs
// by array index. A new proof replaces the submitted proof path.
func buildPayments(reqs []dto.PaymentRequest, proofs map[int]string, now time.Time) []domain.PaymentEntry {
	payments := make([]domain.PaymentEntry, 0, len(reqs))
	for i, req := range reqs {
		entry := req.ToEntry(now)
		if proof, ok := proofs[i]; ok {
			entry.ProofPath = proof
		}
		payments = append(payments, entry)
	}
	return payments
}

// checkProofIndexes rejects payment proofs that point past the submitted
// payments, so no file is stored without a payment to hold it.
func checkProofIndexes(uploads []dto.Upload, payments int) error {
	for _, upload := range uploads {
		if strings.HasPrefix(upload.Field, dto.PaymentProofPrefix) && (upload.Index < 0 || upload.Index >= payments) {
			return apperrors.NewValidationError(fmt.Sprintf("%s has no matching payment (have %d)", upload.Field, payments))
		}
	}
	return nil
}

func buildExpenses(reqs []dto.ExpenseRequest, now time.Time) []domain.ExpenseEntry {
	expenses := make([]domain.ExpenseEntry, 0, len(reqs))
	for _, req := range reqs {
		expenses = append(expenses, req.ToEntry(now))
	}
	return expenses
}

// mergeDocuments appends newly stored documents to the ones the form kept.
func mergeDocuments(kept []domain.Document, stored *dto.StoredUploads) []domain.Document {
	documents := make([]domain.Document, 0, len(kept))
	documents = append(documents, kept...)
	if stored != nil {
		documents = append(documents, stored.Documents...)
	}
	return documents
}

func statusOrPending(status domain.Status) domain.Status {
	if status == "" {
		return domain.StatusPending
	}
	return status
}

func filterFromParams(params dto.ListParams) domain.ListFilter {
	return domain.ListFilter{
		Status:   domain.Status(params.Status),
		ClientID: params.ClientID,
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}

func proofsOf(stored *dto.StoredUploads) map[int]string {
	if stored == nil {
		return nil
	}
	return stored.Proofs
}
