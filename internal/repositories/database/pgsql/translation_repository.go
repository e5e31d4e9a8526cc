package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTranslationRepository struct {
	BaseRepository
}

// newPgxTranslationRepository creates a new repository for translations and other services.
func newPgxTranslationRepository(pool *pgxpool.Pool) *PgxTranslationRepository {
	return &PgxTranslationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TranslationRepositoryFacade = (*PgxTranslationRepository)(nil)

const translationSelect = `
	SELECT tr.translation_id, tr.service_type, tr.client_id, tr.agent_id,
	       tr.description, tr.document_type, tr.source_language, tr.target_language, tr.quantity,
	       tr.net_amount, tr.total_amount, tr.commission, tr.on_account, tr.balance,
	       tr.payment_details, tr.documents, tr.status,
	       tr.created_at, tr.created_by, tr.last_updated_at, tr.last_updated_by,
	       c.id, c.full_name, c.email, c.phone, c.document_number,
	       a.id, a.full_name, a.email, a.phone, a.document_number
	FROM translations tr
	LEFT JOIN profiles c ON c.id = tr.client_id
	LEFT JOIN profiles a ON a.id = tr.agent_id
`

func scanTranslation(row pgx.Row) (models.Translation, error) {
	var m models.Translation
	err := row.Scan(
		&m.TranslationID, &m.ServiceType, &m.ClientID, &m.AgentID,
		&m.Description, &m.DocumentType, &m.SourceLanguage, &m.TargetLanguage, &m.Quantity,
		&m.NetAmount, &m.TotalAmount, &m.Commission, &m.OnAccount, &m.Balance,
		&m.PaymentDetails, &m.Documents, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.Client.ID, &m.Client.FullName, &m.Client.Email, &m.Client.Phone, &m.Client.DocumentNumber,
		&m.Agent.ID, &m.Agent.FullName, &m.Agent.Email, &m.Agent.Phone, &m.Agent.DocumentNumber,
	)
	return m, err
}

// SaveTranslation inserts a new translation or other service.
func (r *PgxTranslationRepository) SaveTranslation(ctx context.Context, translation domain.Translation) error {
	m := mapping.ToModelTranslation(translation)
	query := `
		INSERT INTO translations (translation_id, service_type, client_id, agent_id,
			description, document_type, source_language, target_language, quantity,
			net_amount, total_amount, commission, on_account, balance,
			payment_details, documents, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TranslationID, m.ServiceType, m.ClientID, m.AgentID,
		m.Description, m.DocumentType, m.SourceLanguage, m.TargetLanguage, m.Quantity,
		m.NetAmount, m.TotalAmount, m.Commission, m.OnAccount, m.Balance,
		m.PaymentDetails, m.Documents, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save translation "+m.TranslationID)
	}
	return nil
}

// UpdateTranslation overwrites every mutable column of a translation.
func (r *PgxTranslationRepository) UpdateTranslation(ctx context.Context, translation domain.Translation) error {
	m := mapping.ToModelTranslation(translation)
	query := `
		UPDATE translations SET
			service_type = $2, client_id = $3, agent_id = $4,
			description = $5, document_type = $6, source_language = $7, target_language = $8, quantity = $9,
			net_amount = $10, total_amount = $11, commission = $12, on_account = $13, balance = $14,
			payment_details = $15, documents = $16, status = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE translation_id = $1;
	`
	return r.execOne(ctx, "update translation", m.TranslationID, query,
		m.TranslationID, m.ServiceType, m.ClientID, m.AgentID,
		m.Description, m.DocumentType, m.SourceLanguage, m.TargetLanguage, m.Quantity,
		m.NetAmount, m.TotalAmount, m.Commission, m.OnAccount, m.Balance,
		m.PaymentDetails, m.Documents, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// DeleteTranslation removes a translation or other service.
func (r *PgxTranslationRepository) DeleteTranslation(ctx context.Context, translationID string) error {
	return r.execOne(ctx, "delete translation", translationID, `DELETE FROM translations WHERE translation_id = $1;`, translationID)
}

// FindTranslationByID retrieves a translation with its joined profiles.
func (r *PgxTranslationRepository) FindTranslationByID(ctx context.Context, translationID string) (*domain.Translation, error) {
	m, err := scanTranslation(r.Pool.QueryRow(ctx, translationSelect+" WHERE tr.translation_id = $1;", translationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("translation " + translationID + " not found")
		}
		return nil, fmt.Errorf("failed to find translation %s: %w", translationID, err)
	}
	translation := mapping.ToDomainTranslation(m)
	return &translation, nil
}

// ListTranslations retrieves a page ordered by (created_at, translation_id) DESC.
func (r *PgxTranslationRepository) ListTranslations(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Translation, *string, error) {
	limit = limitOf(limit)

	var conds conditions
	if filter.ServiceType != "" {
		conds.add("tr.service_type = $%d", string(filter.ServiceType))
	}
	if filter.Status != "" {
		conds.add("tr.status = $%d", string(filter.Status))
	}
	if filter.ClientID != "" {
		conds.add("tr.client_id = $%d", filter.ClientID)
	}
	if err := conds.addCursor("tr.created_at", "tr.translation_id", nextToken); err != nil {
		return nil, nil, err
	}
	conds.args = append(conds.args, limit+1)
	query := fmt.Sprintf("%s %s ORDER BY tr.created_at DESC, tr.translation_id DESC LIMIT $%d;", translationSelect, conds.where(), len(conds.args))

	rows, err := r.Pool.Query(ctx, query, conds.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query translations: %w", err)
	}
	modelTranslations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Translation, error) {
		return scanTranslation(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan translations: %w", err)
	}

	page, token := pageToken(modelTranslations, limit, func(m models.Translation) (time.Time, string) {
		return m.CreatedAt, m.TranslationID
	})
	return mapping.ToDomainTranslationSlice(page), token, nil
}

// ListTranslationsByClient retrieves every translation of a client, newest first.
func (r *PgxTranslationRepository) ListTranslationsByClient(ctx context.Context, clientID string) ([]domain.Translation, error) {
	rows, err := r.Pool.Query(ctx, translationSelect+" WHERE tr.client_id = $1 ORDER BY tr.created_at DESC;", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations of client %s: %w", clientID, err)
	}
	modelTranslations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Translation, error) {
		return scanTranslation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan translations of client %s: %w", clientID, err)
	}
	return mapping.ToDomainTranslationSlice(modelTranslations), nil
}
