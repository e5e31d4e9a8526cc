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

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for money transfers.
func newPgxTransferRepository(pool *pgxpool.Pool) *PgxTransferRepository {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferSelect = `
	SELECT t.transfer_id, t.client_id, t.agent_id,
	       t.beneficiary_name, t.beneficiary_document, t.beneficiary_bank, t.beneficiary_account,
	       t.transfer_mode, t.amount_sent, t.exchange_rate, t.commission_percentage,
	       t.commission, t.amount_received, t.total_amount, t.on_account, t.balance, t.net_profit,
	       t.payment_details, t.expense_details, t.documents, t.status,
	       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
	       c.id, c.full_name, c.email, c.phone, c.document_number,
	       a.id, a.full_name, a.email, a.phone, a.document_number
	FROM money_transfers t
	LEFT JOIN profiles c ON c.id = t.client_id
	LEFT JOIN profiles a ON a.id = t.agent_id
`

func scanTransfer(row pgx.Row) (models.MoneyTransfer, error) {
	var m models.MoneyTransfer
	err := row.Scan(
		&m.TransferID, &m.ClientID, &m.AgentID,
		&m.BeneficiaryName, &m.BeneficiaryDocument, &m.BeneficiaryBank, &m.BeneficiaryAccount,
		&m.TransferMode, &m.AmountSent, &m.ExchangeRate, &m.CommissionPercentage,
		&m.Commission, &m.AmountReceived, &m.TotalAmount, &m.OnAccount, &m.Balance, &m.NetProfit,
		&m.PaymentDetails, &m.ExpenseDetails, &m.Documents, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&m.Client.ID, &m.Client.FullName, &m.Client.Email, &m.Client.Phone, &m.Client.DocumentNumber,
		&m.Agent.ID, &m.Agent.FullName, &m.Agent.Email, &m.Agent.Phone, &m.Agent.DocumentNumber,
	)
	return m, err
}

// SaveTransfer inserts a new money transfer.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.MoneyTransfer) error {
	m := mapping.ToModelTransfer(transfer)
	query := `
		INSERT INTO money_transfers (transfer_id, client_id, agent_id,
			beneficiary_name, beneficiary_document, beneficiary_bank, beneficiary_account,
			transfer_mode, amount_sent, exchange_rate, commission_percentage,
			commission, amount_received, total_amount, on_account, balance, net_profit,
			payment_details, expense_details, documents, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransferID, m.ClientID, m.AgentID,
		m.BeneficiaryName, m.BeneficiaryDocument, m.BeneficiaryBank, m.BeneficiaryAccount,
		m.TransferMode, m.AmountSent, m.ExchangeRate, m.CommissionPercentage,
		m.Commission, m.AmountReceived, m.TotalAmount, m.OnAccount, m.Balance, m.NetProfit,
		m.PaymentDetails, m.ExpenseDetails, m.Documents, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to save transfer "+m.TransferID)
	}
	return nil
}

// UpdateTransfer overwrites every mutable column of a transfer.
func (r *PgxTransferRepository) UpdateTransfer(ctx context.Context, transfer domain.MoneyTransfer) error {
	m := mapping.ToModelTransfer(transfer)
	query := `
		UPDATE money_transfers SET
			client_id = $2, agent_id = $3,
			beneficiary_name = $4, beneficiary_document = $5, beneficiary_bank = $6, beneficiary_account = $7,
			transfer_mode = $8, amount_sent = $9, exchange_rate = $10, commission_percentage = $11,
			commission = $12, amount_received = $13, total_amount = $14, on_account = $15, balance = $16, net_profit = $17,
			payment_details = $18, expense_details = $19, documents = $20, status = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE transfer_id = $1;
	`
	return r.execOne(ctx, "update transfer", m.TransferID, query,
		m.TransferID, m.ClientID, m.AgentID,
		m.BeneficiaryName, m.BeneficiaryDocument, m.BeneficiaryBank, m.BeneficiaryAccount,
		m.TransferMode, m.AmountSent, m.ExchangeRate, m.CommissionPercentage,
		m.Commission, m.AmountReceived, m.TotalAmount, m.OnAccount, m.Balance, m.NetProfit,
		m.PaymentDetails, m.ExpenseDetails, m.Documents, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
}

// DeleteTransfer removes a money transfer.
func (r *PgxTransferRepository) DeleteTransfer(ctx context.Context, transferID string) error {
	return r.execOne(ctx, "delete transfer", transferID, `DELETE FROM money_transfers WHERE transfer_id = $1;`, transferID)
}

// FindTransferByID retrieves a transfer with its joined profiles.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.MoneyTransfer, error) {
	m, err := scanTransfer(r.Pool.QueryRow(ctx, transferSelect+" WHERE t.transfer_id = $1;", transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transfer " + transferID + " not found")
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	transfer := mapping.ToDomainTransfer(m)
	return &transfer, nil
}

// ListTransfers retrieves a page of transfers ordered by (created_at, transfer_id) DESC.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.MoneyTransfer, *string, error) {
	limit = limitOf(limit)

	var conds conditions
	if filter.Status != "" {
		conds.add("t.status = $%d", string(filter.Status))
	}
	if filter.ClientID != "" {
		conds.add("t.client_id = $%d", filter.ClientID)
	}
	if err := conds.addCursor("t.created_at", "t.transfer_id", nextToken); err != nil {
		return nil, nil, err
	}
	conds.args = append(conds.args, limit+1)
	query := fmt.Sprintf("%s %s ORDER BY t.created_at DESC, t.transfer_id DESC LIMIT $%d;", transferSelect, conds.where(), len(conds.args))

	rows, err := r.Pool.Query(ctx, query, conds.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	modelTransfers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MoneyTransfer, error) {
		return scanTransfer(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transfers: %w", err)
	}

	page, token := pageToken(modelTransfers, limit, func(m models.MoneyTransfer) (time.Time, string) {
		return m.CreatedAt, m.TransferID
	})
	return mapping.ToDomainTransferSlice(page), token, nil
}

// ListTransfersByClient retrieves every transfer of a client, newest first.
func (r *PgxTransferRepository) ListTransfersByClient(ctx context.Context, clientID string) ([]domain.MoneyTransfer, error) {
	rows, err := r.Pool.Query(ctx, transferSelect+" WHERE t.client_id = $1 ORDER BY t.created_at DESC;", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers of client %s: %w", clientID, err)
	}
	modelTransfers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MoneyTransfer, error) {
		return scanTransfer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transfers of client %s: %w", clientID, err)
	}
	return mapping.ToDomainTransferSlice(modelTransfers), nil
}
