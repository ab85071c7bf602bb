package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/application/workflow"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// Ensure TxRunner implements workflow.TxRunner and agreement.TxRunner.
var _ workflow.TxRunner = (*TxRunner)(nil)
var _ agreement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del aprovisionamiento (aprobación final).
func (r *TxRunner) Run(ctx context.Context, fn func(
	enquiryRepo repository.EnquiryRepository,
	franchiseRepo repository.FranchiseRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	enquiryRepo := NewEnquiryRepository(tx)
	franchiseRepo := NewFranchiseRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(enquiryRepo, franchiseRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAgreement inicia una transacción con los repos de la aceptación de contrato
// (cambio de estado + entrada de auditoría como una sola unidad).
func (r *TxRunner) RunAgreement(ctx context.Context, fn func(
	franchiseRepo repository.FranchiseRepository,
	logRepo repository.AgreementLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	franchiseRepo := NewFranchiseRepository(tx)
	logRepo := NewAgreementLogRepository(tx)

	if err := fn(franchiseRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
