package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs del Querier. El INSERT de franquicia debe correr en una sub-transacción
// propia: si el código choca (23505), el savepoint se revierte y la transacción
// envolvente sigue utilizable para regenerar el código y reintentar. Sin el
// savepoint, Postgres rechazaría todo lo posterior con 25P02.
// ──────────────────────────────────────────────────────────────────────────────

type stubTx struct {
	pgx.Tx
	execErr    error
	committed  bool
	rolledBack bool
}

func (t *stubTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (t *stubTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

type stubQuerier struct {
	tx *stubTx
}

func (q *stubQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *stubQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *stubQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func (q *stubQuerier) Begin(_ context.Context) (pgx.Tx, error) {
	return q.tx, nil
}

func testFranchise() *entity.Franchise {
	now := time.Now()
	return &entity.Franchise{
		ID:              "f-1",
		EnquiryID:       "e-1",
		UserID:          "u-1",
		FranchiseCode:   "FR0001",
		PartnerType:     entity.PartnerTypeFranchise,
		OwnerName:       "Rajesh Kumar",
		Email:           "rajesh@example.com",
		Phone:           "+91-9876543210",
		ProfileStatus:   entity.ProfileStatusIncomplete,
		AgreementStatus: entity.AgreementStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestFranchiseCreate_CodigoDuplicado_RevierteElSavepoint(t *testing.T) {
	tx := &stubTx{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "franchises_franchise_code_key",
	}}
	repo := NewFranchiseRepository(&stubQuerier{tx: tx})

	err := repo.Create(context.Background(), testFranchise())
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, tx.rolledBack, "el savepoint se revierte; la tx envolvente sigue utilizable")
	assert.False(t, tx.committed)
}

func TestFranchiseCreate_UsuarioYaTieneFranquicia_Conflicto(t *testing.T) {
	tx := &stubTx{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "franchises_user_id_key",
	}}
	repo := NewFranchiseRepository(&stubQuerier{tx: tx})

	err := repo.Create(context.Background(), testFranchise())
	require.ErrorIs(t, err, domain.ErrConflict, "el 1:1 usuario-franquicia no se reintenta")
	assert.True(t, tx.rolledBack)
}

func TestFranchiseCreate_Exito_ConfirmaElSavepoint(t *testing.T) {
	tx := &stubTx{}
	repo := NewFranchiseRepository(&stubQuerier{tx: tx})

	require.NoError(t, repo.Create(context.Background(), testFranchise()))
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}
