package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto de pgx que usan los repos. Lo satisfacen tanto
// *pgxpool.Pool como pgx.Tx: el mismo repo sirve fuera y dentro de una
// transacción (ver TxRunner). Begin abre una transacción sobre el pool y un
// savepoint dentro de una tx, lo que permite aislar un INSERT que puede
// fallar sin abortar la transacción envolvente.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}
