package repository

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// AgreementLogRepository define el puerto del log de aceptaciones (append-only).
type AgreementLogRepository interface {
	Append(ctx context.Context, log *entity.AgreementLog) error
	ListByFranchise(ctx context.Context, franchiseID string) ([]*entity.AgreementLog, error)
}
