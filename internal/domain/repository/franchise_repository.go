package repository

import (
	"context"
	"time"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// FranchiseRepository define el puerto de persistencia para Franchise.
type FranchiseRepository interface {
	// Create persiste la franquicia. Retorna domain.ErrDuplicate si el
	// franchise_code ya existe (carrera de aprovisionamiento concurrente: el
	// caller regenera el código y reintenta una vez).
	Create(ctx context.Context, franchise *entity.Franchise) error
	GetByID(ctx context.Context, id string) (*entity.Franchise, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Franchise, error)
	// GetByEnquiryID permite el reintento idempotente del aprovisionamiento:
	// si la solicitud ya tiene franquicia, se devuelve la existente.
	GetByEnquiryID(ctx context.Context, enquiryID string) (*entity.Franchise, error)
	// MaxCodeForPrefix devuelve el código más alto existente con el prefijo dado
	// ("" si no hay ninguno). Se invoca dentro de la transacción de aprovisionamiento.
	MaxCodeForPrefix(ctx context.Context, prefix string) (string, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Franchise, error)
	// UpdateProfile sobrescribe los campos del perfil (owner, negocio, dirección,
	// documento, detalles) y marca profile_status. Idempotente.
	UpdateProfile(ctx context.Context, franchise *entity.Franchise) error
	// AcceptAgreement marca el contrato como aceptado solo si sigue pendiente y el
	// perfil está completo (UPDATE condicional). Retorna domain.ErrConflict si el
	// estado ya no es pending.
	AcceptAgreement(ctx context.Context, franchiseID string, acceptedAt time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByAgreementStatus(ctx context.Context, status string) (int64, error)
}
