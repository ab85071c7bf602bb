package repository

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// EnquiryRepository define el puerto de persistencia para Enquiry.
// Las solicitudes nunca se borran (rastro de auditoría), por eso no hay Delete.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	GetByID(ctx context.Context, id string) (*entity.Enquiry, error)
	// ListByStatuses lista solicitudes cuyos estados estén en el conjunto dado,
	// ordenadas de más reciente a más antigua.
	ListByStatuses(ctx context.Context, statuses []string, limit, offset int) ([]*entity.Enquiry, error)
	// UpdateIfStatus aplica los campos mutables de la decisión (status, notas,
	// aprobador y fecha) solo si el estado actual en el store coincide con
	// expectedStatus (UPDATE condicional). Retorna domain.ErrInvalidTransition si
	// la solicitud existe pero su estado ya cambió (doble clic, carrera), y
	// domain.ErrNotFound si no existe. Esto impide el doble procesamiento bajo
	// peticiones concurrentes duplicadas.
	UpdateIfStatus(ctx context.Context, enquiry *entity.Enquiry, expectedStatus string) error
	// CountByStatus agrupa el total de solicitudes por estado (dashboard).
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
