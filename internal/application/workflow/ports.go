package workflow

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// Actor es el usuario autenticado que ejecuta una operación del motor.
// Se pasa explícito en cada llamada; el motor no lee estado ambiente.
type Actor struct {
	ID   string
	Role string
}

// TxRunner ejecuta fn dentro de una transacción con los repos del flujo de
// aprobación atados a la tx. La aprobación final del Operational Head cambia el
// estado de la solicitud y aprovisiona la cuenta (User + Franchise + back-reference)
// como una sola unidad: si fn retorna error, todo se revierte y la solicitud
// permanece en hr_approved para reintentar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		enquiryRepo repository.EnquiryRepository,
		franchiseRepo repository.FranchiseRepository,
		userRepo repository.UserRepository,
	) error) error
}

// PasswordHasher abstrae el hash de la credencial temporal (bcrypt en producción).
type PasswordHasher interface {
	Hash(plain string) (string, error)
}
