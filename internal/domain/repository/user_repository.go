package repository

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	// Create persiste un usuario nuevo. Retorna domain.ErrEmailAlreadyExists si el
	// email ya está registrado (constraint UNIQUE a nivel de store).
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// SetFranchiseID enlaza el usuario con su franquicia recién creada (back-reference
	// del aprovisionamiento en dos fases).
	SetFranchiseID(ctx context.Context, userID, franchiseID string) error
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
