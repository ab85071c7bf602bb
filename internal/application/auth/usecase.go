// Package auth casos de uso de autenticación del portal: login, sesión actual
// y cambio de la credencial temporal del socio.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
	"github.com/upl-snipe/partner-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación: login con email/password y emisión de JWT.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Cuentas inactivas no pueden iniciar sesión.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	// Misma normalización que al registrar la solicitud: el email se guarda en
	// minúsculas, el login no puede depender de cómo lo tipee el socio.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	franchiseID := ""
	if user.FranchiseID != nil {
		franchiseID = *user.FranchiseID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, franchiseID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario autenticado (sin hash).
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// SetPassword reemplaza la credencial temporal de un socio por una definitiva.
// Solo cuentas de socio: el personal interno gestiona sus claves por otra vía.
func (uc *UseCase) SetPassword(ctx context.Context, userID string, in dto.SetPasswordRequest) error {
	if len(in.Password) < 8 {
		return fmt.Errorf("%w: password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !entity.IsPartnerRole(user.Role) {
		return domain.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(ctx, userID, string(hash))
}

// ListUsers listado administrativo de cuentas (sin hashes).
func (uc *UseCase) ListUsers(ctx context.Context, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.userRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		IsActive:    u.IsActive,
		FranchiseID: u.FranchiseID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// BcryptHasher implementa workflow.PasswordHasher con bcrypt (mismo costo que el login).
type BcryptHasher struct{}

// Hash genera el hash bcrypt de la credencial.
func (BcryptHasher) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
