package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/upl-snipe/partner-api/internal/application/auth"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // por ID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) SetFranchiseID(_ context.Context, userID, franchiseID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.FranchiseID = &franchiseID
	return nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, userID, hash string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *memUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "Secreta123"

func newTestUseCase(t *testing.T) (*auth.UseCase, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "partner-api-test",
	})
	return uc, repo
}

func seedPartner(t *testing.T, repo *memUserRepo, email string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           "u-" + email,
		Name:         "Rajesh Kumar",
		Email:        email,
		Role:         entity.RoleFranchisePartner,
		PasswordHash: string(hash),
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_NormalizaElEmail(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedPartner(t, repo, "rajesh@example.com", true)

	// El email se guarda en minúsculas al aprovisionar; el login debe aceptar
	// cualquier capitalización y espacios accidentales.
	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Rajesh@Example.COM ",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "rajesh@example.com", out.User.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedPartner(t, repo, "rajesh@example.com", true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "rajesh@example.com",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, repo := newTestUseCase(t)
	seedPartner(t, repo, "inactivo@example.com", false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "inactivo@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
