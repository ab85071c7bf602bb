package agreement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes — un solo Franchise en memoria más el log de aceptaciones.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	franchise *entity.Franchise
	logs      []*entity.AgreementLog

	failAccept bool // fuerza el fallo del UPDATE condicional (carrera)
	failAppend bool // fuerza el fallo del append para probar el rollback
}

type fakeFranchiseRepo struct{ s *fakeStore }

func (r *fakeFranchiseRepo) Create(context.Context, *entity.Franchise) error { return nil }

func (r *fakeFranchiseRepo) GetByID(_ context.Context, id string) (*entity.Franchise, error) {
	if r.s.franchise != nil && r.s.franchise.ID == id {
		cp := *r.s.franchise
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFranchiseRepo) GetByUserID(_ context.Context, userID string) (*entity.Franchise, error) {
	if r.s.franchise != nil && r.s.franchise.UserID == userID {
		cp := *r.s.franchise
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFranchiseRepo) GetByEnquiryID(context.Context, string) (*entity.Franchise, error) {
	return nil, nil
}

func (r *fakeFranchiseRepo) MaxCodeForPrefix(context.Context, string) (string, error) {
	return "", nil
}

func (r *fakeFranchiseRepo) List(context.Context, int, int) ([]*entity.Franchise, error) {
	return nil, nil
}

func (r *fakeFranchiseRepo) UpdateProfile(context.Context, *entity.Franchise) error { return nil }

func (r *fakeFranchiseRepo) AcceptAgreement(_ context.Context, franchiseID string, acceptedAt time.Time) error {
	f := r.s.franchise
	if r.s.failAccept || f == nil || f.ID != franchiseID ||
		f.AgreementStatus != entity.AgreementStatusPending ||
		f.ProfileStatus != entity.ProfileStatusComplete {
		return domain.ErrConflict
	}
	f.AgreementStatus = entity.AgreementStatusAccepted
	f.AgreementAcceptedAt = &acceptedAt
	return nil
}

func (r *fakeFranchiseRepo) Count(context.Context) (int64, error) { return 0, nil }

func (r *fakeFranchiseRepo) CountByAgreementStatus(context.Context, string) (int64, error) {
	return 0, nil
}

type fakeLogRepo struct{ s *fakeStore }

func (r *fakeLogRepo) Append(_ context.Context, l *entity.AgreementLog) error {
	if r.s.failAppend {
		return assert.AnError
	}
	cp := *l
	r.s.logs = append(r.s.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListByFranchise(context.Context, string) ([]*entity.AgreementLog, error) {
	return r.s.logs, nil
}

// fakeTxRunner restaura el estado de la franquicia si fn falla (rollback).
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunAgreement(ctx context.Context, fn func(
	franchiseRepo repository.FranchiseRepository,
	logRepo repository.AgreementLogRepository,
) error) error {
	var before *entity.Franchise
	if t.s.franchise != nil {
		cp := *t.s.franchise
		before = &cp
	}
	logsBefore := len(t.s.logs)
	err := fn(&fakeFranchiseRepo{t.s}, &fakeLogRepo{t.s})
	if err != nil {
		t.s.franchise = before
		t.s.logs = t.s.logs[:logsBefore]
	}
	return err
}

type fakePDFGenerator struct{ lastCompany string }

func (g *fakePDFGenerator) GenerateAgreementPDF(_ context.Context, f *entity.Franchise, companyName string) ([]byte, error) {
	g.lastCompany = companyName
	return []byte("%PDF-fake " + f.FranchiseCode), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	partnerUserID = "user-1"
	franchiseID   = "franchise-1"
)

func newTestUseCase(t *testing.T, profileStatus, agreementStatus string) (*agreement.UseCase, *fakeStore, *fakePDFGenerator) {
	t.Helper()
	store := &fakeStore{
		franchise: &entity.Franchise{
			ID:              franchiseID,
			UserID:          partnerUserID,
			FranchiseCode:   "FR0001",
			PartnerType:     entity.PartnerTypeFranchise,
			OwnerName:       "Rajesh Kumar",
			BusinessName:    "Kumar Traders",
			ProfileStatus:   profileStatus,
			AgreementStatus: agreementStatus,
		},
	}
	gen := &fakePDFGenerator{}
	uc := agreement.NewUseCase(
		&fakeTxRunner{store},
		&fakeFranchiseRepo{store},
		&fakeLogRepo{store},
		gen,
		agreement.Config{Version: "1.0", CompanyName: "UPL-SNIPE Partner"},
	)
	return uc, store, gen
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Accept
// ──────────────────────────────────────────────────────────────────────────────

func TestAccept_PerfilCompleto_RegistraLog(t *testing.T) {
	uc, store, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)

	out, err := uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{
		SignatureData: "data:image/png;base64,abc",
		IPAddress:     "203.0.113.9",
		UserAgent:     "Mozilla/5.0",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AgreementStatusAccepted, out.AgreementStatus)
	require.NotNil(t, out.AgreementAcceptedAt)

	require.Len(t, store.logs, 1, "una aceptación, una entrada de auditoría")
	entry := store.logs[0]
	assert.Equal(t, franchiseID, entry.FranchiseID)
	assert.Equal(t, "1.0", entry.AgreementVersion)
	require.NotNil(t, entry.SignatureData)
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "203.0.113.9", *entry.IPAddress)
	require.NotNil(t, entry.UserAgent)
	assert.Equal(t, out.AgreementAcceptedAt.Unix(), entry.AcceptedAt.Unix(),
		"la fecha del log es la misma que la de la franquicia")
}

func TestAccept_PerfilIncompleto(t *testing.T) {
	uc, store, _ := newTestUseCase(t, entity.ProfileStatusIncomplete, entity.AgreementStatusPending)

	_, err := uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{})
	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
	assert.Empty(t, store.logs)
	assert.Equal(t, entity.AgreementStatusPending, store.franchise.AgreementStatus)
}

func TestAccept_YaAceptado_NoCambiaFecha(t *testing.T) {
	uc, store, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)

	first, err := uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{})
	require.NoError(t, err)

	_, err = uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{})
	assert.ErrorIs(t, err, domain.ErrAgreementAccepted)

	assert.Len(t, store.logs, 1, "la segunda aceptación no duplica el log")
	assert.Equal(t, first.AgreementAcceptedAt.Unix(), store.franchise.AgreementAcceptedAt.Unix(),
		"la fecha original de aceptación no se toca")
}

func TestAccept_CarreraDetectadaPorElStore(t *testing.T) {
	uc, store, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)
	store.failAccept = true // otra petición ganó entre la lectura y el UPDATE

	_, err := uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, store.logs)
}

func TestAccept_FalloEnElLog_RevierteElEstado(t *testing.T) {
	uc, store, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)
	store.failAppend = true

	_, err := uc.Accept(context.Background(), partnerUserID, dto.AcceptAgreementRequest{})
	require.Error(t, err)
	assert.Equal(t, entity.AgreementStatusPending, store.franchise.AgreementStatus,
		"sin entrada de auditoría no hay aceptación")
	assert.Empty(t, store.logs)
}

func TestAccept_SinFranquicia(t *testing.T) {
	uc, _, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)
	_, err := uc.Accept(context.Background(), "otro-user", dto.AcceptAgreementRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Status y DownloadPDF
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	uc, _, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)
	out, err := uc.Status(context.Background(), partnerUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.AgreementStatusPending, out.AgreementStatus)
	assert.Equal(t, entity.ProfileStatusComplete, out.ProfileStatus)
	assert.Nil(t, out.AgreementAcceptedAt)
}

func TestDownloadPDF_ContratoPendiente(t *testing.T) {
	uc, _, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusPending)
	_, _, err := uc.DownloadPDF(context.Background(), partnerUserID, entity.RoleFranchisePartner, "")
	assert.ErrorIs(t, err, domain.ErrAgreementPending,
		"no se imprime un contrato que no está aceptado")
}

func TestDownloadPDF_SocioImprimeSuContrato(t *testing.T) {
	uc, _, gen := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusAccepted)

	pdf, filename, err := uc.DownloadPDF(context.Background(), partnerUserID, entity.RoleFranchisePartner, "ignorado")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Agreement-FR0001.pdf", filename)
	assert.Equal(t, "UPL-SNIPE Partner", gen.lastCompany)
}

func TestDownloadPDF_PersonalImprimePorID(t *testing.T) {
	uc, _, _ := newTestUseCase(t, entity.ProfileStatusComplete, entity.AgreementStatusAccepted)

	pdf, filename, err := uc.DownloadPDF(context.Background(), "hr-user", entity.RoleHR, franchiseID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Agreement-FR0001.pdf", filename)

	_, _, err = uc.DownloadPDF(context.Background(), "hr-user", entity.RoleHR, "franquicia-inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
