// Package agreement casos de uso del contrato de franquicia: aceptación con log
// de auditoría, consulta de estado e impresión del documento.
package agreement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// Config parámetros del contrato vigente.
type Config struct {
	Version     string // se registra en cada AgreementLog
	CompanyName string // parte compañía en el documento impreso
}

// UseCase operaciones sobre el contrato de una franquicia.
type UseCase struct {
	txRunner   TxRunner
	franchRepo repository.FranchiseRepository
	logRepo    repository.AgreementLogRepository
	generator  PDFGenerator
	cfg        Config
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	franchRepo repository.FranchiseRepository,
	logRepo repository.AgreementLogRepository,
	generator PDFGenerator,
	cfg Config,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		franchRepo: franchRepo,
		logRepo:    logRepo,
		generator:  generator,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Accept registra la aceptación del contrato por el socio autenticado.
// Precondiciones: perfil completo (ErrProfileIncomplete) y contrato aún
// pendiente (ErrAgreementAccepted si ya se aceptó: AgreementAcceptedAt no cambia).
// El cambio de estado y el append al log corren en UNA transacción; el UPDATE
// condicional del repo hace que dos aceptaciones concurrentes no dupliquen el log.
func (uc *UseCase) Accept(ctx context.Context, userID string, in dto.AcceptAgreementRequest) (*dto.AgreementStatusResponse, error) {
	f, err := uc.franchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if f.ProfileStatus != entity.ProfileStatusComplete {
		return nil, domain.ErrProfileIncomplete
	}
	if f.AgreementStatus == entity.AgreementStatusAccepted {
		return nil, domain.ErrAgreementAccepted
	}

	acceptedAt := uc.now()
	err = uc.txRunner.RunAgreement(ctx, func(
		franchiseRepo repository.FranchiseRepository,
		logRepo repository.AgreementLogRepository,
	) error {
		if err := franchiseRepo.AcceptAgreement(ctx, f.ID, acceptedAt); err != nil {
			return err
		}
		entry := &entity.AgreementLog{
			ID:               uuid.New().String(),
			FranchiseID:      f.ID,
			AgreementVersion: uc.cfg.Version,
			AcceptedAt:       acceptedAt,
			SignatureData:    optional(in.SignatureData),
			IPAddress:        optional(in.IPAddress),
			UserAgent:        optional(in.UserAgent),
		}
		return logRepo.Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return &dto.AgreementStatusResponse{
		AgreementStatus:     entity.AgreementStatusAccepted,
		AgreementAcceptedAt: &acceptedAt,
		ProfileStatus:       f.ProfileStatus,
	}, nil
}

// Status proyección read-only del estado del contrato del socio.
func (uc *UseCase) Status(ctx context.Context, userID string) (*dto.AgreementStatusResponse, error) {
	f, err := uc.franchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.AgreementStatusResponse{
		AgreementStatus:     f.AgreementStatus,
		AgreementAcceptedAt: f.AgreementAcceptedAt,
		ProfileStatus:       f.ProfileStatus,
	}, nil
}

// DownloadPDF genera el documento del contrato. Un socio imprime SU franquicia
// (franchiseID se ignora); el personal interno imprime cualquiera por id.
// El contrato debe estar aceptado antes de invocar al renderizador.
//
// Retorna (pdfBytes, filename, nil) o el error de dominio correspondiente.
func (uc *UseCase) DownloadPDF(ctx context.Context, userID, role, franchiseID string) ([]byte, string, error) {
	var f *entity.Franchise
	var err error
	if entity.IsPartnerRole(role) {
		f, err = uc.franchRepo.GetByUserID(ctx, userID)
	} else {
		f, err = uc.franchRepo.GetByID(ctx, franchiseID)
	}
	if err != nil {
		return nil, "", fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, "", domain.ErrNotFound
	}
	if f.AgreementStatus != entity.AgreementStatusAccepted {
		return nil, "", domain.ErrAgreementPending
	}

	pdf, err := uc.generator.GenerateAgreementPDF(ctx, f, uc.cfg.CompanyName)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF del contrato: %w", err)
	}
	return pdf, fmt.Sprintf("Agreement-%s.pdf", f.FranchiseCode), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
