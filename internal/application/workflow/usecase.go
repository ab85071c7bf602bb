// Package workflow implementa el motor de aprobación de solicitudes de
// franquicia: la máquina de estados de Enquiry, las decisiones de HR y del
// Operational Head, y el aprovisionamiento de la cuenta del socio en la
// aprobación final.
package workflow

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// UseCase motor de aprobación. Las lecturas usan los repos directos; la
// aprobación final corre dentro del TxRunner.
type UseCase struct {
	txRunner    TxRunner
	enquiryRepo repository.EnquiryRepository
	franchRepo  repository.FranchiseRepository
	hasher      PasswordHasher
	now         func() time.Time
}

// NewUseCase construye el motor de aprobación.
func NewUseCase(
	txRunner TxRunner,
	enquiryRepo repository.EnquiryRepository,
	franchRepo repository.FranchiseRepository,
	hasher PasswordHasher,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		enquiryRepo: enquiryRepo,
		franchRepo:  franchRepo,
		hasher:      hasher,
		now:         time.Now,
	}
}

// SubmitEnquiry registra una solicitud pública. Valida campos obligatorios y
// formato de email; la solicitud nace en pending sin más efectos.
func (uc *UseCase) SubmitEnquiry(ctx context.Context, in dto.SubmitEnquiryRequest) (*dto.EnquiryResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Location = strings.TrimSpace(in.Location)

	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: name, email, phone y location son requeridos", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: email mal formado", domain.ErrInvalidInput)
	}

	enquiry := &entity.Enquiry{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Message:     strings.TrimSpace(in.Message),
		Status:      entity.EnquiryStatusPending,
		SubmittedAt: uc.now(),
	}
	if err := uc.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("crear solicitud: %w", err)
	}
	return toEnquiryResponse(enquiry), nil
}

// ListEnquiries lista solicitudes según la etapa que atiende el rol del actor:
// HR ve las pendientes, el Operational Head las aprobadas por HR, y admin todas
// las que están en vuelo (o un estado concreto vía statusFilter).
func (uc *UseCase) ListEnquiries(ctx context.Context, actor Actor, statusFilter string, page dto.PageRequest) ([]*dto.EnquiryResponse, error) {
	page.DefaultPage()

	var statuses []string
	switch actor.Role {
	case entity.RoleHR:
		statuses = []string{entity.EnquiryStatusPending}
	case entity.RoleOperationalHead:
		statuses = []string{entity.EnquiryStatusHRApproved}
	case entity.RoleAdmin:
		if statusFilter != "" {
			statuses = []string{statusFilter}
		} else {
			statuses = []string{
				entity.EnquiryStatusPending,
				entity.EnquiryStatusHRApproved,
				entity.EnquiryStatusOperationalApproved,
			}
		}
	default:
		return nil, domain.ErrForbidden
	}

	list, err := uc.enquiryRepo.ListByStatuses(ctx, statuses, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	out := make([]*dto.EnquiryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEnquiryResponse(e))
	}
	return out, nil
}

// GetEnquiry lectura individual para el personal interno.
func (uc *UseCase) GetEnquiry(ctx context.Context, actor Actor, id string) (*dto.EnquiryResponse, error) {
	if !entity.IsStaffRole(actor.Role) {
		return nil, domain.ErrForbidden
	}
	enquiry, err := uc.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud: %w", err)
	}
	if enquiry == nil {
		return nil, domain.ErrNotFound
	}
	return toEnquiryResponse(enquiry), nil
}

// RecordHRDecision aplica la decisión de HR sobre una solicitud pending.
// El repo hace el UPDATE condicional (status = pending): un segundo clic
// concurrente observa ErrInvalidTransition, nunca re-aplica la decisión.
func (uc *UseCase) RecordHRDecision(ctx context.Context, actor Actor, enquiryID, action, notes string) (*dto.EnquiryResponse, error) {
	if actor.Role != entity.RoleHR {
		return nil, domain.ErrForbidden
	}
	if !entity.IsValidDecision(action) {
		return nil, fmt.Errorf("%w: action debe ser approve o reject", domain.ErrInvalidInput)
	}

	enquiry, err := uc.enquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud: %w", err)
	}
	if enquiry == nil {
		return nil, domain.ErrNotFound
	}

	next := entity.NextStatusForHRDecision(enquiry.Status, action)
	if next == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := uc.now()
	enquiry.Status = next
	enquiry.HRNotes = notes
	enquiry.HRApprovedBy = &actor.ID
	enquiry.HRApprovedAt = &now

	if err := uc.enquiryRepo.UpdateIfStatus(ctx, enquiry, entity.EnquiryStatusPending); err != nil {
		return nil, err
	}
	return toEnquiryResponse(enquiry), nil
}

// RecordOperationalDecision aplica la decisión final del Operational Head sobre
// una solicitud hr_approved. El rechazo solo muta la solicitud. La aprobación
// cambia el estado Y aprovisiona la cuenta del socio en UNA transacción: si el
// aprovisionamiento falla (p. ej. email duplicado), el cambio de estado se
// revierte y la solicitud queda en hr_approved para reintentar.
func (uc *UseCase) RecordOperationalDecision(ctx context.Context, actor Actor, enquiryID, action, notes string) (*dto.OperationalDecisionResponse, error) {
	if actor.Role != entity.RoleOperationalHead {
		return nil, domain.ErrForbidden
	}
	if !entity.IsValidDecision(action) {
		return nil, fmt.Errorf("%w: action debe ser approve o reject", domain.ErrInvalidInput)
	}

	enquiry, err := uc.enquiryRepo.GetByID(ctx, enquiryID)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud: %w", err)
	}
	if enquiry == nil {
		return nil, domain.ErrNotFound
	}

	next := entity.NextStatusForOperationalDecision(enquiry.Status, action)
	if next == "" {
		return nil, domain.ErrInvalidTransition
	}

	now := uc.now()
	enquiry.Status = next
	enquiry.OperationalNotes = notes
	enquiry.OperationalApprovedBy = &actor.ID
	enquiry.OperationalApprovedAt = &now

	if action == entity.DecisionReject {
		if err := uc.enquiryRepo.UpdateIfStatus(ctx, enquiry, entity.EnquiryStatusHRApproved); err != nil {
			return nil, err
		}
		return &dto.OperationalDecisionResponse{Enquiry: *toEnquiryResponse(enquiry)}, nil
	}

	var account *dto.ProvisionedAccountResponse
	err = uc.txRunner.Run(ctx, func(
		enquiryRepo repository.EnquiryRepository,
		franchiseRepo repository.FranchiseRepository,
		userRepo repository.UserRepository,
	) error {
		if err := enquiryRepo.UpdateIfStatus(ctx, enquiry, entity.EnquiryStatusHRApproved); err != nil {
			return err
		}
		var err error
		account, err = uc.provisionAccount(ctx, franchiseRepo, userRepo, enquiry, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.OperationalDecisionResponse{
		Enquiry:          *toEnquiryResponse(enquiry),
		FranchiseAccount: account,
	}, nil
}

// CreateManualPartnerRequest alta manual por HR: crea la solicitud directamente
// en hr_approved (como si HR la hubiera aprobado), con el tipo de socio fijado.
// NO crea la franquicia: la aprobación del Operational Head sigue siendo necesaria.
func (uc *UseCase) CreateManualPartnerRequest(ctx context.Context, actor Actor, in dto.CreateManualPartnerRequest) (*dto.EnquiryResponse, error) {
	if actor.Role != entity.RoleHR {
		return nil, domain.ErrForbidden
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Location = strings.TrimSpace(in.Location)

	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: name, email, phone y location son requeridos", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, fmt.Errorf("%w: email mal formado", domain.ErrInvalidInput)
	}
	if !entity.IsValidPartnerType(in.Role) {
		return nil, fmt.Errorf("%w: role debe ser franchise_partner o channel_partner", domain.ErrInvalidInput)
	}

	now := uc.now()
	partnerType := in.Role
	enquiry := &entity.Enquiry{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Location:     in.Location,
		Status:       entity.EnquiryStatusHRApproved,
		HRNotes:      in.Notes,
		HRApprovedBy: &actor.ID,
		HRApprovedAt: &now,
		PartnerType:  &partnerType,
		SubmittedAt:  now,
	}
	if err := uc.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("crear solicitud manual: %w", err)
	}
	return toEnquiryResponse(enquiry), nil
}

func toEnquiryResponse(e *entity.Enquiry) *dto.EnquiryResponse {
	if e == nil {
		return nil
	}
	return &dto.EnquiryResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		Email:                 e.Email,
		Phone:                 e.Phone,
		Location:              e.Location,
		City:                  e.City,
		State:                 e.State,
		Message:               e.Message,
		Status:                e.Status,
		HRNotes:               e.HRNotes,
		OperationalNotes:      e.OperationalNotes,
		HRApprovedBy:          e.HRApprovedBy,
		HRApprovedAt:          e.HRApprovedAt,
		OperationalApprovedBy: e.OperationalApprovedBy,
		OperationalApprovedAt: e.OperationalApprovedAt,
		PartnerType:           e.PartnerType,
		SubmittedAt:           e.SubmittedAt,
	}
}
