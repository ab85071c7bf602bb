package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/partner"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// codeRetries: ante una colisión de franchise_code (dos aprobaciones finales
// concurrentes leyeron el mismo máximo) se regenera el código y se reintenta
// una vez antes de devolver el conflicto al caller.
const codeRetries = 1

// provisionAccount crea la cuenta del socio para una solicitud con aprobación
// final. Corre dentro de la transacción del caller:
//
//  1. Código de franquicia: máximo actual + 1 bajo el prefijo del tipo de socio.
//  2. Credencial temporal aleatoria (nunca el email del solicitante).
//  3. User con rol del tipo de socio y hash de la credencial (email UNIQUE).
//  4. Franchise enlazada a la solicitud y al usuario, perfil incompleto y
//     contrato pendiente.
//  5. Back-reference User.FranchiseID (la referencia es circular; se resuelve en
//     dos fases dentro de la misma tx).
//
// Idempotente por solicitud: si la solicitud ya tiene franquicia (reintento tras
// un fallo parcial o doble aprobación), se devuelve la cuenta existente sin
// credencial en claro, que solo se muestra en la llamada que creó la cuenta.
func (uc *UseCase) provisionAccount(
	ctx context.Context,
	franchiseRepo repository.FranchiseRepository,
	userRepo repository.UserRepository,
	enquiry *entity.Enquiry,
	now time.Time,
) (*dto.ProvisionedAccountResponse, error) {
	if existing, err := franchiseRepo.GetByEnquiryID(ctx, enquiry.ID); err != nil {
		return nil, fmt.Errorf("verificar franquicia existente: %w", err)
	} else if existing != nil {
		return &dto.ProvisionedAccountResponse{
			Email:         existing.Email,
			FranchiseCode: existing.FranchiseCode,
			Role:          existing.PartnerType,
		}, nil
	}

	role := enquiry.EffectivePartnerType()

	tempPassword, err := partner.TempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("hashear credencial temporal: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         enquiry.Name,
		Email:        enquiry.Email,
		Phone:        enquiry.Phone,
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrEmailAlreadyExists revierte toda la aprobación
	}

	city := enquiry.City
	if city == "" {
		city = enquiry.Location
	}

	var franchise *entity.Franchise
	for attempt := 0; ; attempt++ {
		code, err := uc.nextCode(ctx, franchiseRepo, role)
		if err != nil {
			return nil, err
		}
		franchise = &entity.Franchise{
			ID:            uuid.New().String(),
			EnquiryID:     enquiry.ID,
			UserID:        user.ID,
			FranchiseCode: code,
			PartnerType:   role,
			OwnerName:     enquiry.Name,
			Email:         enquiry.Email,
			Phone:         enquiry.Phone,
			Address: entity.Address{
				City:    city,
				State:   enquiry.State,
				Country: "India",
			},
			ProfileStatus:   entity.ProfileStatusIncomplete,
			AgreementStatus: entity.AgreementStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		err = franchiseRepo.Create(ctx, franchise)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicate) && attempt < codeRetries {
			continue
		}
		return nil, err
	}

	if err := userRepo.SetFranchiseID(ctx, user.ID, franchise.ID); err != nil {
		return nil, fmt.Errorf("enlazar usuario con franquicia: %w", err)
	}

	return &dto.ProvisionedAccountResponse{
		Email:         user.Email,
		FranchiseCode: franchise.FranchiseCode,
		TempPassword:  tempPassword,
		Role:          role,
	}, nil
}

func (uc *UseCase) nextCode(ctx context.Context, franchiseRepo repository.FranchiseRepository, role string) (string, error) {
	last, err := franchiseRepo.MaxCodeForPrefix(ctx, partner.CodePrefix(role))
	if err != nil {
		return "", fmt.Errorf("leer último código: %w", err)
	}
	code, err := partner.NextCode(role, last)
	if err != nil {
		return "", fmt.Errorf("generar código: %w", err)
	}
	return code, nil
}
