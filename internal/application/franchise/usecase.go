// Package franchise casos de uso del perfil de la franquicia: lectura propia,
// listado administrativo y onboarding de datos del negocio.
package franchise

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// UseCase operaciones sobre franquicias aprovisionadas.
type UseCase struct {
	franchRepo repository.FranchiseRepository
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(franchRepo repository.FranchiseRepository) *UseCase {
	return &UseCase{franchRepo: franchRepo, now: time.Now}
}

// GetMyFranchise devuelve la franquicia del socio autenticado (lookup por user).
func (uc *UseCase) GetMyFranchise(ctx context.Context, userID string) (*dto.FranchiseResponse, error) {
	f, err := uc.franchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toFranchiseResponse(f), nil
}

// GetFranchise lectura administrativa de cualquier franquicia por id.
func (uc *UseCase) GetFranchise(ctx context.Context, id string) (*dto.FranchiseResponse, error) {
	f, err := uc.franchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return toFranchiseResponse(f), nil
}

// ListFranchises resúmenes para el panel administrativo.
func (uc *UseCase) ListFranchises(ctx context.Context, page dto.PageRequest) ([]*dto.FranchiseSummaryResponse, error) {
	page.DefaultPage()
	list, err := uc.franchRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar franquicias: %w", err)
	}
	out := make([]*dto.FranchiseSummaryResponse, 0, len(list))
	for _, f := range list {
		out = append(out, &dto.FranchiseSummaryResponse{
			ID:            f.ID,
			FranchiseCode: f.FranchiseCode,
			PartnerType:   f.PartnerType,
			BusinessName:  f.BusinessName,
			OwnerName:     f.OwnerName,
			Email:         f.Email,
			Phone:         f.Phone,
			Location:      f.Address.City,
		})
	}
	return out, nil
}

// SubmitDetails registra los datos de onboarding del socio y marca el perfil
// como completo. Sobrescribe SIEMPRE todos los campos mutables: llamarlo varias
// veces deja el perfil igual que la última llamada (idempotente).
func (uc *UseCase) SubmitDetails(ctx context.Context, userID string, in dto.SubmitFranchiseDetailsRequest) (*dto.FranchiseResponse, error) {
	if err := validateDetails(&in); err != nil {
		return nil, err
	}

	f, err := uc.franchRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("obtener franquicia: %w", err)
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	country := strings.TrimSpace(in.Address.Country)
	if country == "" {
		country = "India"
	}

	f.OwnerName = strings.TrimSpace(in.OwnerName)
	f.BusinessName = strings.TrimSpace(in.BusinessName)
	f.Address = entity.Address{
		Street:  strings.TrimSpace(in.Address.Street),
		City:    strings.TrimSpace(in.Address.City),
		State:   strings.TrimSpace(in.Address.State),
		Pincode: strings.TrimSpace(in.Address.Pincode),
		Country: country,
	}
	f.IDProof = entity.IDProof{
		Type:        in.IDProof.Type,
		Number:      strings.TrimSpace(in.IDProof.Number),
		DocumentURL: strings.TrimSpace(in.IDProof.DocumentURL),
	}
	f.BusinessDetails = strings.TrimSpace(in.BusinessDetails)
	f.ProfileStatus = entity.ProfileStatusComplete
	f.UpdatedAt = uc.now()

	if err := uc.franchRepo.UpdateProfile(ctx, f); err != nil {
		return nil, fmt.Errorf("guardar perfil: %w", err)
	}
	return toFranchiseResponse(f), nil
}

func validateDetails(in *dto.SubmitFranchiseDetailsRequest) error {
	if strings.TrimSpace(in.OwnerName) == "" || strings.TrimSpace(in.BusinessName) == "" {
		return fmt.Errorf("%w: owner_name y business_name son requeridos", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address.City) == "" || strings.TrimSpace(in.Address.State) == "" {
		return fmt.Errorf("%w: address.city y address.state son requeridos", domain.ErrInvalidInput)
	}
	if !entity.IsValidIDProofType(in.IDProof.Type) {
		return fmt.Errorf("%w: id_proof.type debe ser aadhar, pan, passport o driving_license", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.IDProof.Number) == "" {
		return fmt.Errorf("%w: id_proof.number es requerido", domain.ErrInvalidInput)
	}
	return nil
}

func toFranchiseResponse(f *entity.Franchise) *dto.FranchiseResponse {
	if f == nil {
		return nil
	}
	return &dto.FranchiseResponse{
		ID:            f.ID,
		EnquiryID:     f.EnquiryID,
		UserID:        f.UserID,
		FranchiseCode: f.FranchiseCode,
		PartnerType:   f.PartnerType,
		OwnerName:     f.OwnerName,
		BusinessName:  f.BusinessName,
		Email:         f.Email,
		Phone:         f.Phone,
		Address: dto.AddressDTO{
			Street:  f.Address.Street,
			City:    f.Address.City,
			State:   f.Address.State,
			Pincode: f.Address.Pincode,
			Country: f.Address.Country,
		},
		IDProof: dto.IDProofDTO{
			Type:        f.IDProof.Type,
			Number:      f.IDProof.Number,
			DocumentURL: f.IDProof.DocumentURL,
		},
		BusinessDetails:     f.BusinessDetails,
		ProfileStatus:       f.ProfileStatus,
		AgreementStatus:     f.AgreementStatus,
		AgreementAcceptedAt: f.AgreementAcceptedAt,
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}
