package dto

import "time"

// AddressDTO dirección postal en requests/responses.
type AddressDTO struct {
	Street  string `json:"street" validate:"omitempty,max=300"`
	City    string `json:"city" validate:"required,min=1,max=100"`
	State   string `json:"state" validate:"required,min=1,max=100"`
	Pincode string `json:"pincode" validate:"omitempty,max=10"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

// IDProofDTO documento de identidad en requests/responses.
type IDProofDTO struct {
	Type        string `json:"type" validate:"required,oneof=aadhar pan passport driving_license"`
	Number      string `json:"number" validate:"required,min=1,max=60"`
	DocumentURL string `json:"document_url" validate:"omitempty,max=500"`
}

// SubmitFranchiseDetailsRequest entrada del onboarding del socio. Sobrescribe
// siempre todos los campos mutables del perfil (idempotente).
type SubmitFranchiseDetailsRequest struct {
	OwnerName       string     `json:"owner_name" validate:"required,min=1,max=200"`
	BusinessName    string     `json:"business_name" validate:"required,min=1,max=200"`
	Address         AddressDTO `json:"address" validate:"required"`
	IDProof         IDProofDTO `json:"id_proof" validate:"required"`
	BusinessDetails string     `json:"business_details" validate:"omitempty,max=5000"`
}

// FranchiseResponse salida completa de una franquicia.
type FranchiseResponse struct {
	ID            string `json:"id"`
	EnquiryID     string `json:"enquiry_id"`
	UserID        string `json:"user_id"`
	FranchiseCode string `json:"franchise_code"`
	PartnerType   string `json:"partner_type"`

	OwnerName       string     `json:"owner_name"`
	BusinessName    string     `json:"business_name,omitempty"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         AddressDTO `json:"address"`
	IDProof         IDProofDTO `json:"id_proof"`
	BusinessDetails string     `json:"business_details,omitempty"`

	ProfileStatus       string     `json:"profile_status"`
	AgreementStatus     string     `json:"agreement_status"`
	AgreementAcceptedAt *time.Time `json:"agreement_accepted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FranchiseSummaryResponse fila del listado administrativo de franquicias.
type FranchiseSummaryResponse struct {
	ID            string `json:"id"`
	FranchiseCode string `json:"franchise_code"`
	PartnerType   string `json:"partner_type"`
	BusinessName  string `json:"business_name"`
	OwnerName     string `json:"owner_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
}
