package dto

import "time"

// SubmitEnquiryRequest entrada del formulario público de solicitud.
type SubmitEnquiryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=1,max=30"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	City     string `json:"city" validate:"omitempty,max=100"`
	State    string `json:"state" validate:"omitempty,max=100"`
	Message  string `json:"message" validate:"omitempty,max=2000"`
}

// DecisionRequest entrada de una decisión de HR u Operational Head.
type DecisionRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

// CreateManualPartnerRequest alta manual de socio por HR (queda esperando al Operational Head).
type CreateManualPartnerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=1,max=30"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=franchise_partner channel_partner"`
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

// EnquiryResponse salida de una solicitud.
type EnquiryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Message  string `json:"message,omitempty"`

	Status           string `json:"status"`
	HRNotes          string `json:"hr_notes,omitempty"`
	OperationalNotes string `json:"operational_notes,omitempty"`

	HRApprovedBy          *string    `json:"hr_approved_by,omitempty"`
	HRApprovedAt          *time.Time `json:"hr_approved_at,omitempty"`
	OperationalApprovedBy *string    `json:"operational_approved_by,omitempty"`
	OperationalApprovedAt *time.Time `json:"operational_approved_at,omitempty"`

	PartnerType *string   `json:"partner_type,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ProvisionedAccountResponse credenciales de la cuenta recién aprovisionada.
// TempPassword viaja en claro UNA sola vez, al aprobador, para la entrega manual;
// después solo existe el hash.
type ProvisionedAccountResponse struct {
	Email         string `json:"email"`
	FranchiseCode string `json:"franchise_code"`
	TempPassword  string `json:"temp_password"`
	Role          string `json:"role"`
}

// OperationalDecisionResponse salida de la decisión del Operational Head.
// FranchiseAccount solo viene en aprobaciones.
type OperationalDecisionResponse struct {
	Enquiry          EnquiryResponse             `json:"enquiry"`
	FranchiseAccount *ProvisionedAccountResponse `json:"franchise_account,omitempty"`
}
