package dto

import "time"

// AcceptAgreementRequest entrada de la aceptación del contrato.
// IP y user-agent los completa la capa HTTP, no el cliente.
type AcceptAgreementRequest struct {
	SignatureData string `json:"signature_data" validate:"omitempty,max=20000"`
	IPAddress     string `json:"-"`
	UserAgent     string `json:"-"`
}

// AgreementStatusResponse proyección read-only del estado del contrato.
type AgreementStatusResponse struct {
	AgreementStatus     string     `json:"agreement_status"`
	AgreementAcceptedAt *time.Time `json:"agreement_accepted_at,omitempty"`
	ProfileStatus       string     `json:"profile_status"`
}
