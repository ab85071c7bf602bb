package entity

import "time"

// Estados de una solicitud de franquicia. El flujo es estrictamente monótono:
//
//	pending --HR aprueba--> hr_approved --Op. Head aprueba--> operational_approved
//	pending --HR rechaza--> hr_rejected                       (terminal)
//	hr_approved --Op. Head rechaza--> operational_rejected    (terminal)
//
// approved/rejected existen en datos históricos del portal y se aceptan al leer,
// pero el motor nunca los produce.
const (
	EnquiryStatusPending             = "pending"
	EnquiryStatusHRApproved          = "hr_approved"
	EnquiryStatusHRRejected          = "hr_rejected"
	EnquiryStatusOperationalApproved = "operational_approved"
	EnquiryStatusOperationalRejected = "operational_rejected"
	EnquiryStatusApproved            = "approved"
	EnquiryStatusRejected            = "rejected"
)

// Tipos de socio.
const (
	PartnerTypeFranchise = "franchise_partner"
	PartnerTypeChannel   = "channel_partner"
)

// Acciones de decisión sobre una solicitud.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// Enquiry es una solicitud de franquicia: entra por el formulario público o la
// crea HR manualmente (pre-aprobada). Nunca se borra: es el rastro de auditoría
// del proceso de aprobación.
type Enquiry struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Location string
	City     string
	State    string
	Message  string

	Status           string
	HRNotes          string
	OperationalNotes string

	// Los pares aprobador/fecha se asignan juntos o quedan ambos en nil.
	HRApprovedBy          *string
	HRApprovedAt          *time.Time
	OperationalApprovedBy *string
	OperationalApprovedAt *time.Time

	// nil para solicitudes públicas; HR lo fija en altas manuales.
	// Al aprovisionar, nil se interpreta como franchise_partner.
	PartnerType *string

	SubmittedAt time.Time
}

// IsValidPartnerType valida el tipo de socio.
func IsValidPartnerType(t string) bool {
	return t == PartnerTypeFranchise || t == PartnerTypeChannel
}

// IsValidDecision valida la acción de una decisión.
func IsValidDecision(a string) bool {
	return a == DecisionApprove || a == DecisionReject
}

// EffectivePartnerType devuelve el tipo de socio a aprovisionar (franchise_partner por defecto).
func (e *Enquiry) EffectivePartnerType() string {
	if e.PartnerType != nil && IsValidPartnerType(*e.PartnerType) {
		return *e.PartnerType
	}
	return PartnerTypeFranchise
}

// NextStatusForHRDecision devuelve el estado resultante de la decisión de HR,
// o "" si la transición no está permitida desde el estado actual.
// La máquina de estados se valida aquí, en un solo lugar, no en cada caller.
func NextStatusForHRDecision(current, action string) string {
	if current != EnquiryStatusPending {
		return ""
	}
	switch action {
	case DecisionApprove:
		return EnquiryStatusHRApproved
	case DecisionReject:
		return EnquiryStatusHRRejected
	}
	return ""
}

// NextStatusForOperationalDecision devuelve el estado resultante de la decisión
// del Operational Head, o "" si la transición no está permitida.
func NextStatusForOperationalDecision(current, action string) string {
	if current != EnquiryStatusHRApproved {
		return ""
	}
	switch action {
	case DecisionApprove:
		return EnquiryStatusOperationalApproved
	case DecisionReject:
		return EnquiryStatusOperationalRejected
	}
	return ""
}
