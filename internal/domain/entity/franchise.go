package entity

import "time"

// Estados del perfil y del contrato de una franquicia.
const (
	ProfileStatusIncomplete = "incomplete"
	ProfileStatusComplete   = "complete"

	AgreementStatusPending  = "pending"
	AgreementStatusAccepted = "accepted"
	AgreementStatusDeclined = "declined"
)

// Tipos de documento de identidad aceptados en el perfil.
const (
	IDProofAadhar         = "aadhar"
	IDProofPAN            = "pan"
	IDProofPassport       = "passport"
	IDProofDrivingLicense = "driving_license"
)

// IsValidIDProofType valida el tipo de documento de identidad.
func IsValidIDProofType(t string) bool {
	switch t {
	case IDProofAadhar, IDProofPAN, IDProofPassport, IDProofDrivingLicense:
		return true
	}
	return false
}

// Address dirección postal del negocio del socio.
type Address struct {
	Street  string
	City    string
	State   string
	Pincode string
	Country string // "India" por defecto al aprovisionar
}

// IDProof documento de identidad presentado por el socio.
type IDProof struct {
	Type        string // ver constantes IDProof*
	Number      string
	DocumentURL string
}

// Franchise es el registro de negocio de un socio aprovisionado. Se crea junto a
// su User (1:1 vía UserID, único) cuando la solicitud recibe la aprobación final.
// EnquiryID referencia la solicitud de origen; es informativo, no de propiedad.
// FranchiseCode es único e inmutable una vez asignado.
type Franchise struct {
	ID            string
	EnquiryID     string
	UserID        string
	FranchiseCode string // {FR|CH}{secuencia de 4 dígitos}
	PartnerType   string // franchise_partner | channel_partner

	OwnerName       string
	BusinessName    string
	Email           string
	Phone           string
	Address         Address
	IDProof         IDProof
	BusinessDetails string

	ProfileStatus       string // incomplete | complete
	AgreementStatus     string // pending | accepted | declined
	AgreementAcceptedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
