package entity

import "time"

// AgreementLog es la entrada de auditoría de una aceptación de contrato.
// Append-only: se escribe una por aceptación y nunca se muta ni se borra.
type AgreementLog struct {
	ID               string
	FranchiseID      string
	AgreementVersion string // versión del texto legal aceptado
	AcceptedAt       time.Time
	SignatureData    *string
	IPAddress        *string
	UserAgent        *string
	PDFURL           *string
}
