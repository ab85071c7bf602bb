package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin            = "admin"
	RoleHR               = "hr"
	RoleOperationalHead  = "operational_head"
	RoleFranchisePartner = "franchise_partner"
	RoleChannelPartner   = "channel_partner"
)

// IsPartnerRole indica si el rol corresponde a una cuenta de socio (tiene franquicia asociada).
func IsPartnerRole(role string) bool {
	return role == RoleFranchisePartner || role == RoleChannelPartner
}

// IsStaffRole indica si el rol corresponde al personal interno del portal.
func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleHR || role == RoleOperationalHead
}

// User representa una cuenta del portal: personal interno o socio aprovisionado.
// Para roles de socio, FranchiseID referencia su Franchise (1:1, se asigna en el
// aprovisionamiento después de crear la franquicia).
type User struct {
	ID           string
	Name         string
	Email        string // único a nivel de store
	Phone        string
	Role         string // ver constantes Role*
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	FranchiseID  *string // nil para personal interno
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
