package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is en la capa HTTP.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Máquina de estados de enquiries: la acción no es válida desde el estado actual
	// (ej. aprobar dos veces la misma solicitud). El cliente debe refrescar, no reintentar.
	ErrInvalidTransition = errors.New("transición de estado inválida")

	// Precondiciones del contrato de franquicia.
	ErrProfileIncomplete = errors.New("el perfil de la franquicia está incompleto")
	ErrAgreementAccepted = errors.New("el contrato ya fue aceptado")
	ErrAgreementPending  = errors.New("el contrato aún no ha sido aceptado")
)
