package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrWorkOrderNotFound  = errors.New("orden de trabajo no encontrada")
	// ErrSeqNotFound: rollback sobre un período sin contador. No debería ocurrir
	// porque allocate siempre crea el contador primero; si ocurre es fatal para
	// esa operación y se registra, no se reintenta.
	ErrSeqNotFound = errors.New("contador de secuencia no encontrado para el período")
)
