package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidAmount      = errors.New("monto inválido")
	ErrMalformedRecord    = errors.New("registro mal formado")
	ErrLoad               = errors.New("error al cargar datos")
	ErrSave               = errors.New("error al guardar datos")
)
