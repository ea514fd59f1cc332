package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// "email desconocido" y "password incorrecto" comparten ErrInvalidCredentials
// a propósito: el llamador nunca debe poder distinguirlos.
// El acceso cruzado entre tiendas se reporta como ErrNotFound, nunca como
// ErrPermissionDenied, para no confirmar la existencia del recurso.
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidSession     = errors.New("sesión inválida o expirada")
	ErrNoShop             = errors.New("el usuario no tiene tienda asignada")
	ErrPermissionDenied   = errors.New("permiso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrSystemRole         = errors.New("los roles de sistema no pueden eliminarse")
	ErrInvalidInput       = errors.New("entrada inválida")
)
