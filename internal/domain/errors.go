package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Validación local, antes de cualquier petición.
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrSecretTooShort  = errors.New("el código secreto debe contener al menos 4 caracteres")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrMissingField    = errors.New("faltan campos obligatorios")
	ErrEmptyBarcode    = errors.New("código de barras vacío")

	// Recurso inexistente en el backend.
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrWarehousemanNotFound = errors.New("almacenero no encontrado")
	ErrStockNotFound        = errors.New("stock no encontrado")

	// Red o respuesta no 2xx del backend.
	ErrTransport = errors.New("error de comunicación con el servidor")

	// Flujo de la aplicación.
	ErrIncorrectCode = errors.New("el código secreto es incorrecto")
	ErrNoSession     = errors.New("no hay sesión activa")
	ErrBusy          = errors.New("operación en curso")
	ErrDuplicate     = errors.New("recurso duplicado")
)
