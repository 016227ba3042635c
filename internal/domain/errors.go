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
	ErrInUse              = errors.New("el recurso está referenciado por otros registros")

	// Motor de inventario.
	ErrInvalidMovementType  = errors.New("tipo de movimiento inválido: use ingreso, egreso o ajuste")
	ErrMissingProduct       = errors.New("idProducto es obligatorio")
	ErrInvalidVariant       = errors.New("idVariante inválido")
	ErrNegativeQuantity     = errors.New("la cantidad no puede ser negativa")
	ErrQuantityTooLarge     = errors.New("la cantidad supera el máximo permitido")
	ErrStockOverflow        = errors.New("el stock resultante supera el máximo permitido")
	ErrProductNotFound      = errors.New("el producto no existe")
	ErrVariantNotFound      = errors.New("la variante no existe para el producto indicado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrIrreversibleMovement = errors.New("los movimientos de ajuste no se pueden eliminar")
	ErrMovementNotFound     = errors.New("movimiento no encontrado")

	// Compras.
	ErrPurchaseCancelled = errors.New("la compra está anulada")
	ErrOverpayment       = errors.New("el monto supera el saldo pendiente de la compra")
	ErrEmptyDetail       = errors.New("el documento debe tener al menos un detalle")
)
