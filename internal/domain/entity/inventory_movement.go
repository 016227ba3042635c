package entity

import "time"

// MovementType tipo de movimiento del kardex.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementIngreso MovementType = "ingreso" // entrada: suma al stock
	MovementEgreso  MovementType = "egreso"  // salida: resta, nunca por debajo de cero
	MovementAjuste  MovementType = "ajuste"  // fija el stock en un valor absoluto
)

// ParseMovementType acepta solo los tres tipos conocidos.
func ParseMovementType(s string) (MovementType, bool) {
	switch t := MovementType(s); t {
	case MovementIngreso, MovementEgreso, MovementAjuste:
		return t, true
	}
	return "", false
}

// Reversible informa si el movimiento admite borrado compensado.
func (t MovementType) Reversible() bool {
	return t == MovementIngreso || t == MovementEgreso
}

// InventoryMovement registro inmutable de un cambio de stock.
// StockAnterior/StockNuevo son una foto del contador alrededor del cambio.
type InventoryMovement struct {
	ID            int64
	ProductID     int64
	VariantID     *int64
	Tipo          MovementType
	Cantidad      int
	StockAnterior int
	StockNuevo    int
	Referencia    *string
	Nota          *string
	UserID        *int64
	CreatedAt     time.Time
}

// MovementDetail movimiento con los nombres de producto, variante y usuario para listados.
type MovementDetail struct {
	InventoryMovement
	ProductoNombre string
	VarianteSKU    *string
	ColorNombre    *string
	TallaNombre    *string
	UsuarioNombre  *string
}
