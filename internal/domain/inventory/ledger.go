package inventory

import (
	"math"

	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// MaxStock tope de cantidades y contadores: las columnas de stock y cantidad son INT.
const MaxStock = math.MaxInt32

// Apply calcula el stock resultante de aplicar un movimiento.
//   - ingreso: current + cantidad; error si supera MaxStock
//   - egreso:  current - cantidad; error si el resultado sería negativo
//   - ajuste:  cantidad (valor absoluto)
func Apply(tipo entity.MovementType, current, cantidad int) (int, error) {
	if cantidad < 0 {
		return current, domain.ErrNegativeQuantity
	}
	if cantidad > MaxStock {
		return current, domain.ErrQuantityTooLarge
	}
	switch tipo {
	case entity.MovementIngreso:
		if current > MaxStock-cantidad {
			return current, domain.ErrStockOverflow
		}
		return current + cantidad, nil
	case entity.MovementEgreso:
		if current-cantidad < 0 {
			return current, domain.ErrInsufficientStock
		}
		return current - cantidad, nil
	case entity.MovementAjuste:
		return cantidad, nil
	}
	return current, domain.ErrInvalidMovementType
}

// Reverse deshace el efecto de un movimiento ya aplicado. Un ajuste no tiene inverso.
// Deshacer un ingreso cuyo stock ya se consumió se rechaza en lugar de dejar el contador negativo.
func Reverse(tipo entity.MovementType, current, cantidad int) (int, error) {
	switch tipo {
	case entity.MovementIngreso:
		return Apply(entity.MovementEgreso, current, cantidad)
	case entity.MovementEgreso:
		return Apply(entity.MovementIngreso, current, cantidad)
	case entity.MovementAjuste:
		return current, domain.ErrIrreversibleMovement
	}
	return current, domain.ErrInvalidMovementType
}
