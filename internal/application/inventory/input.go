package inventory

import (
	"strconv"
	"strings"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// MovementInput movimiento ya validado: tipo cerrado, destino resuelto y cantidad >= 0.
type MovementInput struct {
	Target     inventory.Target
	Tipo       entity.MovementType
	Cantidad   int
	Referencia *string
	Nota       *string
	UserID     *int64 // nil = operación anónima
}

// ParseMovementRequest valida el body en el orden del kardex: tipo, producto, variante, cantidad.
// Cualquier campo fuera de contrato se rechaza antes de tocar la base de datos.
func ParseMovementRequest(req dto.CreateMovementRequest, userID *int64) (MovementInput, error) {
	tipo, ok := entity.ParseMovementType(strings.TrimSpace(req.Tipo))
	if !ok {
		return MovementInput{}, domain.ErrInvalidMovementType
	}
	if req.IDProducto == nil || *req.IDProducto <= 0 {
		return MovementInput{}, domain.ErrMissingProduct
	}
	if req.IDVariante != nil && *req.IDVariante <= 0 {
		return MovementInput{}, domain.ErrInvalidVariant
	}
	if req.Cantidad == nil {
		return MovementInput{}, domain.ErrInvalidInput
	}
	if *req.Cantidad < 0 {
		return MovementInput{}, domain.ErrNegativeQuantity
	}
	if *req.Cantidad > inventory.MaxStock {
		return MovementInput{}, domain.ErrQuantityTooLarge
	}
	return MovementInput{
		Target:     inventory.NewTarget(*req.IDProducto, req.IDVariante),
		Tipo:       tipo,
		Cantidad:   *req.Cantidad,
		Referencia: optionalText(req.Referencia),
		Nota:       optionalText(req.Nota),
		UserID:     userID,
	}, nil
}

// ParseMovementQuery convierte los query params del listado en un filtro tipado.
func ParseMovementQuery(q dto.MovementListQuery, limit int) (repository.MovementFilter, error) {
	f := repository.MovementFilter{Limit: limit}
	var err error
	if f.ProductID, err = optionalID(q.Producto); err != nil {
		return f, err
	}
	if f.VariantID, err = optionalID(q.Variante); err != nil {
		return f, err
	}
	if s := strings.TrimSpace(q.Tipo); s != "" {
		tipo, ok := entity.ParseMovementType(s)
		if !ok {
			return f, domain.ErrInvalidMovementType
		}
		f.Tipo = &tipo
	}
	switch strings.ToLower(strings.TrimSpace(q.Dir)) {
	case "", "desc":
	case "asc":
		f.Ascending = true
	default:
		return f, domain.ErrInvalidInput
	}
	return f, nil
}

func optionalID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return &id, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
