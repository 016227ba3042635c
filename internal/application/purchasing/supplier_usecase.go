package purchasing

import (
	"context"
	"strings"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s := &entity.Supplier{Activo: true}
	applySupplier(s, in)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToSupplierResponse(s), nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	applySupplier(s, in)
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return ToSupplierResponse(s), nil
}

// Delete falla con ErrInUse si el proveedor tiene compras o devoluciones.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *SupplierUseCase) List(ctx context.Context, search string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSupplierResponse(s))
	}
	return out, nil
}

func applySupplier(s *entity.Supplier, in dto.SupplierRequest) {
	s.Nombre = strings.TrimSpace(in.Nombre)
	s.RUC = strings.TrimSpace(in.RUC)
	s.Contacto = strings.TrimSpace(in.Contacto)
	s.Telefono = strings.TrimSpace(in.Telefono)
	s.Email = strings.ToLower(strings.TrimSpace(in.Email))
	s.Direccion = strings.TrimSpace(in.Direccion)
	if in.Activo != nil {
		s.Activo = *in.Activo
	}
}

func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Nombre:    s.Nombre,
		RUC:       s.RUC,
		Contacto:  s.Contacto,
		Telefono:  s.Telefono,
		Email:     s.Email,
		Direccion: s.Direccion,
		Activo:    s.Activo,
		CreatedAt: s.CreatedAt,
	}
}
