package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/jhoicas/boutique-api/pkg/slug"
)

// ReferenciaStockInicial referencia del ingreso que acompaña el alta de un producto o variante.
const ReferenciaStockInicial = "stock inicial"

// ProductUseCase casos de uso de productos y variantes. El stock solo cambia vía kardex.
type ProductUseCase struct {
	txRunner    TxRunner
	stock       StockRecorder
	productRepo repository.ProductRepository // lecturas fuera de transacción
	variantRepo repository.VariantRepository
	cache       ports.CatalogCache
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	stock StockRecorder,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	cache ports.CatalogCache,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:    txRunner,
		stock:       stock,
		productRepo: productRepo,
		variantRepo: variantRepo,
		cache:       cache,
	}
}

// Create crea el producto y, si StockInicial > 0, registra el ingreso en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, userID *int64) (*dto.ProductResponse, error) {
	if err := validatePrices(in.Precio, in.PrecioOferta); err != nil {
		return nil, err
	}
	if in.StockInicial < 0 {
		return nil, domain.ErrNegativeQuantity
	}
	product := &entity.Product{
		CategoryID:   in.IDCategoria,
		Nombre:       strings.TrimSpace(in.Nombre),
		Descripcion:  in.Descripcion,
		Precio:       in.Precio,
		PrecioOferta: in.PrecioOferta,
		Imagenes:     in.Imagenes,
		Activo:       in.Activo == nil || *in.Activo,
		Destacado:    in.Destacado,
	}
	err := uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.VariantRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		var err error
		product.Slug, err = slug.Unique(slug.Make(product.Nombre), func(s string) (bool, error) {
			return productRepo.SlugExists(ctx, s)
		})
		if err != nil {
			return err
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.StockInicial == 0 {
			return nil
		}
		mov, err := uc.stock.ApplyInTx(ctx, movRepo, stockRepo, initialStock(inventory.ProductTarget{ProductID: product.ID}, in.StockInicial, userID))
		if err != nil {
			return err
		}
		product.Stock = mov.StockNuevo
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToProductResponse(product, nil), nil
}

// GetByID obtiene un producto con sus variantes.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	variants, err := uc.variantRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product, variants), nil
}

// Update actualiza un producto. No permite modificar Stock (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.IDCategoria != nil {
		product.CategoryID = in.IDCategoria
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre != product.Nombre {
			current := product.Slug
			product.Slug, err = slug.Unique(slug.Make(nombre), func(s string) (bool, error) {
				if s == current {
					return false, nil
				}
				return uc.productRepo.SlugExists(ctx, s)
			})
			if err != nil {
				return nil, err
			}
		}
		product.Nombre = nombre
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		product.Precio = *in.Precio
	}
	if in.PrecioOferta != nil {
		product.PrecioOferta = in.PrecioOferta
	}
	if in.QuitarOferta {
		product.PrecioOferta = nil
	}
	if in.Imagenes != nil {
		product.Imagenes = in.Imagenes
	}
	if in.Activo != nil {
		product.Activo = *in.Activo
	}
	if in.Destacado != nil {
		product.Destacado = *in.Destacado
	}
	if err := validatePrices(product.Precio, product.PrecioOferta); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToProductResponse(product, nil), nil
}

// List lista productos para el panel (incluye inactivos).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	filter, err := ProductFilterFromQuery(q)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p, nil))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	}, nil
}

// Delete elimina un producto. Con variantes o movimientos devuelve ErrInUse (desactivarlo en su lugar).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

// CreateVariant crea una variante del producto con su ingreso de stock inicial.
func (uc *ProductUseCase) CreateVariant(ctx context.Context, productID int64, in dto.CreateVariantRequest, userID *int64) (*dto.VariantResponse, error) {
	if in.Precio != nil && in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.StockInicial < 0 {
		return nil, domain.ErrNegativeQuantity
	}
	variant := &entity.ProductVariant{
		ProductID: productID,
		ColorID:   in.IDColor,
		SizeID:    in.IDTalla,
		SKU:       trimmed(in.SKU),
		Precio:    in.Precio,
		Imagen:    trimmed(in.Imagen),
	}
	err := uc.txRunner.RunCatalog(ctx, func(
		productRepo repository.ProductRepository,
		variantRepo repository.VariantRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if err := variantRepo.Create(ctx, variant); err != nil {
			return err
		}
		if in.StockInicial == 0 {
			return nil
		}
		target := inventory.VariantTarget{ProductID: productID, VariantID: variant.ID}
		mov, err := uc.stock.ApplyInTx(ctx, movRepo, stockRepo, initialStock(target, in.StockInicial, userID))
		if err != nil {
			return err
		}
		variant.Stock = mov.StockNuevo
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToVariantResponse(variant), nil
}

func (uc *ProductUseCase) GetVariant(ctx context.Context, id int64) (*dto.VariantResponse, error) {
	variant, err := uc.variantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	return ToVariantResponse(variant), nil
}

// UpdateVariant no modifica stock ni producto.
func (uc *ProductUseCase) UpdateVariant(ctx context.Context, id int64, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	variant, err := uc.variantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	if in.Precio != nil && in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	variant.ColorID = in.IDColor
	variant.SizeID = in.IDTalla
	variant.SKU = trimmed(in.SKU)
	variant.Precio = in.Precio
	variant.Imagen = trimmed(in.Imagen)
	if err := uc.variantRepo.Update(ctx, variant); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToVariantResponse(variant), nil
}

func (uc *ProductUseCase) DeleteVariant(ctx context.Context, id int64) error {
	if err := uc.variantRepo.Delete(ctx, id); err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

func (uc *ProductUseCase) ListVariants(ctx context.Context, productID int64) ([]dto.VariantResponse, error) {
	list, err := uc.variantRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *ToVariantResponse(v))
	}
	return out, nil
}

// ProductFilterFromQuery traduce los query params comunes a panel y tienda.
func ProductFilterFromQuery(q dto.ProductListQuery) (repository.ProductFilter, error) {
	f := repository.ProductFilter{
		CategorySlug: strings.TrimSpace(q.Categoria),
		Search:       q.Q,
		OnlyFeatured: q.Destacado,
		Sort:         q.Orden,
		Limit:        q.Limit,
		Offset:       q.Offset,
	}
	if f.Limit <= 0 {
		f.Limit = 24
	}
	if q.Color > 0 {
		f.ColorID = &q.Color
	}
	if q.Talla > 0 {
		f.SizeID = &q.Talla
	}
	var err error
	if f.MinPrice, err = optionalDecimal(q.Min); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalDecimal(q.Max); err != nil {
		return f, err
	}
	return f, nil
}

func optionalDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &d, nil
}

func validatePrices(precio decimal.Decimal, oferta *decimal.Decimal) error {
	if precio.IsNegative() {
		return domain.ErrInvalidInput
	}
	if oferta != nil && (oferta.IsNegative() || oferta.GreaterThan(precio)) {
		return domain.ErrInvalidInput
	}
	return nil
}

func initialStock(target inventory.Target, cantidad int, userID *int64) appinventory.MovementInput {
	ref := ReferenciaStockInicial
	return appinventory.MovementInput{
		Target:     target,
		Tipo:       entity.MovementIngreso,
		Cantidad:   cantidad,
		Referencia: &ref,
		UserID:     userID,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// ToProductResponse convierte un producto (y opcionalmente sus variantes) a su salida HTTP.
func ToProductResponse(p *entity.Product, variants []*entity.ProductVariant) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	imagenes := p.Imagenes
	if imagenes == nil {
		imagenes = []string{}
	}
	out := &dto.ProductResponse{
		ID:            p.ID,
		IDCategoria:   p.CategoryID,
		Nombre:        p.Nombre,
		Slug:          p.Slug,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		PrecioOferta:  p.PrecioOferta,
		PrecioVigente: p.PrecioVigente(),
		Imagenes:      imagenes,
		Stock:         p.Stock,
		Activo:        p.Activo,
		Destacado:     p.Destacado,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for _, v := range variants {
		out.Variantes = append(out.Variantes, *ToVariantResponse(v))
	}
	return out
}

// ToVariantResponse convierte una variante a su salida HTTP.
func ToVariantResponse(v *entity.ProductVariant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:         v.ID,
		IDProducto: v.ProductID,
		IDColor:    v.ColorID,
		IDTalla:    v.SizeID,
		SKU:        v.SKU,
		Precio:     v.Precio,
		Imagen:     v.Imagen,
		Stock:      v.Stock,
	}
}
