// Package storefront lecturas públicas de la tienda: catálogo, detalle de
// producto, validación de carrito y feed XML. Las lecturas del catálogo pasan
// por ports.CatalogCache.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// feedPageSize tamaño de página al recorrer el catálogo para el feed.
const feedPageSize = 100

// Config datos de la tienda usados en precios y enlaces.
type Config struct {
	StoreName string
	BaseURL   string
	Currency  string
}

// StorefrontUseCase casos de uso públicos (sin sesión).
type StorefrontUseCase struct {
	products   repository.ProductRepository
	variants   repository.VariantRepository
	categories repository.CategoryRepository
	colors     repository.ColorRepository
	sizes      repository.SizeRepository
	cache      ports.CatalogCache
	feed       ports.ProductFeedBuilder
	cfg        Config
	now        func() time.Time
}

func NewStorefrontUseCase(
	products repository.ProductRepository,
	variants repository.VariantRepository,
	categories repository.CategoryRepository,
	colors repository.ColorRepository,
	sizes repository.SizeRepository,
	cache ports.CatalogCache,
	feed ports.ProductFeedBuilder,
	cfg Config,
) *StorefrontUseCase {
	return &StorefrontUseCase{
		products:   products,
		variants:   variants,
		categories: categories,
		colors:     colors,
		sizes:      sizes,
		cache:      cache,
		feed:       feed,
		cfg:        cfg,
		now:        time.Now,
	}
}

// ListProducts productos activos con filtros y paginación.
func (uc *StorefrontUseCase) ListProducts(ctx context.Context, q dto.ProductListQuery) (*dto.PublicProductListResponse, error) {
	filter, err := catalog.ProductFilterFromQuery(q)
	if err != nil {
		return nil, err
	}
	filter.OnlyActive = true

	var out dto.PublicProductListResponse
	err = uc.cached(ctx, "products:"+listKey(filter), &out, func() error {
		list, total, err := uc.products.List(ctx, filter)
		if err != nil {
			return err
		}
		variants, err := uc.variantsByProduct(ctx, list)
		if err != nil {
			return err
		}
		cats, err := uc.categoryIndex(ctx)
		if err != nil {
			return err
		}
		out.Items = make([]dto.PublicProductResponse, 0, len(list))
		for _, p := range list {
			item := toPublicProduct(p, variants[p.ID], cats)
			item.Variantes = nil
			out.Items = append(out.Items, item)
		}
		out.Page = dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct detalle por slug con variantes, colores y tallas. Inactivos no existen para la tienda.
func (uc *StorefrontUseCase) GetProduct(ctx context.Context, slug string) (*dto.PublicProductResponse, error) {
	var out dto.PublicProductResponse
	err := uc.cached(ctx, "product:"+slug, &out, func() error {
		p, err := uc.products.GetBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if p == nil || !p.Activo {
			return domain.ErrNotFound
		}
		variants, err := uc.variants.ListByProduct(ctx, p.ID)
		if err != nil {
			return err
		}
		cats, err := uc.categoryIndex(ctx)
		if err != nil {
			return err
		}
		out = toPublicProduct(p, variants, cats)
		if len(variants) == 0 {
			return nil
		}
		return uc.attachDimensions(ctx, &out, variants)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories categorías activas.
func (uc *StorefrontUseCase) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := uc.cached(ctx, "categories", &out, func() error {
		list, err := uc.categories.List(ctx, true)
		if err != nil {
			return err
		}
		out = make([]dto.CategoryResponse, 0, len(list))
		for _, c := range list {
			out = append(out, *catalog.ToCategoryResponse(c))
		}
		return nil
	})
	return out, err
}

// ValidateCart contrasta cada línea con el stock y precio actuales sin reservar nada.
// Líneas repetidas sobre el mismo producto o variante suman su demanda.
func (uc *StorefrontUseCase) ValidateCart(ctx context.Context, in dto.CartValidateRequest) (*dto.CartValidateResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	demand := make(map[string]int, len(in.Items))
	for _, l := range in.Items {
		if l.IDProducto <= 0 || l.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		demand[lineKey(l)] += l.Cantidad
	}

	resp := &dto.CartValidateResponse{Total: decimal.Zero, Moneda: uc.cfg.Currency, Valido: true}
	products := map[int64]*entity.Product{}
	for _, l := range in.Items {
		line := dto.CartLineResponse{IDProducto: l.IDProducto, IDVariante: l.IDVariante, Cantidad: l.Cantidad}
		p, ok := products[l.IDProducto]
		if !ok {
			var err error
			if p, err = uc.products.GetByID(ctx, l.IDProducto); err != nil {
				return nil, err
			}
			products[l.IDProducto] = p
		}
		uc.checkLine(ctx, &line, p, demand[lineKey(l)])
		if line.Disponible {
			line.Subtotal = line.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.Cantidad)))
			resp.Total = resp.Total.Add(line.Subtotal)
			resp.Unidades += l.Cantidad
		} else {
			resp.Valido = false
		}
		resp.Items = append(resp.Items, line)
	}
	return resp, nil
}

func (uc *StorefrontUseCase) checkLine(ctx context.Context, line *dto.CartLineResponse, p *entity.Product, demand int) {
	line.Subtotal = decimal.Zero
	if p == nil || !p.Activo {
		line.Motivo = "producto no disponible"
		return
	}
	line.Nombre = p.Nombre
	line.PrecioUnitario = p.PrecioVigente()
	stock := p.Stock

	variants, err := uc.variants.ListByProduct(ctx, p.ID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Int64("producto", p.ID).Msg("carrito: no se pudieron leer variantes")
		line.Motivo = "no se pudo verificar el stock"
		return
	}
	switch {
	case line.IDVariante == nil && len(variants) > 0:
		line.Motivo = "seleccione color y talla"
		return
	case line.IDVariante != nil:
		var v *entity.ProductVariant
		for _, cand := range variants {
			if cand.ID == *line.IDVariante {
				v = cand
			}
		}
		if v == nil {
			line.Motivo = "la variante no existe"
			return
		}
		line.PrecioUnitario = v.PrecioFinal(p)
		if v.SKU != nil {
			line.Nombre = p.Nombre + " (" + *v.SKU + ")"
		}
		stock = v.Stock
	}
	line.StockActual = stock
	if demand > stock {
		line.Motivo = fmt.Sprintf("stock insuficiente: quedan %d", stock)
		return
	}
	line.Disponible = true
}

// Feed genera el feed XML de todos los productos activos.
func (uc *StorefrontUseCase) Feed(ctx context.Context) ([]byte, error) {
	if data, ok := cacheGet(ctx, uc.cache, "feed"); ok {
		return data, nil
	}
	cats, err := uc.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(uc.cfg.BaseURL, "/")
	var items []ports.FeedItem
	for offset := 0; ; offset += feedPageSize {
		list, total, err := uc.products.List(ctx, repository.ProductFilter{OnlyActive: true, Limit: feedPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		variants, err := uc.variantsByProduct(ctx, list)
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			pub := toPublicProduct(p, variants[p.ID], cats)
			item := ports.FeedItem{
				ID:           p.ID,
				Title:        p.Nombre,
				Description:  p.Descripcion,
				Link:         base + "/productos/" + url.PathEscape(p.Slug),
				ImageLinks:   p.Imagenes,
				Price:        p.Precio,
				Availability: pub.Disponible,
			}
			if vig := p.PrecioVigente(); vig.LessThan(p.Precio) {
				item.SalePrice = &vig
			}
			if pub.Categoria != nil {
				item.Category = pub.Categoria.Nombre
			}
			items = append(items, item)
		}
		if len(list) == 0 || offset+len(list) >= total {
			break
		}
	}
	data, err := uc.feed.BuildProductFeed(ctx, ports.FeedChannel{
		Title:       uc.cfg.StoreName,
		Link:        base,
		Description: "Catálogo de " + uc.cfg.StoreName,
		Currency:    uc.cfg.Currency,
		GeneratedAt: uc.now(),
	}, items)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, uc.cache, "feed", data)
	return data, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// cached lee key de la caché en dst o ejecuta load y guarda dst serializado.
func (uc *StorefrontUseCase) cached(ctx context.Context, key string, dst any, load func() error) error {
	if data, ok := cacheGet(ctx, uc.cache, key); ok {
		if err := json.Unmarshal(data, dst); err == nil {
			return nil
		}
	}
	if err := load(); err != nil {
		return err
	}
	if data, err := json.Marshal(dst); err == nil {
		cacheSet(ctx, uc.cache, key, data)
	}
	return nil
}

func cacheGet(ctx context.Context, c ports.CatalogCache, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.Get(ctx, key)
}

func cacheSet(ctx context.Context, c ports.CatalogCache, key string, data []byte) {
	if c != nil {
		c.Set(ctx, key, data)
	}
}

func (uc *StorefrontUseCase) variantsByProduct(ctx context.Context, list []*entity.Product) (map[int64][]*entity.ProductVariant, error) {
	out := make(map[int64][]*entity.ProductVariant, len(list))
	if len(list) == 0 {
		return out, nil
	}
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	variants, err := uc.variants.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range variants {
		out[v.ProductID] = append(out[v.ProductID], v)
	}
	return out, nil
}

func (uc *StorefrontUseCase) categoryIndex(ctx context.Context) (map[int64]*entity.Category, error) {
	list, err := uc.categories.List(ctx, true)
	if err != nil {
		return nil, err
	}
	idx := make(map[int64]*entity.Category, len(list))
	for _, c := range list {
		idx[c.ID] = c
	}
	return idx, nil
}

// attachDimensions agrega los colores y tallas que usan las variantes.
func (uc *StorefrontUseCase) attachDimensions(ctx context.Context, out *dto.PublicProductResponse, variants []*entity.ProductVariant) error {
	usedColors, usedSizes := map[int64]bool{}, map[int64]bool{}
	for _, v := range variants {
		if v.ColorID != nil {
			usedColors[*v.ColorID] = true
		}
		if v.SizeID != nil {
			usedSizes[*v.SizeID] = true
		}
	}
	if len(usedColors) > 0 {
		colors, err := uc.colors.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range colors {
			if usedColors[c.ID] {
				out.Colores = append(out.Colores, dto.ColorResponse{ID: c.ID, Nombre: c.Nombre, Hex: c.Hex})
			}
		}
	}
	if len(usedSizes) > 0 {
		sizes, err := uc.sizes.List(ctx)
		if err != nil {
			return err
		}
		for _, s := range sizes {
			if usedSizes[s.ID] {
				out.Tallas = append(out.Tallas, dto.SizeResponse{ID: s.ID, Nombre: s.Nombre, Orden: s.Orden})
			}
		}
		sort.SliceStable(out.Tallas, func(i, j int) bool { return out.Tallas[i].Orden < out.Tallas[j].Orden })
	}
	return nil
}

// toPublicProduct: con variantes, la disponibilidad sale de ellas; sin variantes, del stock propio.
func toPublicProduct(p *entity.Product, variants []*entity.ProductVariant, cats map[int64]*entity.Category) dto.PublicProductResponse {
	imagenes := p.Imagenes
	if imagenes == nil {
		imagenes = []string{}
	}
	out := dto.PublicProductResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Slug:          p.Slug,
		Descripcion:   p.Descripcion,
		Precio:        p.Precio,
		PrecioOferta:  p.PrecioOferta,
		PrecioVigente: p.PrecioVigente(),
		Imagenes:      imagenes,
		Destacado:     p.Destacado,
		Disponible:    len(variants) == 0 && p.Stock > 0,
	}
	if p.CategoryID != nil {
		if c, ok := cats[*p.CategoryID]; ok {
			out.Categoria = catalog.ToCategoryResponse(c)
		}
	}
	for _, v := range variants {
		out.Variantes = append(out.Variantes, dto.PublicVariantResponse{
			ID:         v.ID,
			IDColor:    v.ColorID,
			IDTalla:    v.SizeID,
			SKU:        v.SKU,
			Precio:     v.PrecioFinal(p),
			Imagen:     v.Imagen,
			Disponible: v.Stock > 0,
			Stock:      v.Stock,
		})
		if v.Stock > 0 {
			out.Disponible = true
		}
	}
	return out
}

func lineKey(l dto.CartLineRequest) string {
	if l.IDVariante != nil {
		return fmt.Sprintf("v%d", *l.IDVariante)
	}
	return fmt.Sprintf("p%d", l.IDProducto)
}

// listKey forma canónica del filtro para la clave de caché.
func listKey(f repository.ProductFilter) string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("cat", f.CategorySlug)
	if f.ColorID != nil {
		set("color", fmt.Sprint(*f.ColorID))
	}
	if f.SizeID != nil {
		set("talla", fmt.Sprint(*f.SizeID))
	}
	if f.MinPrice != nil {
		set("min", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		set("max", f.MaxPrice.String())
	}
	set("q", strings.ToLower(strings.TrimSpace(f.Search)))
	set("orden", f.Sort)
	if f.OnlyFeatured {
		set("dest", "1")
	}
	set("limit", fmt.Sprint(f.Limit))
	set("offset", fmt.Sprint(f.Offset))
	return v.Encode()
}
