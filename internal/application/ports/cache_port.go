package ports

import "context"

// CatalogCache define el puerto de salida para la caché de lecturas del catálogo público.
// Los adaptadores (Redis, no-op) nunca devuelven error: una falla de caché se trata como "miss"
// y la lectura va directo a PostgreSQL.
type CatalogCache interface {
	// Get devuelve el valor guardado en key y si existía.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set guarda value con el TTL configurado en el adaptador.
	Set(ctx context.Context, key string, value []byte)
	// InvalidateCatalog descarta todas las entradas del catálogo (tras escrituras de catálogo o stock).
	InvalidateCatalog(ctx context.Context)
}

// InvalidateCatalog tolera una caché nil (tests y casos de uso sin tienda).
func InvalidateCatalog(ctx context.Context, c CatalogCache) {
	if c != nil {
		c.InvalidateCatalog(ctx)
	}
}
