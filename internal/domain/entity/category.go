package entity

import "time"

// Category categoría del catálogo (vestidos, blusas, accesorios...).
type Category struct {
	ID          int64
	Nombre      string
	Slug        string
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
}

// Color dimensión de variante.
type Color struct {
	ID     int64
	Nombre string
	Hex    string
}

// Size talla (S, M, L, 28, 30...). Orden define cómo se muestran en la tienda.
type Size struct {
	ID     int64
	Nombre string
	Orden  int
}
