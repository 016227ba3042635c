package dto

import "time"

// BannerRequest alta/edición de banner.
type BannerRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=1,max=200"`
	Subtitulo string `json:"subtitulo" validate:"max=255"`
	ImagenURL string `json:"imagenUrl" validate:"required,url"`
	Enlace    string `json:"enlace"`
	Orden     int    `json:"orden"`
	Activo    *bool  `json:"activo"`
}

// BannerResponse salida de banner.
type BannerResponse struct {
	ID        int64  `json:"id"`
	Titulo    string `json:"titulo"`
	Subtitulo string `json:"subtitulo"`
	ImagenURL string `json:"imagenUrl"`
	Enlace    string `json:"enlace"`
	Orden     int    `json:"orden"`
	Activo    bool   `json:"activo"`
}

// PageContentRequest alta/edición de página. Slug vacío se genera desde el título.
type PageContentRequest struct {
	Slug      string `json:"slug" validate:"omitempty,max=140"`
	Titulo    string `json:"titulo" validate:"required,min=1,max=200"`
	Contenido string `json:"contenido"`
	Publicada bool   `json:"publicada"`
}

// PageContentResponse salida de página.
type PageContentResponse struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Titulo    string    `json:"titulo"`
	Contenido string    `json:"contenido"`
	Publicada bool      `json:"publicada"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FAQRequest alta/edición de pregunta frecuente.
type FAQRequest struct {
	Pregunta  string `json:"pregunta" validate:"required,min=3"`
	Respuesta string `json:"respuesta" validate:"required"`
	Orden     int    `json:"orden"`
	Activo    *bool  `json:"activo"`
}

// FAQResponse salida de pregunta frecuente.
type FAQResponse struct {
	ID        int64  `json:"id"`
	Pregunta  string `json:"pregunta"`
	Respuesta string `json:"respuesta"`
	Orden     int    `json:"orden"`
	Activo    bool   `json:"activo"`
}

// AboutRequest contenido de la sección "nosotros".
type AboutRequest struct {
	Titulo    string `json:"titulo" validate:"required,max=200"`
	Contenido string `json:"contenido"`
	ImagenURL string `json:"imagenUrl" validate:"omitempty,url"`
}

// AboutResponse salida de la sección "nosotros".
type AboutResponse struct {
	Titulo    string    `json:"titulo"`
	Contenido string    `json:"contenido"`
	ImagenURL string    `json:"imagenUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}
