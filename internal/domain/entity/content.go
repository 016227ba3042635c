package entity

import "time"

// Banner carrusel de la portada.
type Banner struct {
	ID        int64
	Titulo    string
	Subtitulo string
	ImagenURL string
	Enlace    string
	Orden     int
	Activo    bool
}

// Page página estática (envíos, cambios y devoluciones, términos...).
type Page struct {
	ID        int64
	Slug      string
	Titulo    string
	Contenido string
	Publicada bool
	UpdatedAt time.Time
}

// FAQ pregunta frecuente.
type FAQ struct {
	ID        int64
	Pregunta  string
	Respuesta string
	Orden     int
	Activo    bool
}

// About sección "nosotros" (registro único).
type About struct {
	Titulo    string
	Contenido string
	ImagenURL string
	UpdatedAt time.Time
}

// Subscriber suscriptor del newsletter. Token permite darse de baja sin sesión.
type Subscriber struct {
	ID        int64
	Email     string
	Token     string
	Activo    bool
	CreatedAt time.Time
}

// ContactMessage mensaje del formulario de contacto.
type ContactMessage struct {
	ID        int64
	Nombre    string
	Email     string
	Telefono  string
	Asunto    string
	Mensaje   string
	Leido     bool
	CreatedAt time.Time
}
