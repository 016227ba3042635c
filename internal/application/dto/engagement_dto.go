package dto

import "time"

// SubscribeRequest body de POST /api/public/newsletter.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=200"`
}

// SubscriberResponse suscriptor del newsletter.
type SubscriberResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest body del formulario de contacto.
type ContactRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"max=40"`
	Asunto   string `json:"asunto" validate:"max=200"`
	Mensaje  string `json:"mensaje" validate:"required,min=5,max=5000"`
}

// ContactResponse mensaje de contacto.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Asunto    string    `json:"asunto"`
	Mensaje   string    `json:"mensaje"`
	Leido     bool      `json:"leido"`
	CreatedAt time.Time `json:"createdAt"`
}
