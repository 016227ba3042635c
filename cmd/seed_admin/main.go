// seed_admin crea el primer usuario con rol admin (la migración solo siembra roles y permisos).
//
// Uso: go run ./cmd/seed_admin -email admin@tienda.pe -password 'secreto123' [-nombre "Administradora"]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/boutique-api/internal/application/auth"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/infrastructure/postgres"
	"github.com/jhoicas/boutique-api/pkg/config"
	"github.com/jhoicas/boutique-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "password (mínimo 8 caracteres)")
	nombre := flag.String("nombre", "Administrador", "nombre visible")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	roles, err := roleRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar roles")
	}
	var adminID int64
	for _, r := range roles {
		if r.Nombre == entity.RoleAdmin {
			adminID = r.ID
		}
	}
	if adminID == 0 {
		log.Fatal().Msg("no existe el rol admin: ejecute las migraciones primero")
	}

	users := auth.NewUserUseCase(postgres.NewUserRepository(pool), roleRepo)
	out, err := users.Create(ctx, dto.CreateUserRequest{
		IDRol:    adminID,
		Nombre:   *nombre,
		Email:    *email,
		Password: *password,
	})
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Warn().Str("email", *email).Msg("el usuario ya existe, nada que hacer")
		return
	case err != nil:
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Int64("id", out.ID).Str("email", out.Email).Msg("administrador creado")
}
