// migrate aplica o revierte las migraciones embebidas sin levantar el servidor.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [pasos]   (sin pasos revierte todo)
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/boutique-api/internal/infrastructure/postgres"
	"github.com/jhoicas/boutique-api/pkg/config"
	"github.com/jhoicas/boutique-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	dsn := cfg.DB.ConnectionString()

	switch cmd {
	case "up":
		err = postgres.Migrate(dsn)
	case "down":
		steps := 0
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil || steps < 0 {
				log.Fatal().Str("pasos", os.Args[2]).Msg("pasos inválidos")
			}
		}
		err = postgres.MigrateDown(dsn, steps)
	default:
		log.Fatal().Str("comando", cmd).Msg("use up o down")
	}
	if err != nil {
		log.Fatal().Err(err).Str("comando", cmd).Msg("migraciones")
	}
	log.Info().Str("comando", cmd).Msg("listo")
}
