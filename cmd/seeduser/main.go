// Command seeduser bootstraps the first administrator account so a fresh
// deployment can log in. Idempotent: exits cleanly if the email exists.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/config"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/infra"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	nome := flag.String("nome", "Administrador", "display name for the account")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "initial password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	if _, err := repo.FindByEmail(ctx, *email); err == nil {
		log.Info().Str("email", *email).Msg("usuário já existe, nada a fazer")
		return
	}

	authSvc := service.NewAuthService(repo, cfg)
	user, err := authSvc.CriarUsuario(ctx, dto.CriarUsuarioRequest{
		Nome:     *nome,
		Email:    *email,
		Password: *password,
		Rol:      "administrador",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create administrator")
	}

	log.Info().Str("id", user.ID).Str("email", user.Email).Msg("administrador criado")
}
