// cmd/seeduser: crea o actualiza un usuario (reset de password).
// Uso: seeduser -username Caja -password nueva -rol caja
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/infra"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	username := flag.String("username", "", "nombre de usuario")
	password := flag.String("password", "", "password nueva")
	nombre := flag.String("nombre", "", "nombre visible (default: username)")
	rol := flag.String("rol", model.RolCaja, "caja | bascula")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *rol != model.RolCaja && *rol != model.RolBascula {
		log.Fatal().Str("rol", *rol).Msg("rol invalido")
	}
	if *nombre == "" {
		*nombre = *username
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt")
	}

	u := model.Usuario{
		Username:     *username,
		Nombre:       *nombre,
		PasswordHash: string(hash),
		Rol:          *rol,
		Activo:       true,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"nombre", "password_hash", "rol", "activo", "updated_at"}),
	}).Create(&u).Error
	if err != nil {
		log.Fatal().Err(err).Msg("upsert usuario")
	}
	fmt.Printf("Usuario '%s' (%s) creado/actualizado\n", *username, *rol)
}
