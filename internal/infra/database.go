package infra

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erickbalderas17/rastro-pollos/internal/config"
	"github.com/erickbalderas17/rastro-pollos/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured dialect (embedded SQLite file or a Postgres
// server), creates / updates every table and seeds the fixed product catalogue.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
		dialector = sqlite.Open(sqliteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolMax)
	sqlDB.SetMaxIdleConns(cfg.DBPoolMin)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// sqliteDSN adds the connection pragmas to the file path. They go in the DSN
// so every pooled connection gets them, not only the first one.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
}

// RunMigrations creates the schema, applies the index patches and seeds the
// product catalogue. Every step is idempotent.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Producto{},
		&model.Precio{},
		&model.Boleta{},
		&model.BoletaDetalle{},
		&model.Venta{},
		&model.Devolucion{},
		&model.MovimientoCliente{},
		&model.Usuario{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return seedProductos(db)
}

// applySchemaPatches runs DDL that the model tags do not express. Both
// dialects understand CREATE INDEX IF NOT EXISTS.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// estado de cuenta: movimientos en orden cronológico por cliente
		`CREATE INDEX IF NOT EXISTS idx_movimientos_cliente_orden
		    ON movimientos_cliente (cliente_id, fecha_hora, id)`,
		// suma de devoluciones por venta
		`CREATE INDEX IF NOT EXISTS idx_devoluciones_venta
		    ON devoluciones (venta_id)`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}

// seedProductos inserts the base catalogue only when the table is empty.
func seedProductos(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Producto{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	productos := make([]model.Producto, len(model.ProductosBase))
	copy(productos, model.ProductosBase)
	return db.Create(&productos).Error
}

// SeedUsuarios makes sure the "Caja" and "Bascula" accounts exist. Existing
// users are never touched, so passwords changed with cmd/seeduser survive restarts.
func SeedUsuarios(db *gorm.DB, cajaPassword, basculaPassword string) error {
	seeds := []struct {
		username, nombre, rol, password string
	}{
		{"Caja", "Caja", model.RolCaja, cajaPassword},
		{"Bascula", "Báscula", model.RolBascula, basculaPassword},
	}
	for _, s := range seeds {
		var existing model.Usuario
		err := db.Where("username = ?", s.username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := model.Usuario{
			Username:     s.username,
			Nombre:       s.nombre,
			PasswordHash: string(hash),
			Rol:          s.rol,
			Activo:       true,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Info().Str("username", s.username).Str("rol", s.rol).Msg("usuario inicial creado")
	}
	return nil
}
