package database

import (
	"embed"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate menjalankan semua migrasi goose yang belum diterapkan.
// Skema (termasuk unique constraint kehadiran & jadwal) hidup di migrations/*.sql.
func Migrate() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrationsFS)

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("ambil *sql.DB: %w", err)
	}

	log.Println("🔄 Menjalankan migrasi database...")
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Println("✅ Migrasi selesai.")
	return nil
}
