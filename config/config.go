package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config configuración de la aplicación
type Config struct {
	// HTTPPort puerto del API HTTP
	HTTPPort int

	// CatalogPath archivo del catálogo (.json o .xlsx)
	CatalogPath string

	// CatalogDSN DSN de Postgres; si está presente, el catálogo se lee de la
	// tabla productos en vez del archivo
	CatalogDSN string

	// TelegramToken token del bot de Telegram; vacío desactiva ese transporte
	TelegramToken string

	// AllowedOrigins orígenes CORS permitidos; vacío permite todos
	AllowedOrigins []string
}

// Load carga la configuración desde variables de entorno (.env si existe)
func Load() (*Config, error) {
	// .env es opcional
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      3000,
		CatalogPath:   "data/productos.json",
		CatalogDSN:    os.Getenv("CATALOG_DSN"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("PORT inválido: %q", raw)
		}
		cfg.HTTPPort = port
	}

	if path := strings.TrimSpace(os.Getenv("CATALOG_PATH")); path != "" {
		cfg.CatalogPath = path
	}

	if raw := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if cfg.CatalogDSN == "" {
		if _, err := os.Stat(cfg.CatalogPath); err != nil {
			return nil, fmt.Errorf("no se encontró el catálogo %s: %w", cfg.CatalogPath, err)
		}
	}
	return cfg, nil
}
