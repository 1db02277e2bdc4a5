package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DataBackend string // "local" (badger embebido) o "postgres"
	DataPath    string // directorio de datos para el backend local
	DatabaseDSN string // DSN de Postgres cuando DataBackend=postgres
	CORSOrigins string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DataBackend: getEnv("DATA_BACKEND", "local"),
		DataPath:    getEnv("DATA_PATH", "./printco-data"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=printco port=5432 sslmode=disable"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DataBackend != "local" && cfg.DataBackend != "postgres" {
		log.Fatalf("[FATAL] DATA_BACKEND inválido: %q (valores posibles: local, postgres)", cfg.DataBackend)
	}
	if cfg.DataBackend == "postgres" && cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=printco port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN usa el valor por defecto, definí la conexión de Postgres para producción.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS usa el valor por defecto, definí tu dominio para producción.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
