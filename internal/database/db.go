// Package database es la fachada de persistencia: el snapshot completo de la
// aplicación viaja como un único blob JSON bajo una única clave. Hay dos
// backends con el mismo contrato; nadie fuera de este paquete hace I/O.
package database

import (
	"log"

	"printco-backend/internal/config"
)

// StorageKey: clave única bajo la que vive el snapshot serializado.
const StorageKey = "printco_data"

// SnapshotStore: contrato mínimo de la fachada. Load devuelve found=false
// cuando nunca se guardó nada (primer arranque).
type SnapshotStore interface {
	Load() (data []byte, found bool, err error)
	Save(data []byte) error
	Delete() error
	Close() error
}

var Store SnapshotStore

func Init(cfg *config.Config) {
	var err error
	switch cfg.DataBackend {
	case "postgres":
		Store, err = NewPostgresStore(cfg.DatabaseDSN)
	default:
		Store, err = NewBadgerStore(cfg.DataPath)
	}
	if err != nil {
		log.Fatalf("No se pudo inicializar el almacenamiento (%s): %v", cfg.DataBackend, err)
	}
	log.Printf("Almacenamiento %s inicializado", cfg.DataBackend)
}
