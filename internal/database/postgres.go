package database

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot: una sola fila con el blob completo. El layout single-key se
// mantiene también en Postgres; no hay tablas por entidad.
type Snapshot struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load() ([]byte, bool, error) {
	var snap Snapshot
	err := s.db.First(&snap, "key = ?", StorageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return snap.Data, true, nil
}

func (s *PostgresStore) Save(data []byte) error {
	snap := Snapshot{Key: StorageKey, Data: data}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

func (s *PostgresStore) Delete() error {
	return s.db.Delete(&Snapshot{}, "key = ?", StorageKey).Error
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
