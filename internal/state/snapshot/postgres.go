package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/dineboard/internal/state"
	"github.com/tair/dineboard/pkg/logger"
)

// SnapshotRecord is the single-row snapshot table
type SnapshotRecord struct {
	Key       string    `gorm:"primaryKey"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// PostgresStore persists the snapshot as one upserted row
type PostgresStore struct {
	db  *gorm.DB
	key string
}

// NewPostgresStore migrates the snapshot table and returns a store
func NewPostgresStore(db *gorm.DB, key string) (*PostgresStore, error) {
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}

	logger.Logger.Info().
		Str("key", key).
		Msg("Postgres snapshot store initialized")

	return &PostgresStore{db: db, key: key}, nil
}

func (s *PostgresStore) Load(ctx context.Context) (*state.Snapshot, error) {
	var record SnapshotRecord
	err := s.db.WithContext(ctx).First(&record, "key = ?", s.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap state.Snapshot
	if err := json.Unmarshal(record.Payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *PostgresStore) Save(ctx context.Context, snap *state.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := SnapshotRecord{
		Key:       s.key,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}

	// Whole-object overwrite: upsert on the fixed key
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
