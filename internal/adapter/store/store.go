// Package store persists birth profiles and match history in SQLite via gorm.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ErrNotFound is returned when a record does not exist. It wraps
// gorm.ErrRecordNotFound where gorm reported the miss.
var ErrNotFound = errors.New("record not found")

// Store owns the database handle and the repositories built on it.
type Store struct {
	db       *gorm.DB
	Profiles ProfileRepo
	Matches  MatchRepo
}

// Open connects to the SQLite database at path (":memory:" is allowed) and
// migrates the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases alive for the life of the store.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&ProfileRecord{}, &MatchRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("database ready", "path", path)
	return &Store{
		db:       db,
		Profiles: NewProfileRepo(db, logger),
		Matches:  NewMatchRepo(db, logger),
	}, nil
}

// CheckReadiness pings the database.
func (s *Store) CheckReadiness(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(kind, id string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
	}
	return fmt.Errorf("%w: %s %s: %w", ErrNotFound, kind, id, err)
}
