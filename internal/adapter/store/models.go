package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileRecord is the persisted form of a computed birth profile. Charts are
// stored as JSON so a reload never recomputes them.
type ProfileRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	BirthDate   string `gorm:"not null"`
	BirthTime   string `gorm:"not null"`
	Meridian    string
	BirthPlace  string `gorm:"not null"`
	PlaceName   string
	Lat         float64
	Lon         float64
	PlaceSource string

	StarID        int `gorm:"index:idx_profile_star_rasi"`
	RasiID        int `gorm:"index:idx_profile_star_rasi"`
	Lagnam        int
	RasiChart     datatypes.JSON
	NavamsamChart datatypes.JSON
	Longitudes    datatypes.JSON

	ComputedAt time.Time
	CreatedAt  time.Time `gorm:"index"`
}

func (ProfileRecord) TableName() string { return "profiles" }

// MatchRecord is one stored compatibility evaluation.
type MatchRecord struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BrideProfileID *uuid.UUID `gorm:"type:uuid;index"`
	GroomProfileID *uuid.UUID `gorm:"type:uuid;index"`
	BrideStarID    int
	BrideRasiID    int
	GroomStarID    int
	GroomRasiID    int

	Score          float64
	Percentage     int
	CanMarry       bool
	Verdict        string
	Recommendation string
	Report         datatypes.JSON

	CreatedAt time.Time `gorm:"index"`
}

func (MatchRecord) TableName() string { return "matches" }
