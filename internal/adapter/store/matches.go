package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/couchcryptid/porutham-service/internal/domain"
)

// MatchEntry is a stored evaluation. Profile IDs are empty when the parties
// were given inline rather than by stored profile.
type MatchEntry struct {
	ID             string          `json:"id"`
	BrideProfileID string          `json:"bride_profile_id,omitempty"`
	GroomProfileID string          `json:"groom_profile_id,omitempty"`
	Bride          domain.Party    `json:"bride"`
	Groom          domain.Party    `json:"groom"`
	Report         domain.Porutham `json:"report"`
	CreatedAt      time.Time       `json:"created_at"`
}

// MatchRepo records compatibility evaluations.
type MatchRepo interface {
	Record(ctx context.Context, e MatchEntry) (MatchEntry, error)
	Get(ctx context.Context, id string) (MatchEntry, error)
	List(ctx context.Context, limit int) ([]MatchEntry, error)
}

type matchRepo struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewMatchRepo creates a MatchRepo on db.
func NewMatchRepo(db *gorm.DB, logger *slog.Logger) MatchRepo {
	return &matchRepo{db: db, log: logger.With("repo", "MatchRepo")}
}

func (r *matchRepo) Record(ctx context.Context, e MatchEntry) (MatchEntry, error) {
	report, err := json.Marshal(e.Report)
	if err != nil {
		return MatchEntry{}, fmt.Errorf("encode report: %w", err)
	}

	rec := MatchRecord{
		ID:             uuid.New(),
		BrideStarID:    e.Bride.StarID,
		BrideRasiID:    e.Bride.RasiID,
		GroomStarID:    e.Groom.StarID,
		GroomRasiID:    e.Groom.RasiID,
		Score:          e.Report.Score,
		Percentage:     e.Report.Summary.Percentage,
		CanMarry:       e.Report.CanMarry,
		Verdict:        e.Report.Summary.Verdict,
		Recommendation: e.Report.Recommendation,
		Report:         datatypes.JSON(report),
		CreatedAt:      domain.Now(),
	}
	if rec.BrideProfileID, err = optionalUUID(e.BrideProfileID); err != nil {
		return MatchEntry{}, fmt.Errorf("bride profile id: %w", err)
	}
	if rec.GroomProfileID, err = optionalUUID(e.GroomProfileID); err != nil {
		return MatchEntry{}, fmt.Errorf("groom profile id: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return MatchEntry{}, fmt.Errorf("record match: %w", err)
	}
	r.log.Debug("match recorded", "id", rec.ID, "verdict", rec.Verdict)

	e.ID = rec.ID.String()
	e.CreatedAt = rec.CreatedAt
	return e, nil
}

func (r *matchRepo) Get(ctx context.Context, id string) (MatchEntry, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return MatchEntry{}, notFound("match", id, nil)
	}
	var rec MatchRecord
	if err := r.db.WithContext(ctx).Where("id = ?", uid).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MatchEntry{}, notFound("match", id, err)
		}
		return MatchEntry{}, fmt.Errorf("get match: %w", err)
	}
	return fromMatchRecord(rec)
}

// List returns the most recent evaluations first. A non-positive limit
// returns everything.
func (r *matchRepo) List(ctx context.Context, limit int) ([]MatchEntry, error) {
	var recs []MatchRecord
	q := r.db.WithContext(ctx).Order("created_at desc").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]MatchEntry, 0, len(recs))
	for _, rec := range recs {
		e, err := fromMatchRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func fromMatchRecord(rec MatchRecord) (MatchEntry, error) {
	e := MatchEntry{
		ID:        rec.ID.String(),
		Bride:     domain.Party{StarID: rec.BrideStarID, RasiID: rec.BrideRasiID},
		Groom:     domain.Party{StarID: rec.GroomStarID, RasiID: rec.GroomRasiID},
		CreatedAt: rec.CreatedAt,
	}
	if rec.BrideProfileID != nil {
		e.BrideProfileID = rec.BrideProfileID.String()
	}
	if rec.GroomProfileID != nil {
		e.GroomProfileID = rec.GroomProfileID.String()
	}
	if err := decodeJSON(rec.Report, &e.Report); err != nil {
		return MatchEntry{}, fmt.Errorf("decode report: %w", err)
	}
	return e, nil
}

func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
