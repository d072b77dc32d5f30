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

// Profile is a stored birth profile.
type Profile struct {
	ID string `json:"id"`
	domain.BirthProfile
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRepo persists computed birth profiles.
type ProfileRepo interface {
	Create(ctx context.Context, p domain.BirthProfile) (Profile, error)
	Get(ctx context.Context, id string) (Profile, error)
	List(ctx context.Context, limit, offset int) ([]Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *slog.Logger
}

// NewProfileRepo creates a ProfileRepo on db.
func NewProfileRepo(db *gorm.DB, logger *slog.Logger) ProfileRepo {
	return &profileRepo{db: db, log: logger.With("repo", "ProfileRepo")}
}

func (r *profileRepo) Create(ctx context.Context, p domain.BirthProfile) (Profile, error) {
	rec, err := toProfileRecord(p)
	if err != nil {
		return Profile{}, err
	}
	rec.ID = uuid.New()
	rec.CreatedAt = domain.Now()

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	r.log.Debug("profile stored", "id", rec.ID, "star_id", rec.StarID, "rasi_id", rec.RasiID)
	return fromProfileRecord(rec)
}

func (r *profileRepo) Get(ctx context.Context, id string) (Profile, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Profile{}, notFound("profile", id, nil)
	}
	var rec ProfileRecord
	if err := r.db.WithContext(ctx).Where("id = ?", uid).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, notFound("profile", id, err)
		}
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return fromProfileRecord(rec)
}

func (r *profileRepo) List(ctx context.Context, limit, offset int) ([]Profile, error) {
	var recs []ProfileRecord
	q := r.db.WithContext(ctx).Order("created_at desc").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]Profile, 0, len(recs))
	for _, rec := range recs {
		p, err := fromProfileRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toProfileRecord(p domain.BirthProfile) (ProfileRecord, error) {
	rasi, err := json.Marshal(p.RasiChart)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("encode rasi chart: %w", err)
	}
	navamsam, err := json.Marshal(p.NavamsamChart)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("encode navamsam chart: %w", err)
	}
	lons, err := json.Marshal(p.Longitudes)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("encode longitudes: %w", err)
	}
	return ProfileRecord{
		Name:          p.Name,
		BirthDate:     p.BirthDate,
		BirthTime:     p.BirthTime,
		Meridian:      p.Meridian,
		BirthPlace:    p.BirthPlace,
		PlaceName:     p.Place.Name,
		Lat:           p.Place.Location.Lat,
		Lon:           p.Place.Location.Lon,
		PlaceSource:   p.Place.Source,
		StarID:        p.StarID,
		RasiID:        p.RasiID,
		Lagnam:        p.Lagnam,
		RasiChart:     datatypes.JSON(rasi),
		NavamsamChart: datatypes.JSON(navamsam),
		Longitudes:    datatypes.JSON(lons),
		ComputedAt:    p.ComputedAt,
	}, nil
}

func fromProfileRecord(rec ProfileRecord) (Profile, error) {
	p := Profile{
		ID: rec.ID.String(),
		BirthProfile: domain.BirthProfile{
			BirthDetails: domain.BirthDetails{
				Name:       rec.Name,
				BirthDate:  rec.BirthDate,
				BirthTime:  rec.BirthTime,
				Meridian:   rec.Meridian,
				BirthPlace: rec.BirthPlace,
			},
			Place: domain.Place{
				Name:     rec.PlaceName,
				Location: domain.Location{Lat: rec.Lat, Lon: rec.Lon},
				Source:   rec.PlaceSource,
			},
			ChartSet: domain.ChartSet{
				StarID: rec.StarID,
				RasiID: rec.RasiID,
				Lagnam: rec.Lagnam,
			},
			ComputedAt: rec.ComputedAt,
		},
		CreatedAt: rec.CreatedAt,
	}
	if err := decodeJSON(rec.RasiChart, &p.RasiChart); err != nil {
		return Profile{}, fmt.Errorf("decode rasi chart: %w", err)
	}
	if err := decodeJSON(rec.NavamsamChart, &p.NavamsamChart); err != nil {
		return Profile{}, fmt.Errorf("decode navamsam chart: %w", err)
	}
	if err := decodeJSON(rec.Longitudes, &p.Longitudes); err != nil {
		return Profile{}, fmt.Errorf("decode longitudes: %w", err)
	}
	return p, nil
}

func decodeJSON(raw datatypes.JSON, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
