package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/porutham-service/internal/adapter/store"
	"github.com/couchcryptid/porutham-service/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var d domain.BirthDetails
	if err := decodeBody(w, r, &d); err != nil {
		s.writeError(w, r, err)
		return
	}
	profile, err := s.compute(r, d)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) compute(r *http.Request, d domain.BirthDetails) (domain.BirthProfile, error) {
	profile, err := s.opts.Charts.Compute(r.Context(), d)
	s.opts.Metrics.RecordChart(profile.Place.Source, err)
	return profile, err
}

// partyInput is either a stored profile reference or an inline party.
type partyInput struct {
	ProfileID string `json:"profile_id,omitempty"`
	domain.Party
}

type poruthamRequest struct {
	Bride partyInput `json:"bride"`
	Groom partyInput `json:"groom"`
}

type poruthamResponse struct {
	ID string `json:"id,omitempty"`
	domain.Porutham
}

func (s *Server) handlePorutham(w http.ResponseWriter, r *http.Request) {
	var req poruthamRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	bride, err := s.resolveParty(r, req.Bride)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("bride: %w", err))
		return
	}
	groom, err := s.resolveParty(r, req.Groom)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("groom: %w", err))
		return
	}

	report, ok := domain.Evaluate(bride, groom)
	if !ok {
		s.writeError(w, r, fmt.Errorf("%w: star or rasi out of range (bride %d/%d, groom %d/%d)",
			errBadRequest, bride.StarID, bride.RasiID, groom.StarID, groom.RasiID))
		return
	}
	s.opts.Metrics.RecordEvaluation(report.Summary.Verdict)

	resp := poruthamResponse{Porutham: report}
	if s.opts.Matches != nil {
		entry, err := s.opts.Matches.Record(r.Context(), store.MatchEntry{
			BrideProfileID: req.Bride.ProfileID,
			GroomProfileID: req.Groom.ProfileID,
			Bride:          bride,
			Groom:          groom,
			Report:         report,
		})
		if err != nil {
			s.logger.Warn("match history not recorded", "error", err)
		} else {
			resp.ID = entry.ID
		}
	}
	sharedobs.WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) resolveParty(r *http.Request, in partyInput) (domain.Party, error) {
	if in.ProfileID == "" {
		return in.Party, nil
	}
	p, err := s.opts.Profiles.Get(r.Context(), in.ProfileID)
	if err != nil {
		return domain.Party{}, err
	}
	return p.Party(), nil
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	star, err := queryInt(r, "star", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rasi, err := queryInt(r, "rasi", 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	seeking, err := domain.ParseSeeking(q.Get("seeking"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Overrides may narrow the search; FindMatches clamps them to its bounds.
	opts := s.opts.MatchOptions
	if opts.Limit, err = queryInt(r, "limit", opts.Limit); err != nil {
		s.writeError(w, r, err)
		return
	}
	if raw := q.Get("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			s.writeError(w, r, fmt.Errorf("%w: min_score must be a non-negative number", errBadRequest))
			return
		}
		opts.MinScore = v
	}

	start := time.Now()
	candidates, err := domain.FindMatches(star, rasi, seeking, opts)
	s.opts.Metrics.MatchSearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, candidates)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var d domain.BirthDetails
	if err := decodeBody(w, r, &d); err != nil {
		s.writeError(w, r, err)
		return
	}
	profile, err := s.compute(r, d)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	stored, err := s.opts.Profiles.Create(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusCreated, stored)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	profiles, err := s.opts.Profiles.List(r.Context(), limit, offset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.opts.Profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, profile)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit, _, err := page(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := s.opts.Matches.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.opts.Matches.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, entry)
}

func (s *Server) handleStars(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.Stars())
}

func (s *Server) handleRasis(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.Rasis())
}

func (s *Server) handleSpans(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.StarRasiSpans())
}

func (s *Server) handleCities(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.Cities())
}

// page reads limit and offset, clamping limit to maxPageSize.
func page(r *http.Request) (int, int, error) {
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if limit == 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
