// Package service contains contribution calendar workflows
package service

import (
	"context"
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gitfolio/internal/core/calendar"
	"gitfolio/internal/platform/logger"
	"gitfolio/internal/services/api/contributions/domain"
)

const (
	// defaultUserTarget is the synthetic yearly total for the configured
	// default identity; other users draw a seeded total below
	defaultUserTarget = 5000
	synthTargetMin    = 1000
	synthTargetSpan   = 3000
)

// History yields the per-day contribution records for the trailing year
type History interface {
	LastYear(ctx context.Context, login string) ([]calendar.Record, int, error)
}

// Service defines the contributions service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the contributions service
type Svc struct {
	history     History
	defaultUser string
	log         logger.Logger
	printer     *message.Printer
}

// New constructs a contributions service
func New(history History, defaultUser string) *Svc {
	if history == nil {
		panic("contributions.Service requires a non nil history client")
	}
	return &Svc{
		history:     history,
		defaultUser: defaultUser,
		log:         *logger.Named("contributions"),
		printer:     message.NewPrinter(language.English),
	}
}

// Graph returns a render-ready calendar for the user. This path never
// fails on upstream trouble: anything short of a usable dataset falls
// back to a synthetic calendar flagged as such.
func (s *Svc) Graph(ctx context.Context, username string) (domain.Graph, error) {
	cal, synthetic := s.load(ctx, username)
	return domain.Graph{
		LoadID:    uuid.NewString(),
		Synthetic: synthetic,
		Title:     s.printer.Sprintf("%d contributions in the last year", cal.Total),
		Calendar:  cal,
	}, nil
}

// Legend returns the color scale buckets sized to the user's busiest day
func (s *Svc) Legend(ctx context.Context, username string) (domain.Legend, error) {
	cal, _ := s.load(ctx, username)
	max := cal.Max()
	return domain.Legend{Max: max, Buckets: calendar.LegendFor(max)}, nil
}

// load fetches and normalizes real history, synthesizing when the
// upstream fails or yields nothing renderable
func (s *Svc) load(ctx context.Context, username string) (calendar.Calendar, bool) {
	recs, total, err := s.history.LastYear(ctx, username)
	if err == nil {
		cal, nerr := calendar.Normalize(recs, total)
		if nerr == nil && len(cal.Weeks) > 0 {
			return cal, false
		}
		err = nerr
	}

	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("contribution history unavailable, synthesizing")
	} else {
		s.log.Warn().Str("username", username).Msg("contribution history empty, synthesizing")
	}
	return calendar.Synthesize(calendar.SynthOptions{
		Seed:   seedFor(username),
		Target: s.targetFor(username),
	}), true
}

// targetFor picks the synthetic yearly total: a fixed figure for the
// default identity, otherwise a seeded draw so the same username gets
// the same placeholder
func (s *Svc) targetFor(username string) int {
	if s.defaultUser != "" && username == s.defaultUser {
		return defaultUserTarget
	}
	rng := rand.New(rand.NewSource(seedFor(username)))
	return synthTargetMin + rng.Intn(synthTargetSpan+1)
}

func seedFor(username string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(username))
	return int64(h.Sum64())
}
