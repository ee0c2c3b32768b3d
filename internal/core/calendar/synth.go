package calendar

import (
	"math"
	"math/rand"
	"time"
)

// SynthOptions configures the synthetic dataset generator
type SynthOptions struct {
	// Seed drives the PRNG so synthetic output is reproducible in tests
	Seed int64
	// Target is the desired total contribution count
	Target int
	// Now anchors "today"; zero means time.Now in UTC
	Now time.Time
	// RescaleTolerance is the relative discrepancy between Target and the
	// generated total above which counts are rescaled; zero means 0.10
	RescaleTolerance float64
	// MinScaled is the floor a non-zero day is clamped to after rescaling
	// so active days never drop to zero; zero means 1
	MinScaled int
}

// Synthesize generates 53 Sunday-aligned weeks of plausible activity ending
// today. Structure is deterministic (week count, alignment, no future days);
// counts follow a fixed categorical tier distribution with a weekday boost
// and are reproducible for a given seed.
func Synthesize(opts SynthOptions) Calendar {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	tol := opts.RescaleTolerance
	if tol <= 0 {
		tol = 0.10
	}
	minScaled := opts.MinScaled
	if minScaled <= 0 {
		minScaled = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	// 52 weeks back, then snap to that week's Sunday: the 53rd week is the
	// current one, trimmed below so no day lands beyond today
	start := today.AddDate(0, 0, -364)
	weekStart := start.AddDate(0, 0, -int(start.Weekday()))

	total := 0
	weeks := make([]Week, 0, 53)
	for w := 0; w < 53; w++ {
		days := make([]Day, 0, 7)
		for i := 0; i < 7; i++ {
			date := weekStart.AddDate(0, 0, w*7+i)
			if date.After(today) {
				break
			}
			wd := date.Weekday()
			weekday := wd >= time.Monday && wd <= time.Friday

			count := drawTier(rng, weekday)
			if weekday && count > 0 {
				count = int(float64(count) * 1.2)
			}
			total += count

			days = append(days, Day{
				Date:  date.Format(DayFormat),
				Count: count,
				Color: ColorOf(count),
				Level: LevelOf(count),
			})
		}
		if len(days) > 0 {
			weeks = append(weeks, Week{Days: days})
		}
	}

	// pull the generated total toward the target, never zeroing an active day
	if total < 1 {
		total = 1
	}
	factor := float64(opts.Target) / float64(total)
	if math.Abs(factor-1) > tol {
		total = 0
		for wi := range weeks {
			for di := range weeks[wi].Days {
				d := &weeks[wi].Days[di]
				if d.Count > 0 {
					c := int(float64(d.Count) * factor)
					if c < minScaled {
						c = minScaled
					}
					d.Count = c
					d.Color = ColorOf(c)
					d.Level = LevelOf(c)
				}
				total += d.Count
			}
		}
	}

	return Calendar{Total: total, Weeks: weeks}
}

// drawTier picks a day count from the fixed activity-tier distribution:
// 15% none-ish, 20% light 1-5, 25% medium 5-15, 20% high 15-25,
// 20% very high 25-40. In the none tier a weekday still has a coin-flip
// chance of a little activity; weekends stay quiet.
func drawTier(rng *rand.Rand, weekday bool) int {
	r := rng.Float64()
	switch {
	case r < 0.15:
		if weekday && rng.Float64() >= 0.5 {
			return rng.Intn(5)
		}
		return 0
	case r < 0.35:
		return rng.Intn(5) + 1
	case r < 0.60:
		return rng.Intn(11) + 5
	case r < 0.80:
		return rng.Intn(11) + 15
	default:
		return rng.Intn(16) + 25
	}
}
