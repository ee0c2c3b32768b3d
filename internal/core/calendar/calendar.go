// Package calendar normalizes flat daily contribution records into a
// Sunday-aligned weekly grid suitable for heatmap rendering, and can
// synthesize a plausible substitute dataset when the upstream source is
// unusable. All dates are civil dates in UTC, formatted YYYY-MM-DD.
package calendar

import (
	"fmt"
	"sort"
	"time"
)

// DayFormat is the wire format for civil dates
const DayFormat = "2006-01-02"

// Record is one upstream daily contribution entry
// Level is optional; when absent it is derived from Count
type Record struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level *int   `json:"level,omitempty"`
}

// Day is one normalized calendar cell
// Color and Level are pure functions of Count unless the upstream supplied Level
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"contributionCount"`
	Color string `json:"color"`
	Level int    `json:"level"`
}

// Week is an ordered run of days, index 0 = Sunday
// Normalize always emits exactly 7 entries; Synthesize may trim the final
// week so no day lands beyond today
type Week struct {
	Days []Day `json:"contributionDays"`
}

// Calendar is the normalized output grid, weeks ascending
type Calendar struct {
	Total int    `json:"totalContributions"`
	Weeks []Week `json:"weeks"`
}

// Sum returns the sum of day counts across all weeks
func (c Calendar) Sum() int {
	n := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			n += d.Count
		}
	}
	return n
}

// Max returns the largest day count across all weeks
func (c Calendar) Max() int {
	m := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			if d.Count > m {
				m = d.Count
			}
		}
	}
	return m
}

// Normalize groups records into full Sunday-aligned weeks, padding missing
// days with zero cells. Grouping is keyed on each record's containing Sunday
// so out-of-order input is tolerated. providedTotal is trusted when positive;
// a zero or negative total is recomputed from the day counts.
//
// Normalize never synthesizes: an empty input yields an empty Calendar and
// the caller decides whether to fall back to Synthesize.
func Normalize(records []Record, providedTotal int) (Calendar, error) {
	byDate := make(map[string]Record, len(records))
	sundays := make(map[string]time.Time)

	for _, rec := range records {
		d, err := time.ParseInLocation(DayFormat, rec.Date, time.UTC)
		if err != nil {
			return Calendar{}, fmt.Errorf("calendar: bad record date %q: %w", rec.Date, err)
		}
		byDate[rec.Date] = rec
		sun := d.AddDate(0, 0, -int(d.Weekday()))
		sundays[sun.Format(DayFormat)] = sun
	}

	keys := make([]time.Time, 0, len(sundays))
	for _, s := range sundays {
		keys = append(keys, s)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	cal := Calendar{Weeks: make([]Week, 0, len(keys))}
	for _, sun := range keys {
		days := make([]Day, 0, 7)
		for i := 0; i < 7; i++ {
			ds := sun.AddDate(0, 0, i).Format(DayFormat)
			if rec, ok := byDate[ds]; ok {
				lvl := LevelOf(rec.Count)
				if rec.Level != nil {
					lvl = *rec.Level
				}
				days = append(days, Day{Date: ds, Count: rec.Count, Color: ColorOf(rec.Count), Level: lvl})
			} else {
				days = append(days, Day{Date: ds, Count: 0, Color: ColorOf(0), Level: 0})
			}
		}
		cal.Weeks = append(cal.Weeks, Week{Days: days})
	}

	cal.Total = providedTotal
	if providedTotal <= 0 {
		cal.Total = cal.Sum()
	}
	return cal, nil
}
