package calendar

// GitHub heatmap palette, lightest to darkest
const (
	colorNone       = "#ebedf0"
	colorLight      = "#9be9a8"
	colorLegendTwo  = "#6dd585"
	colorMedium     = "#40c463"
	colorMediumDark = "#30a14e"
	colorDark       = "#216e39"
)

// LevelOf maps a day count to its 0-4 intensity level
// boundaries are inclusive: 0 / 1-3 / 4-6 / 7-10 / 11+
func LevelOf(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 10:
		return 3
	default:
		return 4
	}
}

// ColorOf maps a day count to its palette entry, same breakpoints as LevelOf
func ColorOf(count int) string {
	switch {
	case count <= 0:
		return colorNone
	case count <= 3:
		return colorLight
	case count <= 6:
		return colorMedium
	case count <= 10:
		return colorMediumDark
	default:
		return colorDark
	}
}

// LegendBucket is one piece of the rendering legend, Min..Max inclusive
type LegendBucket struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Color string `json:"color"`
}

// LegendFor builds the piecewise rendering legend for a dataset whose largest
// day count is max. This table groups differently than LevelOf
// (0 / 1 / 2 / 3 / 4-9 / 10+) and must stay a separate function: the legend
// gives low counts their own distinct swatches while the per-day level field
// buckets them together. Buckets above the observed max are omitted; the zero
// bucket is always present.
func LegendFor(max int) []LegendBucket {
	pieces := []LegendBucket{
		{Min: 0, Max: 0, Color: colorNone},
	}
	if max >= 1 {
		pieces = append(pieces, LegendBucket{Min: 1, Max: 1, Color: colorLight})
	}
	if max >= 2 {
		pieces = append(pieces, LegendBucket{Min: 2, Max: 2, Color: colorLegendTwo})
	}
	if max >= 3 {
		pieces = append(pieces, LegendBucket{Min: 3, Max: 3, Color: colorMedium})
	}
	if max >= 4 {
		hi := 9
		if max < hi {
			hi = max
		}
		pieces = append(pieces, LegendBucket{Min: 4, Max: hi, Color: colorMediumDark})
	}
	if max >= 10 {
		pieces = append(pieces, LegendBucket{Min: 10, Max: max, Color: colorDark})
	}
	return pieces
}
