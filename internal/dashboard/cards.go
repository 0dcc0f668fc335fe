package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/five82/depot/internal/zone"
)

// Trend is the optional direction shown next to a card value.
type Trend int

const (
	TrendNone Trend = iota
	TrendUp
	TrendDown
	TrendNeutral
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	case TrendNeutral:
		return "neutral"
	default:
		return ""
	}
}

// ErrUnpairedTrend reports a card with a trend but no delta, or the reverse.
var ErrUnpairedTrend = errors.New("trend and delta must be set together")

// Card is one summary metric. Value is preformatted for display.
type Card struct {
	Title       string
	Value       string
	Description string
	Trend       Trend
	Delta       string
}

// NewCard builds a card without a trend.
func NewCard(title, value, description string) Card {
	return Card{Title: title, Value: value, Description: description}
}

// WithTrend returns a copy of c carrying the trend and its delta label.
func (c Card) WithTrend(t Trend, delta string) Card {
	c.Trend = t
	c.Delta = delta
	return c
}

// HasTrend reports whether the card shows a delta line.
func (c Card) HasTrend() bool {
	return c.Trend != TrendNone && c.Delta != ""
}

// Validate checks that trend and delta are both present or both absent.
func (c Card) Validate() error {
	hasTrend := c.Trend != TrendNone
	hasDelta := strings.TrimSpace(c.Delta) != ""
	if hasTrend != hasDelta {
		return fmt.Errorf("card %q: %w", c.Title, ErrUnpairedTrend)
	}
	return nil
}

// CardsFor returns the preset overview cards for a role. Unknown roles get
// the admin preset.
func CardsFor(r Role) []Card {
	var cards []Card
	switch r.orAdmin() {
	case RoleModerator:
		cards = []Card{
			NewCard("Pending Orders", "18", "Needs validation").WithTrend(TrendUp, "5%"),
			NewCard("Available Drivers", "27", "Ready for assignment").WithTrend(TrendNeutral, "2%"),
			NewCard("Inspections Required", "12", "Pending controller assignment").WithTrend(TrendDown, "10%"),
			NewCard("Validated Today", "47", "Orders processed").WithTrend(TrendUp, "18%"),
		}
	case RoleDriver:
		cards = []Card{
			NewCard("Assigned Tasks", "5", "Current workload").WithTrend(TrendNeutral, "0%"),
			NewCard("Completed Today", "12", "Tasks finished").WithTrend(TrendUp, "25%"),
			NewCard("Average Rating", "4.8", "Out of 5.0").WithTrend(TrendUp, "0.2"),
			NewCard("Efficiency Score", "92%", "Performance metric").WithTrend(TrendUp, "3%"),
		}
	case RoleClient:
		cards = []Card{
			NewCard("Active Products", "28", "Currently in storage").WithTrend(TrendUp, "3"),
			NewCard("Pending Orders", "3", "Awaiting processing").WithTrend(TrendNeutral, "0"),
			NewCard("In Transit", "7", "Being delivered").WithTrend(TrendUp, "2"),
			NewCard("Storage Usage", "72%", "Of allocated space").WithTrend(TrendUp, "5%"),
		}
	default:
		cards = []Card{
			NewCard("Total Merchandise", humanize.Comma(1247), "Items in warehouse").WithTrend(TrendUp, "12%"),
			NewCard("Active Drivers", "42", "Currently on duty").WithTrend(TrendNeutral, "0%"),
			NewCard("Total Clients", "587", "Registered accounts").WithTrend(TrendUp, "8%"),
			NewCard("Pending Tasks", "23", "Require attention").WithTrend(TrendDown, "15%"),
		}
	}
	return cards
}

// ZoneCards summarizes a zone catalog. Saturation averages ignore NaN and
// infinite values; zones with non-finite capacity are left out of the total.
func ZoneCards(zones []zone.StorageZone) []Card {
	var (
		satSum   float64
		satCount int
		high     int
		totalKg  float64
	)
	for _, z := range zones {
		if z.Band() == zone.BandHigh {
			high++
		}
		if !math.IsNaN(z.Saturation) && !math.IsInf(z.Saturation, 0) {
			satSum += z.Saturation
			satCount++
		}
		if !math.IsNaN(z.WeightCapacity) && !math.IsInf(z.WeightCapacity, 0) {
			totalKg += z.WeightCapacity
		}
	}

	avg := "n/a"
	if satCount > 0 {
		avg = fmt.Sprintf("%.0f%%", satSum/float64(satCount))
	}

	return []Card{
		NewCard("Storage Zones", humanize.Comma(int64(len(zones))), "Zones in catalog"),
		NewCard("Average Saturation", avg, "Across all zones"),
		NewCard("High Saturation", humanize.Comma(int64(high)), fmt.Sprintf("Zones at or above %d%%", zone.HighThreshold)),
		NewCard("Total Capacity", humanize.Comma(int64(math.Round(totalKg)))+" kg", "Combined weight capacity"),
	}
}
