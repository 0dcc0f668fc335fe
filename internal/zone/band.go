package zone

// Band is the severity tier derived from saturation. It only drives visual
// treatment.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh

	// BandCount is the number of bands.
	BandCount
)

// Saturation thresholds, in percent.
const (
	MediumThreshold = 50
	HighThreshold   = 80
)

// Bands returns every band from least to most severe.
func Bands() []Band {
	return []Band{BandLow, BandMedium, BandHigh}
}

// BandFor classifies a saturation percentage. NaN fails both comparisons and
// lands in BandHigh, so broken data is drawn with the loudest treatment.
func BandFor(saturation float64) Band {
	if saturation < MediumThreshold {
		return BandLow
	}
	if saturation < HighThreshold {
		return BandMedium
	}
	return BandHigh
}

// Band returns the zone's saturation band.
func (z StorageZone) Band() Band {
	return BandFor(z.Saturation)
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMedium:
		return "medium"
	case BandHigh:
		return "high"
	default:
		return "unknown"
	}
}
