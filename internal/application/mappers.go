package application

import (
	"time"

	"github.com/wms-platform/package-sorter/internal/domain"
)

// Flag reasons reported in results and metrics
const (
	ReasonDimension = "dimension"
	ReasonVolume    = "volume"
	ReasonMass      = "mass"
)

// ToSortResultDTO converts a domain Assessment to SortResultDTO
func ToSortResultDTO(packageID string, a domain.Assessment, sortedAt time.Time) *SortResultDTO {
	return &SortResultDTO{
		PackageID:        packageID,
		Stack:            a.Stack.String(),
		Bulky:            a.Bulky(),
		Heavy:            a.Heavy,
		Reasons:          Reasons(a),
		Measurement:      ToMeasurementDTO(a.Measurement),
		LargestDimension: a.LargestDimension,
		Volume:           a.Volume,
		SortedAt:         sortedAt,
	}
}

// ToMeasurementDTO converts a domain Measurement to MeasurementDTO
func ToMeasurementDTO(m domain.Measurement) MeasurementDTO {
	return MeasurementDTO{
		Width:  m.Width,
		Height: m.Height,
		Length: m.Length,
		Mass:   m.Mass,
	}
}

// Reasons lists the thresholds an assessment met
func Reasons(a domain.Assessment) []string {
	var reasons []string
	if a.BulkyByDimension {
		reasons = append(reasons, ReasonDimension)
	}
	if a.BulkyByVolume {
		reasons = append(reasons, ReasonVolume)
	}
	if a.Heavy {
		reasons = append(reasons, ReasonMass)
	}
	return reasons
}
