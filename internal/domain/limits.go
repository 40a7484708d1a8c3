package domain

import (
	"errors"
	"fmt"
)

// Default sortation limits
const (
	// DimensionLimit is the largest single dimension, in cm, before a package is bulky
	DimensionLimit = 150.0
	// VolumeLimit is the largest volume, in cm3, before a package is bulky
	VolumeLimit = 1_000_000.0
	// MassLimit is the largest mass, in kg, before a package is heavy
	MassLimit = 20.0
)

// ErrInvalidLimits is returned when a classifier is configured with unusable limits
var ErrInvalidLimits = errors.New("invalid sortation limits")

// Limits are the thresholds a classifier applies. Every threshold is inclusive.
// Volume is checked on its own and need not equal Dimension cubed.
type Limits struct {
	Dimension float64 `json:"dimension" validate:"finite,gt=0"`
	Volume    float64 `json:"volume" validate:"finite,gt=0"`
	Mass      float64 `json:"mass" validate:"finite,gt=0"`
}

// DefaultLimits returns the standard sortation limits
func DefaultLimits() Limits {
	return Limits{
		Dimension: DimensionLimit,
		Volume:    VolumeLimit,
		Mass:      MassLimit,
	}
}

// Validate checks that every limit is a finite positive number
func (l Limits) Validate() error {
	fields := invalidFields(l)
	if len(fields) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v must be finite positive numbers, received dimension %v cm, volume %v cm3, mass %v kg",
		ErrInvalidLimits, fields, l.Dimension, l.Volume, l.Mass)
}
