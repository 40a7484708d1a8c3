package application

import "time"

// SortResultDTO represents the dispatch decision for a package
type SortResultDTO struct {
	PackageID        string         `json:"packageId"`
	Stack            string         `json:"stack"`
	Bulky            bool           `json:"bulky"`
	Heavy            bool           `json:"heavy"`
	Reasons          []string       `json:"reasons,omitempty"`
	Measurement      MeasurementDTO `json:"measurement"`
	LargestDimension float64        `json:"largestDimension"`
	Volume           float64        `json:"volume"`
	SortedAt         time.Time      `json:"sortedAt"`
}

// MeasurementDTO represents the measured package in cm and kg
type MeasurementDTO struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Mass   float64 `json:"mass"`
}
