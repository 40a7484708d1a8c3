package application

// SortPackageCommand classifies a single package.
// Dimensions are in centimeters and mass is in kilograms.
type SortPackageCommand struct {
	PackageID string
	Width     float64
	Height    float64
	Length    float64
	Mass      float64
}
