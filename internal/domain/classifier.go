package domain

// Assessment is the outcome of applying a classifier's limits to a measurement
type Assessment struct {
	Measurement      Measurement
	Stack            Stack
	LargestDimension float64
	Volume           float64
	BulkyByDimension bool
	BulkyByVolume    bool
	Heavy            bool
}

// Bulky reports whether the package met the dimension or the volume limit
func (a Assessment) Bulky() bool {
	return a.BulkyByDimension || a.BulkyByVolume
}

// Classifier sorts packages into dispatch stacks. It is immutable and safe for concurrent use.
type Classifier struct {
	limits Limits
}

var defaultClassifier = &Classifier{limits: DefaultLimits()}

// NewClassifier creates a classifier with the given limits
func NewClassifier(limits Limits) (*Classifier, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{limits: limits}, nil
}

// DefaultClassifier returns the classifier using DefaultLimits
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// Limits returns the classifier's limits
func (c *Classifier) Limits() Limits {
	return c.limits
}

// Classify returns the dispatch stack for a package measured in cm and kg,
// using the default limits.
func Classify(width, height, length, mass float64) (Stack, error) {
	return defaultClassifier.Classify(width, height, length, mass)
}

// Classify returns the dispatch stack for a package measured in cm and kg.
// It fails with a *MeasurementError when any value is not a finite positive number.
func (c *Classifier) Classify(width, height, length, mass float64) (Stack, error) {
	m, err := NewMeasurement(width, height, length, mass)
	if err != nil {
		return Stack{}, err
	}
	return c.Assess(m).Stack, nil
}

// Assess applies the limits to a measurement. The measurement must already be valid.
func (c *Classifier) Assess(m Measurement) Assessment {
	a := Assessment{
		Measurement:      m,
		LargestDimension: m.LargestDimension(),
		Volume:           m.Volume(),
	}

	// All thresholds are inclusive
	a.BulkyByDimension = a.LargestDimension >= c.limits.Dimension
	a.BulkyByVolume = a.Volume >= c.limits.Volume
	a.Heavy = m.Mass >= c.limits.Mass

	switch {
	case a.Bulky() && a.Heavy:
		a.Stack = StackRejected
	case a.Bulky() || a.Heavy:
		a.Stack = StackSpecial
	default:
		a.Stack = StackStandard
	}

	return a
}
