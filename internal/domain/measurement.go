package domain

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidMeasurement is returned when a package measurement is not a finite positive number
var ErrInvalidMeasurement = errors.New("invalid measurement")

// Measurement holds the physical properties of a package.
// Dimensions are in centimeters and mass is in kilograms.
type Measurement struct {
	Width  float64 `json:"width" validate:"finite,gt=0"`
	Height float64 `json:"height" validate:"finite,gt=0"`
	Length float64 `json:"length" validate:"finite,gt=0"`
	Mass   float64 `json:"mass" validate:"finite,gt=0"`
}

// MeasurementError reports a measurement that failed validation. It always
// carries all four received values, not just the offending ones.
type MeasurementError struct {
	Measurement Measurement
	Fields      []string
}

// Error implements the error interface
func (e *MeasurementError) Error() string {
	m := e.Measurement
	return fmt.Sprintf(
		"%v: all properties of a package must be finite positive numbers, received width %v cm, height %v cm, length %v cm, mass %v kg (invalid: %s)",
		ErrInvalidMeasurement, m.Width, m.Height, m.Length, m.Mass, strings.Join(e.Fields, ", "),
	)
}

// Is lets errors.Is match ErrInvalidMeasurement
func (e *MeasurementError) Is(target error) bool {
	return target == ErrInvalidMeasurement
}

// NewMeasurement creates a validated Measurement
func NewMeasurement(width, height, length, mass float64) (Measurement, error) {
	m := Measurement{Width: width, Height: height, Length: length, Mass: mass}
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Validate returns a *MeasurementError if any value is zero, negative, NaN or infinite
func (m Measurement) Validate() error {
	fields := invalidFields(m)
	if len(fields) == 0 {
		return nil
	}
	return &MeasurementError{Measurement: m, Fields: fields}
}

// LargestDimension returns the largest of width, height and length
func (m Measurement) LargestDimension() float64 {
	return max(m.Width, m.Height, m.Length)
}

// Volume returns width * height * length in cm3.
// The product is taken over the sorted dimensions, so it does not depend on their order.
func (m Measurement) Volume() float64 {
	dims := []float64{m.Width, m.Height, m.Length}
	slices.Sort(dims)
	return dims[0] * dims[1] * dims[2]
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("finite", validateFinite)

		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(fld.Name)
			}
			return name
		})
	})
	return validate
}

func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// invalidFields returns the names of the struct fields that failed validation, in declaration order
func invalidFields(s any) []string {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return fields
}
