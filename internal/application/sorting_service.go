package application

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"

	"github.com/wms-platform/package-sorter/internal/domain"
	"github.com/wms-platform/package-sorter/pkg/errors"
	"github.com/wms-platform/package-sorter/pkg/logging"
	"github.com/wms-platform/package-sorter/pkg/metrics"
)

// SortingApplicationService handles package sortation use cases
type SortingApplicationService struct {
	classifier *domain.Classifier
	logger     *logging.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewSortingApplicationService creates a new SortingApplicationService.
// A nil classifier falls back to the default limits.
func NewSortingApplicationService(
	classifier *domain.Classifier,
	logger *logging.Logger,
	metrics *metrics.Metrics,
) *SortingApplicationService {
	if classifier == nil {
		classifier = domain.DefaultClassifier()
	}
	return &SortingApplicationService{
		classifier: classifier,
		logger:     logger.WithComponent("sorting"),
		metrics:    metrics,
		now:        time.Now,
	}
}

// SortPackage classifies one package into its dispatch stack
func (s *SortingApplicationService) SortPackage(ctx context.Context, cmd SortPackageCommand) (*SortResultDTO, error) {
	packageID := cmd.PackageID
	if packageID == "" {
		packageID = uuid.NewString()
	}

	m, err := domain.NewMeasurement(cmd.Width, cmd.Height, cmd.Length, cmd.Mass)
	if err != nil {
		return nil, s.invalidMeasurement(ctx, packageID, err)
	}

	assessment := s.classifier.Assess(m)
	result := ToSortResultDTO(packageID, assessment, s.now().UTC())

	if s.metrics != nil {
		s.metrics.RecordClassification(result.Stack, assessment.Volume)
		for _, reason := range result.Reasons {
			s.metrics.RecordFlag(reason)
		}
	}

	s.logger.Event(ctx, "sortation.package_classified", map[string]any{
		"packageId": packageID,
		"stack":     result.Stack,
		"bulky":     result.Bulky,
		"heavy":     result.Heavy,
		"volume":    result.Volume,
		"mass":      m.Mass,
	})

	return result, nil
}

func (s *SortingApplicationService) invalidMeasurement(ctx context.Context, packageID string, err error) error {
	appErr := errors.ErrInvalidMeasurement(err.Error()).Wrap(err)

	var measurementErr *domain.MeasurementError
	if stderrors.As(err, &measurementErr) {
		for _, field := range measurementErr.Fields {
			appErr.WithDetail(field, "must be a finite positive number")
		}
		if s.metrics != nil {
			s.metrics.RecordInvalidMeasurement(measurementErr.Fields...)
		}
	}

	s.logger.WithContext(ctx).WithError(err).Warn("Rejected package measurement", "packageId", packageID)

	return appErr
}
