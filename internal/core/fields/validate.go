package fields

import (
	"mastoshim/internal/platform/logger"
	"mastoshim/internal/platform/metrics"
)

// Validator checks a finished record against an entity shape
type Validator interface {
	Name() string
	Validate(rec map[string]any) error
}

// ValidateAndReturn returns rec when it passes v, nil otherwise
// rejections are logged at debug and counted per entity
func ValidateAndReturn(rec map[string]any, v Validator) map[string]any {
	if rec == nil {
		return nil
	}
	if v == nil {
		return rec
	}
	if err := v.Validate(rec); err != nil {
		logger.Named("mapper").Debug().
			Str("entity", v.Name()).
			Err(err).
			Msg("record rejected")
		metrics.MapperRejected(v.Name())
		return nil
	}
	return rec
}
