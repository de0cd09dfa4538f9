package registry

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// Sentinel error kinds. The concrete error types below match them with errors.Is.
var (
	ErrInvalidVariant        = errors.New("invalid variant")
	ErrConfigurationNotFound = errors.New("configuration not found")
)

// InvalidVariantError reports a playtype that is not valid for its game.
// It is a caller bug.
type InvalidVariantError struct {
	Game     core.Game
	Playtype core.Playtype
	Valid    []core.Playtype
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("registry: playtype %q is not valid for game %q (valid: %v)", e.Playtype, e.Game, e.Valid)
}

func (e *InvalidVariantError) Is(target error) bool { return target == ErrInvalidVariant }

// ConfigurationNotFoundError reports a well-formed game or variant with no
// registry entry. It is a data-integrity defect and must not be papered over.
type ConfigurationNotFoundError struct {
	Game core.Game
	// Key is empty when the game itself is missing.
	Key core.VariantKey
}

func (e *ConfigurationNotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("registry: no configuration for game %q", e.Game)
	}
	return fmt.Sprintf("registry: no configuration for variant %q", e.Key)
}

func (e *ConfigurationNotFoundError) Is(target error) bool { return target == ErrConfigurationNotFound }

// ValidationError describes one broken registry invariant.
type ValidationError struct {
	Code    string
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Key, e.Message)
}

// Validation error codes.
const (
	CodeKeyMismatch        = "KEY_MISMATCH"
	CodeUnknownGame        = "UNKNOWN_GAME"
	CodeInvalidPlaytype    = "INVALID_PLAYTYPE"
	CodeMissingDefault     = "MISSING_DEFAULT"
	CodeEmptyVocabulary    = "EMPTY_VOCABULARY"
	CodeDuplicateEntry     = "DUPLICATE_ENTRY"
	CodeMissingColour      = "MISSING_COLOUR"
	CodeBoundaryLength     = "BOUNDARY_LENGTH"
	CodeBoundaryStart      = "BOUNDARY_START"
	CodeBoundaryOrder      = "BOUNDARY_ORDER"
	CodeBoundaryOverMax    = "BOUNDARY_OVER_MAX"
	CodeRatingAlg          = "RATING_ALG"
	CodeTimingOrder        = "TIMING_ORDER"
	CodeTimingValue        = "TIMING_VALUE"
	CodeTimingEmpty        = "TIMING_EMPTY"
	CodeInvalidScoreBucket = "INVALID_SCORE_BUCKET"
)
