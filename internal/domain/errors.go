package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidCategory = "invalid category"
)

// Unknown ids and repeated completions at the quest service boundary are
// silent no-ops rather than errors. Wrap with
// fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)
)
