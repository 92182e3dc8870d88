package pagingmenu

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by ConfigurationError.
var (
	ErrMissingTitle      = errors.New("menu item title is required")
	ErrMissingIcon       = errors.New("icon menu item requires icon and highlighted icon")
	ErrNegativeSpacing   = errors.New("icon spacing must not be negative")
	ErrInvalidItemCount  = errors.New("item count must be at least 1")
	ErrInvalidMargin     = errors.New("item margin must not be negative")
	ErrInvalidFixedWidth = errors.New("fixed item width must be positive")
	ErrMissingFont       = errors.New("font and selected font are required")
	ErrMissingLayoutMode = errors.New("layout mode is required")
	ErrUnknownLayoutMode = errors.New("layout mode must be Standard, SegmentedControl or Infinite")
	ErrUnknownWidthMode  = errors.New("width mode must be Flexible or Fixed")
)

// ConfigurationError reports a malformed menu item or options value.
// It is a caller bug: construction is aborted rather than falling back
// to defaults, so nothing half-built reaches the view hierarchy.
type ConfigurationError struct {
	Op  string // Operation that rejected the configuration (e.g., "new_menu_item_view")
	Err error  // Underlying reason, usually one of the sentinels above
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagingmenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pagingmenu: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IndexOutOfRangeError reports an item index outside the configured menu items.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("pagingmenu: item index %d out of range [0, %d)", e.Index, e.Len)
}

// InfrastructureError represents a failure outside the menu's own contract,
// such as a font that cannot measure text or an icon file that cannot be decoded.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagingmenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pagingmenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsIndexOutOfRange checks if an error reports an out-of-range item index.
func IsIndexOutOfRange(err error) bool {
	var idxErr *IndexOutOfRangeError
	return errors.As(err, &idxErr)
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
