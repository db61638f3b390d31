// Package errors provides sentinel errors and error types for the piece model.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidColour indicates a colour outside {white, black}.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidKind indicates an unknown piece kind.
	ErrInvalidKind = errors.New("invalid piece kind")

	// ErrInvalidSquare indicates a square off the 8x8 board or a malformed name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidTextureSize indicates a non-positive texture size.
	ErrInvalidTextureSize = errors.New("invalid texture size")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMissingTexture indicates a texture file absent from the asset tree.
	ErrMissingTexture = errors.New("missing texture")
)

// PieceError wraps errors with piece context. Empty fields are omitted from
// the message.
type PieceError struct {
	Err    error  // The underlying error
	Kind   string // Piece kind as given by the caller
	Colour string // Piece colour as given by the caller
	Square string // Square the piece was destined for (if known)
}

// Error returns a formatted error message including all available context.
func (e *PieceError) Error() string {
	var parts []string

	if e.Colour != "" || e.Kind != "" {
		parts = append(parts, "piece "+strings.TrimSpace(e.Colour+" "+e.Kind))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "piece error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PieceError wrapper.
func (e *PieceError) Unwrap() error {
	return e.Err
}

// AssetError reports a problem with a single texture file.
type AssetError struct {
	Err  error  // The underlying error
	Path string // Path of the asset relative to the asset root
}

// Error returns the path and the underlying error.
func (e *AssetError) Error() string {
	if e.Err == nil {
		return e.Path
	}
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *AssetError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
