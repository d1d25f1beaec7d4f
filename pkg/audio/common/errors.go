package common

import (
	"errors"
	"fmt"
)

// AudioError represents audio decoding and validation errors.
type AudioError struct {
	Code    string `json:"code"`
	Format  string `json:"format,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AudioError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AudioError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeEncoding      = "INVALID_ENCODING"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeDecoding      = "DECODING_FAILED"
	ErrCodeOversized     = "PAYLOAD_TOO_LARGE"
	ErrCodeUnsupported   = "UNSUPPORTED_FORMAT"
)

// NewAudioError creates a new audio error
func NewAudioError(format, code, message string, cause error) *AudioError {
	return &AudioError{
		Code:    code,
		Format:  format,
		Message: message,
		Cause:   cause,
	}
}

// InvalidAudioError reports a sample buffer that cannot be analyzed:
// empty, fully silent, or containing no finite values. It propagates
// unchanged to the caller and is never converted to a default result.
type InvalidAudioError struct {
	Reason string
}

func (e *InvalidAudioError) Error() string {
	return fmt.Sprintf("invalid audio: %s", e.Reason)
}

// IsInvalidAudio reports whether err is an InvalidAudioError.
func IsInvalidAudio(err error) bool {
	var e *InvalidAudioError
	return errors.As(err, &e)
}
