package catalog

import (
	"fmt"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// ConfigError reports a malformed catalog. It matches domain.ErrInvalidConfiguration.
type ConfigError struct {
	CollectionType string
	Reason         string
	Err            error
}

func (e *ConfigError) Error() string {
	msg := domain.ErrMsgInvalidConfiguration
	if e.CollectionType != "" {
		msg += fmt.Sprintf(": catalog %q", e.CollectionType)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrInvalidConfiguration, e.Err}
	}
	return []error{domain.ErrInvalidConfiguration}
}

func configErr(collectionType, format string, args ...any) *ConfigError {
	return &ConfigError{CollectionType: collectionType, Reason: fmt.Sprintf(format, args...)}
}
