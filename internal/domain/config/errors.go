package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedConfiguration is returned when a required value is missing or invalid at load time
	ErrMalformedConfiguration = errors.New("malformed configuration")

	// ErrNetworkNotFound is returned when a network name does not match any target
	ErrNetworkNotFound = errors.New("network not found")

	// ErrNetworkMismatch is returned when an endpoint reports a different chain id than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNoSigningKeys is returned when a provider is requested for a target without keys
	ErrNoSigningKeys = errors.New("no signing keys configured")
)

// MalformedConfigurationError names the offending field
type MalformedConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *MalformedConfigurationError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrMalformedConfiguration, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedConfigurationError) Is(target error) bool {
	return target == ErrMalformedConfiguration
}

func (e *MalformedConfigurationError) Unwrap() error {
	return e.Err
}

// Malformed builds a MalformedConfigurationError
func Malformed(field, reason string, err error) error {
	return &MalformedConfigurationError{Field: field, Reason: reason, Err: err}
}

type NetworkNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e NetworkNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' not found", e.Name)
	}
	return fmt.Sprintf("network '%s' not found, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e NetworkNotFoundError) Is(target error) bool {
	return target == ErrNetworkNotFound
}
