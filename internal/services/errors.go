// Package services defines the error taxonomy shared by the external
// collaborators of the planning workflow: the recipe catalog, the durable
// store, configuration, and artifact files.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport marks catalog connectivity failures and non-2xx responses.
	ErrTransport = errors.New("transport error")
	// ErrDecode marks catalog payloads that do not match the expected shape,
	// including unparseable quantity tokens.
	ErrDecode = errors.New("decode error")
	// ErrPersistence marks store read/write failures.
	ErrPersistence = errors.New("persistence error")
	// ErrConfiguration marks missing or invalid configuration, such as an
	// absent catalog credential.
	ErrConfiguration = errors.New("configuration error")
	// ErrConsolidation marks a component merge contract violation.
	ErrConsolidation = errors.New("consolidation error")
	// ErrArtifact marks shopping-list or recipe file write failures.
	ErrArtifact = errors.New("artifact error")
)

// Wrap builds an error message that includes phase context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, phase, operation string, err error) error {
	detail := buildDetail(phase, operation)
	if marker == nil {
		marker = ErrPersistence
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(phase, operation string) string {
	parts := make([]string, 0, 2)
	if phase = strings.TrimSpace(phase); phase != "" {
		parts = append(parts, phase)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "workflow failure"
	}
	return strings.Join(parts, ": ")
}
