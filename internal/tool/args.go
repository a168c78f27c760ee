package tool

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Argument decoding for the loosely-typed args map. Anything malformed
// becomes a domain.ValidationError so it renders like any other validation
// failure.

func uuidArg(args map[string]any, key string) (uuid.UUID, error) {
	raw, ok := args[key]
	if !ok {
		return uuid.Nil, domain.NewValidationError(key, "required")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, domain.NewValidationError(key, fmt.Sprintf("expected a UUID string, got %T", raw))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(key, "not a valid UUID")
	}
	return id, nil
}

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", domain.NewValidationError(key, "required")
	}
	s, ok := raw.(string)
	if !ok {
		return "", domain.NewValidationError(key, fmt.Sprintf("expected a string, got %T", raw))
	}
	return s, nil
}

// optStringArg returns nil when the key is absent. An explicit null also
// counts as absent.
func optStringArg(args map[string]any, key string) (*string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, domain.NewValidationError(key, fmt.Sprintf("expected a string, got %T", raw))
	}
	return &s, nil
}

func docArg(args map[string]any, key string) (domain.Document, error) {
	raw, ok := args[key]
	if !ok {
		return nil, domain.NewValidationError(key, "required")
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, domain.NewValidationError(key, fmt.Sprintf("expected a JSON object, got %T", raw))
	}
	return domain.Document(m), nil
}

// optBoolArg returns def when the key is absent.
func optBoolArg(args map[string]any, key string, def bool) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, domain.NewValidationError(key, fmt.Sprintf("expected a boolean, got %T", raw))
	}
	return b, nil
}
