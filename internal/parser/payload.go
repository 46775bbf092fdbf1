// Package parser provides utilities for parsing and transforming input data.
// It validates the detection engine's payload and turns it into the account graph.
package parser

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/kesava936/money-muling-detection/internal/models"
)

var (
	ErrEmptyPayload   = errors.New("empty payload data")
	ErrInvalidPayload = errors.New("invalid payload")
)

//go:embed payload.schema.json
var payloadSchemaJSON string

var (
	schemaOnce    sync.Once
	payloadSchema *jsonschema.Schema
	schemaErr     error
)

func loadSchema() {
	payloadSchema, schemaErr = jsonschema.CompileString("payload.schema.json", payloadSchemaJSON)
}

// ParsePayload decodes the engine output. Only structure is checked: both
// top-level collections must be present and their entries well typed.
func ParsePayload(data []byte) (*models.Payload, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyPayload
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return nil, fmt.Errorf("failed to compile payload schema: %w", schemaErr)
	}

	if err := payloadSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var payload models.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
