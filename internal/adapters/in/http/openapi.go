package http

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

var loadSpec = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
})

// Spec returns the parsed API contract.
func Spec() (*openapi3.T, error) {
	return loadSpec()
}

// apiDoc serves the contract to echo-swagger through the swag registry.
type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	doc, err := Spec()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}

// validateBody checks raw against the named component schema.
func validateBody(schemaName string, raw []byte) error {
	doc, err := Spec()
	if err != nil {
		return err
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("schema %q is not defined", schemaName)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return ref.Value.VisitJSON(value)
}
