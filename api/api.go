// Package api carries the service's OpenAPI contract, embedded into the
// binary so the running service always serves the contract it was built with.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var contract []byte

// Contract parses and validates the embedded OpenAPI document.
func Contract(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(contract)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}
