package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds compiled response schemas keyed by Schema.Name.
var compiledSchemas sync.Map

// checkResponse rejects structured output that was truncated or that does
// not satisfy req.Schema. Free-text requests are returned as-is.
func checkResponse(req Request, resp *Response) error {
	if req.Schema == nil {
		return nil
	}
	if resp.StopReason == StopMaxTokens {
		return &ErrMaxTokensExceeded{Limit: req.MaxTokens, Content: resp.Content}
	}
	return validateContent(req.Schema, resp.Content)
}

// validateContent checks raw against schema, returning *ErrInvalidResponse
// on any mismatch.
func validateContent(schema *Schema, raw json.RawMessage) error {
	invalid := func(err error) error {
		return &ErrInvalidResponse{Schema: schema.Name, Content: raw, Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("not JSON: %w", err))
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return invalid(err)
	}
	if err := compiled.Validate(doc); err != nil {
		return invalid(err)
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if s, ok := compiledSchemas.Load(schema.Name); ok {
		return s.(*jsonschema.Schema), nil
	}

	// Definitions are Go literals; the compiler wants decoded JSON values.
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode schema %q: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := "schema://" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	s, _ := compiledSchemas.LoadOrStore(schema.Name, compiled)
	return s.(*jsonschema.Schema), nil
}
