package opentdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition for an OpenTDB payload.
type Schema struct {
	Name       string
	Definition map[string]any

	compiled *jsonschema.Schema
}

// CategoriesSchema describes api_category.php.
var CategoriesSchema = &Schema{
	Name: "opentdb-categories",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"trivia_categories": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer", "minimum": 1},
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"id", "name"},
				},
			},
		},
		"required": []any{"trivia_categories"},
	},
}

// QuestionsSchema describes api.php.
var QuestionsSchema = &Schema{
	Name: "opentdb-questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"response_code": map[string]any{"type": "integer", "minimum": 0},
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":           map[string]any{"type": "string"},
						"difficulty":     map[string]any{"type": "string"},
						"category":       map[string]any{"type": "string"},
						"question":       map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"incorrect_answers": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"question", "correct_answer", "incorrect_answers"},
				},
			},
		},
		"required": []any{"response_code"},
	},
}

// CountSchema describes api_count.php.
var CountSchema = &Schema{
	Name: "opentdb-count",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category_id": map[string]any{"type": "integer"},
			"category_question_count": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"total_question_count":        map[string]any{"type": "integer", "minimum": 0},
					"total_easy_question_count":   map[string]any{"type": "integer", "minimum": 0},
					"total_medium_question_count": map[string]any{"type": "integer", "minimum": 0},
					"total_hard_question_count":   map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"total_question_count"},
			},
		},
		"required": []any{"category_id", "category_question_count"},
	},
}

// schemas lists every payload schema; they are compiled together on first use.
var schemas = []*Schema{CategoriesSchema, QuestionsSchema, CountSchema}

var (
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles every entry of schemas into one compiler.
func compileSchemas() error {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for _, sc := range schemas {
			def, err := decodeJSON(sc.Definition)
			if err != nil {
				compileErr = fmt.Errorf("schema %q: %w", sc.Name, err)
				return
			}
			if err := c.AddResource(sc.url(), def); err != nil {
				compileErr = fmt.Errorf("schema %q: %w", sc.Name, err)
				return
			}
		}
		for _, sc := range schemas {
			compiled, err := c.Compile(sc.url())
			if err != nil {
				compileErr = fmt.Errorf("schema %q: %w", sc.Name, err)
				return
			}
			sc.compiled = compiled
		}
	})
	return compileErr
}

func (s *Schema) url() string {
	return "opentdb://" + s.Name + ".json"
}

// decodeJSON turns a Go literal into the json.Number based value tree the
// compiler and validator expect.
func decodeJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(raw))
}

// validate checks a response body against schema. Failures are
// *InvalidResponseError.
func validate(schema *Schema, raw []byte) error {
	if schema == nil {
		return nil
	}
	if err := compileSchemas(); err != nil {
		return &InvalidResponseError{Content: raw, Err: err}
	}
	if schema.compiled == nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("schema %q is not registered", schema.Name)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.compiled.Validate(doc); err != nil {
		return &InvalidResponseError{Content: raw, Err: fmt.Errorf("%s schema validation failed: %w", schema.Name, err)}
	}
	return nil
}
