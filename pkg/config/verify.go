package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema.json
var embeddedSchema string

const schemaURL = "config.schema.json"

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks value types, required properties, unknown properties and numeric minimums.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return validateDocument(embeddedSchema, configData)
}

// validateDocument checks a json document against a json schema
func validateDocument(schemaJSON string, doc []byte) error {
	schemaDoc, err := validator.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	c := validator.NewCompiler()
	if err := c.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	sch, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	inst, err := validator.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		var verr *validator.ValidationError
		if !errors.As(err, &verr) {
			return fmt.Errorf("validation failed: %w", err)
		}
		return fmt.Errorf("validation failed: %w", errors.Join(violations(verr)...))
	}
	return nil
}

// violations flattens a validation error tree into one error per failed keyword,
// each prefixed with the dotted config path and the keyword
func violations(verr *validator.ValidationError) []error {
	p := message.NewPrinter(language.English)
	var res []error
	var walk func(e *validator.ValidationError)
	walk = func(e *validator.ValidationError) {
		if len(e.Causes) > 0 {
			for _, c := range e.Causes {
				walk(c)
			}
			return
		}
		keyword := strings.Join(e.ErrorKind.KeywordPath(), "/")
		path := displayPath(strings.Join(e.InstanceLocation, "."))
		switch k := e.ErrorKind.(type) {
		case *kind.Required:
			for _, name := range k.Missing {
				res = append(res, fmt.Errorf("%s is required", joinPath(strings.Join(e.InstanceLocation, "."), name)))
			}
		case *kind.AdditionalProperties:
			for _, name := range k.Properties {
				res = append(res, fmt.Errorf("%s is not allowed", joinPath(strings.Join(e.InstanceLocation, "."), name)))
			}
		default:
			res = append(res, fmt.Errorf("%s %s: %s", path, keyword, e.ErrorKind.LocalizedString(p)))
		}
	}
	walk(verr)
	return res
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func displayPath(path string) string {
	if path == "" {
		return "config"
	}
	return path
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
