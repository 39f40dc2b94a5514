// Package tool builds wire-form tool definitions for the messages API,
// either by reflecting a Go input type into a JSON schema or from a
// hand-assembled schema with ordered properties.
package tool

import (
	"fmt"

	"github.com/fogfish/opts"
	json "github.com/goccy/go-json"
	"github.com/hermetic-ai/hermes/messages"
	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Definition collects everything needed to declare a tool before it is
// lowered into the wire form.
type Definition struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
}

var reflector = jsonschema.Reflector{
	AllowAdditionalProperties: true,
	DoNotReference:            true,
}

// Option configures a Definition.
type Option = opts.Option[Definition]

// Description sets the human-readable purpose of the tool.
var Description = opts.ForName[Definition, string]("Description")

// Schema sets a hand-built input schema on the definition.
var Schema = opts.ForName[Definition, *jsonschema.Schema]("Schema")

// For reflects the input type T into a JSON schema and returns the
// wire-form tool. An explicit Schema option takes precedence over
// reflection.
func For[T any](name string, options ...Option) (messages.Tool, error) {
	def := Definition{Name: name}
	if err := opts.Apply(&def, options); err != nil {
		return messages.Tool{}, err
	}
	if def.Schema == nil {
		var input T
		schema := reflector.Reflect(&input)
		schema.Version = ""
		def.Schema = schema
	}
	return def.Tool()
}

// New builds a wire-form tool from a name and options. The input schema
// must be provided through the Schema option.
func New(name string, options ...Option) (messages.Tool, error) {
	def := Definition{Name: name}
	if err := opts.Apply(&def, options); err != nil {
		return messages.Tool{}, err
	}
	if def.Schema == nil {
		return messages.Tool{}, fmt.Errorf("tool %s has no input schema", name)
	}
	return def.Tool()
}

// Tool lowers the definition into its wire form.
func (d Definition) Tool() (messages.Tool, error) {
	raw, err := json.Marshal(d.Schema)
	if err != nil {
		return messages.Tool{}, fmt.Errorf("failed to marshal schema for tool %s: %w", d.Name, err)
	}
	t := messages.NewTool(d.Name, gjson.ParseBytes(raw))
	if d.Description != "" {
		t = t.WithDescription(d.Description)
	}
	return t, nil
}

// Property is one named entry of an object schema.
type Property struct {
	Name     string
	Schema   *jsonschema.Schema
	Required bool
}

// ObjectSchema assembles an object schema from the given properties,
// keeping their declaration order.
func ObjectSchema(properties ...Property) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: orderedmap.New[string, *jsonschema.Schema](),
	}
	var required []string
	for _, p := range properties {
		schema.Properties.Set(p.Name, p.Schema)
		if p.Required {
			required = append(required, p.Name)
		}
	}
	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// String returns a string-typed schema with the given description.
func String(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

// Must wraps a tool constructor call and panics on error.
func Must(t messages.Tool, err error) messages.Tool {
	if err != nil {
		panic(err)
	}
	return t
}
