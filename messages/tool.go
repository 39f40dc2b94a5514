package messages

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Tool describes a capability the model may invoke. InputSchema is an
// opaque JSON schema owned by the tool author and passed through as-is.
type Tool struct {
	Name        string
	Description *string
	InputSchema gjson.Result
	_           struct{} // require keyed usage
}

// NewTool creates a tool definition without a description.
func NewTool(name string, inputSchema gjson.Result) Tool {
	return Tool{Name: name, InputSchema: inputSchema}
}

// WithDescription returns a copy of the tool with the description set.
func (t Tool) WithDescription(description string) Tool {
	t.Description = &description
	return t
}

// MarshalJSON implements json.Marshaler for Tool.
// The description key is left off the wire entirely when unset.
func (t Tool) MarshalJSON() ([]byte, error) {
	result, err := sjson.SetBytes([]byte(`{}`), "name", t.Name)
	if err != nil {
		return nil, err
	}
	if t.Description != nil {
		result, err = sjson.SetBytes(result, "description", *t.Description)
		if err != nil {
			return nil, err
		}
	}
	schema := t.InputSchema.Raw
	if schema == "" {
		schema = "null"
	}
	return sjson.SetRawBytes(result, "input_schema", []byte(schema))
}

// UnmarshalJSON implements json.Unmarshaler for Tool.
func (t *Tool) UnmarshalJSON(input []byte) error {
	name := gjson.GetBytes(input, "name")
	if !name.Exists() {
		return missingFieldError("name")
	}
	if name.Type != gjson.String {
		return invalidFieldError("name", "must be a string")
	}
	schema := gjson.GetBytes(input, "input_schema")
	if !schema.Exists() {
		return missingFieldError("input_schema")
	}
	if description := gjson.GetBytes(input, "description"); description.Exists() {
		if description.Type != gjson.String {
			return invalidFieldError("description", "must be a string")
		}
		d := description.String()
		t.Description = &d
	}
	t.Name = name.String()
	t.InputSchema = schema
	return nil
}

var (
	toolChoiceAutoJSON = []byte(`{"type":"auto"}`)
	toolChoiceAnyJSON  = []byte(`{"type":"any"}`)
	toolChoiceToolJSON = []byte(`{"type":"tool"}`)
)

// ToolChoice steers how the model selects among the provided tools. The
// wire form carries a "type" discriminator: "auto", "any" or "tool".
type ToolChoice interface {
	toolChoice()
}

// ToolChoiceAuto lets the model decide whether to use tools at all.
type ToolChoiceAuto struct{}

func (ToolChoiceAuto) toolChoice() {}

// MarshalJSON implements json.Marshaler for ToolChoiceAuto.
func (ToolChoiceAuto) MarshalJSON() ([]byte, error) {
	return toolChoiceAutoJSON, nil
}

// ToolChoiceAny requires the model to use one of the provided tools.
type ToolChoiceAny struct{}

func (ToolChoiceAny) toolChoice() {}

// MarshalJSON implements json.Marshaler for ToolChoiceAny.
func (ToolChoiceAny) MarshalJSON() ([]byte, error) {
	return toolChoiceAnyJSON, nil
}

// ToolChoiceTool requires the model to use the named tool.
type ToolChoiceTool struct {
	Name string
	_    struct{} // require keyed usage
}

func (ToolChoiceTool) toolChoice() {}

// MarshalJSON implements json.Marshaler for ToolChoiceTool.
func (t ToolChoiceTool) MarshalJSON() ([]byte, error) {
	return sjson.SetBytes(toolChoiceToolJSON, "name", t.Name)
}

// DecodeToolChoice decodes a tool choice from its wire form, dispatching on
// the "type" discriminator.
func DecodeToolChoice(data []byte) (ToolChoice, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid json: %s", data)
	}
	tpe := gjson.GetBytes(data, "type")
	if !tpe.Exists() {
		return nil, missingFieldError("type")
	}
	switch tpe.String() {
	case "auto":
		return ToolChoiceAuto{}, nil
	case "any":
		return ToolChoiceAny{}, nil
	case "tool":
		name := gjson.GetBytes(data, "name")
		if !name.Exists() {
			return nil, missingFieldError("name")
		}
		return ToolChoiceTool{Name: name.String()}, nil
	default:
		return nil, unknownTagError(tpe.String())
	}
}

// Metadata is an open set of string fields attached to a request. It
// serializes as the bare field object, with no wrapper key around the
// fields themselves.
type Metadata struct {
	Fields map[string]string
	_      struct{} // require keyed usage
}

// MarshalJSON implements json.Marshaler for Metadata.
func (m Metadata) MarshalJSON() ([]byte, error) {
	if m.Fields == nil {
		return []byte(`{}`), nil
	}
	return json.Marshal(m.Fields)
}

// UnmarshalJSON implements json.Unmarshaler for Metadata.
func (m *Metadata) UnmarshalJSON(input []byte) error {
	if !gjson.ValidBytes(input) {
		return fmt.Errorf("invalid json: %s", input)
	}
	jv := gjson.ParseBytes(input)
	if !jv.IsObject() {
		return shapeError("metadata must be an object, got %s", jv.Type)
	}
	fields := make(map[string]string)
	var badField string
	jv.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			badField = key.String()
			return false
		}
		fields[key.String()] = value.String()
		return true
	})
	if badField != "" {
		return invalidFieldError(badField, "must be a string")
	}
	m.Fields = fields
	return nil
}
