package tool

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type weatherInput struct {
	Location string `json:"location" jsonschema:"description=City and state"`
	Units    string `json:"units,omitempty"`
}

func TestFor(t *testing.T) {
	tool, err := For[weatherInput]("get_weather", Description("Look up the weather"))
	require.NoError(t, err)

	assert.Equal(t, "get_weather", tool.Name)
	require.NotNil(t, tool.Description)
	assert.Equal(t, "Look up the weather", *tool.Description)

	schema := tool.InputSchema
	assert.Equal(t, "object", schema.Get("type").String())
	assert.Equal(t, "string", schema.Get("properties.location.type").String())
	assert.Equal(t, "City and state", schema.Get("properties.location.description").String())
	assert.False(t, schema.Get("$schema").Exists())
}

func TestFor_SchemaOptionWins(t *testing.T) {
	custom := ObjectSchema(Property{Name: "expr", Schema: String("expression to evaluate"), Required: true})

	tool, err := For[weatherInput]("calc", Schema(custom))
	require.NoError(t, err)
	assert.Equal(t, "expression to evaluate", tool.InputSchema.Get("properties.expr.description").String())
	assert.False(t, tool.InputSchema.Get("properties.location").Exists())
}

func TestNew(t *testing.T) {
	t.Run("requires a schema", func(t *testing.T) {
		_, err := New("calc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has no input schema")
	})

	t.Run("builds from an explicit schema", func(t *testing.T) {
		tool, err := New("calc",
			Description("does sums"),
			Schema(ObjectSchema(Property{Name: "expr", Schema: String("expression"), Required: true})),
		)
		require.NoError(t, err)

		data, err := json.Marshal(tool)
		require.NoError(t, err)

		jv := gjson.ParseBytes(data)
		assert.Equal(t, "calc", jv.Get("name").String())
		assert.Equal(t, "does sums", jv.Get("description").String())
		assert.Equal(t, "object", jv.Get("input_schema.type").String())
		assert.JSONEq(t, `["expr"]`, jv.Get("input_schema.required").Raw)
	})
}

func TestObjectSchema_KeepsDeclarationOrder(t *testing.T) {
	schema := ObjectSchema(
		Property{Name: "first", Schema: String("a"), Required: true},
		Property{Name: "second", Schema: String("b")},
		Property{Name: "third", Schema: String("c"), Required: true},
	)

	var names []string
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
	assert.Equal(t, []string{"first", "third"}, schema.Required)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(For[weatherInput]("get_weather"))
	})
	assert.Panics(t, func() {
		Must(New("broken"))
	})
}
