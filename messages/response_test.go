package messages

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"id": "msg_0123",
	"type": "message",
	"role": "assistant",
	"model": "claude-3",
	"content": [
		{"type": "text", "text": "Checking the weather."},
		{"type": "tool_use", "id": "toolu_01", "name": "get_weather", "input": {"city": "Paris"}}
	],
	"stop_reason": "tool_use",
	"stop_sequence": null,
	"usage": {"input_tokens": 17, "output_tokens": 42}
}`

func TestCreateMessageResponse_UnmarshalJSON(t *testing.T) {
	var resp CreateMessageResponse
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &resp))

	assert.Equal(t, "msg_0123", resp.ID)
	assert.Equal(t, "message", resp.Type)
	assert.Equal(t, RoleAssistant, resp.Role)
	assert.Equal(t, "claude-3", resp.Model)
	assert.Equal(t, StopReasonToolUse, resp.StopReason)
	assert.Empty(t, resp.StopSequence)
	assert.Equal(t, 17, resp.Usage.InputTokens)
	assert.Equal(t, 42, resp.Usage.OutputTokens)

	require.Len(t, resp.Content, 2)
	assert.Equal(t, Text("Checking the weather."), resp.Content[0])

	use, ok := resp.Content[1].(ToolUseBlock)
	require.True(t, ok)
	assert.Equal(t, "get_weather", use.Name)
	assert.JSONEq(t, `{"city":"Paris"}`, use.Input.Raw)
}

func TestCreateMessageResponse_StopFields(t *testing.T) {
	t.Run("stop_sequence populated", func(t *testing.T) {
		var resp CreateMessageResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-3",
			"content": [],
			"stop_reason": "stop_sequence",
			"stop_sequence": "END",
			"usage": {"input_tokens": 1, "output_tokens": 2}
		}`), &resp))
		assert.Equal(t, StopReasonStopSequence, resp.StopReason)
		assert.Equal(t, "END", resp.StopSequence)
		assert.Empty(t, resp.Content)
	})

	t.Run("null stop_reason decodes as empty", func(t *testing.T) {
		var resp CreateMessageResponse
		require.NoError(t, json.Unmarshal([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-3",
			"content": [{"type":"text","text":"hi"}],
			"stop_reason": null,
			"stop_sequence": null,
			"usage": {"input_tokens": 1, "output_tokens": 2}
		}`), &resp))
		assert.Empty(t, resp.StopReason)
	})

	t.Run("every stop reason value parses", func(t *testing.T) {
		for _, reason := range []StopReason{StopReasonEndTurn, StopReasonMaxTokens, StopReasonStopSequence, StopReasonToolUse} {
			var resp CreateMessageResponse
			require.NoError(t, json.Unmarshal([]byte(`{
				"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-3",
				"content": [],
				"stop_reason": "`+string(reason)+`",
				"usage": {"input_tokens": 0, "output_tokens": 0}
			}`), &resp))
			assert.Equal(t, reason, resp.StopReason)
		}
	})
}

func TestCreateMessageResponse_UnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name          string
		json          string
		expectedError string
	}{
		{
			name:          "missing content",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: "missing required field 'content'",
		},
		{
			name:          "content not an array",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":"hi","usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: "field 'content' must be an array",
		},
		{
			name:          "missing id",
			json:          `{"type":"message","role":"assistant","model":"m","content":[],"usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: "missing required field 'id'",
		},
		{
			name:          "missing usage",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[]}`,
			expectedError: "missing required field 'usage'",
		},
		{
			name:          "unknown stop reason",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"ran_out_of_patience","usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: `field 'stop_reason' has unknown value "ran_out_of_patience"`,
		},
		{
			name:          "unknown role",
			json:          `{"id":"msg_1","type":"message","role":"narrator","model":"m","content":[],"usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: `field 'role' has unknown value "narrator"`,
		},
		{
			name:          "negative usage counter",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[],"usage":{"input_tokens":-1,"output_tokens":1}}`,
			expectedError: "field 'input_tokens' must be a non-negative integer",
		},
		{
			name:          "unknown content block tag",
			json:          `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[{"type":"video"}],"usage":{"input_tokens":1,"output_tokens":1}}`,
			expectedError: `unknown type "video"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp CreateMessageResponse
			err := json.Unmarshal([]byte(tt.json), &resp)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}

	// The codec rejects malformed syntax before the custom decoder runs, so
	// feed the bytes straight to UnmarshalJSON the way raw-bytes callers do.
	t.Run("invalid json", func(t *testing.T) {
		var resp CreateMessageResponse
		err := resp.UnmarshalJSON([]byte(`{invalid`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid json")
	})
}

func TestUsage_UnmarshalJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var usage Usage
		require.NoError(t, json.Unmarshal([]byte(`{"input_tokens":3,"output_tokens":0}`), &usage))
		assert.Equal(t, 3, usage.InputTokens)
		assert.Equal(t, 0, usage.OutputTokens)
	})

	t.Run("missing output_tokens", func(t *testing.T) {
		var usage Usage
		err := json.Unmarshal([]byte(`{"input_tokens":3}`), &usage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required field 'output_tokens'")
	})

	t.Run("mistyped counter", func(t *testing.T) {
		var usage Usage
		err := json.Unmarshal([]byte(`{"input_tokens":"3","output_tokens":1}`), &usage)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, "input_tokens", decodeErr.Field)
	})
}

func TestCountMessageTokensResponse_UnmarshalJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var resp CountMessageTokensResponse
		require.NoError(t, json.Unmarshal([]byte(`{"input_tokens":2095}`), &resp))
		assert.Equal(t, 2095, resp.InputTokens)
	})

	t.Run("missing input_tokens", func(t *testing.T) {
		var resp CountMessageTokensResponse
		err := json.Unmarshal([]byte(`{}`), &resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required field 'input_tokens'")
	})
}
