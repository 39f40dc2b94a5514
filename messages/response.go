package messages

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// StopReason explains why the service stopped generating.
type StopReason string

const (
	StopReasonEndTurn      StopReason = "end_turn"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonStopSequence StopReason = "stop_sequence"
	StopReasonToolUse      StopReason = "tool_use"
)

func parseStopReason(jv gjson.Result) (StopReason, error) {
	if jv.Type != gjson.String {
		return "", invalidFieldError("stop_reason", "must be a string")
	}
	switch r := StopReason(jv.String()); r {
	case StopReasonEndTurn, StopReasonMaxTokens, StopReasonStopSequence, StopReasonToolUse:
		return r, nil
	default:
		return "", invalidFieldError("stop_reason", "has unknown value %q", jv.String())
	}
}

// Usage reports token accounting for a request. Counters are non-negative
// and fixed once decoded.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	_            struct{}
}

// UnmarshalJSON implements json.Unmarshaler for Usage.
func (u *Usage) UnmarshalJSON(data []byte) error {
	input := gjson.GetBytes(data, "input_tokens")
	if !input.Exists() {
		return missingFieldError("input_tokens")
	}
	if input.Type != gjson.Number || input.Int() < 0 {
		return invalidFieldError("input_tokens", "must be a non-negative integer")
	}
	output := gjson.GetBytes(data, "output_tokens")
	if !output.Exists() {
		return missingFieldError("output_tokens")
	}
	if output.Type != gjson.Number || output.Int() < 0 {
		return invalidFieldError("output_tokens", "must be a non-negative integer")
	}
	u.InputTokens = int(input.Int())
	u.OutputTokens = int(output.Int())
	return nil
}

// CreateMessageResponse is the service reply to a create-message request.
// StopReason and StopSequence are empty when the service sent null for them.
type CreateMessageResponse struct {
	Content      []ContentBlock
	ID           string
	Model        string
	Role         Role
	StopReason   StopReason
	StopSequence string
	Type         string
	Usage        Usage
	_            struct{} // require keyed usage
}

// UnmarshalJSON implements json.Unmarshaler for CreateMessageResponse.
func (r *CreateMessageResponse) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	content := gjson.GetBytes(data, "content")
	if !content.Exists() {
		return missingFieldError("content")
	}
	if !content.IsArray() {
		return invalidFieldError("content", "must be an array")
	}
	aj := content.Array()
	blocks := make([]ContentBlock, len(aj))
	for idx, ajv := range aj {
		block, err := decodeContentBlock(ajv)
		if err != nil {
			return fmt.Errorf("content block at %d: %w", idx, err)
		}
		blocks[idx] = block
	}

	id := gjson.GetBytes(data, "id")
	if !id.Exists() {
		return missingFieldError("id")
	}
	model := gjson.GetBytes(data, "model")
	if !model.Exists() {
		return missingFieldError("model")
	}
	role := gjson.GetBytes(data, "role")
	if !role.Exists() {
		return missingFieldError("role")
	}
	parsedRole, err := parseRole(role)
	if err != nil {
		return err
	}
	tpe := gjson.GetBytes(data, "type")
	if !tpe.Exists() {
		return missingFieldError("type")
	}
	usage := gjson.GetBytes(data, "usage")
	if !usage.Exists() {
		return missingFieldError("usage")
	}
	if err := r.Usage.UnmarshalJSON([]byte(usage.Raw)); err != nil {
		return fmt.Errorf("invalid usage: %w", err)
	}

	if stopReason := gjson.GetBytes(data, "stop_reason"); stopReason.Exists() && stopReason.Type != gjson.Null {
		parsed, err := parseStopReason(stopReason)
		if err != nil {
			return err
		}
		r.StopReason = parsed
	}
	if stopSequence := gjson.GetBytes(data, "stop_sequence"); stopSequence.Exists() && stopSequence.Type != gjson.Null {
		r.StopSequence = stopSequence.String()
	}

	r.Content = blocks
	r.ID = id.String()
	r.Model = model.String()
	r.Role = parsedRole
	r.Type = tpe.String()
	return nil
}

// CountMessageTokensResponse is the service reply to a token counting
// request.
type CountMessageTokensResponse struct {
	InputTokens int `json:"input_tokens"`
	_           struct{}
}

// UnmarshalJSON implements json.Unmarshaler for CountMessageTokensResponse.
func (r *CountMessageTokensResponse) UnmarshalJSON(data []byte) error {
	input := gjson.GetBytes(data, "input_tokens")
	if !input.Exists() {
		return missingFieldError("input_tokens")
	}
	if input.Type != gjson.Number || input.Int() < 0 {
		return invalidFieldError("input_tokens", "must be a non-negative integer")
	}
	r.InputTokens = int(input.Int())
	return nil
}
