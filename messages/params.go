package messages

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// RequiredMessageParams carries the three fields every message request
// needs: the model, the conversation so far and the generation budget.
type RequiredMessageParams struct {
	Model     string
	Messages  []Message
	MaxTokens int
	_         struct{} // require keyed usage
}

// NewCreateMessageParams builds request params from the required fields,
// leaving every optional field unset.
func NewCreateMessageParams(required RequiredMessageParams) CreateMessageParams {
	return CreateMessageParams{
		Model:     required.Model,
		Messages:  required.Messages,
		MaxTokens: required.MaxTokens,
	}
}

// CreateMessageParams is the outbound request for creating a message.
// Optional fields use nil to mean unset; an unset field is left entirely
// off the wire, never emitted as null. The With* setters return an updated
// copy so configuration can be chained, and repeated calls overwrite.
//
// No semantic validation happens here: a zero MaxTokens or an empty
// conversation is serialized as given and left for the service to reject.
type CreateMessageParams struct {
	MaxTokens     int
	Messages      []Message
	Model         string
	System        *string
	Temperature   *float64
	StopSequences []string
	Stream        *bool
	TopK          *int
	TopP          *float64
	Tools         []Tool
	ToolChoice    ToolChoice
	Metadata      *Metadata
	_             struct{} // require keyed usage
}

// WithSystem sets the system prompt.
func (p CreateMessageParams) WithSystem(system string) CreateMessageParams {
	p.System = &system
	return p
}

// WithTemperature sets the sampling temperature.
func (p CreateMessageParams) WithTemperature(temperature float64) CreateMessageParams {
	p.Temperature = &temperature
	return p
}

// WithStopSequences sets custom stop sequences. Calling it with no
// arguments still marks the field as set, serializing an empty array.
func (p CreateMessageParams) WithStopSequences(sequences ...string) CreateMessageParams {
	if sequences == nil {
		sequences = []string{}
	}
	p.StopSequences = sequences
	return p
}

// WithStream sets whether the service should stream the response.
func (p CreateMessageParams) WithStream(stream bool) CreateMessageParams {
	p.Stream = &stream
	return p
}

// WithTopK sets top-k sampling.
func (p CreateMessageParams) WithTopK(topK int) CreateMessageParams {
	p.TopK = &topK
	return p
}

// WithTopP sets top-p sampling.
func (p CreateMessageParams) WithTopP(topP float64) CreateMessageParams {
	p.TopP = &topP
	return p
}

// WithTools sets the tools the model may use.
func (p CreateMessageParams) WithTools(tools ...Tool) CreateMessageParams {
	if tools == nil {
		tools = []Tool{}
	}
	p.Tools = tools
	return p
}

// WithToolChoice sets how the model should select among the tools.
func (p CreateMessageParams) WithToolChoice(choice ToolChoice) CreateMessageParams {
	p.ToolChoice = choice
	return p
}

// WithMetadata attaches request metadata.
func (p CreateMessageParams) WithMetadata(metadata Metadata) CreateMessageParams {
	p.Metadata = &metadata
	return p
}

// MarshalJSON implements json.Marshaler for CreateMessageParams.
// Only the three required keys and the optional fields that were set end up
// in the wire object.
func (p CreateMessageParams) MarshalJSON() ([]byte, error) {
	msgs := p.Messages
	if msgs == nil {
		msgs = []Message{}
	}
	rawMessages, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}

	result, err := sjson.SetBytes([]byte(`{}`), "model", p.Model)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetRawBytes(result, "messages", rawMessages)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "max_tokens", p.MaxTokens)
	if err != nil {
		return nil, err
	}

	if p.System != nil {
		result, err = sjson.SetBytes(result, "system", *p.System)
		if err != nil {
			return nil, err
		}
	}
	if p.Temperature != nil {
		result, err = sjson.SetBytes(result, "temperature", *p.Temperature)
		if err != nil {
			return nil, err
		}
	}
	if p.StopSequences != nil {
		raw, merr := json.Marshal(p.StopSequences)
		if merr != nil {
			return nil, merr
		}
		result, err = sjson.SetRawBytes(result, "stop_sequences", raw)
		if err != nil {
			return nil, err
		}
	}
	if p.Stream != nil {
		result, err = sjson.SetBytes(result, "stream", *p.Stream)
		if err != nil {
			return nil, err
		}
	}
	if p.TopK != nil {
		result, err = sjson.SetBytes(result, "top_k", *p.TopK)
		if err != nil {
			return nil, err
		}
	}
	if p.TopP != nil {
		result, err = sjson.SetBytes(result, "top_p", *p.TopP)
		if err != nil {
			return nil, err
		}
	}
	if p.Tools != nil {
		raw, merr := json.Marshal(p.Tools)
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal tools: %w", merr)
		}
		result, err = sjson.SetRawBytes(result, "tools", raw)
		if err != nil {
			return nil, err
		}
	}
	if p.ToolChoice != nil {
		raw, merr := json.Marshal(p.ToolChoice)
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal tool choice: %w", merr)
		}
		result, err = sjson.SetRawBytes(result, "tool_choice", raw)
		if err != nil {
			return nil, err
		}
	}
	if p.Metadata != nil {
		raw, merr := json.Marshal(p.Metadata)
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", merr)
		}
		result, err = sjson.SetRawBytes(result, "metadata", raw)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// CountMessageTokensParams is the request for the token counting operation.
type CountMessageTokensParams struct {
	Model    string
	Messages []Message
	_        struct{} // require keyed usage
}

// MarshalJSON implements json.Marshaler for CountMessageTokensParams.
func (p CountMessageTokensParams) MarshalJSON() ([]byte, error) {
	msgs := p.Messages
	if msgs == nil {
		msgs = []Message{}
	}
	rawMessages, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}
	result, err := sjson.SetBytes([]byte(`{}`), "model", p.Model)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(result, "messages", rawMessages)
}
