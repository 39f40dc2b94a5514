package messages

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Role identifies the sender of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func parseRole(jv gjson.Result) (Role, error) {
	if jv.Type != gjson.String {
		return "", invalidFieldError("role", "must be a string")
	}
	switch r := Role(jv.String()); r {
	case RoleUser, RoleAssistant:
		return r, nil
	default:
		return "", invalidFieldError("role", "has unknown value %q", jv.String())
	}
}

// Message is a single turn in a conversation.
type Message struct {
	Role    Role
	Content MessageContent
	_       struct{} // require keyed usage
}

// NewText creates a message holding plain text content.
func NewText(role Role, text string) Message {
	return Message{Role: role, Content: TextContent(text)}
}

// NewBlocks creates a message holding block-shaped content.
func NewBlocks(role Role, blocks ...ContentBlock) Message {
	return Message{Role: role, Content: BlockContent(blocks...)}
}

// MarshalJSON implements json.Marshaler for Message.
func (m Message) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(m.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message content: %w", err)
	}

	result, err := sjson.SetBytes([]byte(`{}`), "role", string(m.Role))
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(result, "content", content)
}

// UnmarshalJSON implements json.Unmarshaler for Message.
// Both 'role' and 'content' are required on the wire.
func (m *Message) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	role := gjson.GetBytes(data, "role")
	if !role.Exists() {
		return missingFieldError("role")
	}
	parsed, err := parseRole(role)
	if err != nil {
		return err
	}

	content := gjson.GetBytes(data, "content")
	if !content.Exists() {
		return missingFieldError("content")
	}
	if err := m.Content.UnmarshalJSON([]byte(content.Raw)); err != nil {
		return fmt.Errorf("invalid message content: %w", err)
	}

	m.Role = parsed
	return nil
}

// MessageContent is the untagged union of the two shapes a message body can
// take: plain text or an ordered list of content blocks. Parts == nil selects
// the text shape, a non-nil Parts (possibly empty) the block shape, so an
// empty block list stays distinct from empty text. The wire form carries no
// discriminator; the JSON value type is the only decode signal.
type MessageContent struct {
	Content string
	Parts   []ContentBlock
	_       struct{} // require keyed usage
}

// TextContent creates message content holding plain text.
func TextContent(text string) MessageContent {
	return MessageContent{Content: text}
}

// BlockContent creates message content holding the given blocks. The block
// shape is kept even when no blocks are given.
func BlockContent(blocks ...ContentBlock) MessageContent {
	if blocks == nil {
		blocks = []ContentBlock{}
	}
	return MessageContent{Parts: blocks}
}

// MarshalJSON implements json.Marshaler for MessageContent.
// The block shape serializes as an array of tagged objects, the text shape
// as a bare JSON string. The shape actually held is never rewrapped.
func (c MessageContent) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Content)
}

// UnmarshalJSON implements json.Unmarshaler for MessageContent.
// A JSON string decodes as the text shape and a JSON array as the block
// shape; any other JSON value type fails.
func (c *MessageContent) UnmarshalJSON(input []byte) error {
	if !gjson.ValidBytes(input) {
		return fmt.Errorf("invalid json: %s", input)
	}
	jv := gjson.ParseBytes(input)
	switch {
	case jv.IsArray():
		aj := jv.Array()
		parts := make([]ContentBlock, len(aj))
		for idx, ajv := range aj {
			part, err := decodeContentBlock(ajv)
			if err != nil {
				return fmt.Errorf("content block at %d: %w", idx, err)
			}
			parts[idx] = part
		}
		c.Parts = parts
		c.Content = ""
		return nil
	case jv.Type == gjson.String:
		c.Content = jv.String()
		c.Parts = nil
		return nil
	default:
		return shapeError("message content must be a string or an array, got %s", jv.Type)
	}
}
