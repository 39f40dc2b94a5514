package messages

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	textBlockJSON       = []byte(`{"type":"text"}`)
	imageBlockJSON      = []byte(`{"type":"image"}`)
	toolUseBlockJSON    = []byte(`{"type":"tool_use"}`)
	toolResultBlockJSON = []byte(`{"type":"tool_result"}`)
)

// ContentBlock is one segment of block-shaped message content. The wire
// form carries a "type" discriminator naming one of the four
// implementations: TextBlock, ImageBlock, ToolUseBlock or ToolResultBlock.
type ContentBlock interface {
	contentBlock()
}

func decodeContentBlock(jv gjson.Result) (ContentBlock, error) {
	tpe := jv.Get("type")
	if !tpe.Exists() {
		return nil, missingFieldError("type")
	}
	switch tpe.String() {
	case "text":
		var block TextBlock
		if err := block.UnmarshalJSON([]byte(jv.Raw)); err != nil {
			return nil, fmt.Errorf("invalid text block: %w", err)
		}
		return block, nil
	case "image":
		var block ImageBlock
		if err := block.UnmarshalJSON([]byte(jv.Raw)); err != nil {
			return nil, fmt.Errorf("invalid image block: %w", err)
		}
		return block, nil
	case "tool_use":
		var block ToolUseBlock
		if err := block.UnmarshalJSON([]byte(jv.Raw)); err != nil {
			return nil, fmt.Errorf("invalid tool_use block: %w", err)
		}
		return block, nil
	case "tool_result":
		var block ToolResultBlock
		if err := block.UnmarshalJSON([]byte(jv.Raw)); err != nil {
			return nil, fmt.Errorf("invalid tool_result block: %w", err)
		}
		return block, nil
	default:
		return nil, unknownTagError(tpe.String())
	}
}

// Text creates a text block.
func Text(text string) TextBlock {
	return TextBlock{Text: text}
}

// TextBlock is a plain text content segment.
type TextBlock struct {
	Text string
	_    struct{} // require keyed usage
}

func (TextBlock) contentBlock() {}

// MarshalJSON implements json.Marshaler for TextBlock.
func (t TextBlock) MarshalJSON() ([]byte, error) {
	return sjson.SetBytes(textBlockJSON, "text", t.Text)
}

// UnmarshalJSON implements json.Unmarshaler for TextBlock.
func (t *TextBlock) UnmarshalJSON(input []byte) error {
	text := gjson.GetBytes(input, "text")
	if !text.Exists() {
		return missingFieldError("text")
	}
	if text.Type != gjson.String {
		return invalidFieldError("text", "must be a string")
	}
	t.Text = text.String()
	return nil
}

// Image creates an image block from its source parts.
func Image(sourceType, mediaType, data string) ImageBlock {
	return ImageBlock{
		Source: ImageSource{
			Type:      sourceType,
			MediaType: mediaType,
			Data:      data,
		},
	}
}

// ImageSource locates the bytes of an image block. Every field is opaque to
// this layer; neither the media type nor the base64 payload is validated.
type ImageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
	_         struct{}
}

// UnmarshalJSON implements json.Unmarshaler for ImageSource.
// All three fields are required on the wire.
func (s *ImageSource) UnmarshalJSON(input []byte) error {
	tpe := gjson.GetBytes(input, "type")
	if !tpe.Exists() {
		return missingFieldError("type")
	}
	mediaType := gjson.GetBytes(input, "media_type")
	if !mediaType.Exists() {
		return missingFieldError("media_type")
	}
	data := gjson.GetBytes(input, "data")
	if !data.Exists() {
		return missingFieldError("data")
	}
	s.Type = tpe.String()
	s.MediaType = mediaType.String()
	s.Data = data.String()
	return nil
}

// ImageBlock is an image content segment.
type ImageBlock struct {
	Source ImageSource
	_      struct{} // require keyed usage
}

func (ImageBlock) contentBlock() {}

// MarshalJSON implements json.Marshaler for ImageBlock.
func (i ImageBlock) MarshalJSON() ([]byte, error) {
	source, err := json.Marshal(i.Source)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(imageBlockJSON, "source", source)
}

// UnmarshalJSON implements json.Unmarshaler for ImageBlock.
func (i *ImageBlock) UnmarshalJSON(input []byte) error {
	source := gjson.GetBytes(input, "source")
	if !source.Exists() {
		return missingFieldError("source")
	}
	if !source.IsObject() {
		return invalidFieldError("source", "must be an object")
	}
	if err := i.Source.UnmarshalJSON([]byte(source.Raw)); err != nil {
		return fmt.Errorf("invalid image source: %w", err)
	}
	return nil
}

// ToolUse creates a tool_use block. The input is passed through untouched;
// its shape belongs to the tool's own schema, not to this package.
func ToolUse(id, name string, input gjson.Result) ToolUseBlock {
	return ToolUseBlock{ID: id, Name: name, Input: input}
}

// ToolUseBlock records the model invoking a tool with schema-free input.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input gjson.Result
	_     struct{} // require keyed usage
}

func (ToolUseBlock) contentBlock() {}

// MarshalJSON implements json.Marshaler for ToolUseBlock.
func (t ToolUseBlock) MarshalJSON() ([]byte, error) {
	result, err := sjson.SetBytes(toolUseBlockJSON, "id", t.ID)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetBytes(result, "name", t.Name)
	if err != nil {
		return nil, err
	}
	input := t.Input.Raw
	if input == "" {
		input = "null"
	}
	return sjson.SetRawBytes(result, "input", []byte(input))
}

// UnmarshalJSON implements json.Unmarshaler for ToolUseBlock.
func (t *ToolUseBlock) UnmarshalJSON(input []byte) error {
	id := gjson.GetBytes(input, "id")
	if !id.Exists() {
		return missingFieldError("id")
	}
	if id.Type != gjson.String {
		return invalidFieldError("id", "must be a string")
	}
	name := gjson.GetBytes(input, "name")
	if !name.Exists() {
		return missingFieldError("name")
	}
	if name.Type != gjson.String {
		return invalidFieldError("name", "must be a string")
	}
	in := gjson.GetBytes(input, "input")
	if !in.Exists() {
		return missingFieldError("input")
	}
	t.ID = id.String()
	t.Name = name.String()
	t.Input = in
	return nil
}

// ToolResult creates a tool_result block answering an earlier tool_use.
func ToolResult(toolUseID, content string) ToolResultBlock {
	return ToolResultBlock{ToolUseID: toolUseID, Content: content}
}

// ToolResultBlock carries the outcome of a tool invocation back to the model.
type ToolResultBlock struct {
	ToolUseID string
	Content   string
	_         struct{} // require keyed usage
}

func (ToolResultBlock) contentBlock() {}

// MarshalJSON implements json.Marshaler for ToolResultBlock.
func (t ToolResultBlock) MarshalJSON() ([]byte, error) {
	result, err := sjson.SetBytes(toolResultBlockJSON, "tool_use_id", t.ToolUseID)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(result, "content", t.Content)
}

// UnmarshalJSON implements json.Unmarshaler for ToolResultBlock.
func (t *ToolResultBlock) UnmarshalJSON(input []byte) error {
	toolUseID := gjson.GetBytes(input, "tool_use_id")
	if !toolUseID.Exists() {
		return missingFieldError("tool_use_id")
	}
	if toolUseID.Type != gjson.String {
		return invalidFieldError("tool_use_id", "must be a string")
	}
	content := gjson.GetBytes(input, "content")
	if !content.Exists() {
		return missingFieldError("content")
	}
	if content.Type != gjson.String {
		return invalidFieldError("content", "must be a string")
	}
	t.ToolUseID = toolUseID.String()
	t.Content = content.String()
	return nil
}
