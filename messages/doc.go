// Package messages holds the request/response data model for a
// conversational-AI messages API: typed conversation turns, the polymorphic
// content they carry, and the wire codec that moves both across a transport.
//
// Design decisions:
//   - Untagged content union: a message body is either a bare string or an
//     array of content blocks; the decoder dispatches on the JSON value type
//     because the wire carries no discriminator for this union
//   - Tagged segments: content blocks and tool choices carry a "type" field
//     and decode through strict tag dispatch, failing loudly on unknown tags
//   - Omission over null: optional request fields that were never set are
//     left off the wire entirely
//   - Opaque payloads: tool inputs and schemas pass through as raw JSON,
//     never validated here
//   - Immutable values: everything is constructed once and read thereafter;
//     the fluent setters return updated copies
//
// Example usage:
//
//	params := messages.NewCreateMessageParams(messages.RequiredMessageParams{
//	    Model:     "claude-3",
//	    Messages:  []messages.Message{messages.NewText(messages.RoleUser, "hi")},
//	    MaxTokens: 512,
//	}).WithTemperature(0.2)
//
//	body, err := json.Marshal(params)
//
// Decode failures surface as *DecodeError values carrying the offending tag
// or field name, distinguishable from transport and service errors.
package messages
