/*
Package hermes defines the client contract and error taxonomy for a
conversational-AI messages API. The typed request/response model lives in
the messages subpackage; this package pins down the two operations a
transport must implement and the errors it must produce.

The split is intentional: everything transport-shaped (endpoints, headers,
authentication, retry policy, streaming) belongs to Client implementations,
while this module only defines the values that cross that boundary.

A minimal consumer looks like:

	params := messages.NewCreateMessageParams(messages.RequiredMessageParams{
		Model:     "claude-3",
		Messages:  []messages.Message{messages.NewText(messages.RoleUser, "hi")},
		MaxTokens: 256,
	}).WithSystem("Be brief.")

	resp, err := client.CreateMessage(ctx, &params)
	if err != nil {
		var apiErr *hermes.APIError
		if errors.As(err, &apiErr) {
			// the service answered with a failure
		}
		return err
	}

	for _, block := range resp.Content {
		if text, ok := block.(messages.TextBlock); ok {
			fmt.Println(text.Text)
		}
	}

The tool subpackage builds wire-form tool definitions from Go types or
hand-assembled schemas.
*/
package hermes
