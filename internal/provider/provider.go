package provider

import (
	"context"
	"fmt"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config holds the credentials and model a caller supplied for a provider.
type Config struct {
	APIKey    string `json:"api_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	ModelName string `json:"model_name,omitempty"`
}

// Adapter translates a conversation into one vendor's wire format.
//
// GenerateResponse never fails: upstream problems come back as a reply
// starting with "Error: ", which the caller stores like any other reply.
type Adapter interface {
	GenerateResponse(ctx context.Context, messages []Message) string
}

// ErrorReply renders err as the textual surrogate adapters return.
func ErrorReply(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
