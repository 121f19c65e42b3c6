package domain

import "context"

// CompletionRequest is one prompt for the completion provider.
type CompletionRequest struct {
	System    string
	User      string
	MaxTokens int
}

// Completer is the completion provider contract.
//
// CompleteStructured constrains the output to the JSON schema derived from
// out's type; a response that fails schema validation is a provider error
// (ErrCompletionProviderError), never a panic or a partial parse.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	CompleteStructured(ctx context.Context, req CompletionRequest, schemaName string, out any) error
}
