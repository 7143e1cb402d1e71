package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// The three invocation failure kinds. They collapse into one error
// event at the stream boundary, but tests and any future retry policy
// need to tell them apart.
var (
	// ErrBackend covers transport-level failures: the call itself
	// errored or timed out.
	ErrBackend = errors.New("backend call failed")
	// ErrNoOutput (client.go) covers structurally empty responses.
	// ErrNotJSON covers text output that does not parse as JSON.
	ErrNotJSON = errors.New("model output is not valid JSON")
)

// Invoke runs one completion and parses the returned text as a JSON
// object. No retries; a failed invocation is terminal for the request.
func Invoke(ctx context.Context, g Generator, prompt string) (map[string]any, error) {
	content, err := g.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNoOutput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}

	cleaned := cleanJSONResponse(content)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	return parsed, nil
}
