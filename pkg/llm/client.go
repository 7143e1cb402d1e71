package llm

import (
	"context"
	"errors"
	"strings"
)

// Generator is a text-completion backend. Implementations send one
// fully-formed prompt and return the raw text the model produced.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ErrNoOutput marks responses that arrived but carried no usable
// message text. Kept distinct from transport errors so callers can
// tell "the call failed" from "the call succeeded with garbage".
var ErrNoOutput = errors.New("no text output from model")

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
