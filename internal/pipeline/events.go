package pipeline

import "github.com/fitellieburger/ask-better-questions/internal/model"

// Event is one NDJSON line of the response stream. A stream emits
// zero or more progress events followed by exactly one terminal
// event: choice, result, or error.
type Event struct {
	Type   string `json:"type"`
	Stage  string `json:"stage,omitempty"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`
}

const (
	EventProgress = "progress"
	EventChoice   = "choice"
	EventResult   = "result"
	EventError    = "error"
)

// ChoiceData asks the caller to pick one story from a hub page.
type ChoiceData struct {
	Mode        string                   `json:"mode"`
	NeedsChoice bool                     `json:"needsChoice"`
	SourceURL   string                   `json:"sourceUrl"`
	Candidates  []model.ExtractCandidate `json:"candidates"`
}

// ResultData is the successful analysis payload. Single modes fill
// Items; bundle mode fills Bundle. Meta and Meter are present when
// the model supplied scores.
type ResultData struct {
	Mode   string        `json:"mode"`
	Items  []model.Item  `json:"items,omitempty"`
	Bundle *model.Bundle `json:"bundle,omitempty"`
	Meta   *model.Meta   `json:"meta,omitempty"`
	Meter  *model.Meter  `json:"meter,omitempty"`
}

func progressEvent(stage string) Event {
	return Event{Type: EventProgress, Stage: stage}
}

func choiceEvent(data *ChoiceData) Event {
	return Event{Type: EventChoice, Data: data}
}

func resultEvent(data *ResultData) Event {
	return Event{Type: EventResult, Data: data}
}

func errorEvent(f *Fault) Event {
	return Event{Type: EventError, Error: f.Message, Detail: f.Detail}
}
