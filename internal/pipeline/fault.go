package pipeline

import (
	"errors"
	"net/http"

	"github.com/fitellieburger/ask-better-questions/internal/normalize"
	"github.com/fitellieburger/ask-better-questions/internal/resolve"
	"github.com/fitellieburger/ask-better-questions/pkg/llm"
)

// FaultKind sorts every pipeline failure into one of five buckets.
// The stream collapses them all into one error event; the sync route
// maps them onto HTTP status codes.
type FaultKind int

const (
	FaultInput FaultKind = iota
	FaultExtraction
	FaultInvocation
	FaultSchema
	FaultInternal
)

// Fault is a failure flattened to what crosses the API boundary: a
// short user-facing message plus an optional technical detail.
type Fault struct {
	Kind    FaultKind
	Message string
	Detail  string
}

func (f *Fault) Status() int {
	switch f.Kind {
	case FaultInput:
		return http.StatusBadRequest
	case FaultExtraction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

const genericMessage = "Failed to generate output."

// classify maps any error raised inside the pipeline to a Fault.
// Input-validation messages are user-correctable and shown verbatim;
// everything else gets the generic message with the error as detail.
func classify(err error) *Fault {
	switch {
	case errors.Is(err, resolve.ErrTextTooShort):
		return &Fault{Kind: FaultInput, Message: resolve.ErrTextTooShort.Error()}
	case errors.Is(err, resolve.ErrBadURL):
		return &Fault{Kind: FaultInput, Message: resolve.ErrBadURL.Error()}
	case errors.Is(err, resolve.ErrNotEnoughText):
		return &Fault{Kind: FaultExtraction, Message: resolve.ErrNotEnoughText.Error()}
	case errors.Is(err, resolve.ErrExtractor):
		return &Fault{Kind: FaultExtraction, Message: resolve.ErrExtractor.Error(), Detail: err.Error()}
	case errors.Is(err, llm.ErrBackend), errors.Is(err, llm.ErrNoOutput), errors.Is(err, llm.ErrNotJSON):
		return &Fault{Kind: FaultInvocation, Message: genericMessage, Detail: err.Error()}
	case errors.Is(err, normalize.ErrSchema):
		return &Fault{Kind: FaultSchema, Message: genericMessage, Detail: err.Error()}
	default:
		return &Fault{Kind: FaultInternal, Message: genericMessage, Detail: err.Error()}
	}
}
