package handler

import (
	"github.com/fitellieburger/ask-better-questions/internal/model"
	"github.com/fitellieburger/ask-better-questions/internal/pipeline"
	"github.com/fitellieburger/ask-better-questions/internal/resolve"
)

// AnalyzeRequest is the inbound body for both analysis routes. Every
// field is optional: unknown mode falls back to fast, unknown
// inputMode to paste.
type AnalyzeRequest struct {
	Mode      string `json:"mode"`
	InputMode string `json:"inputMode"`
	Text      string `json:"text"`
	URL       string `json:"url"`
	ChosenURL string `json:"chosenUrl"`
}

func (r AnalyzeRequest) toPipelineRequest() pipeline.Request {
	inputMode := "paste"
	if r.InputMode == "url" {
		inputMode = "url"
	}

	return pipeline.Request{
		Mode: model.ParseMode(r.Mode),
		Resolve: resolve.Request{
			InputMode: inputMode,
			Text:      r.Text,
			URL:       r.URL,
			ChosenURL: r.ChosenURL,
		},
	}
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
