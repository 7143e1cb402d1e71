package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitellieburger/ask-better-questions/internal/pipeline"
)

// Analyzer is the slice of the pipeline the handlers need.
type Analyzer interface {
	Stream(ctx context.Context, req pipeline.Request, emit func(pipeline.Event))
	Execute(ctx context.Context, req pipeline.Request) (*pipeline.Outcome, *pipeline.Fault)
}

type QuestionHandler struct {
	analyzer Analyzer
}

func NewQuestionHandler(analyzer Analyzer) *QuestionHandler {
	return &QuestionHandler{analyzer: analyzer}
}

// Analyze is the streaming route. It always answers HTTP 200 with
// application/x-ndjson; failures travel inside the stream as the
// terminal error event, never as a status code or a panic.
func (h *QuestionHandler) Analyze(c *gin.Context) {
	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)

	enc := json.NewEncoder(c.Writer)
	emit := func(e pipeline.Event) {
		// The caller hung up: stop writing, let the pipeline wind down.
		if c.Request.Context().Err() != nil {
			return
		}
		if err := enc.Encode(e); err != nil {
			slog.Warn("stream write failed", "error", err)
			return
		}
		c.Writer.Flush()
	}

	var body AnalyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		emit(pipeline.Event{
			Type:   pipeline.EventError,
			Error:  "Invalid request body.",
			Detail: err.Error(),
		})
		return
	}

	h.analyzer.Stream(c.Request.Context(), body.toPipelineRequest(), emit)
}

// AnalyzeSync is the single-response variant of the same pipeline,
// used by callers that cannot consume NDJSON. Status codes: 200 for
// result/choice, 400 bad input, 422 extraction trouble, 500 the rest.
func (h *QuestionHandler) AnalyzeSync(c *gin.Context) {
	var body AnalyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body."})
		return
	}

	out, fault := h.analyzer.Execute(c.Request.Context(), body.toPipelineRequest())
	if fault != nil {
		c.JSON(fault.Status(), ErrorResponse{Error: fault.Message, Detail: fault.Detail})
		return
	}

	if out.Choice != nil {
		c.JSON(http.StatusOK, out.Choice)
		return
	}
	c.JSON(http.StatusOK, out.Result)
}

// GetHealth answers warmup pings from the extension and the mobile app.
func (h *QuestionHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
