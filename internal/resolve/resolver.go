// Package resolve turns a request's input (pasted text or a URL) into
// plain article text, or surfaces the candidate list of a multi-story
// hub page for the user to disambiguate.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fitellieburger/ask-better-questions/internal/cache"
	"github.com/fitellieburger/ask-better-questions/internal/model"
	"github.com/fitellieburger/ask-better-questions/pkg/extract"
)

const (
	minTextLen = 80
	minURLLen  = 8
)

// Resolution failure kinds. The paste-path and extract-path length
// failures stay distinct so callers can give different guidance.
var (
	ErrTextTooShort  = errors.New("Paste a bit more article text (at least ~80 characters).")
	ErrBadURL        = errors.New("Paste a valid URL.")
	ErrExtractor     = errors.New("Could not fetch that URL.")
	ErrNotEnoughText = errors.New("Could not extract enough article text from that URL.")
)

// Request carries the input fields of one analysis request.
type Request struct {
	InputMode string
	Text      string
	URL       string
	ChosenURL string
}

type Kind int

const (
	// KindText means article text is ready for the pipeline.
	KindText Kind = iota
	// KindChoice means the URL led to a hub page and the caller must
	// pick one candidate before analysis can run.
	KindChoice
)

type Resolution struct {
	Kind       Kind
	Text       string
	SourceURL  string
	Candidates []model.ExtractCandidate
}

type Resolver struct {
	extractor extract.Extractor
	cache     cache.ExtractCache
}

func New(extractor extract.Extractor, c cache.ExtractCache) *Resolver {
	return &Resolver{extractor: extractor, cache: c}
}

// Resolve normalizes one request into article text or a choice.
// Paste mode never touches the network; URL mode makes at most one
// extractor call, and none when the cache already holds the page.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Resolution, error) {
	if req.InputMode != "url" {
		return resolvePaste(req.Text)
	}
	return r.resolveURL(ctx, req)
}

func resolvePaste(text string) (*Resolution, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minTextLen {
		return nil, ErrTextTooShort
	}
	// Pasted text passes through verbatim. It is content to analyze,
	// never instructions; the prompt templates enforce the same rule
	// on the model side.
	return &Resolution{Kind: KindText, Text: trimmed}, nil
}

func (r *Resolver) resolveURL(ctx context.Context, req Request) (*Resolution, error) {
	url := strings.TrimSpace(req.URL)
	chosenURL := strings.TrimSpace(req.ChosenURL)

	if len(url) < minURLLen {
		return nil, ErrBadURL
	}

	// A supplied chosenUrl wins: once the user has committed to one
	// candidate, never re-ask.
	targetURL := url
	if chosenURL != "" {
		targetURL = chosenURL
	}

	extracted, hit := r.cache.Get(ctx, targetURL)
	if !hit {
		var err error
		extracted, err = r.extractor.Extract(ctx, targetURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractor, err)
		}
		r.cache.Set(ctx, targetURL, extracted)
	}

	if chosenURL == "" && extracted.IsMulti {
		return &Resolution{
			Kind:       KindChoice,
			SourceURL:  extracted.URL,
			Candidates: extracted.Candidates,
		}, nil
	}

	text := strings.TrimSpace(extracted.Text)
	if len(text) < minTextLen {
		return nil, ErrNotEnoughText
	}

	return &Resolution{Kind: KindText, Text: text}, nil
}
