// Package normalize enforces the output schema over parsed model
// JSON. Validation is fail-closed: one malformed item invalidates the
// whole set. A partially-valid answer presented as analysis is worse
// than a clear failure, so nothing is repaired or salvaged.
package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitellieburger/ask-better-questions/internal/model"
)

// ErrSchema is the base kind for every validation failure.
var ErrSchema = errors.New("model output failed validation")

// SetResult is one validated item set. Meta is nil when the payload
// carried none; that is legal, it just means no meter can be derived.
type SetResult struct {
	Items []model.Item
	Meta  *model.Meta
}

// itemTextKeys is the ordered fallback list for an item's text field.
// "question" and "cue" are accepted for backward compatibility with
// older prompt revisions; the order is intentional and fixed.
var itemTextKeys = []string{"text", "question", "cue"}

// NormalizeSet validates one item set for a single (non-bundle) mode.
// The item array may live under "items", the legacy "questions" key,
// or "bundle.<mode>" when the backend answered the combined bundle
// schema. That dual-key tolerance is additive back-compatibility, not
// a relaxation: everything found there is validated in full.
func NormalizeSet(parsed map[string]any, mode model.Mode) (*SetResult, error) {
	if parsed == nil {
		return nil, fmt.Errorf("%w: non-object JSON", ErrSchema)
	}

	rawItems := locateItems(parsed, mode)
	list, ok := rawItems.([]any)
	if !ok || len(list) != 3 {
		return nil, fmt.Errorf("%w: need exactly 3 items", ErrSchema)
	}

	items := make([]model.Item, 0, 3)
	seen := map[string]bool{}

	for _, raw := range list {
		item, err := normalizeItem(raw, mode)
		if err != nil {
			return nil, err
		}
		if seen[item.Label] {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrSchema, item.Label)
		}
		seen[item.Label] = true
		items = append(items, item)
	}

	// Three items, no duplicates: all three labels are present.

	return &SetResult{Items: items, Meta: metaFrom(parsed)}, nil
}

func locateItems(parsed map[string]any, mode model.Mode) any {
	if v, ok := parsed["items"]; ok {
		return v
	}
	if v, ok := parsed["questions"]; ok {
		return v
	}
	if bundle, ok := parsed["bundle"].(map[string]any); ok {
		return bundle[string(mode)]
	}
	return nil
}

func normalizeItem(raw any, mode model.Mode) (model.Item, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return model.Item{}, fmt.Errorf("%w: item is not an object", ErrSchema)
	}

	label, _ := obj["label"].(string)
	if label != model.LabelWords && label != model.LabelProof && label != model.LabelMissing {
		return model.Item{}, fmt.Errorf("%w: invalid label %q", ErrSchema, label)
	}

	var text string
	for _, key := range itemTextKeys {
		if s, ok := obj[key].(string); ok && s != "" {
			text = s
			break
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, fmt.Errorf("%w: item %q has no text", ErrSchema, label)
	}

	why, _ := obj["why"].(string)
	why = strings.TrimSpace(why)
	if why == "" {
		return model.Item{}, fmt.Errorf("%w: item %q has no why", ErrSchema, label)
	}

	if err := checkPunctuation(text, mode); err != nil {
		return model.Item{}, err
	}

	return model.Item{Label: label, Text: text, Why: why}, nil
}

// checkPunctuation applies the per-mode text rule. A hard gate, not a
// warning: cliff cues are declarative, everything else is a question.
func checkPunctuation(text string, mode model.Mode) error {
	if mode == model.ModeCliff {
		if strings.Contains(text, "?") {
			return fmt.Errorf("%w: cliff cue contains '?'", ErrSchema)
		}
		if !strings.HasSuffix(text, ".") {
			return fmt.Errorf("%w: cliff cue must end with '.'", ErrSchema)
		}
		return nil
	}
	if !strings.HasSuffix(text, "?") {
		return fmt.Errorf("%w: question must end with '?'", ErrSchema)
	}
	return nil
}

// metaFrom pulls the optional meta object. All three fields must be
// numbers for meta to count; otherwise it is absent, which is not an
// error. Values are rounded and clamped to 0..100.
func metaFrom(parsed map[string]any) *model.Meta {
	obj, ok := parsed["meta"].(map[string]any)
	if !ok {
		return nil
	}

	neutrality, okN := obj["neutrality"].(float64)
	heat, okH := obj["heat"].(float64)
	support, okS := obj["support"].(float64)
	if !okN || !okH || !okS {
		return nil
	}

	return &model.Meta{
		Neutrality: model.Clamp100(neutrality),
		Heat:       model.Clamp100(heat),
		Support:    model.Clamp100(support),
	}
}
