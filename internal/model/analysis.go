package model

// Mode selects the flavor of analysis a request produces.
type Mode string

const (
	ModeFast   Mode = "fast"
	ModeDeeper Mode = "deeper"
	ModeCliff  Mode = "cliff"
	ModeBundle Mode = "bundle"
)

// ParseMode maps an untrusted request value onto a known mode,
// defaulting to fast.
func ParseMode(raw string) Mode {
	switch Mode(raw) {
	case ModeDeeper, ModeCliff, ModeBundle:
		return Mode(raw)
	default:
		return ModeFast
	}
}

// SubModes lists the three single-set modes a bundle expands to.
func SubModes() []Mode {
	return []Mode{ModeFast, ModeDeeper, ModeCliff}
}

const (
	LabelWords   = "Words"
	LabelProof   = "Proof"
	LabelMissing = "Missing"
)

// Item is one validated prompt: a question (fast/deeper) or a
// declarative cue (cliff), plus the reason it matters.
type Item struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Why   string `json:"why"`
}

// Meta holds the three raw article scores, each clamped to 0..100.
type Meta struct {
	Neutrality int `json:"neutrality"`
	Heat       int `json:"heat"`
	Support    int `json:"support"`
}

// Bundle groups the three item sets produced by bundle mode.
type Bundle struct {
	Fast   []Item `json:"fast"`
	Deeper []Item `json:"deeper"`
	Cliff  []Item `json:"cliff"`
}

// ExtractCandidate is one article link surfaced from a multi-story
// hub page. Passed through to the caller untouched.
type ExtractCandidate struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Score   int    `json:"score"`
	Snippet string `json:"snippet"`
}
