package llm

import "regexp"

// RouteTag classifies an article so the prompt can lean on the most
// useful question style.
type RouteTag string

const (
	TagAnonymousSources RouteTag = "ANONYMOUS_SOURCES"
	TagDataNumbers      RouteTag = "DATA_NUMBERS"
	TagHighEmotion      RouteTag = "HIGH_EMOTION"
	TagPolicyProcess    RouteTag = "POLICY_PROCESS"
	TagDefault          RouteTag = "DEFAULT"
)

var (
	reAnonymous = regexp.MustCompile(`(?i)\banonymous\b|\bnot authorized\b|\brequested anonymity\b|\bspeaking on condition\b`)
	reNumbers   = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d+)?\b|(?i)\bpercent\b|%|\brate\b|\bper\b|\bdata\b|\bstudy\b`)
	reEmotion   = regexp.MustCompile(`(?i)\bshocking\b|\boutrage\b|\bterrifying\b|\bdisgusting\b|\bheartbreaking\b|\bchaos\b|\bslams\b|\bexplodes\b`)
	rePolicy    = regexp.MustCompile(`(?i)\bpolicy\b|\bbill\b|\blaw\b|\bregulation\b|\bagency\b|\bdepartment\b|\bcourt\b|\benforcement\b|\bexecutive order\b`)
)

func DetectRouteTags(text string) []RouteTag {
	var tags []RouteTag

	if reAnonymous.MatchString(text) {
		tags = append(tags, TagAnonymousSources)
	}
	if reNumbers.MatchString(text) {
		tags = append(tags, TagDataNumbers)
	}
	if reEmotion.MatchString(text) {
		tags = append(tags, TagHighEmotion)
	}
	if rePolicy.MatchString(text) {
		tags = append(tags, TagPolicyProcess)
	}

	if len(tags) == 0 {
		return []RouteTag{TagDefault}
	}
	return tags
}

// QuestionStyle is a named instruction block appended to question prompts.
type QuestionStyle struct {
	Name         string
	Instructions string
}

// ChooseStyle picks one style by priority:
// policy/process > anonymous > numbers > emotion > default.
func ChooseStyle(tags []RouteTag) QuestionStyle {
	has := func(want RouteTag) bool {
		for _, t := range tags {
			if t == want {
				return true
			}
		}
		return false
	}

	switch {
	case has(TagPolicyProcess):
		return QuestionStyle{
			Name:         "Policy/process",
			Instructions: "Focus the questions on implementation details, accountability, tradeoffs, and decision points. Avoid partisan cues.",
		}
	case has(TagAnonymousSources):
		return QuestionStyle{
			Name:         "Anonymous sourcing",
			Instructions: "Include at least one question that probes credibility standards, incentives for anonymity, and what would independently corroborate key claims.",
		}
	case has(TagDataNumbers):
		return QuestionStyle{
			Name:         "Numbers/data",
			Instructions: "Include at least one question that checks denominators, baselines, comparisons, and what data would falsify the central numeric claim.",
		}
	case has(TagHighEmotion):
		return QuestionStyle{
			Name:         "Emotion",
			Instructions: "Include at least one question that separates emotional reaction from factual claims and asks what new evidence would change the reader's judgment.",
		}
	default:
		return QuestionStyle{
			Name:         "Default",
			Instructions: "Use broadly applicable media-literacy questions: verify key claim, inspect framing/omission, and analyze incentives/power/agency.",
		}
	}
}
