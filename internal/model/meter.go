package model

import "math"

// Meter is the UI-ready summary derived from Meta. Value and Label
// depend on support only; Glow and Wave depend on heat only. The UI
// relies on that separation, so neither score may leak into the
// other's outputs.
type Meter struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Glow  int    `json:"glow"`
	Wave  bool   `json:"wave"`
}

const (
	MeterSupported   = "Supported"
	MeterMixed       = "Mixed support"
	MeterUnsupported = "Unsupported"
)

// Clamp100 rounds n and clamps it to 0..100.
func Clamp100(n float64) int {
	return int(math.Max(0, math.Min(100, math.Round(n))))
}

// curveSupportToFill maps support (0..100) to a fill percentage.
// The curve keeps 55 support looking like ~55% while widening the
// 60..85 range, and is monotonic over the whole domain.
func curveSupportToFill(support int) float64 {
	s := float64(Clamp100(float64(support))) / 100
	const anchor = 0.55
	const k = 1.0

	y := s + k*(s-anchor)*s*(1-s)
	y = math.Max(0, math.Min(1, y))
	return y * 100
}

func meterLabel(value int) string {
	switch {
	case value >= 80:
		return MeterSupported
	case value >= 55:
		return MeterMixed
	default:
		return MeterUnsupported
	}
}

// ComputeMeter derives the display meter from raw scores. The
// displayed fill never reaches 0 or 100; implying total certainty
// either way would overstate what the scores mean.
func ComputeMeter(meta Meta) Meter {
	heat := Clamp100(float64(meta.Heat))

	fill := curveSupportToFill(meta.Support)
	value := int(math.Max(10, math.Min(95, math.Round(fill))))

	return Meter{
		Value: value,
		Label: meterLabel(value),
		Glow:  heat,
		Wave:  heat > 80,
	}
}
