package model

import "testing"

func TestComputeMeterLabels(t *testing.T) {
	tests := []struct {
		name string
		meta Meta
		want string
	}{
		{"high support", Meta{Neutrality: 80, Heat: 30, Support: 90}, MeterSupported},
		{"mid support", Meta{Neutrality: 60, Heat: 50, Support: 60}, MeterMixed},
		{"low support", Meta{Neutrality: 30, Heat: 70, Support: 15}, MeterUnsupported},
		{"anchor point", Meta{Neutrality: 50, Heat: 50, Support: 55}, MeterMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMeter(tt.meta)
			if got.Label != tt.want {
				t.Errorf("label = %q, want %q (value %d)", got.Label, tt.want, got.Value)
			}
		})
	}
}

func TestComputeMeterValueBounds(t *testing.T) {
	for support := 0; support <= 100; support++ {
		m := ComputeMeter(Meta{Neutrality: 50, Heat: 50, Support: support})
		if m.Value < 10 || m.Value > 95 {
			t.Fatalf("support %d: value %d out of [10,95]", support, m.Value)
		}
	}
}

func TestComputeMeterMonotonic(t *testing.T) {
	prev := -1
	for support := 0; support <= 100; support++ {
		m := ComputeMeter(Meta{Heat: 50, Support: support})
		if m.Value < prev {
			t.Fatalf("value decreased at support %d: %d < %d", support, m.Value, prev)
		}
		prev = m.Value
	}
}

func TestComputeMeterHeatOnlyDrivesGlowAndWave(t *testing.T) {
	low := ComputeMeter(Meta{Heat: 20, Support: 70})
	high := ComputeMeter(Meta{Heat: 95, Support: 70})

	if low.Value != high.Value {
		t.Errorf("heat changed value: %d vs %d", low.Value, high.Value)
	}
	if low.Glow != 20 || high.Glow != 95 {
		t.Errorf("glow = %d/%d, want 20/95", low.Glow, high.Glow)
	}
	if low.Wave || !high.Wave {
		t.Errorf("wave = %v/%v, want false/true", low.Wave, high.Wave)
	}

	// Support must not leak into glow/wave either.
	a := ComputeMeter(Meta{Heat: 90, Support: 5})
	b := ComputeMeter(Meta{Heat: 90, Support: 95})
	if a.Glow != b.Glow || a.Wave != b.Wave {
		t.Errorf("support leaked into glow/wave: %+v vs %+v", a, b)
	}
}

func TestComputeMeterWaveThreshold(t *testing.T) {
	if ComputeMeter(Meta{Heat: 80, Support: 50}).Wave {
		t.Error("wave should be false at heat 80")
	}
	if !ComputeMeter(Meta{Heat: 81, Support: 50}).Wave {
		t.Error("wave should be true at heat 81")
	}
}

func TestClamp100(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{150, 100},
		{-10, 0},
		{999, 100},
		{49.5, 50},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Clamp100(tt.in); got != tt.want {
			t.Errorf("Clamp100(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("deeper") != ModeDeeper {
		t.Error("deeper should parse")
	}
	if ParseMode("bundle") != ModeBundle {
		t.Error("bundle should parse")
	}
	if ParseMode("") != ModeFast {
		t.Error("empty mode should default to fast")
	}
	if ParseMode("nonsense") != ModeFast {
		t.Error("unknown mode should default to fast")
	}
}
