package audio

import (
	"math"
	"testing"
)

func drain(t *testing.T, c *Chime, idx int) [][2]float64 {
	t.Helper()
	s, err := c.Tone(idx)
	if err != nil {
		t.Fatalf("Tone(%d) failed: %v", idx, err)
	}
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func TestToneLength(t *testing.T) {
	c, err := NewChime(false, 0)
	if err != nil {
		t.Fatalf("Expected no error for disabled chime, got %v", err)
	}
	samples := drain(t, c, 0)
	want := sampleRate.N(chimeDuration)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
}

func TestToneEnvelope(t *testing.T) {
	c, _ := NewChime(false, 0)
	samples := drain(t, c, 3)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	peak := 0.0
	for _, s := range samples {
		if v := math.Abs(s[0]); v > peak {
			peak = v
		}
		if s[0] != s[1] {
			t.Fatalf("Expected mono signal, got %v", s)
		}
	}
	if peak <= 0.5 || peak > 1.0 {
		t.Errorf("Expected peak in (0.5, 1], got %v", peak)
	}

	tail := samples[len(samples)-200:]
	for _, s := range tail {
		if math.Abs(s[0]) > 0.05 {
			t.Fatalf("Expected tail to have decayed, got %v", s[0])
		}
	}
}

func TestToneVolume(t *testing.T) {
	loud, _ := NewChime(false, 0)
	quiet, _ := NewChime(false, -2)

	a := drain(t, loud, 1)
	b := drain(t, quiet, 1)
	for i := range a {
		if math.Abs(b[i][0]) > math.Abs(a[i][0])+1e-12 {
			t.Fatalf("Expected quieter sample at %d, got %v > %v", i, b[i][0], a[i][0])
		}
	}
}

func TestFrequencyRises(t *testing.T) {
	if Frequency(0) != baseFreq {
		t.Errorf("Expected base frequency %v, got %v", baseFreq, Frequency(0))
	}
	for i := 1; i < 15; i++ {
		if Frequency(i) <= Frequency(i-1) {
			t.Errorf("Expected rising pitch at %d, got %v after %v", i, Frequency(i), Frequency(i-1))
		}
	}
	if Frequency(-4) != Frequency(0) {
		t.Errorf("Expected negative index clamped, got %v", Frequency(-4))
	}
}

func TestDisabledPlayIsSilent(t *testing.T) {
	c, _ := NewChime(false, 0)
	if c.Enabled() {
		t.Fatal("Expected disabled chime")
	}
	// Must not touch the speaker.
	c.Play(2)
}
