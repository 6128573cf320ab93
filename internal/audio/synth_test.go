package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns every left-channel sample.
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestOscillator_LengthMatchesDuration(t *testing.T) {
	rate := beep.SampleRate(8000)
	got := drain(NewOscillator(440, 50*time.Millisecond, WaveSine, rate))
	if len(got) != rate.N(50*time.Millisecond) {
		t.Fatalf("streamed %d samples, want %d", len(got), rate.N(50*time.Millisecond))
	}
}

func TestOscillator_ShapesStayInRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		for i, v := range drain(NewOscillator(300, 20*time.Millisecond, w, rate)) {
			if v < -1 || v > 1 {
				t.Fatalf("wave %d sample %d = %f out of [-1,1]", w, i, v)
			}
		}
	}
}

func TestOscillator_SquareIsBipolar(t *testing.T) {
	for i, v := range drain(NewOscillator(220, 10*time.Millisecond, WaveSquare, 8000)) {
		if v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestSweep_EndsLowerThanItStarts(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(NewSweep(400, 50, 500*time.Millisecond, WaveSquare, rate))
	flips := func(seg []float64) int {
		n := 0
		for i := 1; i < len(seg); i++ {
			if seg[i] != seg[i-1] {
				n++
			}
		}
		return n
	}
	q := len(samples) / 4
	if head, tail := flips(samples[:q]), flips(samples[len(samples)-q:]); head <= tail {
		t.Fatalf("sweep should slow down: %d flips early, %d late", head, tail)
	}
}

func TestEnvelope_RampsInAndOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	out := drain(NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(out) != 100 {
		t.Fatalf("envelope length %d, want 100", len(out))
	}
	if out[0] != 0 {
		t.Errorf("attack should start silent, got %f", out[0])
	}
	if out[50] != 1 {
		t.Errorf("sustain should be full scale, got %f", out[50])
	}
	if math.Abs(out[99]) > 0.06 {
		t.Errorf("release should end near silence, got %f", out[99])
	}
}

func TestRecipes_ProduceFiniteAudio(t *testing.T) {
	rate := beep.SampleRate(8000)
	recipes := map[string]beep.Streamer{
		"blast":  shotgunBlast(rate),
		"reload": reloadCycle(rate),
		"dry":    dryClick(rate),
	}
	for name, s := range recipes {
		out := drain(s)
		if len(out) == 0 {
			t.Errorf("%s produced no samples", name)
		}
		loud := 0.0
		for _, v := range out {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%s produced a non-finite sample", name)
			}
			loud = math.Max(loud, math.Abs(v))
		}
		if loud == 0 {
			t.Errorf("%s is silent", name)
		}
	}
}
