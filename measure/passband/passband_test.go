package passband

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spline/internal/testutil"
)

func TestResponse_CutoffShape(t *testing.T) {
	x := testutil.Linspace(0, 100, 401)
	const cutoff = 4.0

	pts, err := Response(x, cutoff, []float64{50, 4, 2})
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if len(pts) != 3 {
		t.Fatalf("point count: got %d, want 3", len(pts))
	}

	long, edge, short := pts[0], pts[1], pts[2]

	if long.Gain < 0.9 || long.Gain > 1.05 {
		t.Errorf("gain at wavelength 50: got %v, want near unity", long.Gain)
	}
	if edge.Gain <= 0.8 || edge.Gain >= 0.95 {
		t.Errorf("gain at the cutoff wavelength: got %v, want in (0.8, 0.95)", edge.Gain)
	}
	if short.Gain <= 0.55 || short.Gain >= 0.78 {
		t.Errorf("gain at wavelength 2: got %v, want in (0.55, 0.78)", short.Gain)
	}

	if !(long.Gain > edge.Gain && edge.Gain > short.Gain) {
		t.Errorf("gain not monotone across the cutoff: %v, %v, %v",
			long.Gain, edge.Gain, short.Gain)
	}
}

func TestResponse_PointFields(t *testing.T) {
	x := testutil.Linspace(0, 100, 401)

	pts, err := Response(x, 4.0, []float64{50})
	if err != nil {
		t.Fatalf("Response: %v", err)
	}

	p := pts[0]
	if p.Wavelength != 50 {
		t.Errorf("Wavelength: got %v, want 50", p.Wavelength)
	}
	if p.GainDB <= -1 || p.GainDB >= 0.5 {
		t.Errorf("GainDB: got %v, want in (-1, 0.5)", p.GainDB)
	}
}

func TestGain_MatchesResponse(t *testing.T) {
	x := testutil.Linspace(0, 100, 401)

	pts, err := Response(x, 4.0, []float64{8})
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	g, err := Gain(x, 4.0, 8)
	if err != nil {
		t.Fatalf("Gain: %v", err)
	}
	if g != pts[0].Gain {
		t.Errorf("Gain: got %v, Response reports %v", g, pts[0].Gain)
	}
}

func TestResponse_ProbeErrors(t *testing.T) {
	x := testutil.Linspace(0, 100, 401)

	tests := []struct {
		name  string
		probe float64
		want  error
	}{
		{"zero", 0, ErrInvalidProbe},
		{"negative", -3, ErrInvalidProbe},
		{"below grid resolution", 0.9, ErrProbeUnresolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Gain(x, 4.0, tt.probe); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResponse_PropagatesDomainError(t *testing.T) {
	if _, err := Response(nil, 4.0, []float64{8}); err == nil {
		t.Fatal("expected error for empty abscissas")
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{402, 512},
		{512, 512},
		{513, 1024},
	}
	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
