package ffmpeg

import (
	"errors"
	"testing"

	"segcut/internal/ports"
)

func TestParseProbeDuration(t *testing.T) {
	b := []byte(`{"format":{"filename":"in.mp4","duration":"30.500000"}}`)
	sec, err := parseProbeDuration(b)
	if err != nil {
		t.Fatalf("parseProbeDuration: %v", err)
	}
	if sec != 30.5 {
		t.Fatalf("duration = %v, want 30.5", sec)
	}
}

func TestParseProbeDuration_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":      "oops",
		"no duration":   `{"format":{"filename":"in.mp4"}}`,
		"bad duration":  `{"format":{"duration":"abc"}}`,
		"empty payload": `{}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := parseProbeDuration([]byte(in)); !errors.Is(err, ports.ErrPrecondition) {
				t.Fatalf("want ErrPrecondition, got %v", err)
			}
		})
	}
}

func TestFmtSeconds(t *testing.T) {
	if got := fmtSeconds(5); got != "5.000" {
		t.Fatalf("fmtSeconds(5) = %q", got)
	}
	if got := fmtSeconds(3723.5); got != "3723.500" {
		t.Fatalf("fmtSeconds(3723.5) = %q", got)
	}
}
