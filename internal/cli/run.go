package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"segcut/internal/domain/timecode"
	"segcut/internal/ports/adapters/ffmpeg"
	"segcut/internal/ports/adapters/gemini"
	"segcut/internal/types"
	"segcut/internal/usecase"
)

func runCut(cmd *cobra.Command, input string) error {
	specs, _ := cmd.Flags().GetStringArray("remove")
	if len(specs) == 0 {
		return errors.New("at least one --remove interval is required")
	}
	removes := make([]types.Interval, 0, len(specs))
	for _, s := range specs {
		iv, err := parseIntervalSpec(s)
		if err != nil {
			return err
		}
		removes = append(removes, iv)
	}

	uc, in, out, err := setup(cmd, input, false)
	if err != nil {
		return err
	}
	return uc.Cut(context.Background(), usecase.CutInput{Input: in, Output: out, Removes: removes})
}

func runKeep(cmd *cobra.Command, input, description string) error {
	uc, in, out, err := setup(cmd, input, true)
	if err != nil {
		return err
	}
	return uc.KeepEvent(context.Background(), usecase.EventInput{Input: in, Output: out, Description: description})
}

func runRemove(cmd *cobra.Command, input, description string) error {
	uc, in, out, err := setup(cmd, input, true)
	if err != nil {
		return err
	}
	return uc.RemoveEvents(context.Background(), usecase.EventInput{Input: in, Output: out, Description: description})
}

func setup(cmd *cobra.Command, input string, needsFinder bool) (usecase.Usecase, string, string, error) {
	out, _ := cmd.Flags().GetString("out")

	absIn, err := filepath.Abs(input)
	if err != nil {
		return usecase.Usecase{}, "", "", err
	}
	if _, err := os.Stat(absIn); err != nil {
		return usecase.Usecase{}, "", "", fmt.Errorf("stat input: %w", err)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return usecase.Usecase{}, "", "", err
	}

	enc := ffmpeg.New(os.Getenv("SEGCUT_FFMPEG"), os.Getenv("SEGCUT_FFPROBE"))

	deps := usecase.Deps{Encoder: enc}
	if needsFinder {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return usecase.Usecase{}, "", "", errors.New("GEMINI_API_KEY is required (set it in .env)")
		}
		deps.Finder = gemini.New(apiKey, os.Getenv("GEMINI_MODEL"), os.Getenv("GEMINI_BASE_URL"))
	}

	logf := color.New(color.FgCyan).PrintfFunc()
	wrapped := func(format string, args ...any) { logf(format+"\n", args...) }

	return usecase.New(deps, os.Getenv("SEGCUT_SCRATCH_DIR"), wrapped), absIn, absOut, nil
}

// parseIntervalSpec splits "start-end" where each side is anything timecode
// accepts ("01:02:03.5", "02:03", "45.25").
func parseIntervalSpec(s string) (types.Interval, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return types.Interval{}, fmt.Errorf("interval %q must be start-end", s)
	}
	start, err := timecode.Parse(parts[0])
	if err != nil {
		return types.Interval{}, fmt.Errorf("interval %q start: %w", s, err)
	}
	end, err := timecode.Parse(parts[1])
	if err != nil {
		return types.Interval{}, fmt.Errorf("interval %q end: %w", s, err)
	}
	iv := types.Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return types.Interval{}, fmt.Errorf("interval %q: %w", s, err)
	}
	return iv, nil
}
