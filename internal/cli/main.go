package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "segcut",
		Short:        "Edit a video by timestamp with ffmpeg",
		SilenceUsage: true,
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.PersistentFlags().StringP("out", "o", "", "Output file (required)")
	_ = root.MarkPersistentFlagRequired("out")

	cut := &cobra.Command{
		Use:   "cut <input>",
		Short: "Remove explicit time intervals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(cmd, args[0])
		},
	}
	cut.Flags().StringArray("remove", nil, "Interval to remove, start-end (e.g. 01:10-01:25); repeatable")

	keep := &cobra.Command{
		Use:   "keep <input> <event description>",
		Short: "Keep only the described event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeep(cmd, args[0], args[1])
		},
	}

	remove := &cobra.Command{
		Use:   "remove <input> <event description>",
		Short: "Remove every occurrence of the described event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], args[1])
		},
	}

	root.AddCommand(cut, keep, remove)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
