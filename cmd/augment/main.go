package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	path        string
	thresholdMB float64
}

func newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "augment",
		Short: "Grow a text file by doubling it until it reaches a size threshold",
		Long: `augment generates benchmark input for cipherbench. The file's lines
are appended to it repeatedly until it is at least --threshold-mb megabytes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAugment(opts, logrus.StandardLogger())
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Text file path")
	cmd.Flags().Float64Var(&opts.thresholdMB, "threshold-mb", 1000, "Target size in megabytes")
	cmd.MarkFlagRequired("path")
	return cmd
}

func runAugment(opts *options, logger *logrus.Logger) error {
	size, err := Augment(opts.path, opts.thresholdMB, logger)
	if err != nil {
		return err
	}
	logger.WithField("size_mb", fmt.Sprintf("%.2f", size)).Info("file has been augmented")
	return nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
