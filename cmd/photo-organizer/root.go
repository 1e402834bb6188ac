package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maartenor/photo-organizer/internal/config"
)

func newRootCommand() *cobra.Command {
	var sourceFlag string
	var targetFlag string
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "photo-organizer",
		Short:         "Organize photos and videos into year/month folders",
		Long: "photo-organizer moves images and videos from a source tree into\n" +
			"<target>/<year>/<month>/ based on capture-date metadata, with filename\n" +
			"fallback for files whose metadata carries no date. Every move and\n" +
			"anomaly is recorded in a SQLite audit log under the target root.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, sourceFlag, targetFlag, configFlag)
		},
	}

	rootCmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source directory containing files to process")
	rootCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "Target directory for organized files")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	_ = rootCmd.MarkFlagRequired("source")
	_ = rootCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return err
		},
	}
}
