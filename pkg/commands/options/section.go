// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SectionOptions captures flags that target a section or a row inside it.
type SectionOptions struct {
	Section string
	Row     string
}

// AddSectionArgs wires section targeting flags on the provided command.
func AddSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Specify the section by id.")
}

// AddRowArgs registers the row targeting flag.
func AddRowArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Row, "row", "r", "",
		"Specify the row by id.")
}

// ArchiveOptions captures listing flags for archived projects.
type ArchiveOptions struct {
	IncludeArchived bool
}

// AddArchivedArg registers the archived listing flag.
func AddArchivedArg(cmd *cobra.Command, o *ArchiveOptions) {
	cmd.Flags().BoolVarP(&o.IncludeArchived, "archived", "a", false,
		"Include archived projects.")
}
