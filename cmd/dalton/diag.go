package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dalton/internal/diag"
	"dalton/internal/diagfmt"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.dt|directory>",
		Short: "Report lexical diagnostics for a dalton source file or directory",
		Long:  `Run the lexer over a file or all matching files within a directory and print only the diagnostics`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDiagnose,
	}
	addLexFlags(cmd)
	cmd.Flags().Lookup("format").Usage = "output format (pretty|json|short)"
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	cmd.Flags().Bool("sort", false, "order diagnostics by file, line and column before printing")
	return cmd
}

// runDiagnose prints diagnostics to stdout and exits non-zero when any of
// them is an error.
func runDiagnose(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	format, err := env.format(cmd, "short")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	sortDiags, err := cmd.Flags().GetBool("sort")
	if err != nil {
		return fmt.Errorf("failed to get sort flag: %w", err)
	}
	opts, err := env.driverOptions(cmd)
	if err != nil {
		return err
	}

	col, err := collect(cmd.Context(), env, args[0], opts, uiModeOff, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if sortDiags {
		col.bag.Sort()
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	done := env.timer.Track("render")
	out := cmd.OutOrStdout()
	switch format {
	case "short":
		items := col.bag.Items()
		if env.maxDiagnostics > 0 && len(items) > env.maxDiagnostics {
			items = items[:env.maxDiagnostics]
		}
		if short := diag.FormatShortDiagnostics(items, true); short != "" {
			_, err = fmt.Fprintln(out, short)
		}
	case "json":
		err = diagfmt.JSON(out, col.bag, col.fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              env.maxDiagnostics,
			IncludeHelp:      true,
		})
	default:
		diagfmt.Pretty(out, col.bag, col.fs, diagfmt.PrettyOpts{
			Color:       env.useColor(out),
			PathMode:    pathMode,
			Max:         env.maxDiagnostics,
			ShowHelp:    true,
			ShowPreview: true,
		})
	}
	done(format)
	if err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	env.printTimings(cmd.ErrOrStderr())

	if col.bag.HasError() {
		return errHasErrors
	}
	return nil
}
