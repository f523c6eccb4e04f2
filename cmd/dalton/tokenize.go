package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dalton/internal/diagfmt"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.dt|directory>",
		Short: "Tokenize a dalton source file or directory",
		Long:  `Tokenize breaks down dalton source files into their constituent tokens; diagnostics go to stderr`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	addLexFlags(cmd)
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	return cmd
}

// addLexFlags registers flags shared by tokenize and diag.
func addLexFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("cache", false, "reuse token streams from the on-disk cache")
}

type fileTokensJSON struct {
	Path   string                `json:"path"`
	Tokens []diagfmt.TokenOutput `json:"tokens"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	format, err := env.format(cmd)
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	opts, err := env.driverOptions(cmd)
	if err != nil {
		return err
	}

	col, err := collect(cmd.Context(), env, args[0], opts, mode, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	done := env.timer.Track("render")
	// Выводим диагностику в stderr, если есть
	if col.bag.HasDiagnostics() {
		stderr := cmd.ErrOrStderr()
		diagfmt.Pretty(stderr, col.bag, col.fs, diagfmt.PrettyOpts{
			Color:       env.useColor(stderr),
			Max:         env.maxDiagnostics,
			ShowHelp:    true,
			ShowPreview: true,
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = writeTokensJSON(out, col)
	default:
		err = writeTokensPretty(out, col)
	}
	done(format)
	if err != nil {
		return err
	}
	env.printTimings(cmd.ErrOrStderr())

	if col.bag.HasError() {
		return errHasErrors
	}
	return nil
}

func writeTokensPretty(w io.Writer, col *collection) error {
	for i, f := range col.files {
		if col.isDir {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", f.Path)
		}
		if err := diagfmt.FormatTokensPretty(w, f.Tokens); err != nil {
			return err
		}
	}
	return nil
}

// writeTokensJSON prints a bare token array for a file and a list of
// {path, tokens} objects for a directory.
func writeTokensJSON(w io.Writer, col *collection) error {
	if !col.isDir {
		if len(col.files) == 0 {
			return diagfmt.FormatTokensJSON(w, nil)
		}
		return diagfmt.FormatTokensJSON(w, col.files[0].Tokens)
	}
	payload := make([]fileTokensJSON, 0, len(col.files))
	for _, f := range col.files {
		payload = append(payload, fileTokensJSON{Path: f.Path, Tokens: diagfmt.TokensToOutput(f.Tokens)})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
