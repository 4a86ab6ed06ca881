package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jsonplus/annotate"
	"jsonplus/diagnostic"
	"jsonplus/internal/load"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <data-file>",
		Short: "Print every field of a document with its annotation",
		Long: `Load a YAML or JSON data document and its metadata document, build the
annotated tree and print it. The metadata document defaults to the sibling
file with a ".meta" infix, e.g. data.meta.json for data.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runShow(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, v, args[0])
		},
	}

	cmd.Flags().String("meta", "", "metadata document (default: <data>.meta.<ext>)")
	cmd.Flags().Bool("strict", false, "fail on values that are not scalars, lists or mappings")
	cmd.Flags().Bool("expand-lists", false, "keep every list element instead of only the last")
	cobra.CheckErr(bindFlags(v, cmd.Flags(), "meta", "strict", "expand-lists"))

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

func runShow(out, errOut io.Writer, logger *zap.Logger, v *viper.Viper, dataPath string) error {
	records, err := load.LoadPair(dataPath, v.GetString("meta"))
	if err != nil {
		return err
	}

	logger.Debug("loaded documents", zap.String("data", dataPath), zap.Int("records", len(records)))

	opts := []annotate.Option{annotate.WithLogger(logger)}
	if v.GetBool("strict") {
		opts = append(opts, annotate.WithStrict())
	}
	if v.GetBool("expand-lists") {
		opts = append(opts, annotate.WithListExpansion())
	}

	p := newPalette(out, v.GetBool("no-color"))
	total := &diagnostic.Diagnostics{}

	for _, rec := range records {
		diags := &diagnostic.Diagnostics{}

		tree, err := annotate.New(rec.Data, rec.Metadata, append(opts, annotate.WithDiagnostics(diags))...)
		if err != nil {
			return fmt.Errorf("record %d: %w", rec.Index, err)
		}

		if len(records) > 1 {
			fmt.Fprintln(out, p.header.Sprintf("# record %d", rec.Index))
		}

		p.printTree(out, tree, 0)

		for _, d := range diags.All() {
			fmt.Fprintf(errOut, "%s record %d: %s\n", p.warn.Sprint(d.Severity.String()+":"), rec.Index, d)
		}

		total.Merge(diags)
	}

	if total.Len() > 0 {
		fmt.Fprintf(errOut, "%d fields skipped, %d lists collapsed\n",
			len(total.ByCode(diagnostic.CodeUnsupportedKind)), len(total.ByCode(diagnostic.CodeListCollapsed)))
	}

	return nil
}

type palette struct {
	header *color.Color
	key    *color.Color
	note   *color.Color
	warn   *color.Color
}

func newPalette(out io.Writer, noColor bool) *palette {
	p := &palette{
		header: color.New(color.Bold),
		key:    color.New(color.FgCyan),
		note:   color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
	}

	f, isFile := out.(*os.File)
	if noColor || !isFile || !isatty.IsTerminal(f.Fd()) {
		for _, c := range []*color.Color{p.header, p.key, p.note, p.warn} {
			c.DisableColor()
		}
	}

	return p
}

func (p *palette) printTree(out io.Writer, tree *annotate.Tree, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, k := range tree.Keys() {
		for _, leaf := range tree.All(k) {
			note := "-"
			if s, ok := leaf.Annotation(); ok {
				note = p.note.Sprintf("%q", s)
			}

			sub, isTree := leaf.Tree()
			if !isTree {
				fmt.Fprintf(out, "%s%s: %v  # %s\n", indent, p.key.Sprint(k), leaf.Value(), note)
				continue
			}

			fmt.Fprintf(out, "%s%s:  # %s\n", indent, p.key.Sprint(k), note)
			p.printTree(out, sub, depth+1)
		}
	}
}
