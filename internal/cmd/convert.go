package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jdalgard/docxtree/internal/config"
	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/parser"
	"github.com/jdalgard/docxtree/internal/render"
	"github.com/spf13/cobra"
)

var (
	convertOutput string
	convertFormat string
	convertTitle  string
	convertQuiet  bool
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

var convertCmd = &cobra.Command{
	Use:   "convert <file> [files...]",
	Short: "Convert documents to structured XML",
	Long: `Convert parses documents, reconstructs their section and list
hierarchy, and writes the result. A single file goes to stdout unless
--output names a file; multiple files are written next to their inputs,
or into --output when it is a directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		if !validConvertFormat(convertFormat) {
			return fmt.Errorf("unknown format %q (want xml, md or html)", convertFormat)
		}

		for _, path := range args {
			if err := convertFile(cmd, cfg, log, path, len(args) > 1); err != nil {
				return err
			}
		}
		return nil
	},
}

func convertFile(cmd *cobra.Command, cfg config.Config, log *slog.Logger, path string, multi bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := parser.ForFile(path, log)
	if err != nil {
		return err
	}
	tree, err := p.Parse(f, path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if convertTitle != "" {
		tree.Title = convertTitle
	}

	var out []byte
	switch convertFormat {
	case "xml":
		out, err = render.XML(tree, cfg.XMLIndent)
		if err != nil {
			return err
		}
	case "md":
		out = render.Markdown(tree)
	case "html":
		out, err = render.HTML(tree)
		if err != nil {
			return err
		}
	}

	dest, err := destinationFor(path, multi)
	if err != nil {
		return err
	}
	if dest == "" {
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return err
		}
	} else if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	if !convertQuiet {
		printSummary(cmd, path, tree)
	}
	return nil
}

// destinationFor resolves where one input's output goes. Empty means stdout.
func destinationFor(path string, multi bool) (string, error) {
	if !multi {
		if convertOutput == "" || convertOutput == "-" {
			return "", nil
		}
		if info, err := os.Stat(convertOutput); err == nil && info.IsDir() {
			return filepath.Join(convertOutput, siblingName(path)), nil
		}
		return convertOutput, nil
	}

	if convertOutput != "" && convertOutput != "-" {
		info, err := os.Stat(convertOutput)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("--output must be a directory when converting multiple files")
		}
		return filepath.Join(convertOutput, siblingName(path)), nil
	}
	// Write next to the input.
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + convertFormat, nil
}

func siblingName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + convertFormat
}

func validConvertFormat(f string) bool {
	return f == "xml" || f == "md" || f == "html"
}

func printSummary(cmd *cobra.Command, path string, tree *docmodel.DocumentTree) {
	paragraphs := 0
	for _, sec := range tree.Sections {
		paragraphs += len(sec.Paragraphs)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s  %s %s  %s %s  %s %s  %s %s\n",
		labelStyle.Render(filepath.Base(path)),
		labelStyle.Render("sections:"), valueStyle.Render(fmt.Sprint(len(tree.Sections))),
		labelStyle.Render("items:"), valueStyle.Render(fmt.Sprint(tree.ItemCount())),
		labelStyle.Render("paragraphs:"), valueStyle.Render(fmt.Sprint(paragraphs)),
		labelStyle.Render("tables:"), successStyle.Render(fmt.Sprint(len(tree.Tables))),
	)
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file or directory (default stdout for a single file)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "xml", "Output format: xml, md or html")
	convertCmd.Flags().StringVar(&convertTitle, "title", "", "Override the document title")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "Suppress the summary line")
	rootCmd.AddCommand(convertCmd)
}
