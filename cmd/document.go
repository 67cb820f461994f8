// Package cmd — document command.
// Orchestrates the document pipeline:
// generate sections → distribute across pages → render PDF → write + persist.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/distribute"
	"github.com/gaurav-prasanna/docforge/core/output"
	"github.com/gaurav-prasanna/docforge/core/render"
	"github.com/gaurav-prasanna/docforge/core/source"
	"github.com/gaurav-prasanna/docforge/store"
)

// Flag variables shared by document and deck.
var (
	flagSource    string
	flagURL       string
	flagLLMURL    string
	flagModel     string
	flagOutputDir string
	flagVerbose   bool
)

// Document-specific flags.
var (
	flagPages    int
	flagHeadings []string
	flagTitle    string
)

var documentCmd = &cobra.Command{
	Use:   "document <topic>",
	Short: "Generate a multi-page PDF document on a topic",
	Long: `Document generates content for a topic, distributes it across the
requested number of pages, and renders a PDF into the storage directory.

Examples:
  docforge document "electric vehicles" --pages 3
  docforge document "solar energy" --headings "Intro,Economics,Outlook"
  docforge document "kubernetes" --source web --url https://kubernetes.io/docs/concepts/
  docforge document "rust" --model llama3 --llm-url http://localhost:11434/api/generate`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

func init() {
	rootCmd.AddCommand(documentCmd)

	documentCmd.Flags().IntVar(&flagPages, "pages", 3, "Number of pages to generate")
	documentCmd.Flags().StringSliceVar(&flagHeadings, "headings", nil, "Explicit section headings (overrides --pages for section count)")
	documentCmd.Flags().StringVar(&flagTitle, "title", "", "Document title (default: the topic)")

	addSourceFlags(documentCmd)
}

// addSourceFlags registers the flags shared by document and deck.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSource, "source", "llm", "Content source: llm or web")
	cmd.Flags().StringVar(&flagURL, "url", "", "Reference page URL (required with --source web)")
	cmd.Flags().StringVar(&flagLLMURL, "llm-url", "", "Generation API endpoint (default: local Ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "llama3", "Generation model name")
	cmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Storage directory (default: ./storage)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func runDocument(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(args[0])
	if topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	if flagPages < 1 {
		return fmt.Errorf("--pages must be at least 1 (got %d)", flagPages)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := selectSectionSource(log)
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	st, err := store.Open(writer.StorageDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	title := flagTitle
	if title == "" {
		title = topic
	}

	ctx := context.Background()

	sections, err := src.GenerateSections(ctx, topic, flagHeadings, flagPages)
	if err != nil {
		return fmt.Errorf("generating sections: %w", err)
	}

	pages := distribute.Pages(sections, flagPages)
	distribute.AssignPositions(pages)

	renderer := render.NewDocumentRenderer()
	data, err := renderer.Render(title, pages)
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	rec := &store.ProjectRecord{
		Title:    title,
		Topic:    topic,
		NumPages: flagPages,
		Sections: distribute.Flatten(pages),
	}
	if err := st.SaveProject(rec); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	path, err := writer.WriteDocument(rec.ID, data, renderer.Extension())
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	rec.FilePath = path
	if err := st.SaveProject(rec); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectSectionSource creates the section source based on flags.
func selectSectionSource(log *zap.Logger) (core.SectionSource, error) {
	switch flagSource {
	case "llm":
		return source.NewLLMSource(flagLLMURL, flagModel, log), nil
	case "web":
		if flagURL == "" {
			return nil, fmt.Errorf("--url is required when using --source web")
		}
		return source.NewWebSource(flagURL, log), nil
	default:
		return nil, fmt.Errorf("unknown source %q (want llm or web)", flagSource)
	}
}

// newLogger builds the CLI logger. Debug level with --verbose, warnings
// and up otherwise so pipeline degradations stay visible.
func newLogger() (*zap.Logger, error) {
	conf := zap.NewProductionConfig()
	if flagVerbose {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		conf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := conf.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return log, nil
}
