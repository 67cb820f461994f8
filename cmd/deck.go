// Package cmd — deck command.
// Orchestrates the deck pipeline:
// validate styling → generate slide content → normalize → render PDF → write + persist.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docforge/core"
	"github.com/gaurav-prasanna/docforge/core/output"
	"github.com/gaurav-prasanna/docforge/core/render"
	"github.com/gaurav-prasanna/docforge/core/slides"
	"github.com/gaurav-prasanna/docforge/core/source"
	"github.com/gaurav-prasanna/docforge/core/styleconf"
	"github.com/gaurav-prasanna/docforge/store"
)

// Deck-specific flags.
var (
	flagSlides          int
	flagTheme           string
	flagFont            string
	flagFontColor       string
	flagBackgroundColor string
	flagAccentColor     string
)

var deckCmd = &cobra.Command{
	Use:   "deck <topic>",
	Short: "Generate a slide deck PDF on a topic",
	Long: `Deck generates slide content for a topic, normalizes it onto the
supported layouts (title, bullet, two-column, image), and renders a
landscape PDF into the storage directory.

Examples:
  docforge deck "electric vehicles" --slides 8
  docforge deck "solar energy" --theme ppt3 --font Poppins
  docforge deck "kubernetes" --source web --url https://kubernetes.io/docs/concepts/
  docforge deck "rust" --accent-color "#d66e1c" --background-color "#fff"`,
	Args: cobra.ExactArgs(1),
	RunE: runDeck,
}

func init() {
	rootCmd.AddCommand(deckCmd)

	deckCmd.Flags().IntVar(&flagSlides, "slides", 8, "Number of slides to generate")
	deckCmd.Flags().StringVar(&flagTheme, "theme", "", "Deck theme id (ppt1..ppt9)")
	deckCmd.Flags().StringVar(&flagFont, "font", "", "Slide font (Arial, Calibri, Poppins, Segoe UI, Times New Roman)")
	deckCmd.Flags().StringVar(&flagFontColor, "font-color", "", "Body text color as hex (e.g. #1e1e1e)")
	deckCmd.Flags().StringVar(&flagBackgroundColor, "background-color", "", "Slide background color as hex")
	deckCmd.Flags().StringVar(&flagAccentColor, "accent-color", "", "Title and rule accent color as hex")

	addSourceFlags(deckCmd)
}

func runDeck(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(args[0])
	if topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	if flagSlides < 1 {
		return fmt.Errorf("--slides must be at least 1 (got %d)", flagSlides)
	}

	// Styling is validated before any generation happens so a typo in a
	// color flag fails fast instead of after a model round-trip.
	conf := styleconf.Configuration{
		ThemeID:         flagTheme,
		FontName:        flagFont,
		FontColor:       flagFontColor,
		BackgroundColor: flagBackgroundColor,
		AccentColor:     flagAccentColor,
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := selectSlideSource(log)
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

	ctx := context.Background()

	raw, err := src.GenerateSlides(ctx, topic, flagSlides)
	if err != nil {
		return fmt.Errorf("generating slide content: %w", err)
	}

	normalized := slides.Normalize(raw, flagSlides, topic)

	renderer := render.NewDeckRenderer(log)
	data, err := renderer.Render(normalized, conf)
	if err != nil {
		return fmt.Errorf("rendering deck: %w", err)
	}

	rec := &store.DeckRecord{
		Topic:         topic,
		Slides:        normalized,
		Configuration: conf,
	}
	if err := st.SaveDeck(rec); err != nil {
		return fmt.Errorf("saving deck: %w", err)
	}

	path, err := writer.WriteDeck(rec.ID, data, renderer.Extension())
	if err != nil {
		return fmt.Errorf("writing deck: %w", err)
	}

	rec.FilePath = path
	if err := st.SaveDeck(rec); err != nil {
		return fmt.Errorf("saving deck: %w", err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectSlideSource creates the slide source based on flags.
func selectSlideSource(log *zap.Logger) (core.SlideSource, error) {
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
