package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chomp/internal/extractor"
	"chomp/internal/logger"
	"chomp/internal/normalizer"
)

var (
	flagCleanHTML    bool
	flagCleanURL     string
	flagCleanPattern string
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean text for topic modeling",
	Long: `Strip markup, decode entities, transliterate to ASCII and normalize
whitespace. Reads the file given, or stdin.

With --html the input is a saved web page and the article text is
extracted before cleaning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		pattern := cfg.Clean.Pattern
		if flagCleanPattern != "" {
			pattern = flagCleanPattern
		}

		cleaner, err := normalizer.NewCleaner(pattern)
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()

			in = f
		}

		text, err := readInput(in, log)
		if err != nil {
			return err
		}

		log.Debug("cleaning", "pattern", cleaner.Pattern(), "bytes", len(text))

		fmt.Fprintln(cmd.OutOrStdout(), cleaner.Clean(text))

		return nil
	},
}

var slugifyCmd = &cobra.Command{
	Use:   "slugify <text...>",
	Short: "Print the filename slug for a search term",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), normalizer.Slugify(strings.Join(args, " ")))

		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&flagCleanHTML, "html", false, "treat input as a web page and extract the article first")
	cleanCmd.Flags().StringVar(&flagCleanURL, "url", "", "page URL used with --html to resolve links")
	cleanCmd.Flags().StringVar(&flagCleanPattern, "pattern", "", "noise pattern replacing the default")
}

func readInput(r io.Reader, log *logger.Logger) (string, error) {
	if flagCleanHTML {
		article, err := extractor.FromHTML(r, flagCleanURL)
		if err != nil {
			return "", fmt.Errorf("extracting article: %w", err)
		}

		log.Info("extracted article",
			"title", article.Title,
			"byline", article.Byline,
			"site", article.SiteName,
		)

		return article.Text, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return string(data), nil
}
