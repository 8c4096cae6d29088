package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chomp/internal/models"
	"chomp/internal/normalizer"
	"chomp/internal/store"
)

var flagSaveClean bool

var saveCmd = &cobra.Command{
	Use:   "save <record.json>...",
	Short: "Save records into the record directory",
	Long: `Read each record file and save it into the record directory. A record
whose doc_id is already stored overwrites that file; otherwise a new file is
named from the filename template.

With --clean the configured fields (default: content) are cleaned first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s := openStore(cfg, log)

		if err := os.MkdirAll(s.Dir(), 0755); err != nil {
			return fmt.Errorf("creating record directory: %w", err)
		}

		cleaner, err := normalizer.NewCleaner(cfg.Clean.Pattern)
		if err != nil {
			return err
		}

		processor := normalizer.NewProcessor(cleaner, cfg.Clean.Fields...)

		batch, err := s.NewBatch()
		if err != nil {
			return fmt.Errorf("indexing records: %w", err)
		}

		for i, path := range args {
			name, err := saveOne(batch, processor, path)
			if err != nil {
				if i > 0 {
					log.Error("save stopped", "saved", i, "remaining", len(args)-i)
				}

				return err
			}

			log.Debug("saved", "input", path, "file", name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, name)
		}

		return nil
	},
}

func init() {
	saveCmd.Flags().BoolVar(&flagSaveClean, "clean", false, "clean text fields before saving")
}

func saveOne(batch *store.Batch, processor *normalizer.Processor, path string) (string, error) {
	rec, err := readRecord(path)
	if err != nil {
		return "", err
	}

	if flagSaveClean {
		if rec, err = processor.Process(rec); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
	}

	name, err := batch.Save(rec)
	if err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}

	return name, nil
}

func readRecord(path string) (models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}

	rec, err := store.Decode(data)
	if err != nil {
		return nil, &store.ParseError{File: path, Err: err}
	}

	return rec, nil
}
