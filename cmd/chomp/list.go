package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"chomp/internal/config"
	"chomp/internal/formatter"
	"chomp/internal/logger"
	"chomp/internal/store"
)

const termWidth = 32

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records waiting to be scraped",
	Long: `Scan the record directory and list records whose content is still empty.

With --all, records that already have content are listed too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s := openStore(cfg, log)

		result, err := s.Load(flagListAll || cfg.Store.IncludeProcessed)
		if err != nil {
			return fmt.Errorf("loading records: %w", err)
		}

		out := cmd.OutOrStdout()

		if len(result.Entries) > 0 {
			fmt.Fprint(out, formatter.Table(
				[]string{"File", "Doc ID", "Site", "Search Term", "Size", "Status"},
				listRows(cfg, log, result),
			))
		}

		fmt.Fprintf(out, "Scanned %d file(s): %d listed, %d skipped.\n",
			result.Scanned, result.Included, result.Skipped())

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListAll, "all", false, "include records that already have content")
}

func listRows(cfg *config.Config, log *logger.Logger, result *store.LoadResult) [][]string {
	rows := make([][]string, 0, len(result.Entries))

	for _, e := range result.Entries {
		docID, ok := e.Record.DocID()
		if !ok {
			log.Warn("record has no doc_id", "file", e.Name)
		}

		size := "?"
		if info, err := os.Stat(cfg.GetOutputPath(e.Name)); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}

		status := "pending"
		if e.Record.IsProcessed() {
			status = "scraped"
		}

		rows = append(rows, []string{
			e.Name,
			docID,
			e.Record.PubShort(),
			formatter.Truncate(e.Record.SearchTerm(), termWidth),
			size,
			status,
		})
	}

	return rows
}
