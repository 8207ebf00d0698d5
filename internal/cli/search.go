package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RZI3D/HifdhApp/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search caption text across subtitle files",
	Long: `Search the caption text of every subtitle file in a directory and print
matching cues with their time ranges.

An index is built next to the subtitle files on first use and reused
afterwards; pass --rebuild after changing the files.

Examples:
  hifdh search "الرحمن" --dir subs
  hifdh search mercy --dir subs --lang standard --rebuild`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("dir", ".", "Directory containing subtitle files")
	searchCmd.Flags().String("index", "", "Index path (default: <dir>/captions.bleve)")
	searchCmd.Flags().String("lang", "ar", "Analyzer language for caption text")
	searchCmd.Flags().Bool("rebuild", false, "Rebuild the index before searching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	dir, _ := cmd.Flags().GetString("dir")
	indexPath, _ := cmd.Flags().GetString("index")
	lang, _ := cmd.Flags().GetString("lang")
	rebuild, _ := cmd.Flags().GetBool("rebuild")

	if indexPath == "" {
		indexPath = filepath.Join(dir, "captions.bleve")
	}

	if rebuild {
		if err := os.RemoveAll(indexPath); err != nil {
			return fmt.Errorf("failed to remove old index: %w", err)
		}
	}

	index, err := search.OpenIndex(indexPath)
	if err != nil {
		logger.Infow("Building caption index",
			"dir", dir,
			"index", indexPath,
			"lang", lang,
		)
		index, err = search.CreateIndex(indexPath, dir, lang)
		if err != nil {
			return fmt.Errorf("failed to build index: %w", err)
		}
	}
	defer index.Close()

	results, err := search.Query(index, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, result := range results {
		fmt.Printf("%s (score %.2f)\n", result.ID, result.Score)
		for _, hit := range result.Cues {
			fmt.Printf("  [%s --> %s] %s\n",
				formatPosition(hit.StartTime),
				formatPosition(hit.EndTime),
				strings.Join(hit.Terms, ", "),
			)
		}
	}

	return nil
}
