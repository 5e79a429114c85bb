package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kinorelay/internal/media"
	"kinorelay/internal/provider"
)

var flagSeries bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <kinopoisk-id>",
	Short: "Resolve players for one ID and print them as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  resolveRun,
}

func init() {
	resolveCmd.Flags().BoolVarP(&flagSeries, "series", "s", false, "Look the ID up as a series")
}

func resolveRun(cmd *cobra.Command, args []string) error {
	id, ok := media.NormalizeKinopoiskID(args[0])
	if !ok {
		return fmt.Errorf("invalid Kinopoisk ID format: %q", args[0])
	}

	kind := media.Movie
	if flagSeries {
		kind = media.Series
	}

	players := provider.Collect(cmd.Context(), sources(), id, kind)
	if len(players) == 0 {
		return fmt.Errorf("no players found for %s", id)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(players)
}
