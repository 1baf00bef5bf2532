package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/pokeapi"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Suggest entries matching a partial name",
	Long:  "Lists entries whose names contain the query, in Pokédex order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := dex.NewSuggestionEngine(dex.NewResolver(pokeapi.NewClient(apiBase())))
		matches, err := engine.Suggest(context.Background(), args[0])
		if err != nil {
			utils.Log.Fatal("Suggestion fetch failed: ", err)
		}
		if len(matches) == 0 {
			fmt.Println("No matches")
			return
		}
		for _, e := range matches {
			fmt.Printf("#%03d %-12s %s\n", e.ID, e.Name, strings.Join(e.Types, "/"))
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
