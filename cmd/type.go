package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/pokeapi"
)

// typeCmd represents the type command
var typeCmd = &cobra.Command{
	Use:   "type <label>",
	Short: "List entries of one type",
	Long:  "Resolves the members of a type, bounded to the first 151 of the membership list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine := dex.NewTypeFilterEngine(dex.NewResolver(pokeapi.NewClient(apiBase())))
		members, err := engine.Filter(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, dex.ErrUnknownType) {
				utils.Log.Fatal("Unknown type. Available: ", strings.Join(dex.KnownTypes(), ", "))
			}
			utils.Log.Fatal("Type fetch failed: ", err)
		}
		if len(members) == 0 {
			fmt.Println("No results for this type")
			return
		}
		for _, e := range members {
			fmt.Printf("#%03d %-12s HP %d\n", e.ID, e.Name, e.HP)
		}
	},
}

func init() {
	rootCmd.AddCommand(typeCmd)
}
