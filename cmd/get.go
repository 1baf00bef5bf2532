package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/pokeapi"
	"github.com/kantodex/kantodex/pkg/sprites"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <name|number>",
	Short: "Resolve a single catalog entry",
	Long:  "Resolves one entry by name or Pokédex number and prints it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spriteDir, _ := cmd.Flags().GetString("save-sprite")

		resolver := dex.NewResolver(pokeapi.NewClient(apiBase()))
		e, err := resolver.Resolve(context.Background(), args[0])
		if err != nil {
			if errors.Is(err, pokeapi.ErrNotFound) {
				utils.Log.Fatal("No entry named ", args[0])
			}
			utils.Log.Fatal("Lookup failed: ", err)
		}

		fmt.Print(dex.FormatEntity(e))

		if spriteDir != "" {
			path, err := sprites.NewFetcher(spriteDir).Save(context.Background(), e)
			if err != nil {
				utils.Log.Fatal("Could not save sprite: ", err)
			}
			fmt.Println("Saved sprite to", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringP("save-sprite", "s", "", "Directory to save the entry's sprite into")
}
