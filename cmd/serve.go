package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kantodex/kantodex/internal/server"
	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/pokeapi"
	"github.com/kantodex/kantodex/pkg/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browsing session over HTTP",
	Long:  "Starts a JSON API driving one browsing session, plus the contact form endpoints and /metrics",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = viper.GetString("server.addr")
		}
		if addr == "" {
			addr = ":8080"
		}
		user, _ := cmd.Flags().GetString("username")
		if user == "" {
			user = viper.GetString("server.username")
		}
		pass, _ := cmd.Flags().GetString("password")
		if pass == "" {
			pass = viper.GetString("server.password")
		}

		db, err := storage.Open(submissionsDBPath())
		if err != nil {
			utils.Log.Fatal("Could not open submission log: ", err)
		}
		defer db.Close()

		srv := server.New(pokeapi.NewClient(apiBase()), db, user, pass)
		if err := srv.Start(addr); err != nil {
			utils.Log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Listen address (default :8080)")
	serveCmd.Flags().StringP("username", "u", "", "Basic auth username (empty disables auth)")
	serveCmd.Flags().StringP("password", "p", "", "Basic auth password")
}
