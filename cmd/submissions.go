package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/storage"
)

// submissionsCmd represents the submissions command
var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Print recent contact form submissions",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := storage.Open(submissionsDBPath())
		if err != nil {
			utils.Log.Fatal("Could not open submission log: ", err)
		}
		defer db.Close()

		subs, err := db.Recent(context.Background(), limit)
		if err != nil {
			utils.Log.Fatal(err)
		}
		if len(subs) == 0 {
			fmt.Println("No submissions yet")
			return
		}
		for _, s := range subs {
			fmt.Printf("[%s] %s <%s>: %s\n", s.SubmittedAt.Format("2006-01-02 15:04"), s.Name, s.Email, s.Message)
		}
	},
}

func init() {
	rootCmd.AddCommand(submissionsCmd)
	submissionsCmd.Flags().IntP("limit", "n", 20, "Maximum submissions to print")
}

// submissionsDBPath resolves the submission log location from config, with a
// default under the user's config directory.
func submissionsDBPath() string {
	if p := viper.GetString("submissions_db"); p != "" {
		return p
	}
	home, err := homedir.Dir()
	if err != nil {
		utils.Log.Fatal(err)
	}
	dir := filepath.Join(home, ".config", "kantodex")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.Log.Fatal(err)
	}
	return filepath.Join(dir, "submissions.sqlite")
}
