package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/kantodex/kantodex/internal/utils"
)

var cfgFile string

const (
	LOGO = `	 _              _            _
	| | ____ _ _ __ | |_ ___   __| | _____  __
	| |/ / _' | '_ \| __/ _ \ / _' |/ _ \ \/ /
	|   < (_| | | | | || (_) | (_| |  __/>  <
	|_|\_\__,_|_| |_|\__\___/ \__,_|\___/_/\_\

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kantodex",
	Short: "Browse the original 151 from your terminal.",
	Long: LOGO + `kantodex looks up, search-suggests, and type-filters entries from the
first-generation Pokédex, with an in-process cache so repeated lookups
never hit the catalog twice.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("loglevel")
		utils.SetLogLevel(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kantodex.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("api", "", "", "Catalog API base URL (default is the public PokeAPI)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".kantodex")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.kantodex.yaml"
			defaults := []byte("api_base: \"\"\nsubmissions_db: \"\"\nserver:\n  addr: \":8080\"\n  username: \"\"\n  password: \"\"\n")
			if writeErr := os.WriteFile(configPath, defaults, 0o600); writeErr == nil {
				viper.SetConfigFile(configPath)
				_ = viper.ReadInConfig()
			}
		}
	}
}

// apiBase resolves the catalog base URL from the flag or config file.
func apiBase() string {
	if flagVal, _ := rootCmd.PersistentFlags().GetString("api"); flagVal != "" {
		return flagVal
	}
	return viper.GetString("api_base")
}
