package cmd

import (
	"fmt"
	"os"

	"terravox/internal/intent"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "terravox",
	Short: "Voice/text driven infrastructure provisioning assistant",
	Long: `Terravox turns natural-language provisioning requests into Terraform
configuration. It detects the cloud resources you ask for (and the ones you
exclude), fills in the remaining parameters through menus, and renders
ready-to-plan Terraform files for AWS, Azure or GCP.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.terravox.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().String("lexicon", "", "YAML file overriding the built-in keyword tables")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("intent.lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".terravox")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// buildParser constructs the intent parser, applying a lexicon override
// from --lexicon or the intent.lexicon config key when present.
func buildParser() (*intent.Parser, error) {
	path := viper.GetString("intent.lexicon")
	if path == "" {
		return intent.NewParser(), nil
	}

	categories, actions, err := intent.LoadLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon override: %w", err)
	}
	if viper.GetBool("debug") {
		fmt.Printf("Loaded %d categories from %s\n", len(categories), path)
	}
	return intent.NewParserWithTables(categories, actions), nil
}
