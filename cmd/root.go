package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"squash-cli/api"

	"github.com/spf13/cobra"
)

var (
	outputJSON    bool
	outputCompact bool
	cfg           Config
	client        = api.NewClient()
)

type Config struct {
	DefaultFacility string `json:"default_facility"`
	FeedURL         string `json:"feed_url"`
}

var rootCmd = &cobra.Command{
	Use:   "squash",
	Short: "Squash CLI for Places Leisure court availability",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(facilitiesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
}

func initConfig() {
	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
	if cfg.FeedURL != "" {
		client.BaseURL = cfg.FeedURL
	}
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "squash", "config.json"), nil
}
