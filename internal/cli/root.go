package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configPath string

// Config is the optional rubyfront.yml configuration.
type Config struct {
	Specs struct {
		Repo string `yaml:"repo"`
		Dir  string `yaml:"dir"`
	} `yaml:"specs"`
	Jobs int `yaml:"jobs"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Specs.Repo = "https://github.com/ruby/spec"
	cfg.Specs.Dir = ".rubyfront/spec"
	cfg.Jobs = runtime.NumCPU()
	return cfg
}

// loadConfig reads configPath when it exists; a missing default config
// file is not an error.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && configPath == "rubyfront.yml" {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", configPath, err)
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:   "rubyfront",
	Short: "Ruby front end: lexer, parser and AST tools",
	Long: `rubyfront parses Ruby source into an AST and exposes the
front end's moving parts for inspection.

Commands:
  parse   Parse files and print their trees
  tokens  Dump the token stream for a file
  check   Parse files and report diagnostics
  table   Export the generated parse table
  specs   Fetch and parse the ruby/spec suite
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "rubyfront.yml", "configuration file")

	rootCmd.AddCommand(parseCmd, tokensCmd, checkCmd, tableCmd, specsCmd)
}
