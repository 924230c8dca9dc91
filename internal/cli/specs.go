package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"rubyfront/parser-go/pkg/parser"
	"rubyfront/parser-go/pkg/source"
)

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Work with the ruby/spec suite as a parser corpus",
}

var specsFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Clone the spec repository into the configured directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Specs.Dir); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, skipping clone\n", cfg.Specs.Dir)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cloning %s into %s\n", cfg.Specs.Repo, cfg.Specs.Dir)
		_, err = git.PlainClone(cfg.Specs.Dir, false, &git.CloneOptions{
			URL:      cfg.Specs.Repo,
			Depth:    1,
			Progress: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("git clone %s: %w", cfg.Specs.Repo, err)
		}
		return nil
	},
}

var specsVerbose bool

var specsParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse every .rb file in the spec corpus and report totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		files, err := rubyFiles(cfg.Specs.Dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no .rb files under %s; run `rubyfront specs fetch` first", cfg.Specs.Dir)
		}

		type result struct {
			file string
			err  error
		}
		jobs := make(chan string)
		results := make(chan result)

		var wg sync.WaitGroup
		for i := 0; i < cfg.Jobs; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p := parser.New(nil)
				for file := range jobs {
					data, err := os.ReadFile(file)
					if err == nil {
						_, err = p.ParseProgram(source.New(file, data))
					}
					results <- result{file: file, err: err}
				}
			}()
		}
		go func() {
			for _, file := range files {
				jobs <- file
			}
			close(jobs)
			wg.Wait()
			close(results)
		}()

		var failures []result
		parsed := 0
		for r := range results {
			if r.err != nil {
				failures = append(failures, r)
				continue
			}
			parsed++
		}
		sort.Slice(failures, func(i, j int) bool { return failures[i].file < failures[j].file })
		if specsVerbose {
			for _, f := range failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", f.file, f.err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "parsed %d/%d files (%d failures)\n",
			parsed, len(files), len(failures))
		return nil
	},
}

func rubyFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".rb") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func init() {
	specsParseCmd.Flags().BoolVarP(&specsVerbose, "verbose", "v", false, "list each file that failed to parse")
	specsCmd.AddCommand(specsFetchCmd, specsParseCmd)
}
