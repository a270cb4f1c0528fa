// internal/platform/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Config carries everything the CLI needs to drive one run. Precedence:
// built-in defaults, then SCANFORGE_* environment variables, then flags.
type Config struct {
	// Target is the scan target (scheme-prefixed endpoint or local path).
	Target string

	// Tools is the selected tool id set. Empty means every catalog tool.
	Tools []string

	// Workers bounds the per-phase worker pool. Shared by both phases.
	Workers int

	// OutputDir receives the JSON/YAML finding reports.
	OutputDir string

	// Wordlist overrides the default wordlist probe when set.
	Wordlist string

	// CatalogFile is an optional YAML overlay for the tool catalog.
	CatalogFile string

	// Quiet disables the visual console sink.
	Quiet bool

	// PrintVersion prints version info and exits.
	PrintVersion bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Workers:   5,
		OutputDir: "scanforge_out",
	}
}

// Load builds the configuration: defaults, then env, then flags.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()
	loadFromEnv(&cfg)
	if err := loadFromFlags(&cfg, args); err != nil {
		return cfg, err
	}
	normalize(&cfg)
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SCANFORGE_TARGET"); v != "" {
		cfg.Target = v
	}
	if v := os.Getenv("SCANFORGE_TOOLS"); v != "" {
		cfg.Tools = splitList(v)
	}
	if v := os.Getenv("SCANFORGE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("SCANFORGE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SCANFORGE_WORDLIST"); v != "" {
		cfg.Wordlist = v
	}
	if v := os.Getenv("SCANFORGE_CATALOG"); v != "" {
		cfg.CatalogFile = v
	}
}

func loadFromFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("scanforge", pflag.ContinueOnError)

	var toolsFlag string
	fs.StringVarP(&cfg.Target, "target", "t", cfg.Target, "scan target (URL, host or local path)")
	fs.StringVar(&toolsFlag, "tools", strings.Join(cfg.Tools, ","), "comma-separated tool ids to run (default: all)")
	fs.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "worker pool size per phase")
	fs.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "report output directory")
	fs.StringVar(&cfg.Wordlist, "wordlist", cfg.Wordlist, "wordlist path override")
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "YAML tool catalog overlay")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "disable visual console output")
	fs.BoolVarP(&cfg.PrintVersion, "version", "V", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if toolsFlag != "" {
		cfg.Tools = splitList(toolsFlag)
	}
	return nil
}

func normalize(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	cfg.Target = strings.TrimSpace(cfg.Target)

	// Dedupe tool ids, preserving order.
	seen := make(map[string]bool, len(cfg.Tools))
	tools := cfg.Tools[:0]
	for _, id := range cfg.Tools {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		tools = append(tools, id)
	}
	cfg.Tools = tools
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
