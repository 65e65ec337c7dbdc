package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/turningtides/go-pagebuilder"
	"github.com/turningtides/go-pagebuilder/internal/di"
	"github.com/turningtides/go-pagebuilder/internal/logging/console"
	"github.com/turningtides/go-pagebuilder/pkg/interfaces"
)

// CLI is the root command line definition.
type CLI struct {
	Storage   string   `help:"Template storage provider." enum:"memory,bun" default:"memory"`
	Dialect   string   `help:"SQL dialect for bun storage." enum:"sqlite,postgres" default:"sqlite"`
	DSN       string   `help:"Database DSN for bun storage." env:"PAGEBUILDER_DSN"`
	Manifests []string `short:"m" help:"Additional block catalog manifests (YAML or JSON)." type:"existingfile"`
	Verbose   bool     `short:"v" help:"Log module activity to stderr."`
	Language  string   `short:"l" help:"Default language id." default:"en"`

	Blocks   BlocksCmd   `cmd:"" help:"List the registered block types."`
	Recipe   RecipeCmd   `cmd:"" help:"Build a template from a recipe and print it as JSON."`
	Compose  ComposeCmd  `cmd:"" help:"Compose a template from a blocks file and print it as JSON."`
	Brandkit BrandkitCmd `cmd:"" help:"Load a brand kit from a manifest or theme and print it as JSON."`
}

// Globals is bound into every command's Run method.
type Globals struct {
	Module *pagebuilder.Module
	Logger interfaces.Logger
	Out    io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pagebuilder:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("pagebuilder"),
		kong.Description("Compose page templates from the block catalog."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var opts []di.Option
	var provider interfaces.LoggerProvider
	if cli.Verbose {
		provider = console.NewProvider(console.Options{Writer: stderr, Level: "debug"})
		opts = append(opts, di.WithLoggerProvider(provider))
	}
	if len(cli.Manifests) > 0 {
		opts = append(opts, di.WithManifestFS(os.DirFS("/")))
	}

	module, err := pagebuilder.New(cli.config(), opts...)
	if err != nil {
		return err
	}
	defer module.Close()

	var logger interfaces.Logger
	if provider != nil {
		logger = provider.GetLogger("pagebuilder.cli")
	}
	return kctx.Run(&Globals{Module: module, Logger: logger, Out: stdout})
}

func (c *CLI) config() pagebuilder.Config {
	cfg := pagebuilder.DefaultConfig()
	cfg.DefaultLanguage = strings.TrimSpace(c.Language)
	cfg.Languages = []string{cfg.DefaultLanguage}
	cfg.Storage.Provider = c.Storage
	cfg.Storage.Dialect = c.Dialect
	cfg.Storage.DSN = c.DSN
	if c.Storage == "bun" {
		cfg.Cache.Enabled = true
		cfg.Cache.TTL = time.Minute
	}
	if len(c.Manifests) > 0 {
		cfg.Features.Manifests = true
		cfg.Templates.CatalogManifests = rootRelative(c.Manifests)
	}
	return cfg
}

// rootRelative turns paths into names under the filesystem root so they can
// be read through os.DirFS("/").
func rootRelative(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		out = append(out, strings.TrimPrefix(filepath.ToSlash(abs), "/"))
	}
	return out
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
