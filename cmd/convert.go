// Package cmd — convert command.
// The root command orchestrates the pipeline:
// load (file or fetch) → parse → render → write.
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/taskmd/core"
	"github.com/gaurav-prasanna/taskmd/core/fetch"
	"github.com/gaurav-prasanna/taskmd/core/load"
	"github.com/gaurav-prasanna/taskmd/core/logging"
	"github.com/gaurav-prasanna/taskmd/core/output"
	"github.com/gaurav-prasanna/taskmd/core/problem"
	"github.com/gaurav-prasanna/taskmd/core/render"
)

// flagKeys maps flag names to their viper keys.
var flagKeys = map[string]string{
	"language":     "language",
	"format":       "format",
	"front-matter": "front_matter",
	"timeout":      "timeout",
	"user-agent":   "user_agent",
	"log-level":    "log_level",
	"log-format":   "log_format",
	"verbose":      "verbose",
}

func init() {
	flags := rootCmd.Flags()

	flags.StringP("language", "l", string(core.DefaultLanguage), "Language to extract: ja or en")
	flags.String("format", core.FormatMarkdown, "Output format: markdown or json")
	flags.Bool("front-matter", false, "Prefix Markdown output with YAML front matter")

	// Network.
	flags.Duration("timeout", fetch.DefaultTimeout, "HTTP timeout for URL inputs")
	flags.String("user-agent", fetch.DefaultUserAgent, "User-Agent header for URL inputs")

	// Logging.
	flags.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console, json, pretty")
	flags.BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// request describes one conversion.
type request struct {
	Input  string
	Output string
}

// pipeline holds the stages used for one run.
type pipeline struct {
	fetcher  core.Fetcher
	parser   *problem.Parser
	renderer core.Renderer
	writer   *output.Writer
	log      core.Logger
	now      func() time.Time
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logs, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	req := request{Input: args[0]}
	if len(args) > 1 {
		req.Output = args[1]
	}

	p := pipeline{
		fetcher: fetch.New(
			fetch.WithTimeout(cfg.Timeout),
			fetch.WithUserAgent(cfg.UserAgent),
			fetch.WithLogger(logs.Logger("fetch")),
		),
		parser:   problem.New(problem.WithLogger(logs.Logger("parser"))),
		renderer: selectRenderer(cfg),
		writer:   output.New(cmd.OutOrStdout()),
		log:      logs.Logger("convert"),
		now:      time.Now,
	}
	return convert(cmd.Context(), req, cfg, p, cmd.OutOrStdout())
}

// convert runs a single input through the pipeline. Status lines go to
// status unless the result itself was written to standard output.
func convert(ctx context.Context, req request, cfg core.Config, p pipeline, status io.Writer) error {
	var (
		html       string
		defaultOut string
	)
	ext := p.renderer.Extension()

	if load.IsURL(req.Input) {
		result, err := p.fetcher.Fetch(ctx, req.Input)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		html = result.HTML
		defaultOut = output.PathForURL(req.Input, ext)
	} else {
		text, err := load.ReadFile(req.Input)
		if err != nil {
			return err
		}
		html = text
		defaultOut = output.PathForFile(req.Input, ext)
	}

	prob, err := p.parser.Extract(html, cfg.Language)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	data, err := p.renderer.Render(prob.Markdown, buildMetadata(req.Input, prob, p.now()))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	dest := req.Output
	if dest == "" {
		dest = defaultOut
	}
	path, err := p.writer.Write(dest, data)
	if err != nil {
		return err
	}

	p.log.Info("converted", "input", req.Input, "output", path, "language", cfg.Language)
	if path != output.Stdout {
		fmt.Fprintf(status, "✓ Written: %s → %s\n", req.Input, path)
		fmt.Fprintf(status, "  Language: %s\n", cfg.Language)
	}
	return nil
}

// loadConfig resolves flags, environment and config file into a Config.
func loadConfig() (core.Config, error) {
	lang, err := core.ParseLanguage(viper.GetString("language"))
	if err != nil {
		return core.Config{}, err
	}

	cfg := core.Config{
		Language:    lang,
		Format:      strings.ToLower(strings.TrimSpace(viper.GetString("format"))),
		FrontMatter: viper.GetBool("front_matter"),
		Timeout:     viper.GetDuration("timeout"),
		UserAgent:   viper.GetString("user_agent"),
		LogLevel:    viper.GetString("log_level"),
		LogFormat:   viper.GetString("log_format"),
	}
	if viper.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}

// buildMetadata constructs ProblemMetadata for the renderers.
func buildMetadata(source string, prob *core.Problem, now time.Time) core.ProblemMetadata {
	meta := core.ProblemMetadata{
		Source:      source,
		Title:       prob.Title,
		Language:    prob.Language,
		ConvertedAt: now.UTC().Format(time.RFC3339),
	}
	if prob.Limits != nil {
		meta.TimeLimit = prob.Limits.Time
		meta.MemoryLimit = prob.Limits.Memory
	}
	return meta
}

// selectRenderer creates the Renderer for the configured format.
func selectRenderer(cfg core.Config) core.Renderer {
	if cfg.Format == core.FormatJSON {
		return render.NewJSONRenderer()
	}
	return render.NewMarkdownRenderer(cfg.FrontMatter)
}
