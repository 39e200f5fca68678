package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-convert/internal/config"
	"github.com/jonathan/resume-convert/internal/extraction"
	"github.com/jonathan/resume-convert/internal/observability"
	"github.com/jonathan/resume-convert/internal/parsing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runtimeEnv is the resolved configuration and the components built from it.
type runtimeEnv struct {
	cfg       config.Config
	logger    zerolog.Logger
	parser    *parsing.Parser
	extractor *extraction.Dispatcher
}

// loadRuntime resolves configuration (file, then environment, then defaults),
// lets explicitly set flags win, and builds the logger, parser and extractor.
func loadRuntime(cmd *cobra.Command, apply func(cfg *config.Config)) (*runtimeEnv, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apply != nil {
		apply(&cfg)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	layout, err := extraction.ParseLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}

	parserOpts := []parsing.Option{parsing.WithLogger(logger)}
	if len(cfg.SectionOrder) > 0 {
		parserOpts = append(parserOpts, parsing.WithSectionOrder(cfg.SectionOrder))
	}
	parser, err := parsing.NewParser(parserOpts...)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("command", cmd.Name()).
		Str("layout", string(layout)).
		Strs("section_order", parser.Order()).
		Msg("configuration resolved")

	return &runtimeEnv{
		cfg:       cfg,
		logger:    logger,
		parser:    parser,
		extractor: extraction.NewDispatcher(extraction.WithLayout(layout), extraction.WithLogger(logger)),
	}, nil
}
