// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-pieces-go/internal/config"
	"github.com/lgbarn/chess-pieces-go/internal/errors"
)

var (
	// Selection
	colourFilter = flag.String("colour", "", "Only list pieces of this colour (white, black)")
	kindFilter   = flag.String("kind", "", "Only list pieces of this kind (name or letter)")
	standardSet  = flag.Bool("standard", false, "List the 32 pieces of the initial position")
	fenSetup     = flag.String("fen", "", "List the pieces of a FEN position")

	// Textures
	textureSize  = flag.Int("size", 0, "Texture size in pixels (0 = PIECES_TEXTURE_SIZE or 80)")
	manifestMode = flag.Bool("manifest", false, "List texture paths instead of pieces")
	manifestSize = flag.String("sizes", "", "Comma-separated texture sizes for -manifest (default: -size)")
	verifyRoot   = flag.String("verify", "", "Check that every listed texture exists under this directory")

	// Output
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags on top of the environment configuration.
func applyFlags(cfg *config.Config) error {
	if *textureSize != 0 {
		cfg.TextureSize = *textureSize
	}
	if *jsonOutput {
		cfg.Format = config.JSON
	}
	if *logLevel != "" {
		cfg.LogLevel = strings.ToLower(*logLevel)
	}
	if *verifyRoot != "" {
		cfg.AssetRoot = *verifyRoot
		cfg.Verify = true
	}
	return cfg.Validate()
}

// parseSizes parses the -sizes list, falling back to the configured size.
func parseSizes(s string, fallback int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{fallback}, nil
	}
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("size %q: %w", field, errors.ErrInvalidTextureSize)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
