// piece-catalog lists chess pieces with their material values and texture
// paths, and checks that a GUI's texture files are all present.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-pieces-go/internal/assets"
	"github.com/lgbarn/chess-pieces-go/internal/config"
	"github.com/lgbarn/chess-pieces-go/internal/logging"
	"github.com/lgbarn/chess-pieces-go/internal/output"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
	"github.com/lgbarn/chess-pieces-go/internal/setup"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("piece-catalog version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.FromEnv()
	if err == nil {
		err = applyFlags(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, log); err != nil {
		reportFailure(log, err)
		os.Exit(1)
	}
	log.Sync() //nolint:errcheck // stderr sync fails on some terminals
}

// reportFailure logs err and flushes the logger; os.Exit skips deferred calls.
func reportFailure(log *zap.SugaredLogger, err error) {
	log.Errorw("piece-catalog failed", zap.Error(err))
	log.Sync() //nolint:errcheck // stderr sync fails on some terminals
}

// run produces the requested listing and, if configured, verifies textures.
func run(cfg *config.Config, log *zap.SugaredLogger) error {
	if *manifestMode {
		return runManifest(cfg, log)
	}

	entries, err := selectEntries(cfg)
	if err != nil {
		return err
	}
	log.Debugw("pieces selected", "count", len(entries), "size", cfg.TextureSize)

	if err := output.Write(cfg, entries); err != nil {
		return err
	}

	if cfg.Verify {
		paths := make([]string, len(entries))
		for i, e := range entries {
			paths[i] = e.Piece.Texture
		}
		return verify(cfg, log, paths)
	}
	return nil
}

// runManifest writes the texture manifest for the requested sizes.
func runManifest(cfg *config.Config, log *zap.SugaredLogger) error {
	sizes, err := parseSizes(*manifestSize, cfg.TextureSize)
	if err != nil {
		return err
	}
	paths := assets.Manifest(sizes)
	log.Debugw("manifest built", "sizes", sizes, "textures", len(paths))

	if err := output.WriteManifest(cfg, paths); err != nil {
		return err
	}
	if cfg.Verify {
		return verify(cfg, log, paths)
	}
	return nil
}

func verify(cfg *config.Config, log *zap.SugaredLogger, paths []string) error {
	if err := assets.Verify(cfg.AssetRoot, paths); err != nil {
		return err
	}
	log.Infow("textures verified", "root", cfg.AssetRoot, "count", len(paths))
	return nil
}

// selectEntries builds the pieces named by the selection flags, with
// textures set to the configured size.
func selectEntries(cfg *config.Config) ([]output.Entry, error) {
	var entries []output.Entry

	switch {
	case *fenSetup != "" || *standardSet:
		placements := setup.Standard()
		if *fenSetup != "" {
			var err error
			if placements, err = setup.FromFEN(*fenSetup); err != nil {
				return nil, err
			}
		}
		for _, pl := range placements {
			sq := pl.Square
			entries = append(entries, output.Entry{Square: &sq, Piece: pl.Piece})
		}
	default:
		for _, colour := range piece.Colours() {
			for _, kind := range piece.Kinds() {
				entries = append(entries, output.Entry{Piece: piece.MustNew(kind, colour)})
			}
		}
	}

	return filterEntries(entries, cfg.TextureSize)
}

// filterEntries applies -colour and -kind and sets each texture size.
func filterEntries(entries []output.Entry, size int) ([]output.Entry, error) {
	keep := func(*piece.Piece) bool { return true }
	if *colourFilter != "" {
		colour, err := piece.ParseColour(*colourFilter)
		if err != nil {
			return nil, err
		}
		prev := keep
		keep = func(p *piece.Piece) bool { return prev(p) && p.Colour == colour }
	}
	if *kindFilter != "" {
		kind, err := piece.ParseKind(*kindFilter)
		if err != nil {
			return nil, err
		}
		prev := keep
		keep = func(p *piece.Piece) bool { return prev(p) && p.Kind == kind }
	}

	filtered := entries[:0]
	for _, e := range entries {
		if keep(e.Piece) {
			e.Piece.SetTexture(size)
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `piece-catalog - chess piece values and texture paths

Usage: piece-catalog [options]

Without a selection flag every colour and kind is listed once.

Environment:
  PIECES_TEXTURE_SIZE, PIECES_ASSET_ROOT, PIECES_FORMAT (text|json),
  PIECES_LOG_LEVEL, PIECES_VERIFY

Options:
`)
	flag.PrintDefaults()
}
