package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/brettbedarf/dirsh/config"
	"github.com/brettbedarf/dirsh/filesystem"
	"github.com/brettbedarf/dirsh/internal/util"
	"github.com/brettbedarf/dirsh/requests"
	"github.com/brettbedarf/dirsh/shell"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		nodesDef   string
		username   string
		verbose    int
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&nodesDef, "nodes", "", "Path to a YAML or JSON nodes file used to seed the tree")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.StringVar(&username, "user", "", "Username used as the root directory name; asked for when empty")
	flag.StringVar(&username, "u", "", "--user (shorthand)")
	flag.IntVar(&verbose, "verbose", 0, "Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flag.IntVar(&verbose, "v", 0, "--verbose (shorthand)")
	flag.Parse()

	// Config file first, flags override it
	cfg := config.NewDefaultConfig()
	if configPath != "" {
		fileCfg, err := config.NewConfigFromFile(configPath)
		if err != nil {
			util.InitializeLogger(cfg.LogLvl, os.Stderr)
			logger := util.GetLogger("main")
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
		cfg = fileCfg
	}
	cfg.Merge(flagOverride(verbose, username, nodesDef))

	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")
	logger.Debug().Interface("config", cfg).Msg("dirsh initializing")

	session := shell.NewSession(os.Stdin, os.Stdout, cfg)
	tree, err := session.Login()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Debug().Msg("Input closed before login")
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create tree")
	}

	if cfg.NodesFile != "" {
		seedTree(tree, cfg.NodesFile)
	}

	if err := session.Run(shell.New(tree, os.Stdout)); err != nil {
		logger.Fatal().Err(err).Msg("Session ended unexpectedly")
	}
	logger.Debug().Int("nodes", tree.Len()).Msg("Session closed")
}

// flagOverride converts set flags into a config override; zero values are unset
func flagOverride(verbose int, username, nodesDef string) *config.ConfigOverride {
	override := &config.ConfigOverride{}
	if verbose != 0 {
		override.LogLvl = &verbose
	}
	if username != "" {
		override.Username = &username
	}
	if nodesDef != "" {
		override.NodesFile = &nodesDef
	}
	return override
}

// seedTree adds every node of the nodes file. Failing nodes are logged and skipped.
func seedTree(tree *filesystem.Tree, path string) {
	logger := util.GetLogger("seed")

	reqs, err := requests.LoadNodesFile(path)
	if err != nil {
		logger.Error().Err(err).Str("nodes", path).Msg("Failed to load nodes file")
		return
	}

	added := 0
	for i := range reqs {
		if _, err := tree.AddNode(&reqs[i]); err != nil {
			logger.Warn().Err(err).Str("path", reqs[i].Path).Msg("Failed to add node")
			continue
		}
		added++
	}
	logger.Info().Int("requested", len(reqs)).Int("added", added).Msg("Seeded tree")
}
