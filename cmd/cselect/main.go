/*
Package main implements the country lookup server and CLI [DBG] application.

cselect answers keystroke-by-keystroke country queries: by name in any
localization the host supplies, by ISO code or common abbreviation, by dial
code, or through typo-tolerant fuzzy matching. It can operate as a
MessagePack IPC server for integration with picker UIs, or as a CLI
application for testing and debugging.

# Usage

Start the server with default settings:

	cselect

Enable debug mode:

	cselect -d

Run in CLI mode for interactive testing:

	cselect -c -limit 10

Restrict the record set to specific countries:

	cselect -c -iso US,CA,GB,DE

# Configuration

Runtime configuration is managed through a TOML file that supports finder,
similarity, server and CLI parameters:

	[finder]
	max_results = 50
	strict_algorithm = "boyer-moore"

	[similarity]
	ngram_size = 3
	cache_capacity = 4096

	[server]
	max_query_len = 60
	default_limit = 10

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Lookup requests
are processed synchronously with microsecond timing information included in
responses.

Send a query:

	{"id": "req1", "q": "germ", "l": 10}

Receive ranked countries:

	{"id": "req1", "s": [{"i": "DE", "n": "Germany", "d": "49", "r": 1}], "c": 1, "t": 120}

# Lookup Engine

The core functionality is provided by the search package, which routes each
query through dial-code, exact-substring, abbreviation and fuzzy stages over
an immutable record snapshot:

	set := country.BuildRecords(country.StandardResolver{}, country.AllISOCodes())
	finder := search.New(cfg.SearchConfig())
	results := finder.WhereText("germ", set)

Hosts with their own localization catalogs implement country.Resolver and
rebuild the record set on locale change.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/omar-hanafy/country-selector/internal/cli"
	"github.com/omar-hanafy/country-selector/internal/logger"
	"github.com/omar-hanafy/country-selector/internal/utils"
	"github.com/omar-hanafy/country-selector/pkg/config"
	"github.com/omar-hanafy/country-selector/pkg/country"
	"github.com/omar-hanafy/country-selector/pkg/search"
	"github.com/omar-hanafy/country-selector/pkg/server"
)

const (
	Version = "0.1.0"
	AppName = "cselect"
	gh      = "https://github.com/omar-hanafy/country-selector"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of results to show in CLI mode")
	configPath := flag.String("config", "", "Path to a custom config file")
	isoList := flag.String("iso", "", "Comma-separated ISO codes to load (default: all)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	defaultPath, err := pathResolver.GetConfigPath("cselect-config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath, defaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	limitSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			limitSet = true
		}
	})
	if !limitSet {
		*limit = appConfig.CLI.DefaultLimit
	}

	isoCodes := country.AllISOCodes()
	if *isoList != "" {
		isoCodes = splitISOList(*isoList)
	}
	set := country.BuildRecords(country.StandardResolver{}, isoCodes)
	finder := search.New(appConfig.SearchConfig())

	log.Debugf("Built %d records", set.Len())

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(finder, set, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(finder, set, appConfig)

	showStartupInfo(set.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func splitISOList(list string) []string {
	parts := strings.Split(list, ",")
	isos := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			isos = append(isos, strings.ToUpper(p))
		}
	}
	return isos
}

// printVersion displays the version banner with some styling.
func printVersion() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ cselect ] Fast country picker lookups!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(recordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" cselect ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("records: [ %d ]", recordCount)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
