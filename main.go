package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"styler/config"
	"styler/model"
	"styler/qloo"
	"styler/search"
	"styler/stylist"
	"styler/ui"
)

const (
	Version = "v0.1.0"
	License = "MIT"
)

func main() {
	doctor := flag.Bool("doctor", false, "check backend credentials and connectivity, then exit")
	store := flag.String("store", "", "persist a new default store for product search, then exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("styler %s\n", Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	config.InitDebugLog(cfg)

	if *doctor {
		os.Exit(runDoctor(cfg))
	}

	if *store != "" {
		os.Exit(setDefaultStore(cfg, *store))
	}

	app := buildApp(cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildApp wires the full dependency graph. Missing credentials never stop
// startup: backends that cannot be constructed degrade at call time, and
// only --doctor reports them.
func buildApp(cfg *config.Config) ui.AppView {
	completer, err := stylist.NewCompleter(cfg)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("completion backend unavailable: %v", err)
		}
		completer = stylist.NewUnavailableCompleter(err)
	}

	qlooClient := qloo.New(cfg)

	hnm := search.NewHnMSource(cfg)
	registry := search.NewRegistry(
		hnm,
		search.NewZaraSource(cfg),
		search.NewMyntraSource(cfg),
		search.NewAjioSource(cfg),
	)
	aggregator := search.NewAggregator(registry, search.RelevanceScorer{}, qlooClient)

	// Tool calls search the configured default store; "hm" unless overridden.
	toolSearcher := stylist.ProductSearcher(hnm)
	if src, err := registry.Get(cfg.Search.DefaultStore); err == nil {
		toolSearcher = src
	}

	toolbox := stylist.NewToolbox(qlooClient, toolSearcher, cfg.Search.MaxResults)
	orchestrator := stylist.NewStylist(completer, toolbox, aggregator)

	dataModel := model.NewModel(cfg, orchestrator, Version, License)
	return ui.NewAppView(dataModel)
}

// setDefaultStore validates the store name against the registered sources
// and writes it back to settings.toml.
func setDefaultStore(cfg *config.Config, store string) int {
	registry := search.NewRegistry(
		search.NewHnMSource(cfg),
		search.NewZaraSource(cfg),
		search.NewMyntraSource(cfg),
		search.NewAjioSource(cfg),
	)
	if _, err := registry.Get(store); err != nil {
		fmt.Fprintf(os.Stderr, "Unknown store %q (available: %s)\n",
			store, strings.Join(registry.Stores(), ", "))
		return 1
	}

	cfg.Search.DefaultStore = store
	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save settings: %v\n", err)
		return 1
	}

	fmt.Printf("Default store set to %s\n", store)
	return 0
}

const doctorTimeout = 10 * time.Second

// runDoctor probes every backend and prints one line per check. This is
// the only place missing credentials are surfaced to the user; everywhere
// else they degrade silently.
func runDoctor(cfg *config.Config) int {
	ctx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()

	fmt.Printf("styler %s diagnostics\n\n", Version)

	failures := 0

	fmt.Printf("Provider: %s (%s)\n", cfg.Provider.Type, cfg.Provider.Model)
	completer, err := stylist.NewCompleter(cfg)
	if err != nil {
		failures++
		fmt.Printf("  FAIL  %v\n", err)
	} else if err := completer.Ping(ctx); err != nil {
		failures++
		fmt.Printf("  FAIL  unreachable: %v\n", err)
	} else {
		fmt.Printf("  OK    reachable\n")
	}

	qlooClient := qloo.New(cfg)
	fmt.Printf("Qloo recommendations\n")
	if cfg.QlooAPIKey == "" {
		fmt.Printf("  WARN  QLOO_API_KEY not set (canned recommendations will be used)\n")
	} else if err := qlooClient.Ping(ctx); err != nil {
		failures++
		fmt.Printf("  FAIL  unreachable: %v\n", err)
	} else {
		fmt.Printf("  OK    reachable\n")
	}
	if styles, err := qlooClient.Trending(ctx, ""); err == nil && len(styles) > 0 {
		fmt.Printf("  trending now: %s\n", strings.Join(styles, ", "))
	}

	fmt.Printf("Browser-Use scraping (H&M, Zara)\n")
	if cfg.BrowserUseAPIKey == "" {
		fmt.Printf("  WARN  BROWSER_USE_API_KEY not set (sample catalogs will be used)\n")
	} else {
		fmt.Printf("  OK    credential present\n")
	}

	fmt.Printf("RapidAPI search (Myntra, Ajio)\n")
	if cfg.RapidAPIKey == "" {
		fmt.Printf("  WARN  RAPID_API_KEY not set (sample catalogs will be used)\n")
	} else {
		fmt.Printf("  OK    credential present\n")
	}

	fmt.Printf("\nSettings file: %s\n", config.GetSettingsFilePath())
	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		return 1
	}
	fmt.Println("All checks passed")
	return 0
}
