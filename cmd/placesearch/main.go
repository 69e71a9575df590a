// Package main is the placesearch CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/islandhop/placesearch/internal/catalog"
	"github.com/islandhop/placesearch/internal/cli"
	"github.com/islandhop/placesearch/internal/config"
	"github.com/islandhop/placesearch/internal/embedding"
	"github.com/islandhop/placesearch/internal/indexer"
	"github.com/islandhop/placesearch/internal/intent"
	"github.com/islandhop/placesearch/internal/ranking"
	"github.com/islandhop/placesearch/internal/search"
	"github.com/islandhop/placesearch/internal/server"
	"github.com/islandhop/placesearch/internal/vector"
	"github.com/islandhop/placesearch/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/placesearch/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "placesearch server" from the project dir uses the project's config
// (including debug). Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "status":
		runStatus()
	case "embedgen":
		runEmbedgen()
	case "version", "--version", "-v":
		fmt.Printf("placesearch version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (intent, scoring, filtering)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	srv := server.NewServer(components.Engine, components.Catalog, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage and query hints.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: placesearch search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Results are ranked by semantic similarity blended with category, location,
price and quality signals. Without embedding files the engine falls back to
keyword scoring and says so in the output.
  • Use --category to add a category to the analyzed intent (this unlocks
    restricted categories such as medical).
  • --min-score and --min-semantic-score filter low-relevance hits; --limit
    caps how many places come back.
  • Use --breakdown to see per-component scores.

Examples:
  placesearch search snorkeling with turtles
  placesearch search "snorkeling with turtles"      # same as above
  placesearch search --category restaurant "sunset dinner"
  placesearch search --breakdown --output json "live music tonight"
`)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting (e.g. "best beach" vs best beach).
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchConfigPathFromArgs returns the value of -config/--config from args if present, else defaultPath.
func searchConfigPathFromArgs(args []string, defaultPath string) string {
	for i, a := range args {
		if (a == "-config" || a == "--config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultPath
}

// searchScoreDefaultsFromConfig loads config at path and returns the default
// score floors for the search flags. On load failure, returns the built-in
// defaults. Zeroes in the file get the same treatment during load.
func searchScoreDefaultsFromConfig(path string) (minScore, minSemantic float64) {
	minScore, minSemantic = 10, 0.35
	cfg, _, err := loadConfig(path)
	if err != nil || cfg == nil {
		return minScore, minSemantic
	}
	return cfg.Search.MinScore, cfg.Search.MinSemanticScore
}

// searchArgsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "placesearch search \"query\" -min-score 20"
// would otherwise leave -min-score unparsed (config default used).
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])
	configPath := searchConfigPathFromArgs(searchArgs, defaultConfigPath)
	defaultMinScore, defaultMinSem := searchScoreDefaultsFromConfig(configPath)

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPathFlag := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = search in-process when server is not running)")
	limit := fs.Int("limit", 0, "number of results (0 = configured window)")
	minScore := fs.Float64("min-score", defaultMinScore, "minimum total score for results")
	minSemanticScore := fs.Float64("min-semantic-score", defaultMinSem, "minimum cosine similarity for vector results")
	category := fs.String("category", "", "category hint added to the analyzed intent (e.g. restaurant)")
	breakdown := fs.Bool("breakdown", false, "include per-component score breakdown")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		printSearchUsage(fs)
		os.Exit(1)
	}
	queryStr := buildSearchQuery(fs.Args())
	if queryStr == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	minScoreVal, minSemVal := *minScore, *minSemanticScore

	if *serverURL != "" {
		// Use the HTTP API when the server is running.
		result, err := searchViaHTTP(*serverURL, &searchRequest{
			Query:            queryStr,
			MaxResults:       *limit,
			CategoryHint:     *category,
			MinScore:         &minScoreVal,
			MinSemanticScore: &minSemVal,
			IncludeBreakdown: *breakdown,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteSearchResults(os.Stdout, result, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// In-process search (when server is not running).
	cfg, _, err := loadConfig(*configPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}

	result, err := components.Engine.Search(context.Background(), queryStr, search.Options{
		MaxResults:       *limit,
		CategoryHint:     catalog.Category(*category),
		MinScore:         &minScoreVal,
		MinSemanticScore: &minSemVal,
		IncludeBreakdown: *breakdown,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, result, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// searchRequest is the POST /api/v1/search body.
type searchRequest struct {
	Query            string   `json:"query"`
	MaxResults       int      `json:"maxResults,omitempty"`
	CategoryHint     string   `json:"categoryHint,omitempty"`
	MinScore         *float64 `json:"minScore,omitempty"`
	MinSemanticScore *float64 `json:"minSemanticScore,omitempty"`
	IncludeBreakdown bool     `json:"includeBreakdown,omitempty"`
}

func searchViaHTTP(serverURL string, req *searchRequest) (*search.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var result search.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = inspect in-process)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status search.Status
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		status = components.Engine.Status()
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("catalog_entries:     %d   # places in the catalog\n", status.CatalogSize)
		fmt.Printf("embedder_ready:      %t   # query embedding provider configured\n", status.EmbedderReady)
		fmt.Printf("vector_store_ready:  %t   # embedding file pair loaded\n", status.VectorStoreReady)
		if status.VectorStoreError != "" {
			fmt.Printf("vector_store_error:  %s\n", status.VectorStoreError)
		}
		if status.VectorStoreReady {
			fmt.Printf("vector_count:        %d   # embeddings in the store\n", status.VectorCount)
			fmt.Printf("model:               %s\n", status.Model)
			fmt.Printf("dimension:           %d\n", status.Dimension)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func statusViaHTTP(serverURL string) (*search.Status, error) {
	resp, err := http.Get(serverURL + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s search.Status
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

func runEmbedgen() {
	fs := flag.NewFlagSet("embedgen", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	workers := fs.Int("workers", 0, "embedding workers (0 = half the CPUs)")
	mock := fs.Bool("mock", false, "use the deterministic mock provider instead of the OpenAI API")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.Int("entries", cat.Len()),
	)

	var embedder embedding.Embedder
	model := cfg.Embedding.Model
	if *mock {
		embedder = embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
		model = "mock"
	} else {
		apiKey := cfg.Embedding.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "No API key configured. Set embedding.api_key or OPENAI_API_KEY, or pass --mock for offline testing.")
			os.Exit(1)
		}
		retry := embedding.DefaultRetryConfig()
		if cfg.Embedding.MaxAttempts > 0 {
			retry.MaxAttempts = cfg.Embedding.MaxAttempts
		}
		embedder = embedding.NewOpenAIEmbedder(&embedding.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			CacheSize:  cfg.Embedding.CacheSize,
			Retry:      retry,
			Logger:     logger,
		})
	}

	opts := []indexer.Option{indexer.WithLogger(logger)}
	if *workers > 0 {
		opts = append(opts, indexer.WithWorkers(*workers))
	}
	gen := indexer.NewGenerator(embedder, model, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := gen.Generate(ctx, cat, cfg.Store.IndexPath, cfg.Store.VectorPath); err != nil {
		fmt.Fprintf(os.Stderr, "Embedding generation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Embedded %d places: %s, %s\n", cat.Len(), cfg.Store.IndexPath, cfg.Store.VectorPath)
}

// Components holds initialized services.
type Components struct {
	Catalog *catalog.Catalog
	Engine  *search.Engine
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	rules := intent.DefaultRules()
	if cfg.Rules.Path != "" {
		rules, err = intent.LoadRules(cfg.Rules.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load trigger rules: %w", err)
		}
	}
	analyzer := intent.NewAnalyzer(rules)
	scorer := ranking.NewHybridScorer(&cfg.Ranking, analyzer.Related)

	var embedder embedding.Embedder
	apiKey := cfg.Embedding.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey != "" {
		retry := embedding.DefaultRetryConfig()
		if cfg.Embedding.MaxAttempts > 0 {
			retry.MaxAttempts = cfg.Embedding.MaxAttempts
		}
		embedder = embedding.NewOpenAIEmbedder(&embedding.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			CacheSize:  cfg.Embedding.CacheSize,
			Retry:      retry,
			Logger:     logger,
		})
	} else {
		logger.Warn("no embedding API key configured, queries use keyword scoring only")
	}

	vectors := vector.NewHandle(cfg.Store.IndexPath, cfg.Store.VectorPath)
	engine := search.NewEngine(cat, analyzer, scorer, embedder, vectors, &cfg.Search, logger)

	st := engine.Status()
	if st.VectorStoreError != "" {
		logger.Warn("embedding store unavailable, keyword scoring only",
			zap.String("index_path", cfg.Store.IndexPath),
			zap.String("error", st.VectorStoreError))
	} else {
		logger.Info("engine initialized",
			zap.Int("catalog_entries", st.CatalogSize),
			zap.Bool("embedder_ready", st.EmbedderReady),
			zap.Int("vector_count", st.VectorCount),
			zap.String("model", st.Model),
		)
	}

	return &Components{
		Catalog: cat,
		Engine:  engine,
	}, nil
}

func printUsage() {
	fmt.Println(`placesearch - Cayman Islands places search engine

Usage:
  placesearch server [flags]            Start the HTTP server
  placesearch search [flags] <query>    Search the places catalog
  placesearch status [flags]            Show engine and store status
  placesearch embedgen [flags]          Generate the embedding file pair
  placesearch version                   Show version
  placesearch help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/placesearch/config.yaml)
  --debug            Enable debug logging (intent, scoring, filtering)

Search Flags:
  --config string             Config file path (for in-process mode; also used for default score floors)
  --server string             Server URL (default: http://localhost:8080). Use empty (--server "") to search in-process.
  --limit int                 Number of results (default: 0 = configured window)
  --min-score float           Minimum total score (default from config)
  --min-semantic-score float  Minimum cosine similarity for vector results (default from config)
  --category string           Category hint (e.g. restaurant, medical)
  --breakdown                 Include per-component score breakdown
  --output string             Output format: text or json (default: text)

Status Flags:
  --config string    Config file path (for in-process mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") for in-process.
  --output string    Output format: text or json (default: text)

Embedgen Flags:
  --config string    Config file path
  --workers int      Embedding workers (default: half the CPUs)
  --mock             Use the deterministic mock provider instead of the OpenAI API

Examples:
  placesearch server
  placesearch search "best beach for families"
  placesearch search --category medical "walk in clinic"
  placesearch search --output json snorkeling   # structured JSON for other apps
  placesearch status
  OPENAI_API_KEY=sk-... placesearch embedgen
  placesearch embedgen --mock   # offline smoke test`)
}
