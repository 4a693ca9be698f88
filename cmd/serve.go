package cmd

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/spf13/cobra"

	"github.com/avoronov/go_skillmap/internal/engine"
	"github.com/avoronov/go_skillmap/internal/server"
)

var (
	serveAddr  string
	serveDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume analysis API",
	Long: `Starts the HTTP backend: resume upload and analysis, the processed
job list and the resume log. Requires LLM_API_KEY; reads the skill catalog
and job postings produced by the pipeline from the data directory.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "Listen address")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Verbose request logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://api.openai.com/v1"),
		LLMModel:             env.Str("LLM_MODEL", "gpt-4o"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.5),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 5000),
		DataDir:              env.Str("DATA_DIR", "data"),
		UploadDir:            env.Str("UPLOAD_DIR", "uploads"),
		OutputDir:            env.Str("OUTPUT_DIR", "output"),
		MaxUploadMiB:         int64(env.Int("MAX_UPLOAD_MIB", 16)),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("serve: LLM_API_KEY not set")
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 120 * time.Second}),
	)

	engine.Init(c)
	engine.InitCache(env.Str("REDIS_URL", ""),
		env.Duration("CACHE_TTL", time.Hour),
		c.CacheMaxEntries, c.CacheCleanupInterval)

	srv, err := server.New(server.Config{Addr: serveAddr, Debug: serveDebug})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
