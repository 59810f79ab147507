// Command scrawl is the entry point for the Scrawl CLI. It wires the
// driven adapters into the core services and hands them to the
// command layer.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/browser"
	configfile "github.com/custodia-labs/scrawl-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/discover"
	embeddingopenai "github.com/custodia-labs/scrawl-cli/internal/adapters/driven/embedding/openai"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/export"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/fetch"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/jobsearch/linkedin"
	llmopenai "github.com/custodia-labs/scrawl-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/ocr/tesseract"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/pdf"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/scrawl-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/services"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run keeps the wiring in a function so deferred cleanup still fires
// before the process exits.
func run() error {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	var configStore driven.ConfigStore
	if store, err := configfile.NewConfigStore(""); err != nil {
		logger.Warn("Config store unavailable: %v", err)
	} else {
		configStore = store
		cli.SetConfigStore(store)
	}

	settings := loadSettings(configStore)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if configStore != nil {
		if key := configStore.GetString("openai.api_key"); key != "" {
			apiKey = key
		}
	}

	var llm driven.LLMService
	var embedder driven.EmbeddingService
	if apiKey != "" {
		if svc, err := llmopenai.NewLLMService(llmopenai.LLMConfig{
			APIKey: apiKey,
			Model:  settings.ChatModel,
		}); err != nil {
			logger.Warn("LLM unavailable: %v", err)
		} else {
			llm = svc
		}
		if svc, err := embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey: apiKey,
			Model:  settings.EmbeddingModel,
		}); err != nil {
			logger.Warn("Embeddings unavailable: %v", err)
		} else {
			embedder = svc
		}
	}

	ocrEngine := tesseract.New()

	fetcher := fetch.New(fetch.Config{})
	if renderer, err := browser.New(browser.Config{}); err != nil {
		logger.Warn("Browser rendering disabled: %v", err)
	} else {
		fetcher.SetRenderer(renderer)
	}
	fetcher.SetOCR(ocrEngine, settings.OCRLanguages)

	native := pdf.NewNativeExtractor()
	raster := pdf.NewRasteriser()
	converter := pdf.NewConverter(native)
	pdfService := services.NewPDFExtract(native, raster, ocrEngine, converter, settings)

	crawler := services.NewCrawler(fetcher)
	crawler.SetPDFExtractor(pdfService)

	retriever := services.NewRetriever(embedder, memory.NewVectorStore(), settings)
	chat := services.NewChat(llm, retriever)

	pathFinder := services.NewPathFinder(discover.New(discover.Config{}), llm)
	jobs := services.NewJobs(linkedin.NewFromEnv())
	exporter := export.NewService(settings.ScratchDir, llm)

	if store, err := sqlite.NewStore(""); err != nil {
		logger.Warn("Archive unavailable: %v", err)
	} else {
		defer store.Close()
		cli.SetArchiveStore(store)
	}

	cli.SetScrapeService(crawler)
	cli.SetCrawlService(crawler)
	cli.SetPathService(pathFinder)
	cli.SetChatService(chat)
	cli.SetRetrievalService(retriever)
	cli.SetPDFService(pdfService)
	cli.SetJobService(jobs)
	cli.SetExportService(exporter)
	cli.SetVersion(version)

	return cli.Execute()
}

// loadSettings starts from the pipeline defaults and applies any
// values persisted in the config store.
func loadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()
	if store == nil {
		return settings
	}

	if v := store.GetInt("crawl.max_depth"); v > 0 {
		settings.MaxDepth = v
	}
	if v := store.GetInt("chunk.budget"); v > 0 {
		settings.ChunkBudget = v
	}
	if v := store.GetFloat("retrieval.threshold"); v > 0 {
		settings.SimilarityThreshold = v
	}
	if v := store.GetInt("retrieval.top_k"); v > 0 {
		settings.TopK = v
	}
	if v := store.GetStringSlice("ocr.languages"); len(v) > 0 {
		settings.OCRLanguages = v
	}
	if v := store.GetString("export.dir"); v != "" {
		settings.ScratchDir = v
	}
	settings.ChatModel = store.GetString("openai.chat_model")
	settings.EmbeddingModel = store.GetString("openai.embedding_model")

	return settings
}
