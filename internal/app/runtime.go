package app

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/config"
	"github.com/alexanderramin/kesteai/internal/db"
	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/interpreter"
	"github.com/alexanderramin/kesteai/internal/llm"
	"github.com/alexanderramin/kesteai/internal/notify"
	"github.com/alexanderramin/kesteai/internal/repository"
)

// Runtime holds the long-lived collaborators shared by every entrypoint.
type Runtime struct {
	Config *config.Config
	Log    *zap.Logger
	DB     *sql.DB
	Store  *repository.Store
	Hub    *notify.Hub
	IDs    *domain.IDSource
	Bot    interpreter.Responder
}

// NewRuntime opens the store and builds the responder selected by
// Bot.Mode.
func NewRuntime(cfg *config.Config, log *zap.Logger) (*Runtime, error) {
	database, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	rt := &Runtime{
		Config: cfg,
		Log:    log,
		DB:     database,
		Store:  repository.NewStore(database, cfg.Database.Driver),
		Hub:    notify.NewHub(log),
		IDs:    domain.NewIDSource(),
	}
	rt.Bot = rt.newResponder()

	log.Info("runtime ready",
		zap.String("driver", cfg.Database.Driver),
		zap.String("bot_mode", cfg.Bot.Mode),
	)
	return rt, nil
}

func (rt *Runtime) newResponder() interpreter.Responder {
	cfg := rt.Config
	if cfg.Bot.Mode == "llm" {
		llmCfg := llm.DefaultConfig()
		llmCfg.Endpoint = cfg.LLM.Endpoint
		llmCfg.Model = cfg.LLM.Model
		llmCfg.SystemPrompt = cfg.LLM.SystemPrompt
		llmCfg.TimeoutMs = cfg.LLM.TimeoutMs
		llmCfg.MaxRetries = cfg.LLM.MaxRetries
		client := llm.NewOllamaClient(llmCfg, llm.NewZapObserver(rt.Log))
		return interpreter.NewForwarder(client, rt.Log.Named("forwarder"))
	}
	return interpreter.New(rt.Store,
		interpreter.WithNotifier(rt.Hub),
		interpreter.WithLogger(rt.Log.Named("interpreter")),
		interpreter.WithIDSource(rt.IDs),
		interpreter.WithLimits(cfg.Bot.HistoryLimit, cfg.Bot.HistoryRender, cfg.Bot.MaxWeeklyHours),
	)
}

// Close disconnects websocket clients and closes the database.
func (rt *Runtime) Close() error {
	rt.Hub.Close()
	return rt.DB.Close()
}
