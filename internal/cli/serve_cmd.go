package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/supervity/supervity/internal/config"
	"github.com/supervity/supervity/internal/db"
	"github.com/supervity/supervity/internal/httpapi"
	"github.com/supervity/supervity/internal/intelligence"
	"github.com/supervity/supervity/internal/llm"
	"github.com/supervity/supervity/internal/repository"
	"github.com/supervity/supervity/internal/service"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configPath)
		},
	}
}

func newLogger(mode string) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	switch strings.ToLower(mode) {
	case "prod", "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	users := repository.NewSQLiteUserRepo(database)
	courses := repository.NewSQLiteCourseRepo(database)
	assignments := repository.NewSQLiteAssignmentRepo(database)

	llmCfg := cfg.LLM()
	var client llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	recommend := intelligence.NewRecommendService(client, nil)
	chat := intelligence.NewChatService(client, nil)

	plannerCfg := cfg.PlannerConfig()
	plans := service.NewPlanService(users, assignments, recommend, client, plannerCfg,
		service.NewLogUseCaseObserver(os.Stderr))

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.Server.CORSOrigins,
		Plans:       httpapi.NewPlanHandler(log, plans),
		Chats:       httpapi.NewChatHandler(log, chat),
		Users:       httpapi.NewUserHandler(log, service.NewUserService(users)),
		Courses:     httpapi.NewCourseHandler(log, service.NewCourseService(courses, users)),
		Assignments: httpapi.NewAssignmentHandler(log, service.NewAssignmentService(assignments, users)),
	})

	log.Infow("serving", "addr", cfg.Server.Addr, "db", cfg.Database.Path, "llm_enabled", llmCfg.Enabled)
	return router.Run(cfg.Server.Addr)
}
