package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"tailormake-backend/internal/auth"
	"tailormake-backend/internal/pipeline"
	"tailormake-backend/internal/pipeline/openai"
	"tailormake-backend/internal/resumes"
	"tailormake-backend/internal/shared/config"
	"tailormake-backend/internal/shared/server"
	"tailormake-backend/internal/shared/session"
	"tailormake-backend/internal/shared/storage/db"
	"tailormake-backend/internal/shared/storage/object"
	localstore "tailormake-backend/internal/shared/storage/object/local"
	s3store "tailormake-backend/internal/shared/storage/object/s3"
	"tailormake-backend/internal/tailoredresumes"
	"tailormake-backend/internal/tailoring"
	"tailormake-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	DB                  *sql.DB
	Store               object.ObjectStore
	Codec               *session.Codec
	UsersRepo           users.Repo
	ResumesRepo         resumes.Repo
	TailoredResumesRepo tailoredresumes.Repo
	UsersService        *users.Service
	ResumesService      *resumes.Service
	TailoringService    *tailoring.Service
	Pipeline            pipeline.Client
	Verifier            auth.TokenVerifier
	AuthHandler         *auth.Handler
	GoogleWebFlow       *auth.GoogleWebFlow
	ResumesHandler      *resumes.Handler
	TailoringHandler    *tailoring.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	codec, err := session.NewCodec(cfg.SessionSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Codec:  codec,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		Codec:            app.Codec,
		AuthHandler:      app.AuthHandler,
		GoogleWebFlow:    app.GoogleWebFlow,
		ResumesHandler:   app.ResumesHandler,
		TailoringHandler: app.TailoringHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var userRepo users.Repo
	var resumeRepo resumes.Repo
	var tailoredRepo tailoredresumes.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		tailoredRepo = &tailoredresumes.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		tailoredRepo = tailoredresumes.NewMemoryRepo()
	}

	pipelineClient := pipeline.Client(pipeline.Placeholder{})
	if app.Config.PipelineProvider == "openai" {
		if strings.TrimSpace(app.Config.OpenAIAPIKey) == "" && isDevLike(app.Config.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder pipeline")
		} else {
			chatClient, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.PipelineModel)
			if err != nil {
				return err
			}
			crew, err := pipeline.NewCrew(chatClient)
			if err != nil {
				return err
			}
			pipelineClient = crew
		}
	}

	userSvc := users.NewService(userRepo)
	resumeSvc := resumes.NewService(resumeRepo)
	tailoringSvc := tailoring.NewService(pipelineClient, app.Store, tailoredRepo, app.Config.GitHubURL, app.Config.PersonalWriteup)

	verifier := auth.TokenVerifier(auth.NewGoogleVerifier(app.Config.GoogleClientID))

	app.UsersRepo = userRepo
	app.ResumesRepo = resumeRepo
	app.TailoredResumesRepo = tailoredRepo
	app.UsersService = userSvc
	app.ResumesService = resumeSvc
	app.TailoringService = tailoringSvc
	app.Pipeline = pipelineClient
	app.Verifier = verifier
	app.AuthHandler = auth.NewHandler(verifier, userSvc, app.Codec, app.Config.Env)
	app.GoogleWebFlow = auth.NewGoogleWebFlow(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.Config.Env,
		userSvc,
		app.Codec,
	)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.TailoringHandler = tailoring.NewHandler(tailoringSvc)

	return nil
}
