package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"spacebook/internal/config"
	apphttp "spacebook/internal/http"
	"spacebook/internal/repository/sqlite"
	"spacebook/internal/service"
	"spacebook/internal/session"
	"spacebook/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Session.Secret) == "" {
		logger.Fatalf("session secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	accountRepo := sqlite.NewAccountRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	if err := accountRepo.Init(ctx); err != nil {
		logger.Fatalf("init account repository: %v", err)
	}
	if err := postRepo.Init(ctx); err != nil {
		logger.Fatalf("init post repository: %v", err)
	}

	accountService := service.NewAccountService(accountRepo)
	postService := service.NewPostService(postRepo)

	sessions := session.NewStore(
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	)

	uploads, uploadDir, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob(filepath.Join(cfg.Web.TemplateDir, "*.html"))

	handler := apphttp.NewHandler(accountService, postService, sessions, uploads, logger)
	handler.RegisterRoutes(router, cfg.Web.StaticDir, uploadDir)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStorage selects the upload sink. The second return value is the local
// directory to serve at /uploads, empty for remote backends.
func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, string, error) {
	switch cfg.Storage.Backend {
	case "", "disk":
		sink, err := storage.NewDiskService(cfg.Upload.Dir, "/uploads")
		if err != nil {
			return nil, "", err
		}
		logger.Infof("storing uploads under %s", cfg.Upload.Dir)
		return sink, cfg.Upload.Dir, nil

	case "s3":
		if cfg.Storage.Bucket == "" {
			return nil, "", fmt.Errorf("storage bucket is required")
		}

		loadOpts := []func(*awscfg.LoadOptions) error{
			awscfg.WithRegion(cfg.Storage.Region),
		}
		if cfg.AWS.Profile != "" {
			loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
		}

		awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, "", fmt.Errorf("load aws config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Storage.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
				o.UsePathStyle = true
			}
		})
		logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
		return storage.NewS3Service(client, cfg.Storage.Bucket, cfg.Storage.KeyPrefix, cfg.Storage.Region, cfg.Storage.BaseURL), "", nil

	default:
		return nil, "", fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
