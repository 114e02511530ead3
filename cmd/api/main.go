package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskcollab/internal/adapter/auth"
	dbadapter "taskcollab/internal/adapter/db"
	httpadapter "taskcollab/internal/adapter/http"
	"taskcollab/internal/adapter/http/handlers"
	"taskcollab/internal/app/notify"
	"taskcollab/internal/app/service"
	"taskcollab/internal/config"
	"taskcollab/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	if cfg.DbAutoMigrate {
		if err := dbadapter.ApplySchema(context.Background(), db); err != nil {
			logger.Fatal("failed to apply schema", zap.Error(err))
		}
	}

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	invitationRepository := dbadapter.NewInvitationRepository(db)
	subTaskRepository := dbadapter.NewSubTaskRepository(db)
	notificationRepository := dbadapter.NewNotificationRepository(db)

	dispatcher := notify.NewDispatcher(notify.Config{
		Workers:   cfg.NotifyWorkers,
		QueueSize: cfg.NotifyQueueSize,
	}, notificationRepository)
	if err := dispatcher.Start(); err != nil {
		logger.Fatal("failed to start notification dispatcher", zap.Error(err))
	}

	tokens := auth.NewJWTManager(auth.JWTConfigFrom(cfg))
	authService := service.NewAuthService(userRepository, auth.NewPasswordHasher(), tokens)
	userService := service.NewUserService(userRepository, taskRepository)
	taskService := service.NewTaskService(taskRepository)
	invitationService := service.NewInvitationService(taskRepository, userRepository, invitationRepository, dispatcher)
	subTaskService := service.NewSubTaskService(taskRepository, subTaskRepository, dispatcher)
	notificationService := service.NewNotificationService(notificationRepository)

	router, err := httpadapter.NewRouter(logger, httpadapter.RouterConfig{
		ClientOrigins:  cfg.ClientOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, tokens, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(userService),
		Task:         handlers.NewTaskHandler(taskService),
		Invitation:   handlers.NewInvitationHandler(invitationService),
		SubTask:      handlers.NewSubTaskHandler(subTaskService),
		Notification: handlers.NewNotificationHandler(notificationService),
	})
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	// The server stops first so no request can enqueue into a closed
	// dispatcher, then the queue drains before the database goes away.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"taskcollab": func(ctx context.Context) error {
				logger.Info("graceful shutdown initiated")
				serverErr := server.Shutdown(ctx)
				dispatcherErr := dispatcher.Stop(ctx)
				dbErr := db.Close()
				return errors.Join(serverErr, dispatcherErr, dbErr)
			},
		},
	)

	exitCode := <-wait
	logger.Info("application exited", zap.Int("code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
