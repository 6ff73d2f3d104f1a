package main

import (
	"context"

	"github.com/haarala/answerhub/internal"
	"github.com/haarala/answerhub/internal/handler"
	"github.com/haarala/answerhub/internal/security"
	"github.com/haarala/answerhub/internal/service"
	"github.com/haarala/answerhub/internal/settings"
	"github.com/haarala/answerhub/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "modernc.org/sqlite"
)

func main() {
	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()
	hashKey, blockKey := security.NewKeys()
	rdb := store.InitDatabase(true)
	defer rdb.Close()
	rwdb := store.InitDatabase(false)
	defer rwdb.Close()
	store.RunMigrations(rwdb, internal.MigrationsDir)

	scheduler := service.NewScheduler()
	defer scheduler.Shutdown()

	userStore := store.NewUserSQLiteStore(rdb, rwdb)
	sessionStore := store.NewSessionSQLiteStore(rdb, rwdb)
	questionStore := store.NewQuestionSQLiteStore(rdb, rwdb)
	answerStore := store.NewAnswerSQLiteStore(rdb, rwdb)

	cookieSvc := service.NewCookieService(hashKey, blockKey)
	authSvc := service.NewAuthService(userStore, sessionStore, settings.Settings.SessionExpires)
	userSvc := service.NewUserService(userStore, authSvc)
	questionSvc := service.NewQuestionService(questionStore, userStore, authSvc)
	answerSvc := service.NewAnswerService(answerStore, questionStore, authSvc)

	userSvc.InitializeAdmin(context.Background())

	authSvc.ScheduleSessionCleanUp(scheduler)
	scheduler.Start()

	e := setupEcho()
	g := e.Group("", handler.SessionMiddleware(cookieSvc))
	handler.SetupAuthRoutes(g, authSvc, cookieSvc)
	handler.SetupUserRoutes(g, userSvc)
	handler.SetupQuestionRoutes(g, questionSvc)
	handler.SetupAnswerRoutes(g, answerSvc)

	internal.GracefulShutdown(e, settings.Settings.Port)
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(
		middleware.CORSWithConfig(internal.GetCORSConfig()),
	)
	return e
}
