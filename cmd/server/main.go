package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/AlibekovAA/todo-board/backend/internal/auth/http"
	authservice "github.com/AlibekovAA/todo-board/backend/internal/auth/service"
	"github.com/AlibekovAA/todo-board/backend/internal/common/clock"
	"github.com/AlibekovAA/todo-board/backend/internal/common/config"
	commoncrypto "github.com/AlibekovAA/todo-board/backend/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/todo-board/backend/internal/common/http"
	"github.com/AlibekovAA/todo-board/backend/internal/common/jwtverify"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	srv "github.com/AlibekovAA/todo-board/backend/internal/common/server"
	todohttp "github.com/AlibekovAA/todo-board/backend/internal/todo/http"
	todorepo "github.com/AlibekovAA/todo-board/backend/internal/todo/repository"
	todoservice "github.com/AlibekovAA/todo-board/backend/internal/todo/service"
	userrepo "github.com/AlibekovAA/todo-board/backend/internal/user/repository"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to load config: %v\n", err))
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogDir, "todo", cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	realClock := clock.NewRealClock()
	users := userrepo.NewMemoryRepository()
	todos := todorepo.NewMemoryRepository()

	authService := authservice.NewAuthService(
		users,
		&commoncrypto.BcryptHasher{},
		commoncrypto.NewUUIDGenerator(),
		cfg.JWTSecret,
		cfg.AccessTokenTTL,
		realClock,
		log,
	)
	todoService := todoservice.NewTodoService(todos, realClock, log)

	authHandler := authhttp.NewHandler(authService, cfg.RequestTimeout, log)
	todoHandler := todohttp.NewHandler(todoService, cfg.RequestTimeout, log)

	router := mux.NewRouter()
	router.HandleFunc("/health", commonhttp.HealthHandler(log)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	authHandler.RegisterRoutes(router)
	todoHandler.RegisterRoutes(router, jwtverify.Middleware(cfg.JWTSecret, log))

	handler := commonhttp.BuildBaseHandler(log, router)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), handler)
	srv.StartWithGracefulShutdown(server, log, "todo")
}
