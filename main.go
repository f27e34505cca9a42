package main

import (
	"context"
	"log"

	"employee-directory/internal/apiclient"
	"employee-directory/internal/config"
	"employee-directory/internal/db"
	"employee-directory/internal/handlers"
	"employee-directory/internal/middleware"
	"employee-directory/internal/router"
	"employee-directory/internal/session"
	"employee-directory/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	// Session record store: file-backed by default, Postgres when configured.
	var sessionStore session.Store
	if cfg.DatabaseURL != "" {
		pool := db.NewPool(ctx, cfg.DatabaseURL)
		defer pool.Close()
		pg, err := session.NewPGStore(ctx, pool)
		if err != nil {
			log.Fatalf("init session table: %v", err)
		}
		sessionStore = pg
		log.Printf("session store: postgres")
	} else {
		sessionStore = session.NewFileStore(cfg.SessionFile)
		log.Printf("session store: file %s", cfg.SessionFile)
	}

	var gateOpts []session.Option
	if cfg.AdminPasswordHash != "" {
		gateOpts = append(gateOpts, session.WithPasswordHash(cfg.AdminPasswordHash))
	}
	gate := session.NewGate(sessionStore, cfg.SessionTTL, gateOpts...)

	dir := store.New()
	client := apiclient.New(
		cfg.APIBaseURL, cfg.EmployeesPath, cfg.ExportPath,
		cfg.APITimeout, cfg.APIMaxRetries,
		apiclient.WithStatusFunc(dir.Report),
	)

	r := gin.Default()
	router.Setup(r,
		handlers.NewAuthHandler(gate, []byte(cfg.JWTSecret), cfg.SessionTTL),
		handlers.NewEmployeeHandler(client, dir),
		middleware.NewSessionAuth(gate, []byte(cfg.JWTSecret)),
	)

	log.Printf("directory API: %s (employees %s, export %s)", cfg.APIBaseURL, cfg.EmployeesPath, cfg.ExportPath)
	log.Printf("listening on :%s ...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
