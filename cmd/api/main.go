package main

import (
	"log"

	"github.com/CampusAssist-QA/campus-qa-backend/config"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/bootstrap"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/llm"
	"github.com/CampusAssist-QA/campus-qa-backend/internal/qa/service"
)

const serviceName = "campus-qa-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := bootstrap.LoadContent(cfg.Data.PagesPath)
	if err != nil {
		log.Fatalf("load content from %s: %v", cfg.Data.PagesPath, err)
	}
	log.Printf("loaded %d content records from %s", store.Count(), cfg.Data.PagesPath)

	completer := llm.New(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	askService := service.NewAskService(store, completer, cfg.Data.ContextLimit)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Store:          store,
		AskService:     askService,
		RateLimitRPS:   cfg.Limit.RPS,
		RateLimitBurst: cfg.Limit.Burst,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
