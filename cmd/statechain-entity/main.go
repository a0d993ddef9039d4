package main

import (
	"flag"

	"statechain-entity/api"
	"statechain-entity/internal/config"
	"statechain-entity/internal/deposit"
	"statechain-entity/internal/logger"
	"statechain-entity/internal/policy"
	"statechain-entity/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Log.Fatalf("Failed to load config from %s: %v", *configPath, err)
	}
	if err := logger.InitLogger(cfg.Logger); err != nil {
		logger.Log.Fatalf("Failed to initialize logger: %v", err)
	}

	// An invalid operating policy must prevent the service from accepting
	// traffic, not be handled per request.
	policies, err := policy.NewStore(cfg.Policy)
	if err != nil {
		logger.Log.Fatalf("Refusing to start with invalid operating policy: %v", err)
	}

	db, err := storage.Open(cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize storage: %v", err)
	}

	svc := deposit.NewService(db, cfg.Deposit)

	router := api.SetupRouter(svc, policies, cfg.Deposit)
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatalf("HTTP server exited: %v", err)
	}
}
