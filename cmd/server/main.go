package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sleepstars/openai-proxy/internal/clients"
	"github.com/sleepstars/openai-proxy/internal/config"
	"github.com/sleepstars/openai-proxy/internal/logger"
	"github.com/sleepstars/openai-proxy/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to an optional YAML configuration file")
	envFile := flag.String("env-file", ".env", "Path to an optional dotenv file")
	listen := flag.String("listen", "", "Listen address, overrides the configuration file")
	upstream := flag.String("upstream", "", "Upstream API base URL, overrides the configuration file")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *upstream != "" {
		cfg.Upstream.BaseURL = *upstream
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(level, "main")
	mainLog := logger.GetLogger()

	if level > logger.DEBUG {
		gin.SetMode(gin.ReleaseMode)
	}

	source := cfg.Source()
	if !source.Settings().Ready() {
		mainLog.Warn("%s is not set; /status will report ok=false and upstream will reject relayed requests", config.EnvAPIKey)
	}

	client := clients.NewClient(clients.UpstreamConfig{BaseURL: cfg.Upstream.BaseURL})
	mainLog.Info("Relaying /chat to %s", client.Endpoint())

	srv := server.New(source, client)
	if err := srv.Run(cfg.Listen); err != nil {
		mainLog.Fatal("Server stopped: %v", err)
	}
}
