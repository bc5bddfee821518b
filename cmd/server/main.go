// Command server runs the HTTP segmentation service.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonhyland-go/centipede/internal/config"
	"github.com/jonhyland-go/centipede/internal/httpapi"
	"github.com/jonhyland-go/centipede/internal/logging"
	"github.com/jonhyland-go/centipede/internal/state"
	"github.com/jonhyland-go/centipede/internal/stats"
	"github.com/jonhyland-go/centipede/pkg/segment"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML settings file")
	flag.Parse()

	logger, err := logging.NewService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.String("path", *configPath), zap.Error(err))
	}

	serviceState := state.New()
	serviceState.SetLoadingData()

	dict := segment.NewDictionary(logger)
	logger.Info("loading dictionary", zap.String("path", cfg.Splitter.DataFile))
	if err := dict.LoadData(cfg.Splitter.DataFile); err != nil {
		logger.Fatal("failed to load dictionary", zap.Error(err))
	}
	logger.Info("dictionary loaded", zap.Int("term_count", dict.Size()))

	splitter := segment.NewSplitter(dict, cfg.SegmentConfig(), logger)
	defer splitter.Close()

	opStats := stats.New(nil)
	server := httpapi.New(splitter, serviceState, opStats, logger)

	serviceState.SetUp()
	logger.Info("service up",
		zap.String("instance", cfg.Service.InstanceName),
		zap.String("listen_addr", cfg.Service.ListenAddr),
	)

	if err := server.Router().Run(cfg.Service.ListenAddr); err != nil {
		serviceState.SetDown()
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
