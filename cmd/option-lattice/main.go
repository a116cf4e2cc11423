package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/logger"
	"github.com/contactkeval/option-lattice/internal/report"
	"github.com/contactkeval/option-lattice/internal/server"
	"github.com/contactkeval/option-lattice/internal/sweep"
)

func main() {
	configPath := flag.String("config", "", "path to JSON sweep config (default: reference put sweep)")
	rest := flag.Bool("rest", false, "run as REST server (accept pricing jobs)")
	port := flag.String("port", ":8080", "REST server listen address")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := sweep.DefaultConfig()
	if *configPath != "" {
		cfgData, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Errorf("reading config: %v", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(cfgData, cfg); err != nil {
			logger.Errorf("invalid config: %v", err)
			os.Exit(1)
		}
	}
	logger.SetVerbosity(cfg.Verbosity)

	prov := data.GetProvider()
	if os.Getenv("POLYGON_API_KEY") != "" {
		logger.Infof("polygon provider enabled")
	} else {
		logger.Infof("synthetic provider enabled")
	}

	if *rest {
		logger.Infof("starting REST server on %s", *port)
		if err := server.New(prov).Run(*port); err != nil {
			logger.Errorf("REST server: %v", err)
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	res, err := sweep.NewRunner(cfg, prov).Run()
	if err != nil {
		logger.Errorf("sweep failed: %v", err)
		os.Exit(1)
	}

	// the sweep itself goes to stdout as steps,value pairs; reports to disk
	for _, p := range res.Points {
		fmt.Printf("%d,%v\n", p.Steps, p.Value)
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./out"
	}
	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		logger.Errorf("could not create output dir %s: %v", cfg.ReportDir, err)
	}
	_ = report.WriteJSON(res, cfg.ReportDir)
	_ = report.WriteCSV(res.Points, cfg.ReportDir)
	logger.Infof("finished in %v, wrote %d points to %s", time.Since(start), len(res.Points), cfg.ReportDir)
}
