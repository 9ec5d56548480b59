package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"audioscribe/internal/app"
	"audioscribe/internal/config"
	"audioscribe/internal/server"
	"audioscribe/pkg/Logger"
)

const usage = `usage: audioscribe <command> [arguments]

commands:
  transcribe <audio-file>         transcribe one recording and export it
  batch <input-dir> <output-dir>  transcribe every audio file in a directory
  sort <source-dir> <dest-dir>    sort documents into keyword categories
  serve                           run the HTTP API
`

// This is the main entry point for the tool.
// Loads all system components and dispatches the chosen command.
func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// fetch cfg
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// load global logger
	logger := Logger.New(cfg.Debug)

	a, err := app.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	ctx := context.Background()
	switch args[0] {
	case "transcribe":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		runTranscribe(ctx, a, args[1])
	case "batch":
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		if err := a.Coordinator.ProcessDirectory(ctx, args[1], args[2]); err != nil {
			logger.Fatalf("batch run failed: %v", err)
		}
	case "sort":
		if len(args) != 3 {
			flag.Usage()
			os.Exit(2)
		}
		if err := a.Sorter.SortDirectory(args[1], args[2]); err != nil {
			logger.Fatalf("sort failed: %v", err)
		}
	case "serve":
		runServe(a)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runTranscribe(ctx context.Context, a *app.App, audioPath string) {
	if _, err := os.Stat(audioPath); err != nil {
		a.Logger.Fatalf("audio file not found: %s", audioPath)
	}

	rec, err := a.Service.ProcessFile(ctx, audioPath)
	if err != nil {
		a.Logger.Fatalf("transcription failed: %v", err)
	}

	if speakers, ok := rec.Metadata().Get("Total Speakers"); ok {
		a.Logger.Infof("speakers identified: %s", speakers)
	}

	if _, err := a.Service.Export(rec, a.Config.Export.Formats, a.Config.Export.OutputDir); err != nil {
		a.Logger.Fatalf("export failed: %v", err)
	}
}

func runServe(a *app.App) {
	// compose router
	router := gin.Default()
	server.InitializeRoutes(router, a.ServerDeps)

	// listen with graceful exit
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler: router.Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatalf("Server exiting %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// 5 secs then cancel
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		a.Logger.Errorf("Shutdown err %v", err)
	}
	a.Logger.Info("Shutdown system")
}
