// Command nlbn converts EasyEDA component records into KiCad and/or
// Altium library artifacts, either one part at a time or as a batch
// read from a file of LCSC ids.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/linkyourbin/nlbn-gui/internal/batch"
	"github.com/linkyourbin/nlbn-gui/internal/config"
	"github.com/linkyourbin/nlbn-gui/internal/easyedaapi"
	"github.com/linkyourbin/nlbn-gui/internal/history"
	"github.com/linkyourbin/nlbn-gui/internal/metrics"
	"github.com/linkyourbin/nlbn-gui/internal/orchestrator"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

var releaseVersion = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     "nlbn@" + releaseVersion,
			Debug:       cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("failed to initialize sentry: %v", err)
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert":
		runConvert(cfg, os.Args[2:])
	case "batch":
		runBatch(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nlbn convert <lcsc-id> [flags]")
	fmt.Fprintln(os.Stderr, "       nlbn batch <file-of-ids> [flags]")
}

func convertOptionsFlags(fs *flag.FlagSet, cfg *config.Config) *orchestrator.Options {
	opts := &orchestrator.Options{}
	fs.StringVar(&opts.OutputDir, "out", cfg.OutputDir, "output directory")
	fs.BoolVar(&opts.ConvertSymbol, "symbol", cfg.ConvertSymbol, "convert the schematic symbol")
	fs.BoolVar(&opts.ConvertFootprint, "footprint", cfg.ConvertFootprint, "convert the PCB footprint")
	fs.BoolVar(&opts.Convert3D, "3d", cfg.Convert3D, "convert the 3D model")
	fs.BoolVar(&opts.KicadV5, "kicad-v5", cfg.KicadV5, "emit legacy KiCad v5 symbol format")
	fs.BoolVar(&opts.ProjectRelative, "project-relative", cfg.ProjectRelative, "reference 3D models via ${KIPRJMOD}")
	fs.BoolVar(&opts.Overwrite, "overwrite", cfg.Overwrite, "replace an existing library symbol")
	fs.BoolVar(&opts.TargetKicad, "kicad", cfg.TargetKicad, "emit KiCad artifacts")
	fs.BoolVar(&opts.TargetAltium, "altium", cfg.TargetAltium, "emit Altium artifacts")
	return opts
}

func runConvert(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	opts := convertOptionsFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}
	lcscID := fs.Arg(0)

	store := openHistoryStore(cfg)
	publisher := openMetricsPublisher(cfg)

	ctx := context.Background()
	client := easyedaapi.New()
	result := orchestrator.Convert(ctx, client, lcscID, *opts)

	recordResult(ctx, store, publisher, result, opts.OutputDir)
	printResult(result)
	if !result.Success {
		os.Exit(1)
	}
}

func runBatch(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	opts := convertOptionsFlags(fs, cfg)
	concurrency := fs.Int("concurrency", cfg.BatchConcurrency, "max concurrent conversions")
	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}
	if fs.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	ids, err := readIDs(fs.Arg(0))
	if err != nil {
		log.Fatalf("reading id list: %v", err)
	}

	store := openHistoryStore(cfg)
	publisher := openMetricsPublisher(cfg)

	ctx := context.Background()
	client := easyedaapi.New()
	result := batch.Run(ctx, client, ids, *opts, *concurrency, func(p batch.Progress) {
		log.Printf("[%d/%d] %s: %s", p.Current, p.Total, p.LcscID, p.Status)
	})

	for _, r := range result.Results {
		recordResult(ctx, store, publisher, r, opts.OutputDir)
	}
	publisher.BatchFinished(result.Total, result.Succeeded, result.Failed)

	fmt.Printf("converted %d/%d components (%d failed)\n", result.Succeeded, result.Total, result.Failed)
	if result.Failed > 0 {
		os.Exit(1)
	}
}

func readIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}

func openHistoryStore(cfg *config.Config) history.Store {
	if cfg.HistoryDatabaseURL == "" {
		return history.NullStore{}
	}
	store, err := history.NewGormStore(cfg.HistoryDatabaseURL)
	if err != nil {
		log.Printf("history store disabled: %v", err)
		return history.NullStore{}
	}
	return store
}

func openMetricsPublisher(cfg *config.Config) metrics.Publisher {
	if cfg.MetricsNamespace == "" {
		return metrics.NullPublisher{}
	}
	publisher, err := metrics.NewCloudWatchPublisher(context.Background(), cfg.MetricsNamespace, cfg.MetricsRegion, cfg.Environment)
	if err != nil {
		log.Printf("metrics publisher disabled: %v", err)
		return metrics.NullPublisher{}
	}
	return publisher
}

func recordResult(ctx context.Context, store history.Store, publisher metrics.Publisher, result *orchestrator.Result, outputDir string) {
	if result.Success {
		publisher.ConversionCompleted(result.LcscID)
	} else {
		publisher.ConversionFailed(result.LcscID)
	}

	if err := store.Record(ctx, &history.Entry{
		LcscID:        result.LcscID,
		ComponentName: result.ComponentName,
		Success:       result.Success,
		OutputDir:     outputDir,
		Message:       result.Message,
	}); err != nil {
		log.Printf("failed to record history: %v", err)
	}
}

func printResult(result *orchestrator.Result) {
	if result.Success {
		fmt.Printf("%s: %s converted\n", result.LcscID, result.ComponentName)
	} else {
		fmt.Printf("%s: failed: %s\n", result.LcscID, result.Message)
	}
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
}
