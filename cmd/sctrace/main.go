// sctrace records a command under xctrace and renders the captured
// syscalls as strace-like lines.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sctrace/internal/config"
	"sctrace/internal/extract"
	"sctrace/internal/filter"
	otelprov "sctrace/internal/otel"
	"sctrace/internal/output"
	"sctrace/internal/timesync"
	"sctrace/internal/xctrace"
	"sctrace/internal/xmlnode"

	"go.uber.org/zap"
)

// Version information injected by GoReleaser at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("version", version))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exportXML, recordStart, err := obtainExport(ctx, cfg, envCfg, logger)
	if err != nil {
		return err
	}

	root, err := xmlnode.Parse(bytes.NewReader(exportXML))
	if err != nil {
		return err
	}
	events := extract.Extract(root)

	var flt *filter.Filter
	if cfg.Filter != "" {
		flt, err = filter.Compile(cfg.Filter)
		if err != nil {
			return err
		}
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		out = f
	}

	color := !cfg.NoColor && !envCfg.ColorDisabled() && cfg.Output == ""
	formatter := output.NewFormatter(color)

	var spans *output.OTELFormatter
	if cfg.OTEL {
		otelCfg, err := config.ParseOTELConfig()
		if err != nil {
			return err
		}
		tp, err := otelprov.InitProvider(otelCfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := otelprov.ShutdownProvider(tp, shutdownCtx); err != nil {
				logger.Warn("failed to flush spans", zap.Error(err))
			}
		}()
		spans = output.NewOTELFormatter(tp.Tracer("sctrace"), timesync.NewConverter(recordStart))
	}

	w := bufio.NewWriter(out)
	defer func() {
		_ = w.Flush()
	}()
	for i := range events {
		ev := &events[i]
		if flt != nil && !flt.Match(ev) {
			continue
		}
		if _, err := fmt.Fprintln(w, formatter.Render(ev)); err != nil {
			return err
		}
		if spans != nil {
			_ = spans.HandleEvent(ev)
		}
	}

	return nil
}

// obtainExport produces the export XML, either by reading a previously
// exported file or by recording the configured command and exporting the
// resulting bundle.
func obtainExport(ctx context.Context, cfg *config.Config, envCfg *config.EnvConfig, logger *zap.Logger) ([]byte, time.Time, error) {
	if cfg.Input != "" {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to read export file: %w", err)
		}
		return data, time.Now(), nil
	}

	template := envCfg.Template
	if cfg.Template != "" {
		template = cfg.Template
	}
	runner := xctrace.NewRunner(envCfg.XcrunPath, template, logger)

	rec, err := runner.Record(ctx, cfg.FullCommand())
	if err != nil {
		return nil, time.Time{}, err
	}
	if cfg.KeepTrace {
		logger.Info("keeping trace bundle", zap.String("bundle", rec.Bundle))
	} else {
		defer func() {
			_ = rec.Cleanup()
		}()
	}

	toc, err := runner.TOC(ctx, rec.Bundle)
	if err != nil {
		return nil, time.Time{}, err
	}
	if !xctrace.HasSyscallTable(toc) {
		return nil, time.Time{}, fmt.Errorf("recording template %q produced no syscall table", template)
	}

	data, err := runner.Export(ctx, rec.Bundle)
	if err != nil {
		return nil, time.Time{}, err
	}
	return data, rec.Start, nil
}
