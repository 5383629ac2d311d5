package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"gradpath/cmd/internal/httpclient"
	"gradpath/cmd/internal/logger"
	"gradpath/config"
	"gradpath/db"
	"gradpath/feeder"
	"gradpath/repositories"
)

func main() {
	once := flag.Bool("once", false, "run a single import and exit")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx); err != nil {
		logger.ErrorWithFields("failed to initialize MongoDB", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Disconnect(shutdownCtx)
	}()

	fetcher := feeder.New(httpclient.New(httpclient.Config{Timeout: 30 * time.Second}))
	svc := NewImportService(fetcher, repositories.NewBlogRepository(db.Database()), cfg.Importer)

	// first run happens immediately
	if _, err := svc.RunOnce(ctx); err != nil {
		logger.WarnWithFields("import interrupted", logger.Fields{"error": err.Error()})
	}
	if *once {
		return
	}

	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger{}),
		cron.WithChain(
			cron.Recover(cronLogger{}),
			cron.SkipIfStillRunning(cronLogger{}),
		),
	)
	if _, err := c.AddFunc(cfg.Importer.Schedule, func() {
		if _, err := svc.RunOnce(ctx); err != nil {
			logger.WarnWithFields("import interrupted", logger.Fields{"error": err.Error()})
		}
	}); err != nil {
		logger.ErrorWithFields("invalid importer schedule", logger.Fields{
			"schedule": cfg.Importer.Schedule,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	c.Start()
	logger.InfoWithFields("importer scheduled", logger.Fields{"schedule": cfg.Importer.Schedule})

	<-ctx.Done()
	// waits for a running import to finish
	<-c.Stop().Done()
}

// cronLogger routes cron's own logging into the structured logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.DebugWithFields("cron: "+msg, kvFields(keysAndValues))
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := kvFields(keysAndValues)
	fields["error"] = err.Error()
	logger.ErrorWithFields("cron: "+msg, fields)
}

func kvFields(keysAndValues []interface{}) logger.Fields {
	fields := logger.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
