package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hrms-lite/hrms/app/api"
	"github.com/hrms-lite/hrms/app/store"
)

var opts struct {
	Listen      string  `short:"l" long:"listen" env:"HRMS_LISTEN" default:":8080" description:"listen address"`
	DBPath      string  `long:"db" env:"HRMS_DB" default:"hrms.db" description:"sqlite database file"`
	NoSeed      bool    `long:"no-seed" env:"HRMS_NO_SEED" description:"do not seed an empty database with sample data"`
	SeedFile    string  `long:"seed-file" env:"HRMS_SEED_FILE" description:"yaml fixture to seed an empty database with"`
	RateLimit   float64 `long:"rate-limit" env:"HRMS_RATE_LIMIT" default:"0" description:"max write requests per second per client, 0 to disable"`
	MaxBodySize int64   `long:"max-body" env:"HRMS_MAX_BODY" default:"65536" description:"max request body size in bytes"`

	Log struct {
		Debug           bool   `long:"debug" env:"DEBUG" description:"debug mode"`
		Filename        string `long:"filename" env:"FILENAME" description:"log to file instead of stdout"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"max log file size in megabytes"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"max number of rotated log files"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"max age of rotated log files in days"`
		EnabledCompress bool   `long:"compress" env:"COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"HRMS_LOG"`
}

var revision = "unknown"

func main() {
	fmt.Printf("hrms %s\n", revision)

	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run opens the store, seeds it if requested and serves the api until ctx is canceled
func run(ctx context.Context) error {
	st, err := store.NewSQLiteStore(opts.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store %q: %w", opts.DBPath, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	if !opts.NoSeed {
		fx, err := store.LoadFixture(opts.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed fixture: %w", err)
		}
		if _, err := st.Seed(ctx, fx); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	srv, err := api.New(api.Config{
		Store:       st,
		Version:     revision,
		RateLimit:   opts.RateLimit,
		MaxBodySize: opts.MaxBodySize,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx, opts.Listen)
}

// setupLogs configures lgr and returns the writer logs go to, stdout or rotated file
func setupLogs() io.Writer {
	var out io.Writer = os.Stdout
	if opts.Log.Filename != "" {
		out = &lumberjack.Logger{
			Filename:   opts.Log.Filename,
			MaxSize:    opts.Log.MaxSize,
			MaxBackups: opts.Log.MaxBackups,
			MaxAge:     opts.Log.MaxAge,
			Compress:   opts.Log.EnabledCompress,
		}
	}

	if opts.Log.Debug {
		log.Setup(log.Out(out), log.Err(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return out
	}
	log.Setup(log.Out(out), log.Err(out), log.Msec)
	return out
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] got signal %v, shutting down", sig)
			cancel() // terminate on SIGINT and SIGTERM
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, os.Interrupt)
}
