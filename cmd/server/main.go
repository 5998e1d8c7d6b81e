package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"blackjacktable-server/internal/config"
	"blackjacktable-server/internal/mux"
	"blackjacktable-server/pkg/db"
	"blackjacktable-server/pkg/persist"
	"blackjacktable-server/pkg/table"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured address)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	store := newStore(cfg)
	tbl := table.New(logrus.StandardLogger(), loadSnapshot(store), table.Options{
		Bots:           cfg.Table.Bots,
		DefaultBalance: cfg.Table.DefaultBalance,
		DefaultBet:     cfg.Table.DefaultBet,
	})

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, tbl, store))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// newStore picks the persistence backend from the configuration
func newStore(cfg config.Config) persist.Store {
	switch cfg.Persist.Driver {
	case "postgres":
		db.Migrate()
		return persist.NewPostgresStore(db.Instance())
	case "file", "":
		return persist.NewFileStore(cfg.Persist.File)
	default:
		logrus.WithField("driver", cfg.Persist.Driver).Fatal("unknown persist driver")
		return nil
	}
}

// loadSnapshot returns the last saved table, or nil so the table starts from
// defaults. A bad snapshot is logged and discarded, never fatal.
func loadSnapshot(store persist.Store) *persist.Snapshot {
	snapshot, err := store.Load()
	if err != nil {
		logrus.WithError(err).Warn("could not load snapshot, starting fresh")
		return nil
	}

	return snapshot
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
