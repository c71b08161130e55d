package main

//go:generate rice embed-go

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	rice "github.com/GeertJohan/go.rice"
	"github.com/cli/browser"
	log "github.com/sirupsen/logrus"

	"github.com/tbellembois/golinks/config"
	"github.com/tbellembois/golinks/handlers"
	"github.com/tbellembois/golinks/models"
	"github.com/tbellembois/golinks/services"
	"github.com/tbellembois/golinks/views"
)

var (
	datastore   models.Datastore
	templateBox *rice.Box
	cfg         *config.Config
	err         error
	logf        *os.File
)

func main() {
	def := config.Default()

	// Getting the program parameters.
	configFile := flag.String("config", "", "an optional TOML configuration file")
	listenPort := flag.String("port", def.Port, "the port to listen")
	proxyURL := flag.String("proxy", "", "the proxy full URL if used, default is http://localhost:<port>")
	dbPath := flag.String("db", def.DBPath, "the full sqlite db path")
	store := flag.String("store", def.Store, "the bookmark store: sqlite or memory")
	timeout := flag.String("timeout", def.Timeout, "the page fetch timeout, 0 for none")
	openBrowser := flag.Bool("open", false, "open the application in the default browser")
	logfile := flag.String("logfile", "", "log to the given file")
	debug := flag.Bool("debug", false, "debug (verbose log), default is error")
	flag.Parse()

	// Configuration file, explicitly set flags take precedence.
	cfg = def
	if *configFile != "" {
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *listenPort
		case "proxy":
			cfg.ProxyURL = *proxyURL
		case "db":
			cfg.DBPath = *dbPath
		case "store":
			cfg.Store = *store
		case "timeout":
			cfg.Timeout = *timeout
		case "open":
			cfg.OpenBrowser = *openBrowser
		case "logfile":
			cfg.LogFile = *logfile
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err = cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Logging to file if logfile parameter specified.
	if cfg.LogFile != "" {
		if logf, err = os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644); err != nil {
			log.Panic(err)
		} else {
			defer logf.Close()
			log.SetOutput(logf)
		}
	}
	// Setting the log level.
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}
	log.WithFields(log.Fields{
		"config":      *configFile,
		"listenPort":  cfg.Port,
		"proxyURL":    cfg.GetProxyURL(),
		"dbPath":      cfg.DBPath,
		"store":       cfg.Store,
		"timeout":     cfg.GetTimeout(),
		"openBrowser": cfg.OpenBrowser,
		"logfile":     cfg.LogFile,
		"debug":       cfg.Debug,
	}).Debug("main:flags")

	// Datastore initialization.
	switch cfg.Store {
	case config.StoreMemory:
		datastore = models.NewMemoryStore()
	default:
		var db *models.SQLiteDataStore
		if db, err = models.NewDBstore(cfg.DBPath); err != nil {
			log.Panic(err)
		}
		// Database creation.
		db.CreateDatabase()
		// Error check.
		if err = db.FlushErrors(); err != nil {
			log.Panic(err)
		}
		datastore = db
	}
	defer datastore.Close()

	// host from URL
	u, err := url.Parse(cfg.GetProxyURL())
	if err != nil {
		log.Fatal(err)
	}
	log.Debug(u)

	// Environment creation.
	env := handlers.Env{
		Service:       services.NewBookmarkService(datastore, cfg.GetTimeout()),
		Presenter:     views.NewPresenter(),
		GoBkmProxyURL: cfg.ProxyURL,
		OpenURL:       browser.OpenURL,
	}
	// Building a rice box with the static directory.
	if templateBox, err = rice.FindBox("static"); err != nil {
		log.Fatal(err)
	}
	// Getting the HTML template file content as a string.
	tplMainData, err := templateBox.String("index.html")
	if err != nil {
		log.Fatal(err)
	}
	if env.TplMain, err = views.ParseTemplate(tplMainData); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error message expiry.
	go env.Presenter.Run(ctx, time.Second)

	// Local use only: bind the loopback interface.
	srv := &http.Server{
		Addr: "localhost:" + cfg.Port,
		Handler: env.Handler([]string{
			"http://localhost:" + cfg.Port,
			"http://127.0.0.1:" + cfg.Port,
			u.Scheme + "://" + u.Host,
		}),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Error("main:shutdown")
		}
	}()

	var open func(string) error
	if cfg.OpenBrowser {
		open = browser.OpenURL
	}
	ln, err := listenAndOpen(srv.Addr, cfg.GetProxyURL()+"/", open)
	if err != nil {
		log.Fatal(err)
	}

	if err = srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// listenAndOpen binds addr, then opens pageURL with open when not nil,
// so the page never loads before the port accepts connections.
func listenAndOpen(addr string, pageURL string, open func(string) error) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	if open != nil {
		if err := open(pageURL); err != nil {
			log.WithFields(log.Fields{
				"err": err,
			}).Error("main:open browser")
		}
	}
	return ln, nil
}
