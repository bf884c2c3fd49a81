package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"bagisadmin/internal/adapter/docrepo"
	"bagisadmin/internal/auth"
	"bagisadmin/internal/catalog"
	"bagisadmin/internal/docstore"
	"bagisadmin/internal/donations"
	"bagisadmin/internal/infra"
	"bagisadmin/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bagisadmin:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := infra.LoadConfig()

	logger, closeLog, err := infra.NewLogger(cfg.AppEnv, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	ctx := context.Background()

	var store docstore.Store
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		pg := docstore.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		store = pg
		logger.Info().Msg("using postgres document store")
	} else {
		store = docstore.NewMemoryStore()
		logger.Info().Msg("using in-memory document store")
	}

	var provider auth.Provider
	if cfg.AuthAPIKey != "" {
		rest, err := auth.NewRESTProvider(auth.RESTOptions{
			APIKey:         cfg.AuthAPIKey,
			BaseURL:        cfg.AuthBaseURL,
			RequestTimeout: cfg.AuthTimeout,
		})
		if err != nil {
			return fmt.Errorf("init auth provider: %w", err)
		}
		provider = rest
	} else {
		logger.Warn().Msg("AUTH_API_KEY not set, using development auth provider")
		provider = auth.NewDevProvider()
	}

	gate := auth.NewGate(provider)
	defer gate.Close()

	shelters := docrepo.NewShelters(store)
	animals := docrepo.NewAnimals(store)
	prices := docrepo.NewItemPrices(store)
	reader := donations.NewReader(docrepo.NewDonations(store))

	app := ui.NewApp(ui.Deps{
		Gate:      gate,
		Shelters:  shelters,
		Animals:   animals,
		Catalog:   catalog.New(prices),
		Donations: reader,
		Logger:    logger,
		Locale:    cfg.DefaultLocale,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())

	// Session changes flow through the program's message queue so the router
	// and screens mutate on a single goroutine. The forwarder decouples the
	// gate's synchronous delivery from program.Send, which blocks until the
	// program is running; a single goroutine keeps ordering.
	notify, stopForwarding := newSessionForwarder(func(msg ui.SessionMsg) {
		program.Send(msg)
	})
	unsubscribe := gate.Subscribe(notify)

	_, runErr := program.Run()
	unsubscribe()
	stopForwarding()
	if runErr != nil {
		return fmt.Errorf("run console: %w", runErr)
	}
	return nil
}

// newSessionForwarder returns a notify function safe to hand to the gate and
// a stop function for shutdown. Notifications arriving after stop are
// dropped; a gate callback snapshotted before unsubscribe can still fire
// during teardown, so notify must stay callable after stop.
func newSessionForwarder(send func(ui.SessionMsg)) (notify func(auth.State), stop func()) {
	states := make(chan auth.State, 8)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case state := <-states:
				send(ui.SessionMsg{State: state})
			case <-done:
				return
			}
		}
	}()
	notify = func(state auth.State) {
		select {
		case states <- state:
		case <-done:
		}
	}
	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
	}
	return notify, stop
}
