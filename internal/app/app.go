package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-share/internal/clipboard"
	"github.com/MikhailRaia/link-share/internal/config"
	"github.com/MikhailRaia/link-share/internal/handler"
	"github.com/MikhailRaia/link-share/internal/shortener"
	"github.com/MikhailRaia/link-share/internal/widget"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	widget  *widget.Widget
	handler http.Handler
}

// NewWidget builds the share widget described by cfg.
func NewWidget(cfg *config.Config) *widget.Widget {
	var clip widget.Clipboard = clipboard.None{}
	if cfg.Clipboard == config.ClipboardSystem {
		clip = clipboard.NewSystem()
	}

	buttons := make([]*widget.Button, cfg.Buttons)
	for i := range buttons {
		buttons[i] = widget.NewButton(widget.NewTextInput(cfg.PageURL))
	}

	return widget.New(
		widget.Config{
			PageURL:     cfg.PageURL,
			Credentials: cfg.Credentials(),
		},
		shortener.NewClient(cfg.ShortenerEndpoint, nil),
		clip,
		buttons...,
	)
}

func NewApp(cfg *config.Config) *App {
	w := NewWidget(cfg)

	return &App{
		config:  cfg,
		widget:  w,
		handler: handler.NewHandler(w).RegisterRoutes(),
	}
}

// Prepare generates the share link, logging instead of failing when the
// shortening service cannot be reached.
func (a *App) Prepare(ctx context.Context) {
	if err := a.widget.Prepare(ctx); err != nil {
		log.Warn().Err(err).Str("pageURL", a.config.PageURL).Msg("Share link not generated")
	}
}

// Run serves the share API until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.config.ServerAddress,
		Handler: a.handler,
	}

	go a.Prepare(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", a.config.ServerAddress).
			Str("pageURL", a.config.PageURL).
			Int("buttons", a.config.Buttons).
			Msg("Starting share server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down share server")
		return srv.Shutdown(shutdownCtx)
	}
}
