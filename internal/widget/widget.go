package widget

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-share/internal/model"
	"github.com/MikhailRaia/link-share/internal/shortener"
)

// CopyHint is shown on the input when the clipboard refuses the copy.
const CopyHint = "Press Command + C To Copy"

// selectionEnd covers the whole input value; some inputs do not honour an
// open-ended selection.
const selectionEnd = 9999

var ErrButtonNotFound = errors.New("share button not found")

var schemePrefix = regexp.MustCompile(`https?://`)

// Shortener maps a long URL to a short one.
type Shortener interface {
	Shorten(ctx context.Context, longURL string, creds shortener.Credentials) (shortener.Result, error)
}

// Clipboard copies text. copied is false when the copy was refused.
type Clipboard interface {
	Copy(text string) (copied bool, err error)
}

// Config configures a Widget. A nil Credentials disables shortening.
type Config struct {
	PageURL     string
	Credentials *shortener.Credentials
}

// Widget shortens the page URL once and lets buttons copy it.
type Widget struct {
	config    Config
	shortener Shortener
	clipboard Clipboard

	mu        sync.Mutex
	buttons   []*Button
	byID      map[string]*Button
	generated bool
}

// New creates a Widget over buttons.
func New(cfg Config, s Shortener, c Clipboard, buttons ...*Button) *Widget {
	byID := make(map[string]*Button, len(buttons))
	for _, b := range buttons {
		b.copied = false
		byID[b.id] = b
	}

	return &Widget{
		config:    cfg,
		shortener: s,
		clipboard: c,
		buttons:   buttons,
		byID:      byID,
	}
}

// Prepare shortens the page URL and applies it to every button.
//
// Without credentials it does nothing. A non-success answer from the service
// falls back to the page URL. A transport error leaves the buttons untouched
// and is returned.
func (w *Widget) Prepare(ctx context.Context) error {
	if w.config.Credentials == nil {
		log.Debug().Msg("Share credentials not configured, skipping shortening")
		return nil
	}

	res, err := w.shortener.Shorten(ctx, w.config.PageURL, *w.config.Credentials)
	if err != nil {
		return fmt.Errorf("shorten page URL: %w", err)
	}

	shortURL := w.config.PageURL
	if res.OK() {
		shortURL = res.URL
	} else {
		log.Debug().
			Int("statusCode", res.StatusCode).
			Str("statusText", res.StatusText).
			Msg("No short link available, falling back to page URL")
	}

	w.apply(shortURL)
	return nil
}

func (w *Widget) apply(fullURL string) {
	display := StripScheme(fullURL)

	w.mu.Lock()
	defer w.mu.Unlock()

	for _, b := range w.buttons {
		b.input.SetValue(display)
		b.input.SetFullURL(fullURL)
		b.addClass(ClassGenerated)
	}
	w.generated = true

	log.Debug().
		Str("url", fullURL).
		Int("buttons", len(w.buttons)).
		Msg("Share link generated")
}

// Generated reports whether a link has been applied to the buttons.
func (w *Widget) Generated() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.generated
}

// Click toggles a copied button back or copies the link of a fresh one.
//
// The clipboard may shell out, so it is called without holding the lock.
func (w *Widget) Click(id string) (model.ButtonState, error) {
	w.mu.Lock()
	b, ok := w.byID[id]
	if !ok {
		w.mu.Unlock()
		return model.ButtonState{}, ErrButtonNotFound
	}

	if b.copied {
		b.removeClass(ClassActive)
		b.copied = false
		state := b.state()
		w.mu.Unlock()
		return state, nil
	}

	text := selectFullURL(b.input)
	w.mu.Unlock()

	copied, err := w.clipboard.Copy(text)

	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case err != nil:
		log.Error().Err(err).Str("button", b.id).Msg("Oops, unable to copy")
	case copied:
		b.addClass(ClassActive)
		b.copied = true
	default:
		b.input.SetTitle(CopyHint)
		b.input.ShowTooltip()
	}

	return b.state(), nil
}

// selectFullURL puts the full link in the input and selects all of it.
func selectFullURL(in Input) string {
	// The display value may be truncated; always copy the full link.
	in.SetValue(in.FullURL())
	in.Focus()
	in.SetSelectionRange(0, selectionEnd)
	return in.SelectedText()
}

// Button returns the state of the button with the given ID.
func (w *Widget) Button(id string) (model.ButtonState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.byID[id]
	if !ok {
		return model.ButtonState{}, ErrButtonNotFound
	}
	return b.state(), nil
}

// Buttons returns the state of every button in registration order.
func (w *Widget) Buttons() []model.ButtonState {
	w.mu.Lock()
	defer w.mu.Unlock()

	states := make([]model.ButtonState, len(w.buttons))
	for i, b := range w.buttons {
		states[i] = b.state()
	}
	return states
}

// StripScheme removes the first http:// or https:// from u.
func StripScheme(u string) string {
	loc := schemePrefix.FindStringIndex(u)
	if loc == nil {
		return u
	}
	return u[:loc[0]] + u[loc[1]:]
}
