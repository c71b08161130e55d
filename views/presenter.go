package views

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrorDisplayDuration is how long an error message stays on screen.
const ErrorDisplayDuration = 7 * time.Second

// Presenter holds the transient UI state: the current error message
// and its expiry. The message is cleared by Tick, not by a timer per
// message, so a newer message always keeps its full display time.
type Presenter struct {
	mu      sync.Mutex
	message string
	expires time.Time

	// Now is the clock, replaced in tests.
	Now func() time.Time
}

// NewPresenter returns a Presenter with no message.
func NewPresenter() *Presenter {
	return &Presenter{Now: time.Now}
}

// ShowError displays msg for ErrorDisplayDuration, replacing any
// previous message.
func (p *Presenter) ShowError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.message = msg
	p.expires = p.Now().Add(ErrorDisplayDuration)
}

// Submitted handles the outcome of a bookmark submission.
func (p *Presenter) Submitted(url string, err error) {
	if err == nil {
		return
	}
	log.WithFields(log.Fields{
		"url": url,
		"err": err,
	}).Debug("Submitted:failed")

	p.ShowError(fmt.Sprintf("There was an issue when adding %q : %s", url, err))
}

// Tick clears the message if it expired at now. It returns true when
// a message was cleared.
func (p *Presenter) Tick(now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.message == "" || now.Before(p.expires) {
		return false
	}
	p.message = ""
	p.expires = time.Time{}
	return true
}

// Run calls Tick every interval until ctx is done.
func (p *Presenter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if p.Tick(now) {
				log.Debug("Run:error message cleared")
			}
		}
	}
}

// Message returns the current error message, if any.
func (p *Presenter) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.message
}
