// Package notice classifies failures for presentation and owns the
// transient error overlay shown on the dashboard.
package notice

import (
	"sync"
	"time"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// Presentation tells the UI shell how to surface a failure.
type Presentation string

const (
	// PresentOverlay renders a transient banner that self-dismisses.
	PresentOverlay Presentation = "overlay"
	// PresentErrorPage routes to the full dedicated error page.
	PresentErrorPage Presentation = "error-page"
	// PresentRetryLater renders a generic try-again message; upstream detail
	// is never echoed.
	PresentRetryLater Presentation = "retry-later"
)

// OverlayWindow is how long a transient notice stays visible before it
// self-dismisses.
const OverlayWindow = 1600 * time.Millisecond

const (
	genericMessage    = "An error occurred. Please try again."
	notFoundMessage   = "The requested resource could not be found."
	retryLaterMessage = "Something went wrong on our end. Please try again later."
)

// Notice is one surfaced failure.
type Notice struct {
	Presentation Presentation `json:"presentation"`
	Message      string       `json:"message"`
}

// Classify maps a failure onto its presentation. NotFound routes to the
// error page, server-class failures get the generic retry message, and
// everything else becomes an overlay echoing the server message if there
// is one.
func Classify(err error) Notice {
	switch domain.ClassOf(err) {
	case domain.FailureNotFound:
		return Notice{Presentation: PresentErrorPage, Message: notFoundMessage}
	case domain.FailureServer:
		return Notice{Presentation: PresentRetryLater, Message: retryLaterMessage}
	default:
		if msg := domain.ServerMessage(err); msg != "" {
			return Notice{Presentation: PresentOverlay, Message: msg}
		}
		return Notice{Presentation: PresentOverlay, Message: genericMessage}
	}
}

// Center holds the page-level notice. Overlay and retry-later notices expire
// after OverlayWindow; an error-page notice stays until cleared or replaced,
// since the UI navigates away on it.
type Center struct {
	mu      sync.Mutex
	now     func() time.Time
	window  time.Duration
	current *Notice
	shownAt time.Time
}

// NewCenter creates a notice center with the standard overlay window.
func NewCenter() *Center {
	return NewCenterWithNow(time.Now)
}

// NewCenterWithNow creates a notice center with an injected clock.
func NewCenterWithNow(now func() time.Time) *Center {
	return &Center{
		now:    now,
		window: OverlayWindow,
	}
}

// Publish records err as the current notice, replacing any previous one.
func (c *Center) Publish(err error) {
	if err == nil {
		return
	}
	n := Classify(err)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &n
	c.shownAt = c.now()
}

// Current returns the active notice, if any. Expired transient notices are
// dropped on read.
func (c *Center) Current() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notice{}, false
	}
	if c.current.Presentation != PresentErrorPage && c.now().Sub(c.shownAt) >= c.window {
		c.current = nil
		return Notice{}, false
	}
	return *c.current, true
}

// Clear drops the current notice.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}
