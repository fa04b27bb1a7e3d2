package translate

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/afzaalahmad/bookpal/internal/activity"
	"github.com/afzaalahmad/bookpal/internal/models"
)

// Labels shown on the toggle control.
const (
	LabelTranslate    = "Translate to Urdu"
	LabelTranslating  = "Translating..."
	LabelViewOriginal = "View Original"
)

// alertText is the fixed blocking message shown when translation fails.
const alertText = "Translation failed. Please try again."

// SessionReader is the read-only view of the session store the toggle
// needs to gate translation behind authentication.
type SessionReader interface {
	User() *models.User
}

// Toggle tracks the translation state of one page. Exactly one of the
// original or the translated rendering is showing at any time; flipping
// twice restores the original content unchanged. State is scoped to a
// page: build a fresh Toggle on navigation.
type Toggle struct {
	mu         sync.Mutex
	pageID     string
	original   string
	translated string
	busy       bool

	client  TranslationClient
	tracker activity.Tracker
	session SessionReader
	log     *zap.Logger

	// signIn runs instead of any translation work when no session is
	// active. The UI installs its redirect-to-sign-in behavior here.
	signIn func()
	// alert surfaces a blocking failure message to the reader.
	alert func(string)
}

// NewToggle builds a Toggle for the page identified by pageID.
func NewToggle(pageID string, client TranslationClient, tracker activity.Tracker, session SessionReader, signIn func(), alert func(string), log *zap.Logger) *Toggle {
	return &Toggle{
		pageID:  pageID,
		client:  client,
		tracker: tracker,
		session: session,
		signIn:  signIn,
		alert:   alert,
		log:     log,
	}
}

// Label returns the control's current label.
func (t *Toggle) Label() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.busy:
		return LabelTranslating
	case t.translated != "":
		return LabelViewOriginal
	default:
		return LabelTranslate
	}
}

// Busy reports whether a translation request is in flight. The control
// is disabled while true.
func (t *Toggle) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.busy
}

// Showing reports whether the translated rendering is visible.
func (t *Toggle) Showing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.translated != ""
}

// Flip toggles between the original and translated rendering of the
// page, returning the content to display. current is the content
// visible right now; it is captured verbatim before the first
// translation so a second flip restores it exactly.
//
// With no active session Flip redirects to sign-in and returns current
// untouched. While a flip is in progress Flip is a no-op: the busy
// guard is claimed before the lock is released for the activity call,
// so two overlapping flips can never both reach the translator.
func (t *Toggle) Flip(ctx context.Context, current string) string {
	user := t.session.User()
	if user == nil {
		if t.signIn != nil {
			t.signIn()
		}
		return current
	}

	t.mu.Lock()
	if t.busy {
		t.mu.Unlock()
		return current
	}
	t.busy = true
	t.mu.Unlock()

	// Best-effort activity event; never blocks the toggle.
	if t.tracker != nil {
		ev := models.ActivityEvent{
			UserID:     user.ID,
			Email:      user.Email,
			Action:     activity.ActionTranslate,
			ResourceID: t.pageID,
		}
		if err := t.tracker.Track(ctx, ev); err != nil {
			t.log.Warn("failed to track activity", zap.String("page", t.pageID), zap.Error(err))
		}
	}

	t.mu.Lock()

	// Translation showing: revert and drop both stored renderings.
	if t.translated != "" {
		original := t.original
		t.translated = ""
		t.original = ""
		t.busy = false
		t.mu.Unlock()
		return original
	}

	t.original = current
	t.mu.Unlock()

	translated, err := t.client.TranslateToUrdu(ctx, current)

	t.mu.Lock()
	t.busy = false
	if err != nil {
		t.original = ""
		t.mu.Unlock()
		t.log.Warn("translation failed", zap.String("page", t.pageID), zap.Error(err))
		if t.alert != nil {
			t.alert(alertText)
		}
		// Original content stays visible; the swap only happens on success.
		return current
	}
	t.translated = translated
	t.mu.Unlock()
	return translated
}
