package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/afzaalahmad/bookpal/internal/activity"
	"github.com/afzaalahmad/bookpal/internal/models"
)

// Messages produced by async commands.
type (
	authDoneMsg struct{ ok bool }
	// answerDoneMsg signals that the transcript exchange finished; the
	// transcript itself holds the new messages.
	answerDoneMsg struct{}
	// flipDoneMsg carries the content to display after a toggle flip.
	flipDoneMsg struct{ content string }
	alertMsg    struct{ text string }
	statusMsg   struct{ text string }

	notesLoadedMsg   struct{ items []noteItem }
	noteCreatedMsg   struct{}
	progressSavedMsg struct{ week int }
)

const requestTimeout = 30 * time.Second

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return authDoneMsg{ok: m.deps.Session.Login(ctx, email, password)}
	}
}

func (m Model) signupCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return authDoneMsg{ok: m.deps.Session.Signup(ctx, email, password, models.UserMetadata{})}
	}
}

func (m Model) askCmd(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		m.deps.Transcript.Send(ctx, text)
		return answerDoneMsg{}
	}
}

func (m Model) flipCmd(current string) tea.Cmd {
	toggle := m.toggle
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return flipDoneMsg{content: toggle.Flip(ctx, current)}
	}
}

// trackOpenCmd reports an open_chapter event. Failures are dropped; the
// event is best effort.
func (m Model) trackOpenCmd(pageID string) tea.Cmd {
	if m.deps.Tracker == nil {
		return nil
	}
	user := m.deps.Session.User()
	if user == nil {
		return nil
	}
	tracker := m.deps.Tracker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_ = tracker.Track(ctx, models.ActivityEvent{
			UserID:     user.ID,
			Email:      user.Email,
			Action:     activity.ActionOpenChapter,
			ResourceID: pageID,
		})
		return nil
	}
}

func (m Model) loadNotesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, err := m.deps.Notes.List(ctx)
		if err != nil {
			return alertMsg{text: "Could not load notes."}
		}
		items := make([]noteItem, 0, len(list))
		for _, n := range list {
			items = append(items, noteItem{id: n.ID, content: n.Content})
		}
		return notesLoadedMsg{items: items}
	}
}

func (m Model) createNoteCmd(content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := m.deps.Notes.Create(ctx, content); err != nil {
			return alertMsg{text: "Could not save the note."}
		}
		return noteCreatedMsg{}
	}
}

func (m Model) recordProgressCmd(week int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := m.deps.Progress.Record(ctx, week, 100); err != nil {
			return alertMsg{text: "Could not save progress."}
		}
		return progressSavedMsg{week: week}
	}
}
