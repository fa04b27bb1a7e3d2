package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/afzaalahmad/bookpal/internal/translate"
)

// signals collects side effects raised by collaborators (the
// translation toggle, the session's logout hook) so Update can fold
// them into the model.
type signals struct {
	mu       sync.Mutex
	alert    string
	redirect bool
	home     bool
}

func (s *signals) SetAlert(text string) {
	s.mu.Lock()
	s.alert = text
	s.mu.Unlock()
}

func (s *signals) Redirect() {
	s.mu.Lock()
	s.redirect = true
	s.mu.Unlock()
}

// GoHome marks that the reader should navigate back to the start page.
// Installed as the session store's logout side effect.
func (s *signals) GoHome() {
	s.mu.Lock()
	s.home = true
	s.mu.Unlock()
}

func (s *signals) PopHome() bool {
	s.mu.Lock()
	home := s.home
	s.home = false
	s.mu.Unlock()
	return home
}

func (s *signals) Pop() (alert string, redirect bool) {
	s.mu.Lock()
	alert, redirect = s.alert, s.redirect
	s.alert, s.redirect = "", false
	s.mu.Unlock()
	return alert, redirect
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(msg.Width-2)); err == nil {
			m.renderer = r
		}
		if m.mode == ReaderView {
			m.viewport.SetContent(m.renderMarkdown(m.content))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case ChaptersView:
			return m.updateChapters(msg)
		case ReaderView:
			return m.updateReader(msg)
		case ChatView:
			return m.updateChat(msg)
		case SignInView:
			return m.updateSignIn(msg)
		case NotesView:
			return m.updateNotes(msg)
		}

	case authDoneMsg:
		if msg.ok {
			m.mode = m.prevMode
			m.status = "Signed in as " + m.deps.Session.User().Email
			m.alert = ""
		} else {
			m.alert = "Sign in failed. Check your credentials."
		}
		return m, nil

	case answerDoneMsg:
		return m, nil

	case flipDoneMsg:
		m.content = msg.content
		m.viewport.SetContent(m.renderMarkdown(m.content))
		m.viewport.GotoTop()
		if alert, redirect := m.signals.Pop(); redirect {
			m.prevMode = m.mode
			m.mode = SignInView
			m.emailInput.Focus()
		} else if alert != "" {
			m.alert = alert
		}
		return m, nil

	case alertMsg:
		m.alert = msg.text
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case notesLoadedMsg:
		m.noteList = msg.items
		return m, nil

	case noteCreatedMsg:
		m.noteInput.Reset()
		return m, m.loadNotesCmd()

	case progressSavedMsg:
		m.status = "Week marked complete."
		return m, nil
	}

	return m, nil
}

func (m Model) updateChapters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.chapterIdx > 0 {
			m.chapterIdx--
		}
	case "down", "j":
		if m.chapterIdx < len(m.chapters)-1 {
			m.chapterIdx++
		}
	case "enter":
		return m.openChapter(m.chapterIdx)
	case "c":
		m.mode = ChatView
		m.chatInput.Focus()
	case "n":
		if !m.deps.Session.Authenticated() {
			m.prevMode = m.mode
			m.mode = SignInView
			m.emailInput.Focus()
			return m, nil
		}
		m.mode = NotesView
		m.noteInput.Focus()
		return m, m.loadNotesCmd()
	case "s":
		m.prevMode = m.mode
		m.mode = SignInView
		m.emailInput.Focus()
	case "o":
		if m.deps.Session.Authenticated() {
			m.deps.Session.Logout()
			m = m.popHome()
			m.status = "Signed out."
		}
	}
	return m, nil
}

// popHome folds the session's logout side effect into the model,
// returning the reader to the start page.
func (m Model) popHome() Model {
	if m.signals.PopHome() {
		m.mode = ChaptersView
		m.chapterIdx = 0
	}
	return m
}

// openChapter loads the chapter, builds a fresh translation toggle for
// it, and reports the open as activity.
func (m Model) openChapter(idx int) (tea.Model, tea.Cmd) {
	ch := m.chapters[idx]
	content, err := m.deps.Library.Content(ch)
	if err != nil {
		m.alert = "Could not open the chapter."
		return m, nil
	}
	m.content = content
	m.toggle = translate.NewToggle(
		ch.ID,
		m.deps.Translator,
		m.deps.Tracker,
		m.deps.Session,
		m.signals.Redirect,
		m.signals.SetAlert,
		m.deps.Logger,
	)
	m.mode = ReaderView
	m.alert = ""
	m.viewport.SetContent(m.renderMarkdown(content))
	m.viewport.GotoTop()
	return m, m.trackOpenCmd(ch.ID)
}

func (m Model) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.mode = ChaptersView
		return m, nil
	case "t":
		if m.toggle.Busy() {
			return m, nil
		}
		m.alert = ""
		return m, m.flipCmd(m.content)
	case "m":
		if !m.deps.Session.Authenticated() {
			m.prevMode = m.mode
			m.mode = SignInView
			m.emailInput.Focus()
			return m, nil
		}
		return m, m.recordProgressCmd(m.chapters[m.chapterIdx].Week)
	case "c":
		m.mode = ChatView
		m.chatInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ChaptersView
		m.chatInput.Blur()
		return m, nil
	case tea.KeyEnter:
		text := m.chatInput.Value()
		if strings.TrimSpace(text) == "" || m.deps.Transcript.Busy() {
			return m, nil
		}
		m.chatInput.Reset()
		return m, m.askCmd(text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateSignIn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = m.prevMode
		return m, nil
	case tea.KeyTab:
		m.focusPass = !m.focusPass
		if m.focusPass {
			m.emailInput.Blur()
			m.passInput.Focus()
		} else {
			m.passInput.Blur()
			m.emailInput.Focus()
		}
		return m, nil
	case tea.KeyCtrlS:
		m.signupMode = !m.signupMode
		return m, nil
	case tea.KeyEnter:
		email, password := m.emailInput.Value(), m.passInput.Value()
		if email == "" || password == "" {
			m.alert = "Email and password are required."
			return m, nil
		}
		if m.deps.Session.Loading() {
			return m, nil
		}
		if m.signupMode {
			return m, m.signupCmd(email, password)
		}
		return m, m.loginCmd(email, password)
	}

	var cmd tea.Cmd
	if m.focusPass {
		m.passInput, cmd = m.passInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ChaptersView
		m.noteInput.Blur()
		return m, nil
	case tea.KeyEnter:
		content := m.noteInput.Value()
		if strings.TrimSpace(content) == "" {
			return m, nil
		}
		return m, m.createNoteCmd(content)
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}
