package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afzaalahmad/bookpal/internal/chat"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case ChaptersView:
		body = m.viewChapters()
	case ReaderView:
		body = m.viewReader()
	case ChatView:
		body = m.viewChat()
	case SignInView:
		body = m.viewSignIn()
	case NotesView:
		body = m.viewNotes()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
}

func (m Model) viewHeader() string {
	who := "anonymous"
	if u := m.deps.Session.User(); u != nil {
		who = u.Email
	}
	return m.styles.Header.Render(fmt.Sprintf("bookpal · %s", who))
}

func (m Model) viewFooter() string {
	if m.alert != "" {
		return m.styles.Alert.Render(m.alert)
	}
	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}

	var help string
	switch m.mode {
	case ChaptersView:
		help = "↑/↓ select · enter open · c chat · n notes · s sign in · o sign out · q quit"
	case ReaderView:
		help = fmt.Sprintf("t %s · m mark complete · c chat · b back", m.toggle.Label())
	case ChatView:
		help = "enter send · esc back"
	case SignInView:
		mode := "login"
		if m.signupMode {
			mode = "signup"
		}
		help = fmt.Sprintf("enter submit (%s) · tab switch field · ctrl+s login/signup · esc back", mode)
	case NotesView:
		help = "enter save note · esc back"
	}
	return m.styles.Footer.Render(help)
}

func (m Model) viewChapters() string {
	var sb strings.Builder
	for i, ch := range m.chapters {
		line := fmt.Sprintf("  Week %2d  %s", ch.Week, ch.Title)
		if i == m.chapterIdx {
			line = m.styles.Selected.Render("> " + strings.TrimLeft(line, " "))
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m Model) viewReader() string {
	return m.viewport.View()
}

func (m Model) viewChat() string {
	var sb strings.Builder
	for _, msg := range m.deps.Transcript.Messages() {
		switch msg.Sender {
		case chat.SenderUser:
			sb.WriteString(m.styles.UserLabel.Render("You") + "\n")
		default:
			sb.WriteString(m.styles.BotLabel.Render("bookpal") + "\n")
		}
		sb.WriteString(msg.Text + "\n\n")
	}
	if m.deps.Transcript.Busy() {
		sb.WriteString(m.styles.Muted.Render("thinking...") + "\n")
	}
	sb.WriteString(m.chatInput.View())
	return sb.String()
}

func (m Model) viewSignIn() string {
	title := "Sign in"
	if m.signupMode {
		title = "Create account"
	}
	return strings.Join([]string{
		m.styles.Selected.Render(title),
		"",
		m.emailInput.View(),
		m.passInput.View(),
	}, "\n")
}

func (m Model) viewNotes() string {
	var sb strings.Builder
	if len(m.noteList) == 0 {
		sb.WriteString(m.styles.Muted.Render("No notes yet.") + "\n")
	}
	for _, n := range m.noteList {
		sb.WriteString("  • " + n.content + "\n")
	}
	sb.WriteString("\n" + m.noteInput.View())
	return sb.String()
}

// renderMarkdown renders the chapter through glamour, falling back to
// the raw text if rendering fails or panics.
func (m Model) renderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}
