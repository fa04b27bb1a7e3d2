package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/afzaalahmad/bookpal/internal/activity"
	"github.com/afzaalahmad/bookpal/internal/book"
	"github.com/afzaalahmad/bookpal/internal/chat"
	"github.com/afzaalahmad/bookpal/internal/notes"
	"github.com/afzaalahmad/bookpal/internal/progress"
	"github.com/afzaalahmad/bookpal/internal/session"
	"github.com/afzaalahmad/bookpal/internal/translate"
)

// viewMode selects which screen the reader is on.
type viewMode int

const (
	// ChaptersView lists the book's chapters.
	ChaptersView viewMode = iota
	// ReaderView shows one chapter with the translation toggle.
	ReaderView
	// ChatView is the question panel backed by the answer service.
	ChatView
	// SignInView collects credentials.
	SignInView
	// NotesView lists and captures reader notes.
	NotesView
)

// Deps bundles the collaborators the reader UI drives.
type Deps struct {
	Session    *session.Store
	Library    *book.Library
	Transcript *chat.Transcript
	Translator translate.TranslationClient
	Tracker    activity.Tracker
	Notes      *notes.Client
	Progress   *progress.Client
	Logger     *zap.Logger
}

// Model is the bubbletea model for the reader.
type Model struct {
	deps   Deps
	styles Styles

	mode     viewMode
	prevMode viewMode
	ready    bool
	width    int
	height   int

	chapters   []book.Chapter
	chapterIdx int
	// content is the markdown currently on screen for the open chapter.
	// The translation toggle captures and restores it verbatim.
	content string
	toggle  *translate.Toggle

	viewport viewport.Model
	renderer *glamour.TermRenderer

	chatInput  textinput.Model
	emailInput textinput.Model
	passInput  textinput.Model
	noteInput  textinput.Model
	// signupMode switches the credentials form between login and signup.
	signupMode bool
	focusPass  bool

	noteList []noteItem

	// signals carries toggle side effects out of async commands.
	signals *signals

	status string
	alert  string
}

type noteItem struct {
	id      string
	content string
}

// New builds the reader model over its collaborators.
func New(deps Deps) Model {
	chatInput := textinput.New()
	chatInput.Placeholder = "Ask about the book..."
	chatInput.CharLimit = 500

	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	passInput := textinput.New()
	passInput.Placeholder = "password"
	passInput.EchoMode = textinput.EchoPassword

	noteInput := textinput.New()
	noteInput.Placeholder = "New note..."

	sig := &signals{}
	deps.Session.SetLogoutFunc(sig.GoHome)

	return Model{
		deps:       deps,
		styles:     DefaultStyles(),
		signals:    sig,
		mode:       ChaptersView,
		chapters:   deps.Library.Chapters(),
		chatInput:  chatInput,
		emailInput: emailInput,
		passInput:  passInput,
		noteInput:  noteInput,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
