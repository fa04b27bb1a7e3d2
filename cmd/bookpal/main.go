// Package main is the bookpal reader client: an interactive terminal
// book reader with chat, Urdu translation, notes and progress, plus
// account subcommands for scripted use.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/afzaalahmad/bookpal/internal/activity"
	"github.com/afzaalahmad/bookpal/internal/book"
	"github.com/afzaalahmad/bookpal/internal/chat"
	"github.com/afzaalahmad/bookpal/internal/config"
	"github.com/afzaalahmad/bookpal/internal/logger"
	"github.com/afzaalahmad/bookpal/internal/models"
	"github.com/afzaalahmad/bookpal/internal/notes"
	"github.com/afzaalahmad/bookpal/internal/progress"
	"github.com/afzaalahmad/bookpal/internal/session"
	"github.com/afzaalahmad/bookpal/internal/translate"
	"github.com/afzaalahmad/bookpal/internal/ui"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const requestTimeout = 30 * time.Second

// app bundles the wired client collaborators for the cobra commands.
type app struct {
	opts    config.ClientOptions
	log     *logger.Logger
	session *session.Store
}

func (a *app) init() error {
	a.log = logger.New()
	// The terminal belongs to the UI, so client logs go to a file in
	// the state dir. A failure here leaves the nop logger in place.
	if err := os.MkdirAll(a.opts.StateDir, 0o700); err == nil {
		_ = a.log.InitFile("Info", filepath.Join(a.opts.StateDir, "bookpal.log"))
	}

	var auth session.Authenticator
	if a.opts.MockAuth {
		auth = &session.MockAuthenticator{Delay: 500 * time.Millisecond}
	} else {
		auth = session.NewHTTPAuthenticator(a.opts.APIBaseURL, requestTimeout)
	}
	a.session = session.NewStore(auth, session.NewVault(a.opts.StateDir), a.log.Log)
	return nil
}

func main() {
	opts := config.ClientDefaults()
	a := &app{}

	root := &cobra.Command{
		Use:   "bookpal",
		Short: "Read the book with chat, translation, notes and progress",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.opts = opts
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReader(a)
		},
	}
	root.PersistentFlags().StringVar(&opts.APIBaseURL, "api", opts.APIBaseURL, "companion backend base URL")
	root.PersistentFlags().StringVar(&opts.StateDir, "state-dir", opts.StateDir, "directory for the persisted session")
	root.PersistentFlags().StringVar(&opts.BookDir, "book", opts.BookDir, "directory holding the book chapters")
	root.PersistentFlags().BoolVar(&opts.MockAuth, "mock", false, "use the simulated authenticator (offline)")

	root.AddCommand(
		loginCmd(a),
		signupCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		askCmd(a),
		versionCmd(),
	)

	err := root.Execute()
	if a.log != nil {
		_ = a.log.Log.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runReader wires the full client and starts the terminal UI.
func runReader(a *app) error {
	library, err := book.Load(a.opts.BookDir)
	if err != nil {
		return err
	}

	token := a.session.Token
	deps := ui.Deps{
		Session:    a.session,
		Library:    library,
		Transcript: chat.NewTranscript(chat.NewClient(a.opts.APIBaseURL, requestTimeout), a.log.Log),
		Translator: translate.NewClient(a.opts.APIBaseURL, requestTimeout),
		Tracker:    activity.NewHTTPTracker(a.opts.APIBaseURL, requestTimeout, token),
		Notes:      notes.NewClient(a.opts.APIBaseURL, requestTimeout, token),
		Progress:   progress.NewClient(a.opts.APIBaseURL, requestTimeout, token),
		Logger:     a.log.Log,
	}

	program := tea.NewProgram(ui.New(deps), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// promptPassword reads a password without echo.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()
			if !a.session.Login(ctx, args[0], password) {
				return fmt.Errorf("login failed")
			}
			fmt.Printf("Signed in as %s\n", a.session.User().Email)
			return nil
		},
	}
}

func signupCmd(a *app) *cobra.Command {
	var software, hardware string
	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword()
			if err != nil {
				return err
			}
			metadata := models.UserMetadata{
				SoftwareBackground: models.SoftwareBackground(software),
				HardwareBackground: models.HardwareBackground(hardware),
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()
			if !a.session.Signup(ctx, args[0], password, metadata) {
				return fmt.Errorf("signup failed")
			}
			fmt.Printf("Welcome, %s\n", a.session.User().Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&software, "software", "", "software background (Beginner, Intermediate, Advanced)")
	cmd.Flags().StringVar(&hardware, "hardware", "", "hardware background (None, Basic, Advanced)")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.session.User()
			if user == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s (%s)\n", user.Name, user.Email)
			return nil
		},
	}
}

func askCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the book a question without opening the reader",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := chat.NewClient(a.opts.APIBaseURL, requestTimeout)
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()
			answer, err := client.Answer(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Run: func(cmd *cobra.Command, args []string) {
			v, d := version, buildDate
			if v == "" {
				v = "N/A"
			}
			if d == "" {
				d = "N/A"
			}
			fmt.Printf("Build version: %s\nBuild date: %s\n", v, d)
		},
	}
}
