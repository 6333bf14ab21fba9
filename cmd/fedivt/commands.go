package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/config"
	"github.com/muurk/fedivt/internal/logging"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/ui"
)

// Session command flags
var (
	terminalAddr string
	wideMode     bool
	logLevel     string
)

func init() {
	rootCmd.Flags().StringVar(&terminalAddr, "addr", "", "Serial-bridge address (host:port); omit to use the local tty")
	rootCmd.Flags().BoolVar(&wideMode, "wide", false, "Use 132-column mode")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log verbosity on stderr (debug, info, warn, error)")
}

func runSession(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel); err != nil {
		return err
	}
	defer logging.Sync()

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	server := args[0]
	username := ""
	password := ""
	if len(args) > 1 {
		username = args[1]
	}
	if len(args) > 2 {
		password = args[2]
	}
	if username == "" {
		if stored := registry.GetServer(server); stored != nil {
			username = stored.LastUsername
		}
	}

	addr := terminalAddr
	if addr == "" && !cmd.Flags().Changed("addr") {
		addr = registry.Preferences.TerminalAddr
	}
	wide := wideMode
	if !cmd.Flags().Changed("wide") {
		wide = wide || registry.Preferences.Wide
	}

	// A dropped serial bridge comes back on its own schedule, so retry
	// the connection with growing pauses and rebuild the session each
	// time. The local tty never reconnects.
	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 0

	for {
		term, err := connect(addr, wide)
		if err != nil {
			if addr == "" {
				return err
			}
			wait := policy.NextBackOff()
			logging.Warn("terminal connection failed, retrying",
				zap.String("addr", addr), zap.Error(err))
			time.Sleep(wait)
			continue
		}
		policy.Reset()

		err = session(term, registry, server, username, password)
		term.Close()
		if errors.Is(err, terminal.ErrTerminalGone) && addr != "" {
			logging.LogConnection(addr, "lost")
			continue
		}
		return err
	}
}

func connect(addr string, wide bool) (terminal.Terminal, error) {
	if addr != "" {
		return terminal.ConnectNetwork(addr, wide)
	}
	return terminal.ConnectLocal(wide)
}

// session drives one terminal connection from login to exit.
func session(term terminal.Terminal, registry *config.Registry, server, username, password string) error {
	c := client.New(server)
	if stored := registry.GetServer(server); stored != nil && stored.Registered() {
		c.SetAppCredentials(stored.ClientID, stored.ClientSecret)
	}

	r := ui.NewRenderer(term, c)
	r.Session.SaveAppCredentials = func(host, clientID, clientSecret string) {
		registry.SetClientCredentials(host, clientID, clientSecret)
		if err := registry.Save(); err != nil {
			logging.Warn("saving app credentials failed", zap.Error(err))
		}
	}

	ui.SpawnLoginScreen(r, server, username, password)

	loggedInAs := ""
	for {
		input, err := term.RecvInput()
		if err != nil {
			return terminal.ErrTerminalGone
		}

		// Held arrow keys queue faster than a slow link can repaint.
		// Collapse a run of identical arrows into one event so the
		// screen does not lag behind the keyboard.
		if input == terminal.KeyUp || input == terminal.KeyDown {
			for {
				next, err := term.PeekInput()
				if err != nil || next != input {
					break
				}
				if _, err := term.RecvInput(); err != nil {
					return terminal.ErrTerminalGone
				}
			}
		}

		action := r.ProcessInput(input)
		switch action := action.(type) {
		case ui.ExitAction:
			term.Reset()
			return nil
		case ui.BackAction:
			depth := action.Depth
			if depth < 1 {
				depth = 1
			}
			for i := 0; i < depth; i++ {
				r.Pop()
			}
		case ui.SwapScreenAction:
			action.Swap(r)
		}

		if err := term.Err(); err != nil {
			return terminal.ErrTerminalGone
		}

		if r.Session.Username != "" && r.Session.Username != loggedInAs {
			loggedInAs = r.Session.Username
			registry.UpdateLastLogin(server, loggedInAs)
			if err := registry.Save(); err != nil {
				logging.Warn("saving login record failed", zap.Error(err))
			}
		}

		if listener := r.Session.Listener; listener != nil && listener.HasNewPosts() {
			listener.Clear()
			r.Status("New posts arrived! Press 'r' to refresh.")
		}
	}
}
