// Command chatview prints display views of a chat store snapshot.
//
// Usage:
//
//	chatview [--config path] [--snapshot path] [--active id] <command>
//
// Commands:
//
//	chats     chat view of the active conversation as JSON
//	message   one raw message as JSON
//	sessions  table of sessions
//	session   one session (or its metadata) as JSON
//	version   print the version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/chatview"
	"github.com/fwojciec/chatview/config"
	cvjson "github.com/fwojciec/chatview/json"
	"github.com/fwojciec/chatview/locale"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, os.Getenv)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chatview: %v\n", err)
		os.Exit(1)
	}
}

// app holds everything the subcommands read. It is populated by the root
// command's PersistentPreRunE.
type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath   string
	snapshotPath string
	activeID     string

	cfg      *config.Config
	logger   *slog.Logger
	catalog  *locale.Catalog
	chat     chatview.ChatState
	sessions chatview.SessionState
}

// needsSnapshot reports whether cmd reads the store. Help, version and
// shell completion run without one.
func needsSnapshot(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, getenv: getenv}

	root := &cobra.Command{
		Use:   "chatview",
		Short: "Display views of a chat store snapshot",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSnapshot(cmd) {
				return nil
			}
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (default ~/.config/chatview/config.yaml)")
	root.PersistentFlags().StringVarP(&a.snapshotPath, "snapshot", "s", "", "store snapshot path (overrides config)")
	root.PersistentFlags().StringVar(&a.activeID, "active", "", "override the active session id")

	root.AddCommand(
		newChatsCmd(a),
		newMessageCmd(a),
		newSessionsCmd(a),
		newSessionCmd(a),
		newVersionCmd(a),
	)
	return root
}

// load resolves config, logging, translations and the snapshot.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.getenv)
	if err != nil {
		return err
	}
	if a.snapshotPath != "" {
		cfg.Snapshot = a.snapshotPath
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := locale.Load(cfg.LocaleDir)
	if err != nil {
		return fmt.Errorf("load locale: %w", err)
	}
	a.catalog = catalog

	snap, err := cvjson.Load(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", cfg.Snapshot, err)
	}
	activeID := snap.ActiveID
	if cmd.Flags().Changed("active") {
		activeID = a.activeID
	}
	a.chat = snap.ChatState(activeID)
	a.sessions = snap.SessionState(activeID)

	a.logger.Debug("snapshot loaded",
		"path", cfg.Snapshot,
		"active_id", activeID,
		"messages", len(a.chat.Messages),
		"sessions", len(a.sessions.Sessions),
	)
	return nil
}

// selectors builds the chat selectors over the loaded snapshot.
func (a *app) selectors() *chatview.ChatSelectors {
	agents := chatview.NewSessionAgents(a.sessions, a.catalog)
	return chatview.NewChatSelectors(a.cfg.Settings(), agents, a.catalog)
}

func (a *app) write(data []byte) error {
	if _, err := a.stdout.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "chatview version %s\n", version)
			return err
		},
	}
}
