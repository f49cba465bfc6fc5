package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/chatview"
	cvjson "github.com/fwojciec/chatview/json"
	"github.com/spf13/cobra"
)

func newSessionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSessionTable(a.stdout, a.sessions)
		},
	}
}

func newSessionCmd(a *app) *cobra.Command {
	var metaOnly bool
	cmd := &cobra.Command{
		Use:   "session [id]",
		Short: "Print the current session, or the session with the given id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.sessions

			var sess chatview.Session
			if len(args) == 0 {
				if _, ok := chatview.CurrentSession(s); !ok {
					a.logger.Info("no current session, using default", "active_id", s.ActiveID)
				}
				sess = chatview.CurrentSessionSafe(s)
			} else if metaOnly {
				data, err := cvjson.MarshalMeta(chatview.SessionMetaByID(s, args[0]))
				if err != nil {
					return fmt.Errorf("marshal meta: %w", err)
				}
				return a.write(data)
			} else {
				sess = chatview.SessionByID(s, args[0])
				if sess.ID != args[0] {
					a.logger.Info("session not found, using default", "id", args[0])
				}
			}

			var data []byte
			var err error
			if metaOnly {
				data, err = cvjson.MarshalMeta(sess.Meta)
			} else {
				data, err = cvjson.MarshalSession(sess)
			}
			if err != nil {
				return fmt.Errorf("marshal session: %w", err)
			}
			return a.write(data)
		},
	}
	cmd.Flags().BoolVar(&metaOnly, "meta", false, "print only the session metadata")
	return cmd
}

var cellStyle = lipgloss.NewStyle().PaddingRight(2)

// writeSessionTable writes one row per session: active marker, avatar, id,
// title and model.
func writeSessionTable(w io.Writer, s chatview.SessionState) error {
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers("", "", "ID", "TITLE", "MODEL")
	for _, sess := range s.Sessions {
		marker := ""
		if sess.ID == s.ActiveID {
			marker = "*"
		}
		title := sess.Meta.Title
		if title == "" {
			title = "-"
		}
		t.Row(marker, sess.Meta.Avatar, sess.ID, title, sess.Config.Model)
	}

	for _, line := range strings.Split(t.String(), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
