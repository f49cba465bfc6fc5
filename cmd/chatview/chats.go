package main

import (
	"fmt"

	"github.com/fwojciec/chatview"
	cvjson "github.com/fwojciec/chatview/json"
	"github.com/spf13/cobra"
)

// Chat view modes.
const (
	modeView    = "view"
	modeGuide   = "guide"
	modeHistory = "history"
)

func newChatsCmd(a *app) *cobra.Command {
	var (
		mode     string
		asString bool
	)
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Print the chat view of the active conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.selectors()
			if asString {
				_, err := fmt.Fprintln(a.stdout, c.ChatsMessageString(a.chat))
				return err
			}

			var chats []chatview.ChatMessage
			switch mode {
			case modeView:
				chats = c.CurrentChats(a.chat)
			case modeGuide:
				chats = c.CurrentChatsWithGuideMessage(a.chat)
				if len(chats) == 1 && chats[0].ID == chatview.GuideMessageID {
					a.logger.Info("no messages, showing guide message", "active_id", a.chat.ActiveID)
				}
			case modeHistory:
				chats = c.CurrentChatsWithHistoryConfig(a.chat)
			default:
				return fmt.Errorf("unknown mode %q (want %s, %s or %s): %w",
					mode, modeView, modeGuide, modeHistory, chatview.ErrValidation)
			}

			data, err := cvjson.MarshalChatMessages(chats)
			if err != nil {
				return fmt.Errorf("marshal chats: %w", err)
			}
			return a.write(data)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", modeGuide, "view mode: view, guide or history")
	cmd.Flags().BoolVar(&asString, "string", false, "print the concatenated history content instead of JSON")
	return cmd
}

func newMessageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "message <id>",
		Short: "Print a raw message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, ok := chatview.MessageByID(a.chat, args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], chatview.ErrMessageNotFound)
			}
			var props *chatview.FunctionMessageProps
			if msg.Role == chatview.RoleFunction {
				p := chatview.GetFunctionMessageProps(a.chat, msg)
				props = &p
			}
			data, err := cvjson.MarshalMessage(msg, props)
			if err != nil {
				return fmt.Errorf("marshal message: %w", err)
			}
			return a.write(data)
		},
	}
}
