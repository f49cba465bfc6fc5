package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/chatview"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSnapshot = `{
  "version": 1,
  "activeId": "s1",
  "chatLoadingId": "m3",
  "messages": [
    {"id": "m1", "sessionId": "s1", "role": "user", "content": "Hello ", "createdAt": 1772352000000, "updatedAt": 1772352000000},
    {"id": "m2", "sessionId": "s1", "role": "assistant", "content": "there", "createdAt": 1772352001000, "updatedAt": 1772352001000,
     "fromModel": "gpt-4"},
    {"id": "m3", "sessionId": "s1", "role": "function", "content": "{}", "createdAt": 1772352002000, "updatedAt": 1772352002000,
     "plugin": {"identifier": "weather", "arguments": "{}"}}
  ],
  "sessions": [
    {"id": "s1", "type": "agent", "config": {"model": "gpt-4", "params": {}, "systemRole": ""},
     "meta": {"avatar": "🦉", "title": "Owl"}},
    {"id": "s2", "type": "agent", "config": {"model": "gpt-3.5-turbo", "params": {}, "systemRole": "a helpful cook"},
     "meta": {"title": "Chef"}}
  ]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0o600))
	return path
}

// execute runs the CLI with an isolated config (an empty explicit file).
func execute(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, func(k string) string { return env[k] })
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeList(t *testing.T, out string) []map[string]any {
	t.Helper()
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestChats_View(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, map[string]string{"CHATVIEW_AVATAR": "🐱"},
		"--snapshot", writeSnapshot(t), "chats", "--mode", "view")
	require.NoError(t, err)

	got := decodeList(t, out)
	require.Len(t, got, 3)
	assert.Equal(t, map[string]any{"avatar": "🐱"}, got[0]["meta"])
	assert.Equal(t, "Owl", got[1]["meta"].(map[string]any)["title"])
	assert.Equal(t, map[string]any{"fromModel": "gpt-4"}, got[1]["extra"])
	assert.Equal(t, "plugin-unknown", got[2]["meta"].(map[string]any)["title"])
}

func TestChats_GuideForEmptyConversation(t *testing.T) {
	t.Parallel()

	t.Run("agent with system role", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "--active", "s2", "chats")
		require.NoError(t, err)
		got := decodeList(t, out)
		require.Len(t, got, 1)
		assert.Equal(t, chatview.GuideMessageID, got[0]["id"])
		assert.Equal(t, "Hello, I'm **Chef**, a helpful cook. Let's start chatting!", got[0]["content"])
	})

	t.Run("inbox", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "--active", chatview.InboxSessionID, "chats")
		require.NoError(t, err)
		got := decodeList(t, out)
		require.Len(t, got, 1)
		assert.Contains(t, got[0]["content"], "personal assistant")
		assert.Equal(t, chatview.DefaultInboxAvatar, got[0]["meta"].(map[string]any)["avatar"])
	})

	t.Run("no active conversation", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "--active", "", "chats", "--mode", "view")
		require.NoError(t, err)
		assert.Empty(t, decodeList(t, out))
	})
}

func TestChats_String(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "chats", "--string")
	require.NoError(t, err)
	assert.Equal(t, "Hello there{}\n", out)
}

func TestChats_UnknownMode(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "chats", "--mode", "tree")
	assert.ErrorIs(t, err, chatview.ErrValidation)
}

func TestMessage(t *testing.T) {
	t.Parallel()

	t.Run("function message includes props", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "message", "m3")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		fn := got["function"].(map[string]any)
		assert.Equal(t, "weather", fn["id"])
		assert.Equal(t, true, fn["loading"])
	})

	t.Run("missing message", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "message", "nope")
		assert.ErrorIs(t, err, chatview.ErrMessageNotFound)
	})
}

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("current session", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "session")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "s1", got["id"])
	})

	t.Run("unknown id falls back to the default session", func(t *testing.T) {
		t.Parallel()
		out, stderr, err := execute(t, map[string]string{"CHATVIEW_LOG_LEVEL": "info"},
			"--snapshot", writeSnapshot(t), "session", "s9")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "", got["id"])
		assert.Equal(t, "gpt-3.5-turbo", got["config"].(map[string]any)["model"])
		assert.Contains(t, stderr, "session not found")
	})

	t.Run("meta of unknown id is empty", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "session", "s9", "--meta")
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, out)
	})

	t.Run("meta by id", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "session", "s2", "--meta")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title": "Chef"}`, out)
	})
}

func TestSessions_Table(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, nil, "--snapshot", writeSnapshot(t), "sessions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.TrimRight(lines[0], " "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "*"), lines[1])
	assert.Contains(t, lines[1], "🦉")
	assert.Contains(t, lines[1], "s1")
	assert.False(t, strings.HasPrefix(lines[2], "*"), lines[2])
	assert.Contains(t, lines[2], "s2")

	// Columns line up by display width, so the wide avatar in s1 does not
	// shift its row.
	column := func(line, cell string) int {
		i := strings.Index(line, cell)
		require.GreaterOrEqual(t, i, 0, "%q not in %q", cell, line)
		return runewidth.StringWidth(line[:i])
	}
	assert.Equal(t, column(lines[0], "ID"), column(lines[1], "s1"))
	assert.Equal(t, column(lines[0], "ID"), column(lines[2], "s2"))
	assert.Equal(t, column(lines[0], "TITLE"), column(lines[2], "Chef"))
	assert.Equal(t, column(lines[0], "MODEL"), column(lines[1], "gpt"))
}

func TestSnapshotErrors(t *testing.T) {
	t.Parallel()
	_, _, err := execute(t, nil, "--snapshot", filepath.Join(t.TempDir(), "missing.json"), "sessions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load snapshot")
}

func TestCommandsWithoutSnapshot(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing.json")

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", missing, "help")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "sessions")
	})

	t.Run("help for a subcommand", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", missing, "help", "chats")
		require.NoError(t, err)
		assert.Contains(t, out, "--mode")
	})

	t.Run("completion", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, nil, "--snapshot", missing, "completion", "bash")
		require.NoError(t, err)
		assert.Contains(t, out, "chatview")
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "chatview version dev\n", out)
}
