package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtpl/pkg/email"
)

func readPreview(t *testing.T, dir string) (string, map[string]any, string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2) // HTML + JSON

	var html string
	var meta map[string]any
	var name string
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		switch filepath.Ext(e.Name()) {
		case ".html":
			html = string(data)
			name = e.Name()
		case ".json":
			require.NoError(t, json.Unmarshal(data, &meta))
		}
	}
	return html, meta, name
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes html and metadata", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		require.NoError(t, sender.SendEmail(ctx, validParams()))

		html, meta, name := readPreview(t, dir)
		assert.Equal(t, "<p>Order #1234</p>", html)
		assert.True(t, strings.HasSuffix(name, "_order-confirmation.html"), name)
		assert.Equal(t, "test@example.com", meta["send_to"])
		assert.Equal(t, "Order Confirmation", meta["subject"])
		assert.Equal(t, "order-confirmation", meta["tag"])
		assert.EqualValues(t, len("<p>Order #1234</p>"), meta["size"])
		assert.NotEmpty(t, meta["timestamp"])
	})

	t.Run("subject names the file without tag", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		params := validParams()
		params.Tag = ""
		require.NoError(t, sender.SendEmail(ctx, params))

		_, meta, name := readPreview(t, dir)
		assert.Contains(t, name, "order_confirmation")
		assert.NotContains(t, meta, "tag")
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "tmp", "emails")
		sender := email.NewDevSender(dir)

		require.NoError(t, sender.SendEmail(ctx, validParams()))
		readPreview(t, dir)
	})

	t.Run("validation error writes nothing", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		sender := email.NewDevSender(dir)

		params := validParams()
		params.SendTo = ""
		err := sender.SendEmail(ctx, params)
		assert.ErrorIs(t, err, email.ErrInvalidParams)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("directory creation error", func(t *testing.T) {
		t.Parallel()
		sender := email.NewDevSender("/dev/null/cannot-create-here")

		err := sender.SendEmail(ctx, validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "failed to create directory")
	})
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "Hello World", expected: "hello_world"},
		{input: "Test@Email#Subject!", expected: "testemailsubject"},
		{input: "Multiple   Spaces", expected: "multiple___spaces"},
		{input: "!@#$%^&*()", expected: "email"},
		{input: "", expected: "email"},
		{input: strings.Repeat("a", 150), expected: strings.Repeat("a", 100)},
		{input: "order-confirmation_v2.backup", expected: "order-confirmation_v2.backup"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, email.SanitizeFilename(tt.input))
		})
	}
}
