package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtpl/pkg/convert"
	"github.com/dmitrymomot/mailtpl/pkg/email/templates"
	"github.com/dmitrymomot/mailtpl/pkg/storage"
)

// MockStorage is a mock implementation of storage.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Write(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, path string) bool {
	args := m.Called(ctx, path)
	return args.Bool(0)
}

const shopifyExport = `<html><body>
<table class="header row"><tr><td><img src="logo.png"></td></tr></table>
<table class="row content"><tr><td>
  <h2>%s</h2>
</td></tr></table>
<table class="row footer"><tr><td>Questions? Reply to this email.</td></tr></table>
</body></html>`

func writeSource(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestScaffold(t *testing.T) {
	t.Parallel()

	html, err := templates.Render(context.Background(), convert.Scaffold("<h2>Shipped</h2>"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "{{> head }}\n"))
	assert.True(t, strings.HasSuffix(html, "{{> body-close }}\n"))
	assert.Contains(t, html, "\n<h2>Shipped</h2>\n")

	order := []string{"{{> head }}", "{{> header }}", "{{> container-open }}", "<h2>Shipped</h2>", "{{> container-close }}", "{{> footer-short }}", "{{> body-close }}"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		require.NotEqual(t, -1, idx, marker)
		assert.Greater(t, idx, last, marker)
		last = idx
	}
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("orders", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		writeSource(t, src, "Order_Shipped.html", strings.Replace(shopifyExport, "%s", "On its way", 1))
		writeSource(t, src, "Order_Delivered.html", strings.Replace(shopifyExport, "%s", "Delivered", 1))
		writeSource(t, src, "Order_Empty.html", "<html><body>nothing here</body></html>")
		writeSource(t, src, "Customer_Welcome.html", strings.Replace(shopifyExport, "%s", "Welcome", 1))

		outDir := t.TempDir()
		out, err := storage.NewLocalStorage(outDir)
		require.NoError(t, err)

		res, err := convert.NewConverter(out).Convert(context.Background(), convert.OrdersProfile(src))
		require.NoError(t, err)

		assert.Equal(t, 3, res.Total)
		assert.Equal(t, []string{"order-delivered.html", "order-shipped.html"}, res.Converted)
		assert.Equal(t, []string{"Order_Empty.html"}, res.Skipped)
		assert.Empty(t, res.Replaced)
		assert.Empty(t, res.Failed)

		got, err := os.ReadFile(filepath.Join(outDir, "order-shipped.html"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "\n<h2>On its way</h2>\n")
		assert.Contains(t, string(got), "{{> footer-short }}")

		assert.NoFileExists(t, filepath.Join(outDir, "customer-welcome.html"))
		assert.NoFileExists(t, filepath.Join(outDir, "order-empty.html"))
	})

	t.Run("subscriptions", func(t *testing.T) {
		t.Parallel()
		originals := t.TempDir()
		subDir := filepath.Join(originals, "subscriptions")
		writeSource(t, subDir, "Subscription_Created.html", strings.Replace(shopifyExport, "%s", "Thanks", 1))
		writeSource(t, subDir, "readme.txt", "ignore me")

		outDir := t.TempDir()
		out, err := storage.NewLocalStorage(outDir)
		require.NoError(t, err)

		res, err := convert.NewConverter(out).Convert(context.Background(), convert.SubscriptionsProfile(originals))
		require.NoError(t, err)

		assert.Equal(t, 1, res.Total)
		assert.Equal(t, []string{"subscriptions/Subscription-Created.html"}, res.Converted)
		assert.FileExists(t, filepath.Join(outDir, "subscriptions", "Subscription-Created.html"))
	})

	t.Run("missing source directory", func(t *testing.T) {
		t.Parallel()
		out := new(MockStorage)

		_, err := convert.NewConverter(out).Convert(context.Background(), convert.OrdersProfile(filepath.Join(t.TempDir(), "nope")))
		assert.ErrorIs(t, err, convert.ErrSourceDirNotFound)
		out.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no matching files", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		writeSource(t, src, "Customer_Welcome.html", shopifyExport)
		out := new(MockStorage)

		res, err := convert.NewConverter(out).Convert(context.Background(), convert.OrdersProfile(src))
		require.NoError(t, err)
		assert.Zero(t, res.Total)
		assert.Empty(t, res.Converted)
	})

	t.Run("write failure does not abort", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		writeSource(t, src, "Order_A.html", strings.Replace(shopifyExport, "%s", "A", 1))
		writeSource(t, src, "Order_B.html", strings.Replace(shopifyExport, "%s", "B", 1))

		diskFull := errors.New("no space left on device")
		out := new(MockStorage)
		out.On("Exists", mock.Anything, mock.Anything).Return(false)
		out.On("Write", mock.Anything, "order-a.html", mock.Anything).Return(diskFull).Once()
		out.On("Write", mock.Anything, "order-b.html", mock.Anything).Return(nil).Once()

		res, err := convert.NewConverter(out).Convert(context.Background(), convert.OrdersProfile(src))
		require.NoError(t, err)

		assert.Equal(t, []string{"order-b.html"}, res.Converted)
		require.Contains(t, res.Failed, "Order_A.html")
		assert.ErrorIs(t, res.Failed["Order_A.html"], convert.ErrFailedToWrite)
		assert.ErrorIs(t, res.Failed["Order_A.html"], diskFull)
		out.AssertExpectations(t)
	})

	t.Run("existing templates are reported as replaced", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		writeSource(t, src, "Order_A.html", strings.Replace(shopifyExport, "%s", "A", 1))
		writeSource(t, src, "Order_B.html", strings.Replace(shopifyExport, "%s", "B", 1))

		out := new(MockStorage)
		out.On("Exists", mock.Anything, "order-a.html").Return(true).Once()
		out.On("Exists", mock.Anything, "order-b.html").Return(false).Once()
		out.On("Write", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

		res, err := convert.NewConverter(out).Convert(context.Background(), convert.OrdersProfile(src))
		require.NoError(t, err)

		assert.Equal(t, []string{"order-a.html", "order-b.html"}, res.Converted)
		assert.Equal(t, []string{"order-a.html"}, res.Replaced)
		out.AssertExpectations(t)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		src := t.TempDir()
		writeSource(t, src, "Order_A.html", shopifyExport)
		out := new(MockStorage)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := convert.NewConverter(out).Convert(ctx, convert.OrdersProfile(src))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConverter_ConvertFile(t *testing.T) {
	t.Parallel()
	src := t.TempDir()
	writeSource(t, src, "Order_Empty.html", "<p>no sections</p>")
	out := new(MockStorage)

	_, err := convert.NewConverter(out).ConvertFile(context.Background(), convert.OrdersProfile(src), "Order_Empty.html")
	assert.ErrorIs(t, err, convert.ErrNoContentExtracted)

	_, err = convert.NewConverter(out).ConvertFile(context.Background(), convert.OrdersProfile(src), "Order_Missing.html")
	assert.ErrorIs(t, err, convert.ErrFailedToRead)
}
