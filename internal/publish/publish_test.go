package publish

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublish(t *testing.T) {
	t.Run("writes all artifacts", func(t *testing.T) {
		dir := t.TempDir()
		p := New(dir, testLogger())

		err := p.Publish(map[string][]byte{
			CSVFile:  []byte("csv"),
			TSVFile:  []byte("tsv"),
			HTMLFile: []byte("<html>"),
		})
		require.NoError(t, err)

		for name, want := range map[string]string{CSVFile: "csv", TSVFile: "tsv", HTMLFile: "<html>"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, want, string(data))
		}
	})

	t.Run("creates the site directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "site")
		p := New(dir, testLogger())

		require.NoError(t, p.Publish(map[string][]byte{CSVFile: []byte("x")}))
		assert.FileExists(t, filepath.Join(dir, CSVFile))
	})

	t.Run("overwrites previous artifacts", func(t *testing.T) {
		dir := t.TempDir()
		p := New(dir, testLogger())

		require.NoError(t, p.Publish(map[string][]byte{CSVFile: []byte("old")}))
		require.NoError(t, p.Publish(map[string][]byte{CSVFile: []byte("new")}))

		data, err := os.ReadFile(filepath.Join(dir, CSVFile))
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		p := New(dir, testLogger())

		require.NoError(t, p.Publish(map[string][]byte{CSVFile: []byte("x"), TSVFile: []byte("y")}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("unwritable directory fails", func(t *testing.T) {
		p := New(string([]byte{0}), testLogger())
		err := p.Publish(map[string][]byte{CSVFile: []byte("x")})
		require.Error(t, err)
	})
}
