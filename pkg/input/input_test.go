package input_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/input"
	"github.com/arthur-debert/hexmark/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	urls []string
	body string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.urls = append(s.urls, url)
	return s.body, nil
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := testutil.CreateFile(t, dir, "a.txt", "from file")

	fetcher := &stubFetcher{body: "from url"}
	ctx := context.Background()

	t.Run("url wins", func(t *testing.T) {
		got, err := input.Resolve(ctx, input.Source{
			URL:     "https://example.com/doc",
			Files:   []string{file},
			Args:    []string{"arg"},
			Fetcher: fetcher,
		})
		require.NoError(t, err)
		assert.Equal(t, "from url", got)
		assert.Equal(t, []string{"https://example.com/doc"}, fetcher.urls)
	})

	t.Run("files before args", func(t *testing.T) {
		got, err := input.Resolve(ctx, input.Source{Files: []string{file}, Args: []string{"arg"}})
		require.NoError(t, err)
		assert.Equal(t, "from file", got)
	})

	t.Run("args are joined", func(t *testing.T) {
		got, err := input.Resolve(ctx, input.Source{
			Args:  []string{"<c=FF0000>a</c>", "b"},
			Stdin: strings.NewReader("ignored"),
		})
		require.NoError(t, err)
		assert.Equal(t, "<c=FF0000>a</c> b", got)
	})

	t.Run("stdin last", func(t *testing.T) {
		got, err := input.Resolve(ctx, input.Source{Stdin: strings.NewReader("piped")})
		require.NoError(t, err)
		assert.Equal(t, "piped", got)
	})

	t.Run("nothing is an error", func(t *testing.T) {
		_, err := input.Resolve(ctx, input.Source{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("url without fetcher", func(t *testing.T) {
		_, err := input.Resolve(ctx, input.Source{URL: "https://example.com"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrNullArgument))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := input.Resolve(ctx, input.Source{Files: []string{filepath.Join(dir, "nope")}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})
}

func TestResolve_Globs(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, testutil.FileTree{
		"b.txt":   "B",
		"skip.md": "M",
		"nested": testutil.FileTree{
			"deep": testutil.FileTree{"a.txt": "A"},
		},
	})

	pattern := filepath.ToSlash(dir) + "/**/*.txt"
	got, err := input.Resolve(context.Background(), input.Source{Globs: []string{pattern, pattern}})
	require.NoError(t, err)
	// sorted by path, duplicates from repeated patterns dropped
	assert.Equal(t, "BA", got)

	_, err = input.Resolve(context.Background(), input.Source{Globs: []string{filepath.ToSlash(dir) + "/*.none"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestExpandGlobs_Invalid(t *testing.T) {
	_, err := input.ExpandGlobs([]string{"[unclosed"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
