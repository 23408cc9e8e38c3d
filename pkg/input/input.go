// Package input gathers the markup text a command operates on.
package input

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/seq"
)

// Fetcher downloads a document
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Source describes every place input may come from. Resolve uses the first
// one that is set, in field order.
type Source struct {
	URL   string
	Globs []string
	Files []string
	Args  []string
	// Stdin is read when nothing else is set. Nil means no stdin.
	Stdin io.Reader

	Fetcher Fetcher
}

// Stdin returns os.Stdin when it is piped or redirected and nil when it is a terminal
func Stdin() io.Reader {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return os.Stdin
}

// Resolve returns the text described by src
func Resolve(ctx context.Context, src Source) (string, error) {
	logger := logging.GetLogger("input")

	switch {
	case src.URL != "":
		if src.Fetcher == nil {
			return "", errors.New(errors.ErrNullArgument, "no fetcher configured for url input")
		}
		logger.Debug().Str("url", src.URL).Msg("Reading input from url")
		return src.Fetcher.Fetch(ctx, src.URL)

	case len(src.Globs) > 0:
		files, err := ExpandGlobs(src.Globs)
		if err != nil {
			return "", err
		}
		if len(files) == 0 {
			return "", errors.Newf(errors.ErrFileAccess, "no files match %s", strings.Join(src.Globs, ", "))
		}
		logger.Debug().Strs("files", files).Msg("Reading input from glob matches")
		return readFiles(files)

	case len(src.Files) > 0:
		logger.Debug().Strs("files", src.Files).Msg("Reading input from files")
		return readFiles(src.Files)

	case len(src.Args) > 0:
		return strings.Join(src.Args, " "), nil

	case src.Stdin != nil:
		logger.Debug().Msg("Reading input from stdin")
		data, err := io.ReadAll(src.Stdin)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read stdin")
		}
		return string(data), nil
	}

	return "", errors.New(errors.ErrInvalidInput, "no input: pass text, --file, --glob, --url or pipe to stdin")
}

// ExpandGlobs expands doublestar patterns into a sorted list of unique files
func ExpandGlobs(patterns []string) ([]string, error) {
	var matches []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid glob pattern %q", pattern)
		}
		found, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "glob %q", pattern)
		}
		matches = append(matches, found...)
	}
	sort.Strings(matches)
	return seq.DistinctBy(matches, func(s string) string { return s }), nil
}

func readFiles(paths []string) (string, error) {
	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
		}
		b.Write(data)
	}
	return b.String(), nil
}
