package hexmark

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/segcodec"
	"github.com/arthur-debert/hexmark/pkg/testutil"
)

// run executes the command tree with isolated config and log locations
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateXDG(t)
	return execute(t, stdin, args...)
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { _ = logging.Close() })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRoot_NoCommand(t *testing.T) {
	out, err := run(t, "")
	require.Error(t, err)
	assert.Contains(t, out, "segments")
}

func TestSegments_Plain(t *testing.T) {
	out, err := run(t, "", "segments", "--format", "plain", "Hello <c=FF0000>red</c> world")
	require.NoError(t, err)
	assert.Equal(t, "Hello red world\n", out)
}

func TestSegments_JSON(t *testing.T) {
	out, err := run(t, "", "segments", "-f", "json", "--default", "00FF00", "a<c=80FF0000>b</c>")
	require.NoError(t, err)

	var doc struct {
		Segments []struct {
			Color string `json:"color"`
			Text  string `json:"text"`
		} `json:"segments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Segments, 2)
	assert.Equal(t, "#FF00FF00", doc.Segments[0].Color)
	assert.Equal(t, "#80FF0000", doc.Segments[1].Color)
	assert.Equal(t, "b", doc.Segments[1].Text)
}

func TestSegments_Stdin(t *testing.T) {
	out, err := run(t, "<color=#0000FF>blue</color>", "segments", "-f", "binary")
	require.NoError(t, err)

	segments, err := segcodec.DecodeBinary([]byte(out))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "blue", segments[0].Text)
	assert.Equal(t, uint32(0xFF0000FF), uint32(segments[0].Color))
}

func TestSegments_File(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "banner.txt", "<c=FF0000>x</c>")

	out, err := run(t, "", "segments", "-f", "plain", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestSegments_Glob(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, testutil.FileTree{
		"a.txt": "one ",
		"sub":   testutil.FileTree{"b.txt": "<c=FF0000>two</c>"},
	})

	out, err := run(t, "", "segments", "-f", "plain", "--glob", filepath.Join(dir, "**", "*.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one two\n", out)
}

func TestSegments_Summary(t *testing.T) {
	out, err := run(t, "", "segments", "--summary", "--no-color", "ab<c=FF0000>cde</c>")
	require.NoError(t, err)
	assert.Contains(t, out, "segments  2")
	assert.Contains(t, out, "dominant  #FFFF0000")
}

func TestSegments_InvalidDefault(t *testing.T) {
	_, err := run(t, "", "segments", "--default", "nothex", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColorPayload))
}

func TestSegments_NoInput(t *testing.T) {
	_, err := run(t, "", "segments", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestSegments_UnknownFormat(t *testing.T) {
	_, err := run(t, "", "segments", "-f", "svg", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFormat))
}

func TestSegments_FormatFromEnv(t *testing.T) {
	testutil.IsolateXDG(t)
	t.Setenv("HEXMARK_OUTPUT_FORMAT", "plain")
	out, err := execute(t, "", "segments", "<c=FF0000>x</c>")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"pairs", []string{"strip", "<b>bold <i>it</i></b>"}, "bold it\n"},
		{"unpaired kept", []string{"strip", "a <br> b"}, "a <br> b\n"},
		{"lazy", []string{"strip", "--lazy", "a <br> b"}, "a  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestStrip_JSON(t *testing.T) {
	out, err := run(t, "", "strip", "-f", "json", "<c=FF0000>x</c>")
	require.NoError(t, err)
	assert.JSONEq(t, `{"text": "x"}`, out)
}

func TestSplitCaps(t *testing.T) {
	out, err := run(t, "", "split-caps", "FirstName2")
	require.NoError(t, err)
	assert.Equal(t, "First Name 2\n", out)
}

func TestDuration(t *testing.T) {
	out, err := run(t, "", "duration", "1h5m7s", "90s", "12m3s")
	require.NoError(t, err)
	assert.Equal(t, "1:05:07\n1:30\n12:03\n", out)
}

func TestDuration_Invalid(t *testing.T) {
	_, err := run(t, "", "duration", "soon")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hexmark version dev")
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "hexmark")

	_, err = run(t, "", "completion", "tcsh")
	require.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	out, err := run(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "grammar")
	assert.Contains(t, out, "--lazy")
}

func TestConfigFlag_Missing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "nope.toml"), "version")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestConfigFlag_DefaultColor(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "config.toml", "[colors]\ndefault = \"#FF123456\"\n")

	out, err := run(t, "", "--config", path, "segments", "-f", "json", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "#FF123456")
}

func TestConfigFile_FromXDG(t *testing.T) {
	env := testutil.IsolateXDG(t)
	env.WriteConfig(t, "[output]\nformat = \"plain\"\n")

	out, err := execute(t, "", "segments", "<c=FF0000>x</c>")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}
