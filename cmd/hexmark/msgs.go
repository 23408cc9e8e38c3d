package hexmark

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort       = "Colored text markup: extract segments or strip tags"
	MsgSegmentsShort   = "Split input into colored segments"
	MsgStripShort      = "Remove markup tags from input"
	MsgSplitCapsShort  = "Insert a space before each capital letter or digit"
	MsgSplitCapsLong   = "Split-caps inserts a space before every A-Z or 1-9 character except the first, turning identifiers like FirstName2 into words."
	MsgDurationShort   = "Print durations in short clock form"
	MsgDurationLong    = "Duration prints each Go duration (such as 1h5m7s or 90s) as H:MM:SS, MM:SS or M:SS. Days are dropped."
	MsgWatchShort      = "Re-render a file's segments whenever it changes"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/hexmark/config.toml)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagFormat   = "Output format: text, plain, table, json, yaml, toml, xml, cbor, binary"
	MsgFlagDefault  = "Color for untagged text, as RRGGBB or AARRGGBB"
	MsgFlagFile     = "Read input from a file (repeatable)"
	MsgFlagGlob     = "Read input from files matching a ** pattern (repeatable)"
	MsgFlagURL      = "Read input from a URL"
	MsgFlagInsecure = "Skip TLS certificate verification for --url"
	MsgFlagSummary  = "Print a summary instead of the segments"
	MsgFlagLazy     = "Remove every <...> span, paired or not"

	MsgVersionFormat   = "hexmark version %s\n  commit: %s\n  built:  %s\n"
	MsgWatching        = "Watching %s (Ctrl-C to stop)"
	MsgInsecureWarning = "Warning: TLS certificate verification is disabled for --url"
	MsgErrNoCommand    = "no command specified"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/segments-long.txt
	msgSegmentsLongRaw string
	MsgSegmentsLong    = strings.TrimSpace(msgSegmentsLongRaw)

	//go:embed msgs/segments-example.txt
	msgSegmentsExampleRaw string
	MsgSegmentsExample    = strings.TrimRight(msgSegmentsExampleRaw, "\n")

	//go:embed msgs/strip-long.txt
	msgStripLongRaw string
	MsgStripLong    = strings.TrimSpace(msgStripLongRaw)

	//go:embed msgs/strip-example.txt
	msgStripExampleRaw string
	MsgStripExample    = strings.TrimRight(msgStripExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
