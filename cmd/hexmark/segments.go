package hexmark

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/markup"
	"github.com/arthur-debert/hexmark/pkg/output"
)

func newSegmentsCmd(a *app) *cobra.Command {
	var (
		in           inputFlags
		out          outputFlags
		defaultColor string
		summary      bool
	)

	cmd := &cobra.Command{
		Use:     "segments [text...]",
		Short:   MsgSegmentsShort,
		Long:    MsgSegmentsLong,
		Example: MsgSegmentsExample,
		GroupID: "markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.segments")
			done := logging.LogOperationStart(logger, "segments")
			defer done()

			text, err := a.readInput(cmd, in, args)
			if err != nil {
				return err
			}
			def, err := a.defaultColor(defaultColor)
			if err != nil {
				return err
			}
			segments, err := markup.ExtractColorSegments(text, def)
			if err != nil {
				return err
			}
			logger.Info().Int("segments", len(segments)).Msg("Extracted segments")

			r, err := a.renderer(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			if summary {
				s, err := output.Summarize(segments)
				if err != nil {
					return err
				}
				return r.RenderSummary(s)
			}
			return r.RenderSegments(segments)
		},
	}

	in.register(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&defaultColor, "default", "", MsgFlagDefault)
	cmd.Flags().BoolVar(&summary, "summary", false, MsgFlagSummary)
	return cmd
}
