package hexmark

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/markup"
)

func newStripCmd(a *app) *cobra.Command {
	var (
		in   inputFlags
		out  outputFlags
		lazy bool
	)

	cmd := &cobra.Command{
		Use:     "strip [text...]",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		Example: MsgStripExample,
		GroupID: "markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.strip")

			text, err := a.readInput(cmd, in, args)
			if err != nil {
				return err
			}

			var stripped string
			if lazy {
				stripped = markup.StripMarkupLazy(text)
			} else {
				stripped, err = markup.StripMarkup(text)
				if err != nil {
					return err
				}
			}
			logger.Info().
				Bool("lazy", lazy).
				Int("removed", len(text)-len(stripped)).
				Msg("Stripped markup")

			r, err := a.renderer(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			return r.RenderText(stripped)
		},
	}

	in.register(cmd)
	out.register(cmd)
	cmd.Flags().BoolVar(&lazy, "lazy", false, MsgFlagLazy)
	return cmd
}
