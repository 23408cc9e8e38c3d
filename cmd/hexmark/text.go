package hexmark

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/textutil"
)

func newSplitCapsCmd(a *app) *cobra.Command {
	var (
		in  inputFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:     "split-caps [text...]",
		Short:   MsgSplitCapsShort,
		Long:    MsgSplitCapsLong,
		Example: "  hexmark split-caps FirstName2",
		GroupID: "markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, in, args)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			return r.RenderText(textutil.SplitAtUpperCase(strings.TrimRight(text, "\r\n")))
		},
	}

	in.register(cmd)
	out.register(cmd)
	return cmd
}

func newDurationCmd(a *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:     "duration DURATION...",
		Short:   MsgDurationShort,
		Long:    MsgDurationLong,
		Example: "  hexmark duration 1h5m7s 90s",
		GroupID: "markup",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forms := make([]string, 0, len(args))
			for _, arg := range args {
				d, err := time.ParseDuration(arg)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "invalid duration %q", arg)
				}
				forms = append(forms, textutil.ShortDuration(d))
			}
			r, err := a.renderer(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			return r.RenderText(strings.Join(forms, "\n"))
		},
	}

	out.register(cmd)
	return cmd
}
