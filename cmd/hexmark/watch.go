package hexmark

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hexmark/pkg/errors"
	"github.com/arthur-debert/hexmark/pkg/logging"
	"github.com/arthur-debert/hexmark/pkg/markup"
	"github.com/arthur-debert/hexmark/pkg/output/styles"
	"github.com/arthur-debert/hexmark/pkg/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		out          outputFlags
		defaultColor string
	)

	cmd := &cobra.Command{
		Use:     "watch FILE",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "markup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.watch")
			path := args[0]

			def, err := a.defaultColor(defaultColor)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}

			w, err := watch.New(path)
			if err != nil {
				return err
			}
			logger.Info().Str("path", w.Path()).Bool("polling", w.Polling()).Msg("Watching file")
			fmt.Fprintln(cmd.ErrOrStderr(), styles.GetStyle("Muted").Render(fmt.Sprintf(MsgWatching, path)))

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watch.Run(ctx, w, func() error {
				data, err := os.ReadFile(w.Path())
				if err != nil {
					if os.IsNotExist(err) {
						return nil
					}
					return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
				}
				segments, err := markup.ExtractColorSegments(string(data), def)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), styles.GetStyle("Error").Render(err.Error()))
					return err
				}
				return r.RenderSegments(segments)
			})
		},
	}

	out.register(cmd)
	cmd.Flags().StringVar(&defaultColor, "default", "", MsgFlagDefault)
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
