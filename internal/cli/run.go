package cli

import (
	"context"
	"io"
	"log/slog"

	injectenv "github.com/anton-fomin/inject-env"
	"github.com/anton-fomin/inject-env/internal/config"
	"github.com/anton-fomin/inject-env/pkg/ports"
	"github.com/anton-fomin/inject-env/pkg/sink"
)

// Run executes a single invocation: resolve the output, render the environment and write it.
// The output target is resolved first so an invalid flag combination fails before any I/O.
func Run(ctx context.Context, cfg config.Config, env ports.EnvironmentSource, stdout io.Writer, logger *slog.Logger) error {
	target, err := sink.Resolve(cfg.Out, cfg.Replace)
	if err != nil {
		return err
	}

	vars := env.Snapshot()
	logger.Debug("Environment snapshot taken", "variables", len(vars))

	rendered, err := injectenv.Render(vars, renderOptions(cfg)...)
	if err != nil {
		return err
	}

	logger.Debug("Writing output", "mode", target.Mode.String(), "path", target.Path, "bytes", len(rendered))
	if err := target.Write(ctx, stdout, rendered); err != nil {
		logger.Debug("Write failed", "error", err)
		return err
	}
	return nil
}

func renderOptions(cfg config.Config) []injectenv.Option {
	opts := []injectenv.Option{
		injectenv.WithStripPrefix(cfg.StripPrefix),
		injectenv.WithEncodedString(cfg.AsEncodedString),
		injectenv.WithFormat(cfg.Format),
		injectenv.WithMask(cfg.Mask...),
	}
	if cfg.Prefix != nil {
		opts = append(opts, injectenv.WithPrefix(*cfg.Prefix))
	}
	return opts
}
