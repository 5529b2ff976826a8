package main

import (
	"strings"

	"github.com/spf13/cobra"

	injectenv "github.com/anton-fomin/inject-env"
	"github.com/anton-fomin/inject-env/internal/cli"
	"github.com/anton-fomin/inject-env/internal/config"
	"github.com/anton-fomin/inject-env/internal/logging"
	"github.com/anton-fomin/inject-env/pkg/domain"
	"github.com/anton-fomin/inject-env/pkg/ports"
)

func newRootCmd(env ports.EnvironmentSource) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inject-env",
		Short: "Dump environment variables as JSON",
		Long: `inject-env collects environment variables, optionally only those with a given prefix,
and writes them as a JSON object to stdout, to a file, or in place of a token inside an existing file.`,
		Example: `  inject-env -p REACT_APP_ -f "window.APP_ENV = {}" -o build/env.js
  inject-env -p REACT_APP_ -a -o build/index.html -r __APP_ENV__`,
		Version:       strings.TrimSpace(injectenv.Version),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger := logging.ForDebug(cmd.ErrOrStderr(), cfg.Debug)
			return cli.Run(cmd.Context(), cfg, env, cmd.OutOrStdout(), logger)
		},
	}
	rootCmd.SetVersionTemplate("inject-env version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringP("out", "o", "", "The output file. Output to STDOUT if not specified")
	flags.StringP("replace", "r", "", "Replace this token inside the --out file instead of overwriting the whole file")
	flags.StringP("prefix", "p", "", "A prefix the environment variable should start with")
	flags.BoolP("strip-prefix", "s", true, "Remove the prefix from the variable name (use --strip-prefix=false to keep it)")
	flags.BoolP("as-encoded-string", "a", false, "Output the JSON as an encoded string with escaped quotes")
	flags.StringP("format", "f", domain.DefaultFormat, `Format of the output; the first "{}" is replaced with the JSON (eg. "window.APP_ENV = {}")`)
	flags.StringArrayP("mask", "m", nil, "Mask values of variables whose name matches this regular expression (repeatable)")
	flags.StringP("config", "c", "", "Read defaults from a YAML or JSON file")
	flags.Bool("debug", false, "Log pipeline steps to stderr")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolveConfig layers defaults, the optional config file and explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	for name, dst := range map[string]**string{
		"out":     &cfg.Out,
		"replace": &cfg.Replace,
		"prefix":  &cfg.Prefix,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = &v
		}
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("strip-prefix") {
		cfg.StripPrefix, _ = flags.GetBool("strip-prefix")
	}
	if flags.Changed("as-encoded-string") {
		cfg.AsEncodedString, _ = flags.GetBool("as-encoded-string")
	}
	if flags.Changed("mask") {
		cfg.Mask, _ = flags.GetStringArray("mask")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	return cfg, nil
}
