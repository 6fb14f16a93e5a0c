package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/KasperOmsK/highline/internal/logging"
)

func newRootCmd(now func() time.Time) *cobra.Command {
	var (
		configFile string
		envFile    string
		logLevel   string
		logFormat  string
		legalAge   int
		exitKey    string
	)

	cmd := &cobra.Command{
		Use:   "highline",
		Short: "Ask a few questions and make fun of the answers",
		Long: `highline asks for your name, lucky number, birth date, password and a
list of numbers, re-asking until every answer is valid.

Settings are read from highline.yml (or --config), a .env file and
HIGHLINE_* environment variables; flags override all of them.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configFile, envFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			if flags.Changed("legal-age") {
				cfg.Prompt.LegalAge = legalAge
			}
			if flags.Changed("exit-key") {
				cfg.Prompt.ExitKey = exitKey
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logging.New(cfg.Logging, cmd.ErrOrStderr())
			log.Debug().
				Int("legal_age", cfg.Prompt.LegalAge).
				Str("exit_key", cfg.Prompt.ExitKey).
				Msg("configuration loaded")

			s := &survey{
				in:    cmd.InOrStdin(),
				out:   cmd.OutOrStdout(),
				cfg:   cfg.Prompt,
				log:   log,
				today: now(),
			}
			a, err := s.run()
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), a)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: highline.yml if present)")
	flags.StringVar(&envFile, "env-file", "", ".env file to load (default: .env if present)")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error, disabled")
	flags.StringVar(&logFormat, "log-format", "console", "log format: console or json")
	flags.IntVar(&legalAge, "legal-age", 21, "minimum age accepted by the birth date question")
	flags.StringVar(&exitKey, "exit-key", "q", "answer that ends the list of numbers")

	return cmd
}
