package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/sidenav-go/internal/config"
	"github.com/quantmind-br/sidenav-go/internal/source"
	"github.com/quantmind-br/sidenav-go/internal/utils"
	"github.com/quantmind-br/sidenav-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by every subcommand of one invocation
type cli struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	log    *utils.Logger
	loader *source.Loader
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "sidenav",
		Short: "Load, validate and inspect documentation sidebars",
		Long: `sidenav reads documentation sidebar files (sidebars.js, .json, .yaml,
.toml), checks their structure, reports style warnings, and prints or
exports the navigation tree.

Autogenerated items can be expanded against a docs directory.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default is ~/.sidenav/config.yaml)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	flags.Bool("strict", config.DefaultStrict, "Reject unknown keys using the sidebar JSON Schema")
	flags.IntP("max-depth", "d", config.DefaultMaxDepth, "Maximum nesting depth")
	flags.Duration("js-timeout", config.DefaultJSTimeout, "Evaluation timeout for JavaScript sidebar files")
	flags.String("docs-root", config.DefaultDocsRoot, "Docs directory used to expand autogenerated items")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored output")
	flags.String("log-format", config.DefaultLogFormat, "Log format (pretty, json)")

	_ = c.v.BindPFlag("nav.strict", flags.Lookup("strict"))
	_ = c.v.BindPFlag("nav.max_depth", flags.Lookup("max-depth"))
	_ = c.v.BindPFlag("source.js_timeout", flags.Lookup("js-timeout"))
	_ = c.v.BindPFlag("docs.root", flags.Lookup("docs-root"))
	_ = c.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newCheckCmd(c),
		newTreeCmd(c),
		newExportCmd(c),
		newExpandCmd(c),
		newWatchCmd(c),
		newQueryCmd(c),
		newConfigCmd(c),
		newDoctorCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and builds the logger and loader
func (c *cli) setup(stderr io.Writer) error {
	if c.cfgFile != "" {
		path := utils.ExpandPath(c.cfgFile)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c.v.SetConfigFile(path)
	}

	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.noColor {
		cfg.Render.Color = false
	}
	c.cfg = cfg

	c.log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  stderr,
		Verbose: c.verbose,
	})
	c.loader = source.NewLoader(
		source.WithJSTimeout(cfg.Source.JSTimeout),
		source.WithLogger(c.log.WithComponent("source")),
	)
	return nil
}

func (c *cli) loadOptions() source.Options {
	return source.Options{
		MaxDepth: c.cfg.Nav.MaxDepth,
		Strict:   c.cfg.Nav.Strict,
	}
}

// sidebarFile returns args[0], or the sidebars.* file in the working
// directory when no argument is given
func sidebarFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path, ok := utils.FindSidebarFile("."); ok {
		return path, nil
	}
	return "", fmt.Errorf("no sidebar file given and none found in the current directory")
}

// signalContext returns a context cancelled on SIGINT/SIGTERM
func signalContext(log *utils.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func newDoctorCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and the sidebar setup",
		Long:  "Verifies the configuration, the docs root and the sidebar file of the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking sidebar setup...")
			allPassed := true

			// Check 1: Config file
			fmt.Fprint(out, "  Config file: ")
			if used := c.v.ConfigFileUsed(); used != "" {
				if err := config.ValidateFile(used); err != nil {
					fmt.Fprintf(out, "WARN (%s: %v)\n", used, err)
				} else {
					fmt.Fprintf(out, "OK (%s)\n", used)
				}
			} else {
				fmt.Fprintln(out, "WARN (none found, using defaults)")
			}

			// Check 2: Docs root
			fmt.Fprint(out, "  Docs root: ")
			if checkDir(c.cfg.Docs.Root) {
				fmt.Fprintf(out, "OK (%s)\n", c.cfg.Docs.Root)
			} else {
				fmt.Fprintf(out, "WARN (%s not found, autogenerated items cannot be expanded)\n", c.cfg.Docs.Root)
			}

			// Check 3: Sidebar file
			fmt.Fprint(out, "  Sidebar file: ")
			path, err := sidebarFile(args)
			if err != nil {
				fmt.Fprintln(out, "NOT FOUND")
				allPassed = false
			} else {
				sidebars, warnings, err := c.loader.LoadSidebars(path, c.loadOptions())
				switch {
				case err != nil:
					fmt.Fprintf(out, "FAILED (%v)\n", err)
					allPassed = false
				case len(warnings) > 0:
					fmt.Fprintf(out, "WARN (%s: %d sidebars, %d warnings)\n", path, len(sidebars), len(warnings))
				default:
					fmt.Fprintf(out, "OK (%s: %d sidebars)\n", path, len(sidebars))
				}
			}

			fmt.Fprintln(out)
			if allPassed {
				fmt.Fprintln(out, "All critical checks passed!")
			} else {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			}
			return nil
		},
	}
}

// checkDir reports whether path is an existing directory
func checkDir(path string) bool {
	info, err := os.Stat(utils.ExpandPath(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.Get())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	return cmd
}

// defaultWorkers bounds concurrent file checks
const defaultWorkers = 4
