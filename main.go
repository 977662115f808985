// Package main provides the hoststat command-line tool, which prints the
// host's time, uptime, memory and disk usage, interface addresses and public
// IP as aligned, color-coded lines.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hoststat/config"
	"hoststat/logger"
	"hoststat/render"
	"hoststat/sysinfo"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// sourceFactory builds the metric source for a resolved configuration.
type sourceFactory func(cfg *config.Config) sysinfo.Source

func hostSource(cfg *config.Config) sysinfo.Source {
	return sysinfo.NewHostSource(cfg.PublicIPURL)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(hostSource).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd builds the hoststat command. newSource is called once the
// configuration is known.
func newRootCmd(newSource sourceFactory) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "hoststat",
		Short: "Show host metrics at a glance",
		Long: `hoststat prints the current date and time, system uptime, memory usage,
disk usage for / and any --storage paths, the IPv4 addresses of active
network interfaces and the public IP address.`,
		Example: `  hoststat
  hoststat --storage /data --storage /backup --separate
  hoststat --nopublicip --barlength 20 --dtformat "ddd D MMM HH:mm"`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger.Init(cmd.ErrOrStderr(), cfg.Debug)

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, newSource(cfg))
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "read settings from a YAML, TOML or JSON file")

	return cmd
}

// run collects a snapshot within the configured deadline and prints it.
func run(ctx context.Context, w io.Writer, cfg *config.Config, src sysinfo.Source) error {
	log := logger.WithComponent("main")

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	info, err := sysinfo.Collect(ctx, src, sysinfo.Options{
		Paths:    cfg.Paths(),
		PublicIP: !cfg.NoPublicIP,
	})
	if err != nil {
		log.Debug().Err(err).Msg("Collection failed")
		return err
	}

	return render.NewPrinter(w, cfg).Print(info)
}
