package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "heatx",
		Short:        "Double-pipe heat exchanger sizing for the pod compressor intercooler",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "ini configuration file")

	rootCmd.AddCommand(sizeCmd(&configPath))
	rootCmd.AddCommand(sweepCmd(&configPath))
	rootCmd.AddCommand(serveCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sizeCmd(configPath *string) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "size [case.yaml]",
		Short: "Size one exchanger from a case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSize(*configPath, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func sweepCmd(configPath *string) *cobra.Command {
	var opts sweepOptions
	cmd := &cobra.Command{
		Use:   "sweep [sweep.yaml]",
		Short: "Size a case over a range of heat duties in parallel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.fromSet = cmd.Flags().Changed("from")
			opts.toSet = cmd.Flags().Changed("to")
			return runSweep(*configPath, args[0], opts)
		},
	}
	cmd.Flags().Float64Var(&opts.from, "from", 0, "first duty in W (overrides duty_from)")
	cmd.Flags().Float64Var(&opts.to, "to", 0, "last duty in W (overrides duty_to)")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "number of duties (overrides steps)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines (0 uses the config)")
	return cmd
}

func serveCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sizing requests over a websocket",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*configPath, addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (empty uses the config)")
	return cmd
}
