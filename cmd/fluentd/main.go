// Command fluentd runs the streaming ball-clustering engine: by default
// it reads points one-per-line from standard input and writes one model
// per line to standard output; --service starts an HTTP ingestion and
// broadcast server instead.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ydarma/fluent-data/cluster"
	"github.com/ydarma/fluent-data/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		serviceMode    bool
		addr           string
		decay          float64
		splitThreshold float64
		mergeThreshold float64
		minWeight      float64
		pruneWeight    float64
	)

	cmd := &cobra.Command{
		Use:   "fluentd",
		Short: "Fit a streaming point source into a set of decaying balls",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := cluster.NewParams(
				cluster.WithDecayFactor(decay),
				cluster.WithSplitThreshold(splitThreshold),
				cluster.WithMergeThreshold(mergeThreshold),
				cluster.WithMinWeight(minWeight),
				cluster.WithPruneThreshold(pruneWeight),
			)

			if serviceMode {
				return runService(addr, params)
			}

			return service.StdioStreamer(os.Stdin, os.Stdout, params).Run()
		},
	}

	cmd.Flags().BoolVar(&serviceMode, "service", false, "start an HTTP ingestion/broadcast server instead of reading stdin")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on with --service")
	cmd.Flags().Float64Var(&decay, "decay", cluster.DefaultParams().DecayFactor, "per-update multiplicative weight decay")
	cmd.Flags().Float64Var(&splitThreshold, "split-threshold", cluster.DefaultParams().SplitThreshold, "squared-distance/radius ratio that triggers a split")
	cmd.Flags().Float64Var(&mergeThreshold, "merge-threshold", cluster.DefaultParams().MergeThreshold, "squared-distance/radius-sum fraction that triggers a merge")
	cmd.Flags().Float64Var(&minWeight, "min-weight", cluster.DefaultParams().MinWeight, "minimum pre-absorption weight a ball must hold to split")
	cmd.Flags().Float64Var(&pruneWeight, "prune-weight", cluster.DefaultParams().PruneThreshold, "decayed weight below which a ball is removed (0 disables pruning)")

	return cmd
}

func runService(addr string, params cluster.Params) error {
	backend := service.NewBackend()
	streamer := service.NewVectorStreamer(backend.Source(), backend.Sink(), params)

	errCh := make(chan error, 1)
	go func() { errCh <- streamer.Run() }()

	go func() {
		if err := backend.Run(addr); err != nil {
			errCh <- err
		}
	}()

	return <-errCh
}
