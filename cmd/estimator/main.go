// Command estimator runs the cost estimator and equipment advisor from the
// command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"estimator_backend/platform/logger"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "estimator",
		Short: "Estimate renovation costs and recommend hire equipment",
		Long: `estimator prices construction projects from the cost catalog and
recommends hire equipment for free-text project descriptions.

Examples:
  estimator classify "dig a trench for a drainage pipe in the back garden"
  estimator advise --season winter "pour a concrete slab for a shed"
  estimator estimate --project-type bathroom --area 6 --location London
  estimator refresh-catalog --cache labor`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(classifyCmd())
	root.AddCommand(adviseCmd())
	root.AddCommand(estimateCmd())
	root.AddCommand(refreshCatalogCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cliLogger(cmd *cobra.Command) *logger.Logger {
	env := "production"
	if verbose {
		env = "development"
	}
	return logger.NewWithWriter(env, cmd.ErrOrStderr())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
