package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/memory"
	"github.com/jsamuelsen/advisor-dashboard/internal/app/dora"
	"github.com/jsamuelsen/advisor-dashboard/internal/bootstrap"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
)

type options struct {
	logLevel string
	delay    time.Duration
	clientID string
}

// env is what every subcommand works against: a seeded store and the
// assistant built on it.
type env struct {
	store   *memory.Store
	service *dora.Service
}

func newEnv(ctx context.Context, opts *options, stderr io.Writer) (*env, error) {
	logger := logging.NewWithWriter(&logging.Config{
		Level:   opts.logLevel,
		Format:  "pretty",
		Service: "doractl",
		Version: "dev",
	}, stderr)

	cfg := &config.Config{
		App:     config.AppConfig{Name: "doractl", Version: "dev", Environment: "local"},
		Dora:    config.DoraConfig{RetrievalDelay: opts.delay},
		Storage: config.StorageConfig{Seed: true},
	}

	a, err := bootstrap.Build(ctx, cfg, logger, bootstrap.Options{Registerer: prometheus.NewRegistry()})
	if err != nil {
		return nil, err
	}

	return &env{store: a.Store, service: a.Chat}, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "doractl",
		Short:         "Talk to the DORA assistant from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&opts.delay, "delay", 0, "simulated knowledge lookup latency")

	root.AddCommand(
		newIntentCmd(),
		newAskCmd(opts),
		newKBCmd(opts),
		newClientsCmd(opts),
	)

	return root
}

func newIntentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intent <message>",
		Short: "Print the intent a message classifies to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intent := dora.NewDefaultClassifier().Classify(strings.Join(args, " "))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), intent)

			return err
		},
	}
}

func newAskCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask DORA a question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := e.service.Chat(cmd.Context(), strings.Join(args, " "), opts.clientID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[%s]\n%s\n", result.Intent, result.Response.Text)

			for _, card := range result.Response.DataCards {
				fmt.Fprintf(out, "  %s: %s\n", card.Label, card.Value)
			}

			for _, chip := range result.Response.Actions {
				fmt.Fprintf(out, "  > %s\n", chip.Label)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.clientID, "client", "", "client id to ask about")

	return cmd
}

func newKBCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kb <query>",
		Short: "Query the house-view library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			retriever := dora.NewRetriever(dora.RetrieverConfig{Delay: opts.delay})

			result, err := retriever.Query(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\nmatched %d, compliance %s\n", result.Answer, result.Matched, result.ComplianceBadge)

			for _, src := range result.Sources {
				fmt.Fprintf(out, "  - %s\n", src.Title)
			}

			return nil
		},
	}
}

func newClientsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List the demo advisor book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			clients, err := e.store.ListClients(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tRISK\tPORTFOLIO\tCASH\tGOALS")

			for _, c := range clients {
				fmt.Fprintf(tw, "%s\t%s\t%s\t$%s\t$%s\t%d\n",
					c.ID, c.Name, c.RiskProfile,
					humanize.Comma(int64(c.TotalPortfolio)),
					humanize.Comma(int64(c.CashHoldings)),
					len(c.Goals),
				)
			}

			return tw.Flush()
		},
	}
}
