package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hotel_simulation/internal/adapters/console"
	server "hotel_simulation/internal/adapters/http_server"
	"hotel_simulation/internal/adapters/observability"
	"hotel_simulation/internal/app"
	"hotel_simulation/internal/domain"
	"hotel_simulation/internal/shared"
)

// Execute runs the root command and exits 1 on error.
func Execute(ctx context.Context) {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		debug      bool
		days       int
		seed       uint64
		payment    string
		deliveries bool
	)

	cmd := &cobra.Command{
		Use:          "hotelsim",
		Short:        "Simulate a few days in a small hotel",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, warns := shared.Load()
			if configPath != "" {
				c, err := shared.LoadFile(configPath, cfg)
				if err != nil {
					return err
				}
				cfg = c
			}

			fs := cmd.Flags()
			if fs.Changed("days") {
				if days <= 0 {
					return fmt.Errorf("--days must be positive, got %d", days)
				}
				cfg.Days = days
			}
			if fs.Changed("seed") {
				cfg.Seed = seed
			}
			if fs.Changed("payment") {
				cfg.Payment.Method = payment
			}
			if fs.Changed("deliveries") {
				cfg.Deliveries = deliveries
			}
			if debug {
				cfg.LogLevel = "debug"
			}
			return run(cmd.Context(), cfg, warns, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file overriding environment settings")
	f.BoolVar(&debug, "debug", false, "log component creation and clones")
	f.IntVar(&days, "days", app.DefaultDays, "number of days to simulate")
	f.Uint64Var(&seed, "seed", 0, "restaurant menu seed (0 picks a random one)")
	f.StringVar(&payment, "payment", "card", "visitor payment method: card or wallet")
	f.BoolVar(&deliveries, "deliveries", false, "start each day with a supply delivery")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(newComponentsCmd(stdout))
	return cmd
}

func newComponentsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the component kinds the factories can build",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out := console.New(stdout)
			for _, k := range app.NewCatalog(app.CatalogOptions{}).Kinds() {
				if err := out.Println(k.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// run prints the transcript to stdout and logs to stderr. With a metrics
// address it keeps serving /metrics after the last day until ctx is done.
func run(ctx context.Context, cfg shared.Config, warns []shared.Warning, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	// set global logger (console in dev, JSON otherwise); stdout is the transcript
	log.Logger = observability.NewLogger(stderr, cfg.AppEnv, cfg.LogLevel).
		With().Str("run_id", runID).Logger()
	for _, w := range warns {
		log.Warn().Str("key", w.Key).Str("value", w.Value).Msg(w.Msg)
	}

	payment, err := domain.NewPaymentStrategy(cfg.Payment.Method, cfg.Payment.Card, cfg.Payment.Email)
	if err != nil {
		log.Error().Err(err).Msg("invalid payment configuration")
		return err
	}

	reg := observability.InitRegistry()
	rec := observability.NewRecorder()
	out := console.New(stdout)

	cat := app.NewCatalog(app.CatalogOptions{
		Picker: domain.NewPicker(cfg.Seed),
		Amount: cfg.Payment.Amount,
	})
	facade, err := app.NewFacade(cat, payment, out, rec)
	if err != nil {
		return err
	}
	driver := app.NewDriver(facade, out, rec, cfg.Days, cfg.Deliveries)

	log.Debug().
		Int("days", cfg.Days).
		Str("payment", string(payment.Method())).
		Bool("deliveries", cfg.Deliveries).
		Uint64("seed", cfg.Seed).
		Msg("simulation starting")

	g, gctx := errgroup.WithContext(ctx)

	var httpSrv *http.Server
	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			// metrics are optional; the run goes on without them
			log.Warn().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server failed")
		} else {
			srv := server.New(log.Logger)
			srv.Mount("/metrics", observability.MetricsHandler(reg))
			httpSrv = srv.HTTPServer(cfg.MetricsAddr)

			log.Info().Str("addr", ln.Addr().String()).Msg("metrics server listening")
			g.Go(func() error {
				if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Warn().Err(err).Msg("metrics server failed")
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		err := driver.Run(gctx)
		if httpSrv == nil {
			return err
		}
		if err == nil {
			log.Info().Msg("simulation completed, serving metrics until interrupted")
			<-gctx.Done()
		}
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return err
	}
	log.Debug().Msg("simulation completed")
	return nil
}
