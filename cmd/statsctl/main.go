// Command statsctl queries the season statistics store from a terminal using
// the same services the HTTP API serves.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/matchmetric/internal/app"
	"github.com/riskibarqy/matchmetric/internal/config"
	"github.com/riskibarqy/matchmetric/internal/domain/season"
	"github.com/riskibarqy/matchmetric/internal/domain/seasonstats"
	"github.com/riskibarqy/matchmetric/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchmetric/internal/platform/logging"
	"github.com/riskibarqy/matchmetric/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(openServices).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// session is what a subcommand needs from an opened store.
type session struct {
	stats  *usecase.SeasonStatsService
	seed   func(ctx context.Context) (bool, error)
	close  func() error
	logger *logging.Logger
}

type opener func(ctx context.Context) (*session, error)

func openServices(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:   logging.LevelWarn,
		Format:  logging.FormatConsole,
		Service: "statsctl",
		Output:  os.Stderr,
	})

	db, err := app.OpenDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	services := app.NewServices(cfg, db, logger)
	return &session{
		stats: services.Stats,
		seed: func(ctx context.Context) (bool, error) {
			return postgres.BootstrapSeed(ctx, db, postgres.SeedScope{
				LeagueID:   cfg.LeagueID,
				LeagueName: cfg.LeagueName,
				SeasonID:   cfg.DefaultSeasonID,
				SeasonName: seasonLabel(cfg.DefaultSeasonID),
			})
		},
		close:  db.Close,
		logger: logger,
	}, nil
}

func newRootCmd(open opener) *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:          "statsctl",
		Short:        "Query season statistics for the configured league",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("invalid --output %q (valid: %s, %s)", output, outputTable, outputJSON)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	root.AddCommand(
		seasonsCmd(open, &output),
		topCmd(open, &output),
		totalsCmd(open, &output),
		seedCmd(open),
	)
	return root
}

func seasonsCmd(open opener, output *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List the season catalog and which seasons have data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), open, func(s *session) error {
				items, err := s.stats.GetSeasons(cmd.Context())
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), *output, items, func(w io.Writer) {
					fmt.Fprintln(w, "ID\tSEASON\tHAS DATA")
					for _, item := range items {
						fmt.Fprintf(w, "%d\t%s\t%t\n", item.ID, item.Name, item.HasData)
					}
				})
			})
		},
	}
}

func topCmd(open opener, output *string) *cobra.Command {
	var (
		stat     string
		seasonID int64
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print a season leaderboard for goals or assists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := seasonstats.ParseStat(stat); err != nil {
				return err
			}
			if err := checkSeasonFlag(cmd, seasonID); err != nil {
				return err
			}
			return withSession(cmd.Context(), open, func(s *session) error {
				resolved, err := usecase.ResolveSeasonID(seasonID, s.stats.Scope().DefaultSeasonID)
				if err != nil {
					return err
				}
				board, err := s.stats.GetLeaderboard(cmd.Context(), stat, resolved, limit)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), *output, board, func(w io.Writer) {
					writeLeaderboard(w, board)
				})
			})
		},
	}

	cmd.Flags().StringVar(&stat, "stat", string(seasonstats.StatGoals), "stat to rank by: goals or assists")
	cmd.Flags().Int64Var(&seasonID, "season", 0, "season id (default: configured default season)")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of rows")
	return cmd
}

func totalsCmd(open opener, output *string) *cobra.Command {
	var seasonID int64

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Print total goals and assists for a season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSeasonFlag(cmd, seasonID); err != nil {
				return err
			}
			return withSession(cmd.Context(), open, func(s *session) error {
				resolved, err := usecase.ResolveSeasonID(seasonID, s.stats.Scope().DefaultSeasonID)
				if err != nil {
					return err
				}
				totals, err := s.stats.GetSeasonTotals(cmd.Context(), resolved)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), *output, totals, func(w io.Writer) {
					fmt.Fprintln(w, "SEASON\tGOALS\tASSISTS")
					fmt.Fprintf(w, "%s\t%d\t%d\n", seasonLabel(resolved), totals.TotalGoals, totals.TotalAssists)
				})
			})
		},
	}

	cmd.Flags().Int64Var(&seasonID, "season", 0, "season id (default: configured default season)")
	return cmd
}

func seedCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample rows into the default season of an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), open, func(s *session) error {
				seeded, err := s.seed(cmd.Context())
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "sample season stats loaded")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "statistics table not empty, nothing seeded")
				}
				return nil
			})
		},
	}
}

// checkSeasonFlag rejects --season values that would otherwise read as "use
// the default season".
func checkSeasonFlag(cmd *cobra.Command, seasonID int64) error {
	if cmd.Flags().Changed("season") && seasonID <= 0 {
		return fmt.Errorf("%w: --season must be a positive integer", usecase.ErrInvalidInput)
	}
	return nil
}

func withSession(ctx context.Context, open opener, fn func(s *session) error) error {
	s, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if s.close == nil {
			return
		}
		if err := s.close(); err != nil && s.logger != nil {
			s.logger.Warn("close statistics db failed", "error", err)
		}
	}()
	return fn(s)
}

func render(out io.Writer, format string, value any, table func(w io.Writer)) error {
	if format == outputJSON {
		payload, err := sonic.ConfigStd.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	table(w)
	return w.Flush()
}

func writeLeaderboard(w io.Writer, board usecase.Leaderboard) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", board.LeagueName, seasonLabel(board.SeasonID), board.Stat)
	fmt.Fprintln(w, "RANK\tPLAYER\tTEAM\tGOALS\tASSISTS")
	for _, entry := range board.Entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			entry.Rank,
			seasonstats.DisplayName(entry.Name),
			entry.TeamName,
			entry.Goals,
			entry.Assists,
		)
	}
}

func seasonLabel(seasonID int64) string {
	if item, ok := season.PremierLeague().Find(seasonID); ok {
		return item.Name
	}
	return fmt.Sprintf("season %d", seasonID)
}
