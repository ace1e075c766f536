package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seatwise/seatwise/pkg/config"
	apperrors "github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/observability"
	"github.com/seatwise/seatwise/pkg/roster"
	"github.com/seatwise/seatwise/pkg/seating"
	"github.com/seatwise/seatwise/pkg/state"
)

// organiseOptions collects the organise command flags.
type organiseOptions struct {
	configPath string
	rosterPath string
	tables     int
	capacity   int
	output     string
	report     string
	persistent bool
	seed       uint64
	store      string
	showGroups bool
}

// organiseCommand creates the organise command.
func (c *CLI) organiseCommand() *cobra.Command {
	var opts organiseOptions

	cmd := &cobra.Command{
		Use:   "organise",
		Short: "Seat a roster of people honoring preferences",
		Long: `Seat a roster of people honoring with/without preferences.

The organise command reads names from a roster CSV, groups people who want
to sit together, keeps apart people who must not share a table, and fills
the configured tables. Extra tables are created when everyone does not fit;
nobody is ever left standing.

With --persistent the previous arrangement is restored from the snapshot
store and only newcomers are seated.

Configuration (roster path, table layout, preferences) is read from
seatwise.toml in the working directory unless --config points elsewhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOrganise(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default seatwise.toml)")
	cmd.Flags().StringVarP(&opts.rosterPath, "roster", "r", "", "roster CSV file (overrides config)")
	cmd.Flags().IntVar(&opts.tables, "tables", 0, "initial table count (overrides config)")
	cmd.Flags().IntVar(&opts.capacity, "capacity", 0, "seats per table (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "seating CSV export path (overrides config)")
	cmd.Flags().StringVar(&opts.report, "report", "", "TXT report export path (overrides config)")
	cmd.Flags().BoolVarP(&opts.persistent, "persistent", "p", false, "keep existing seats, only place newcomers")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "shuffle seed for reproducible runs")
	cmd.Flags().StringVar(&opts.store, "store", "", "snapshot store: none, file, redis, mongo (overrides config)")
	cmd.Flags().BoolVar(&opts.showGroups, "groups", false, "also print the discovered groups")

	return cmd
}

// runOrganise executes the full organise flow: load, restore, organise,
// display, export, snapshot.
func (c *CLI) runOrganise(cmd *cobra.Command, opts organiseOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, cmd, opts)

	if cfg.Roster == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "no roster file: set roster in seatwise.toml or pass --roster")
	}
	people, err := roster.ImportCSV(cfg.Roster)
	if err != nil {
		return err
	}

	store, err := c.openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	org, restored, err := c.buildOrganiser(ctx, cfg, opts, store)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	start := time.Now()
	observability.Seating().OnOrganiseStart(ctx, len(people), opts.persistent)
	err = org.Organise(people, cfg.Preferences, opts.persistent)
	observability.Seating().OnOrganiseComplete(ctx, org.TableCount(), time.Since(start), err)
	if err != nil {
		return err
	}
	removed := org.RemovedEdges()
	observability.Seating().OnClustersFormed(ctx, len(org.Clusters()), len(removed))
	prog.done(fmt.Sprintf("Seated %d people at %d tables", len(people), org.TableCount()))

	for _, pair := range removed {
		printWarning("%s and %s want to sit together but are kept apart", pair.A, pair.B)
	}

	seatingNow := org.Seating()
	printNewline()
	fmt.Println(renderSeating(seatingNow))
	printStats(len(people), org.TableCount(), len(removed))
	if opts.showGroups {
		printNewline()
		fmt.Print(renderClusters(org.Clusters()))
	}
	if restored {
		printDetail("restored previous arrangement from snapshot store")
	}

	if err := c.exportResults(cfg, people, seatingNow, org); err != nil {
		return err
	}

	snap := state.NewSnapshot(org)
	if err := store.Save(ctx, snap); err != nil {
		logger.Warn("snapshot not saved", "err", err)
	} else {
		logger.Debug("snapshot saved", "id", snap.ID)
	}
	return nil
}

// applyOverrides layers changed flags over the file config.
func applyOverrides(cfg *config.Config, cmd *cobra.Command, opts organiseOptions) {
	flags := cmd.Flags()
	if opts.rosterPath != "" {
		cfg.Roster = opts.rosterPath
	}
	if flags.Changed("tables") {
		cfg.Tables = opts.tables
	}
	if flags.Changed("capacity") {
		cfg.Capacity = opts.capacity
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("report") {
		cfg.Report = opts.report
	}
	if flags.Changed("store") {
		cfg.Store = opts.store
	}
}

// buildOrganiser creates a fresh organiser, or rehydrates the last
// snapshot when running persistently. A missing snapshot falls back to a
// fresh start.
func (c *CLI) buildOrganiser(ctx context.Context, cfg config.Config, opts organiseOptions, store state.Store) (*seating.Organiser, bool, error) {
	engineCfg := seating.Config{
		Tables:   cfg.Tables,
		Capacity: cfg.Capacity,
		Seed:     opts.seed,
		Logger:   c.Logger,
	}

	if opts.persistent {
		snap, err := store.Latest(ctx)
		switch {
		case err == nil:
			org, err := seating.Restore(engineCfg, snap.Tables)
			if err != nil {
				return nil, false, err
			}
			return org, true, nil
		case apperrors.Is(err, apperrors.ErrCodeSnapshotNotFound):
			c.Logger.Debug("no previous snapshot, starting fresh")
		default:
			return nil, false, err
		}
	}

	org, err := seating.New(engineCfg)
	if err != nil {
		return nil, false, err
	}
	return org, false, nil
}

// exportResults writes the CSV and TXT exports named in the config.
func (c *CLI) exportResults(cfg config.Config, people []string, tables []seating.TableSeating, org *seating.Organiser) error {
	if cfg.Output != "" {
		if err := roster.ExportCSV(tables, cfg.Output); err != nil {
			return err
		}
		printFile(cfg.Output)
	}
	if cfg.Report != "" {
		rep := roster.Report{
			People:      people,
			Preferences: cfg.Preferences,
			Clusters:    org.Clusters(),
			Removed:     org.RemovedEdges(),
			Seating:     tables,
		}
		if err := roster.ExportReport(rep, cfg.Report); err != nil {
			return err
		}
		printFile(cfg.Report)
	}
	return nil
}
