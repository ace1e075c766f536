package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seatwise/seatwise/pkg/config"
)

// snapshotCommand creates the snapshot management command.
func (c *CLI) snapshotCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage saved seating snapshots",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default seatwise.toml)")

	cmd.AddCommand(c.snapshotListCommand(&configPath))
	cmd.AddCommand(c.snapshotShowCommand(&configPath))
	cmd.AddCommand(c.snapshotDeleteCommand(&configPath))
	cmd.AddCommand(c.snapshotPathCommand())

	return cmd
}

// snapshotStoreConfig loads the config just to pick the store backend.
func (c *CLI) snapshotStoreConfig(path string) config.Config {
	cfg, err := c.loadConfig(path)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// snapshotListCommand creates the "snapshot list" subcommand.
func (c *CLI) snapshotListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, c.snapshotStoreConfig(*configPath))
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				printInfo("No snapshots saved")
				return nil
			}
			for _, snap := range snaps {
				people := 0
				for _, t := range snap.Tables {
					people += len(t.Occupants)
				}
				fmt.Println(StyleValue.Render(snap.ID) + "  " +
					StyleDim.Render(fmt.Sprintf("%s · %d tables · %d people",
						snap.SavedAt.Format("2006-01-02 15:04:05"), len(snap.Tables), people)))
			}
			return nil
		},
	}
}

// snapshotShowCommand creates the "snapshot show" subcommand.
func (c *CLI) snapshotShowCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Display a snapshot's seating (latest when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, c.snapshotStoreConfig(*configPath))
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.Latest(cmd.Context())
			if len(args) == 1 {
				snap, err = store.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Snapshot " + snap.ID))
			printDetail("saved %s", snap.SavedAt.Format("2006-01-02 15:04:05"))
			printNewline()
			fmt.Println(renderSeating(snap.Tables))
			return nil
		},
	}
}

// snapshotDeleteCommand creates the "snapshot delete" subcommand.
func (c *CLI) snapshotDeleteCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd, c.snapshotStoreConfig(*configPath))
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted snapshot %s", args[0])
			return nil
		},
	}
}

// snapshotPathCommand creates the "snapshot path" subcommand.
func (c *CLI) snapshotPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot directory path (file store)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := snapshotDir()
			if err != nil {
				return fmt.Errorf("get snapshot dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
