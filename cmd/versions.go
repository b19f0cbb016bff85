package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eduforge-ai/eduforge-go/internal/version"
)

// StoreOpener opens a version store at a path. Injected so tests can supply
// an in-memory store.
type StoreOpener func(path string) (version.Store, func() error, error)

// openSQLiteStore is the default StoreOpener, backed by SQLite.
func openSQLiteStore(path string) (version.Store, func() error, error) {
	store, err := version.OpenSQLite(path, slog.Default())
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

// NewVersionsCmd creates the versions subcommand group: the append-only
// snapshot history of an outline.
func NewVersionsCmd(io OutlineIO, open StoreOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Save, list, restore, branch, and compare outline versions",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newVersionsSaveCmd(io, open))
	cmd.AddCommand(newVersionsListCmd(io, open))
	cmd.AddCommand(newVersionsRestoreCmd(io, open))
	cmd.AddCommand(newVersionsBranchCmd(io))
	cmd.AddCommand(newVersionsCompareCmd(open))
	return cmd
}

func newVersionsSaveCmd(io OutlineIO, open StoreOpener) *cobra.Command {
	var (
		outlinePath string
		dbPath      string
		message     string
	)

	cmd := &cobra.Command{
		Use:          "save",
		Short:        "Snapshot the outline as a new version",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := io.ReadOutline(ctx, outlinePath)
			if err != nil {
				return err
			}
			store, closeStore, err := open(dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			v, err := store.Save(ctx, o, message)
			if err != nil {
				return fmt.Errorf("saving version: %w", err)
			}
			// Keep the working document's version counter in step.
			o.Version = v.Version
			if err := io.WriteOutlineAtomic(ctx, outlinePath, o); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved version %d of %s (%s)\n", v.Version, o.ID, v.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Version database path")
	cmd.Flags().StringVar(&message, "message", "", "Version message")

	return cmd
}

func newVersionsListCmd(io OutlineIO, open StoreOpener) *cobra.Command {
	var (
		outlinePath string
		dbPath      string
		jsonMode    bool
	)

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List the outline's versions, most recent first",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := io.ReadOutline(ctx, outlinePath)
			if err != nil {
				return err
			}
			store, closeStore, err := open(dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			versions, err := store.List(ctx, o.ID)
			if err != nil {
				return fmt.Errorf("listing versions: %w", err)
			}
			if jsonMode {
				type entry struct {
					ID        string `json:"id"`
					Version   int    `json:"version"`
					Message   string `json:"message,omitempty"`
					CreatedAt string `json:"createdAt"`
				}
				out := make([]entry, len(versions))
				for i, v := range versions {
					out[i] = entry{ID: v.ID, Version: v.Version, Message: v.Message, CreatedAt: v.CreatedAt}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			for _, v := range versions {
				fmt.Fprintf(cmd.OutOrStdout(), "v%d  %s  %s  %s\n", v.Version, v.CreatedAt, v.ID, v.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Version database path")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Output result as JSON")

	return cmd
}

func newVersionsRestoreCmd(io OutlineIO, open StoreOpener) *cobra.Command {
	var (
		outlinePath string
		dbPath      string
		versionID   string
	)

	cmd := &cobra.Command{
		Use:          "restore",
		Short:        "Restore a snapshot into the working outline document",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeStore, err := open(dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			v, err := store.Get(ctx, versionID)
			if err != nil {
				return fmt.Errorf("restoring version: %w", err)
			}
			restored := version.Restore(v)
			if err := io.WriteOutlineAtomic(ctx, outlinePath, restored); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored version %d into %s (save again to record it)\n", v.Version, outlinePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Version database path")
	cmd.Flags().StringVar(&versionID, "version", "", "Version id to restore")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newVersionsBranchCmd(io OutlineIO) *cobra.Command {
	var (
		outlinePath string
		outPath     string
		name        string
	)

	cmd := &cobra.Command{
		Use:          "branch",
		Short:        "Copy the outline under a new identity for independent work",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			o, err := io.ReadOutline(ctx, outlinePath)
			if err != nil {
				return err
			}
			branched := version.Branch(o, name)
			if err := io.WriteOutlineAtomic(ctx, outPath, branched); err != nil {
				return fmt.Errorf("writing outline: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Branched %s into %s (%s)\n", o.ID, outPath, branched.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&outlinePath, "outline", "outline.yaml", "Outline document path")
	cmd.Flags().StringVar(&outPath, "out", "", "Path for the branched outline document")
	cmd.Flags().StringVar(&name, "name", "", "Branch name")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newVersionsCompareCmd(open StoreOpener) *cobra.Command {
	var (
		dbPath     string
		versionIDA string
		versionIDB string
	)

	cmd := &cobra.Command{
		Use:          "compare",
		Short:        "Coarse node-count diff between two versions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := open(dbPath)
			if err != nil {
				return err
			}
			defer closeStore()

			diff, err := store.Compare(cmd.Context(), versionIDA, versionIDB)
			if err != nil {
				return fmt.Errorf("comparing versions: %w", err)
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(diff)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Version database path")
	cmd.Flags().StringVar(&versionIDA, "a", "", "First version id")
	cmd.Flags().StringVar(&versionIDB, "b", "", "Second version id")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// defaultDBPath is where the version history lives unless overridden.
const defaultDBPath = ".eduforge/versions.db"
