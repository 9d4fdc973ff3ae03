package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"keywire/internal/keys"
)

func prekeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prekey",
		Short: "Manage prekeys",
	}
	cmd.AddCommand(prekeyGenCmd(), prekeyLsCmd(), prekeyRmCmd())
	return cmd
}

func prekeyGenCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a batch of prekeys",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := count
			if n == 0 {
				n = cfg.PreKeyCount
			}
			if n < 1 {
				return fmt.Errorf("prekey count must be positive, got %d", n)
			}
			ids, err := appCtx.PreKeys.Generate(n)
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d prekeys: %d..%d\n", len(ids), ids[0], ids[len(ids)-1])
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of prekeys (default from config)")
	return cmd
}

func prekeyLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List stored prekey ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := appCtx.PreKeys.List()
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func prekeyRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a prekey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePreKeyID(args[0])
			if err != nil {
				return err
			}
			return appCtx.PreKeys.Remove(id)
		},
	}
}

func parsePreKeyID(s string) (keys.PreKeyID, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("prekey id %q: %w", s, err)
	}
	return keys.PreKeyID(v), nil
}
