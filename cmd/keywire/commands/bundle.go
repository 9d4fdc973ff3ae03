package commands

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keywire/internal/keys"
)

func bundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Export and inspect prekey bundles",
	}
	cmd.AddCommand(bundleExportCmd(), bundleInspectCmd())
	return cmd
}

func bundleExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export the bundle for a prekey as base64 wire bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePreKeyID(args[0])
			if err != nil {
				return err
			}
			b, err := appCtx.PreKeys.Bundle(passphrase, id)
			if err != nil {
				return err
			}
			raw, err := b.Marshal()
			if err != nil {
				return err
			}
			enc := base64.StdEncoding.EncodeToString(raw) + "\n"
			if out == "" {
				fmt.Print(enc)
				return nil
			}
			return os.WriteFile(out, []byte(enc), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func bundleInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode an exported bundle and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			raw, err := base64.StdEncoding.DecodeString(string(trimNewlines(data)))
			if err != nil {
				return err
			}
			b, err := keys.UnmarshalPreKeyBundle(raw)
			if err != nil {
				return err
			}
			fmt.Printf("Version:     %d\n", b.Version)
			fmt.Printf("PreKey ID:   %d\n", b.ID)
			fmt.Printf("PreKey:      %s\n", b.Key.Fingerprint())
			fmt.Printf("Identity:    %s\n", b.Identity.Fingerprint())
			return nil
		},
	}
}

func trimNewlines(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
