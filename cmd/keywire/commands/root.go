package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keywire/internal/app"
	"keywire/internal/services/identity"
	"keywire/internal/services/prekey"
	"keywire/internal/store"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
	cfg        app.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keywire",
		Short: "Identity and prekey management for offline key exchange",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keywire")
			}

			var err error
			cfg, err = app.LoadConfig(filepath.Join(home, "config.toml"))
			if err != nil {
				return err
			}
			if cfg.Home != "" {
				home = cfg.Home
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			fs := store.NewFileStore(home)
			appCtx = app.New(identity.New(fs), prekey.New(fs, fs))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key directory (default ~/.keywire)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), fingerprintCmd(), prekeyCmd(), bundleCmd())
	return root.Execute()
}
