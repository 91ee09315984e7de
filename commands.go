package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/chains/solana"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/config"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/core"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/network"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/utils"
)

var rootCmd = &cobra.Command{
	Use:           "solana-prereqs",
	Short:         "Build, sign and submit Solana transactions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagConfig  string
	flagKeyFile string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagKeyFile, "key", "", "Path to the key file (overrides config)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "keygen",
			Short: "Generate a keypair and print its key file form",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				kp := keys.Generate()
				bz, err := keys.EncodeJSON(kp)
				if err != nil {
					return err
				}

				fmt.Println("Address:", kp.Address())
				fmt.Println(string(bz))
				return nil
			},
		},
		&cobra.Command{
			Use:   "mnemonic",
			Short: "Generate a mnemonic and print the address it derives",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				mnemonic, err := keys.NewMnemonic()
				if err != nil {
					return err
				}
				kp, err := keys.FromMnemonic(mnemonic, "")
				if err != nil {
					return err
				}

				fmt.Println("Address:", kp.Address())
				fmt.Println(mnemonic)
				return nil
			},
		},
		&cobra.Command{
			Use:   "base58-to-json <secret>",
			Short: "Convert a base58 secret key to the key file form",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bz, err := keys.Base58ToJSON(args[0])
				if err != nil {
					return err
				}

				fmt.Println(string(bz))
				return nil
			},
		},
		&cobra.Command{
			Use:   "json-to-base58 <key-file>",
			Short: "Convert a key file to a base58 secret key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				bz, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}

				s, err := keys.JSONToBase58(bz)
				if err != nil {
					return err
				}

				fmt.Println(s)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init-config <path>",
			Short: "Write a config file with the default values",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return config.Write(args[0], config.Default())
			},
		},
		&cobra.Command{
			Use:   "address",
			Short: "Print the address of the configured key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, kp, err := loadKey()
				if err != nil {
					return err
				}

				fmt.Println(kp.Address())
				return nil
			},
		},
		&cobra.Command{
			Use:   "balance [address]",
			Short: "Print the balance of an address, the configured key by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}

				var addr types.Address
				if len(args) == 1 {
					if addr, err = types.AddressFromBase58(args[0]); err != nil {
						return err
					}
				} else {
					kp, err := keys.LoadFile(cfg.KeyFile)
					if err != nil {
						return err
					}
					addr = kp.Address()
				}

				client := solana.NewSubmissionClient(cfg.Solana, newClient(cfg))
				balance, err := client.Balance(cmd.Context(), addr)
				if err != nil {
					return err
				}

				fmt.Printf("%s SOL (%d lamports)\n", utils.LamportsToSol(balance), balance)
				return nil
			},
		},
		&cobra.Command{
			Use:   "airdrop <sol>",
			Short: "Request an airdrop for the configured key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lamports, err := utils.SolToLamports(args[0])
				if err != nil {
					return err
				}

				return runWallet(func(w *core.Wallet) (*types.Confirmation, error) {
					return w.Airdrop(cmd.Context(), lamports)
				})
			},
		},
		&cobra.Command{
			Use:   "transfer <to> <sol>",
			Short: "Transfer SOL from the configured key",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				to, err := types.AddressFromBase58(args[0])
				if err != nil {
					return err
				}
				lamports, err := utils.SolToLamports(args[1])
				if err != nil {
					return err
				}

				return runWallet(func(w *core.Wallet) (*types.Confirmation, error) {
					return w.Transfer(cmd.Context(), to, lamports)
				})
			},
		},
		&cobra.Command{
			Use:   "sweep <to>",
			Short: "Transfer the whole balance minus the fee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				to, err := types.AddressFromBase58(args[0])
				if err != nil {
					return err
				}

				return runWallet(func(w *core.Wallet) (*types.Confirmation, error) {
					return w.TransferAll(cmd.Context(), to)
				})
			},
		},
		enrollCmd(),
	)
}

func enrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Interact with the enrollment program",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init <github>",
			Short: "Create the enrollment account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				github := strings.TrimSpace(args[0])
				if github == "" {
					return errors.New("empty github handle")
				}

				return runWallet(func(w *core.Wallet) (*types.Confirmation, error) {
					return w.Enroll(cmd.Context(), github)
				})
			},
		},
		&cobra.Command{
			Use:   "submit",
			Short: "Mint the completion asset",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWallet(func(w *core.Wallet) (*types.Confirmation, error) {
					conf, mint, err := w.SubmitEnrollment(cmd.Context())
					if mint != nil {
						fmt.Println("Mint:", mint.Address())
					}
					return conf, err
				})
			},
		},
	)

	return cmd
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagKeyFile != "" {
		cfg.KeyFile = flagKeyFile
	}

	return cfg, nil
}

func loadKey() (config.Config, *keys.Keypair, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	if cfg.KeyFile == "" {
		return cfg, nil, errors.Errorf("no key file, use --key or %s", config.EnvKeyFile)
	}

	kp, err := keys.LoadFile(cfg.KeyFile)
	return cfg, kp, err
}

func newClient(cfg config.Config) solana.Client {
	return solana.NewClientWithHttp(cfg.Solana, network.NewHttpClient(0))
}

// runWallet builds the wallet of the configured key, runs f and prints the confirmation.
func runWallet(f func(w *core.Wallet) (*types.Confirmation, error)) error {
	cfg, kp, err := loadKey()
	if err != nil {
		return err
	}

	client := newClient(cfg)
	submitter := solana.NewSubmissionClient(cfg.Solana, client)
	fees := solana.NewFeeEstimator(client, cfg.Solana.FeeCacheSize)
	wallet := core.NewWallet(kp, submitter, fees)

	conf, err := f(wallet)
	if conf != nil && !conf.Signature.IsZero() {
		fmt.Printf("%s %s\n", conf.Status, utils.ExplorerTxUrl(conf.Signature.String(), cfg.Solana.Cluster))
	}

	return err
}
