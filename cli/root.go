package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fahmaliyi/pwvault/config"
	"github.com/fahmaliyi/pwvault/logger"
	"github.com/fahmaliyi/pwvault/vault"
	"github.com/spf13/cobra"
)

// app holds what the commands share for one invocation.
type app struct {
	flags  config.Config
	prompt Prompter
	out    io.Writer

	log      *logger.Logger
	closeLog func() error
	vault    *vault.Vault
}

func newApp(prompt Prompter, out io.Writer) *app {
	return &app{prompt: prompt, out: out}
}

// Execute runs the pwvault command line against the terminal.
func Execute() error {
	a := newApp(NewTerminalPrompter(os.Stdin, os.Stdout), os.Stdout)
	defer a.close()
	return a.rootCmd().Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pwvault",
		Short: "Local encrypted password vault",
		Long: "pwvault keeps account passwords in a local file, each one encrypted\n" +
			"with a key derived from a single master password.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.unlock()
			if err != nil {
				return a.interrupted(err)
			}
			defer s.Close()

			fmt.Fprintln(a.out, "\nVault unlocked.")
			return NewMenu(s, a.prompt, a.out).Run()
		},
	}
	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.Paths.Home, "home", "", "vault directory (default ~/"+config.DefaultDirName+")")
	pf.StringVar(&a.flags.Paths.SaltFile, "salt-file", "", "salt file, relative to --home unless absolute")
	pf.StringVar(&a.flags.Paths.VaultFile, "vault-file", "", "vault file, relative to --home unless absolute")
	pf.StringVar(&a.flags.Paths.LogFile, "log-file", "", "log file, relative to --home unless absolute")
	pf.BoolVar(&a.flags.Debug, "debug", false, "log at debug level")

	root.AddCommand(a.addCmd(), a.listCmd(), a.generateCmd(), a.tuiCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Paths.Home, 0o700); err != nil {
		return err
	}

	a.log, a.closeLog = logger.NewFileLogger(cfg.Paths.LogFile, "pwvault", cfg.Debug)
	a.log.Debug().
		Str("command", cmd.Name()).
		Str("vault_file", cfg.Paths.VaultFile).
		Msg("starting")
	a.vault = vault.NewVault(cfg.Paths, a.log)
	return nil
}

func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

// unlock runs first-time setup when there is no vault yet and otherwise
// asks for the master password.
func (a *app) unlock() (*vault.Session, error) {
	isNew, err := a.vault.IsNew()
	if err != nil {
		return nil, err
	}

	var master string
	if isNew {
		master, err = FirstTimeSetup(a.prompt, a.out)
	} else {
		master, err = a.prompt.ReadSecret("Please enter your master password: ")
	}
	if err != nil {
		return nil, err
	}

	s, err := a.vault.Unlock(master)
	if err != nil {
		a.log.Error().Err(err).Msg("unlock failed")
		return nil, err
	}
	return s, nil
}

// interrupted turns EOF and Ctrl-C at a prompt into a clean exit.
func (a *app) interrupted(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(a.out, "\nExiting...")
		return nil
	}
	return err
}
