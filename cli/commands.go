package cli

import (
	"fmt"
	"strconv"

	"github.com/fahmaliyi/pwvault/generator"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [account]",
		Short: "Encrypt and store a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.unlock()
			if err != nil {
				return a.interrupted(err)
			}
			defer s.Close()

			var account string
			if len(args) == 1 {
				account = args[0]
			} else if account, err = a.prompt.ReadLine("Account Name (Enter for 'Default'): "); err != nil {
				return a.interrupted(err)
			}

			secret, err := a.prompt.ReadSecret("Password: ")
			if err != nil {
				return a.interrupted(err)
			}

			rec, err := s.Add(account, secret)
			if msg, ok := rejection(err); ok {
				fmt.Fprintln(a.out, msg, "Password not saved.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Password for '%s' added successfully.\n", rec.Account)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Decrypt and print every stored password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.unlock()
			if err != nil {
				return a.interrupted(err)
			}
			defer s.Close()

			entries, err := s.List()
			if err != nil {
				return err
			}
			printEntries(a.out, entries)
			return nil
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var noDigits, noSpecials bool

	cmd := &cobra.Command{
		Use:   "generate LENGTH",
		Short: "Generate a random password and optionally save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid length %q", args[0])
			}

			password, err := generator.Generate(length, !noDigits, !noSpecials)
			if err != nil {
				return err
			}
			printGenerated(a.out, password)

			save, err := askYesNo(a.prompt, a.out, "Would you like to save this password? (yes/no): ")
			if err != nil {
				return a.interrupted(err)
			}
			if !save {
				fmt.Fprintln(a.out, "Password not saved.")
				return nil
			}

			account, err := a.prompt.ReadLine("Enter an account name (or press Enter for 'Default'): ")
			if err != nil {
				return a.interrupted(err)
			}
			master, err := a.prompt.ReadSecret("Enter your master password to save: ")
			if err != nil {
				return a.interrupted(err)
			}
			if master == "" {
				fmt.Fprintln(a.out, "Master password cannot be empty. Password not saved.")
				return nil
			}

			s, err := a.vault.Unlock(master)
			if err != nil {
				return err
			}
			defer s.Close()

			rec, err := s.Add(account, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Password saved for account '%s'.\n", rec.Account)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDigits, "no-numbers", false, "exclude digits")
	cmd.Flags().BoolVar(&noSpecials, "no-specials", false, "exclude special characters")
	return cmd
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the vault in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.unlock()
			if err != nil {
				return a.interrupted(err)
			}
			defer s.Close()

			return RunTUI(s)
		},
	}
}
