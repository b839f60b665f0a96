package cli

import "github.com/fahmaliyi/pwvault/vault"

//go:generate mockgen -source=interfaces.go -destination=../mock/cli_mock.go -package=mock

// Keeper is an unlocked vault as seen by the menu and the TUI.
// *vault.Session implements it.
type Keeper interface {
	// Add seals secret and appends it under account. An empty account is
	// stored as vault.DefaultAccount.
	Add(account, secret string) (vault.Record, error)

	// List returns every record in file order. Records that fail to
	// decrypt are reported inline, not as an error.
	List() ([]vault.Entry, error)
}

// Prompter reads answers from the user.
type Prompter interface {
	// ReadLine prints prompt and returns the trimmed answer.
	ReadLine(prompt string) (string, error)

	// ReadSecret prints prompt and reads an answer without echoing it.
	ReadSecret(prompt string) (string, error)
}
