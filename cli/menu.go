package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fahmaliyi/pwvault/generator"
	"github.com/fahmaliyi/pwvault/vault"
)

const (
	clipboardTTL    = 30 * time.Second
	defaultGenLen   = 16
	menuPrompt      = "\nChoose an option: [V]iew, [A]dd, [G]enerate, [C]opy N, [Q]uit\n> "
	failedEntryText = "[" + vault.DecryptionFailed + " - WRONG MASTER PASSWORD?]"
)

// Menu is the line-oriented interactive loop run after unlocking.
type Menu struct {
	keeper     Keeper
	prompt     Prompter
	out        io.Writer
	copyFn     func(string) error
	clearAfter time.Duration
	pending    *time.Timer
	clipMu     sync.Mutex
	last       []vault.Entry
}

func NewMenu(k Keeper, p Prompter, out io.Writer) *Menu {
	return &Menu{
		keeper:     k,
		prompt:     p,
		out:        out,
		copyFn:     clipboard.WriteAll,
		clearAfter: clipboardTTL,
	}
}

// Run loops until the user quits. Invalid choices reprompt. EOF and Ctrl-C
// end the loop without an error.
func (m *Menu) Run() error {
	defer m.flushClipboard()

	for {
		line, err := m.prompt.ReadLine(menuPrompt)
		if err != nil {
			return m.exit(err)
		}

		parts := strings.Fields(strings.ToLower(line))
		if len(parts) == 0 {
			fmt.Fprintln(m.out, "Invalid option, please try again.")
			continue
		}

		switch parts[0] {
		case "q", "quit":
			fmt.Fprintln(m.out, "Exiting.")
			return nil
		case "v", "view":
			m.view()
		case "a", "add":
			err = m.add()
		case "g", "generate":
			err = m.generate()
		case "c", "copy":
			m.copy(parts[1:])
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
		}
		if err != nil {
			return m.exit(err)
		}
	}
}

func (m *Menu) exit(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(m.out, "\nExiting...")
		return nil
	}
	return err
}

func (m *Menu) view() {
	entries, err := m.keeper.List()
	if err != nil {
		fmt.Fprintln(m.out, "Error reading vault:", err)
		return
	}
	m.last = entries
	printEntries(m.out, entries)
}

func (m *Menu) add() error {
	account, err := m.prompt.ReadLine("Account Name (Enter for 'Default'): ")
	if err != nil {
		return err
	}
	secret, err := m.prompt.ReadSecret("Password: ")
	if err != nil {
		return err
	}

	m.save(account, secret)
	return nil
}

func (m *Menu) save(account, secret string) {
	rec, err := m.keeper.Add(account, secret)
	msg, rejected := rejection(err)
	switch {
	case rejected:
		fmt.Fprintln(m.out, msg)
	case err != nil:
		fmt.Fprintln(m.out, "Error saving password:", err)
	default:
		m.last = nil
		fmt.Fprintf(m.out, "Password for '%s' added successfully.\n", rec.Account)
	}
}

func (m *Menu) generate() error {
	answer, err := m.prompt.ReadLine(fmt.Sprintf("Length (default %d): ", defaultGenLen))
	if err != nil {
		return err
	}
	length := defaultGenLen
	if answer != "" {
		length, err = strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(m.out, "Length must be a number.")
			return nil
		}
	}

	digits, err := askYesNo(m.prompt, m.out, "Include numbers? (yes/no): ")
	if err != nil {
		return err
	}
	specials, err := askYesNo(m.prompt, m.out, "Include special characters? (yes/no): ")
	if err != nil {
		return err
	}

	password, err := generator.Generate(length, digits, specials)
	if err != nil {
		fmt.Fprintln(m.out, "Error:", err)
		return nil
	}
	printGenerated(m.out, password)

	save, err := askYesNo(m.prompt, m.out, "Would you like to save this password? (yes/no): ")
	if err != nil || !save {
		if err == nil {
			fmt.Fprintln(m.out, "Password not saved.")
		}
		return err
	}

	account, err := m.prompt.ReadLine("Enter an account name (or press Enter for 'Default'): ")
	if err != nil {
		return err
	}
	m.save(account, password)
	return nil
}

func (m *Menu) copy(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(m.out, "Specify item number, e.g. 'c 1'")
		return
	}
	if m.last == nil {
		entries, err := m.keeper.List()
		if err != nil {
			fmt.Fprintln(m.out, "Error reading vault:", err)
			return
		}
		m.last = entries
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(m.last) {
		fmt.Fprintln(m.out, "Invalid item number")
		return
	}
	e := m.last[n-1]
	if e.Failed() {
		fmt.Fprintln(m.out, "Cannot copy: entry could not be decrypted.")
		return
	}

	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
	if err := m.writeClipboard(e.Secret); err != nil {
		fmt.Fprintln(m.out, "Error copying to clipboard:", err)
		return
	}
	m.pending = time.AfterFunc(m.clearAfter, func() {
		_ = m.writeClipboard("")
	})
	fmt.Fprintf(m.out, "Password for '%s' copied to clipboard. Clearing in %s...\n", e.Account, m.clearAfter)
}

// writeClipboard serialises clipboard writes from the loop and the clear timer.
func (m *Menu) writeClipboard(s string) error {
	m.clipMu.Lock()
	defer m.clipMu.Unlock()
	return m.copyFn(s)
}

// flushClipboard clears the clipboard right away if a clear is still pending.
func (m *Menu) flushClipboard() {
	if m.pending != nil && m.pending.Stop() {
		_ = m.writeClipboard("")
	}
}

// rejection maps input errors from Keeper.Add to the message shown to the
// user. Those errors only cancel the one save.
func rejection(err error) (string, bool) {
	switch {
	case errors.Is(err, vault.ErrEmptyInput):
		return "Password cannot be empty.", true
	case errors.Is(err, vault.ErrInvalidAccount):
		return "Account name must not contain '|'.", true
	}
	return "", false
}

// askYesNo repeats the question until the answer is yes/y or no/n.
func askYesNo(p Prompter, out io.Writer, question string) (bool, error) {
	for {
		answer, err := p.ReadLine(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(out, "Invalid input. Please enter 'yes' or 'no'.")
	}
}

func printEntries(w io.Writer, entries []vault.Entry) {
	rule := strings.Repeat("-", 40)
	fmt.Fprintln(w, rule)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No passwords found. Use 'add' to save one.")
	}
	for i, e := range entries {
		if e.Failed() {
			fmt.Fprintf(w, "%2d) Account: %-20s | %s\n", i+1, e.Account, failedEntryText)
			continue
		}
		fmt.Fprintf(w, "%2d) Account: %-20s | Password: %s\n", i+1, e.Account, e.Secret)
	}
	fmt.Fprintln(w, rule)
}

func printGenerated(w io.Writer, password string) {
	fmt.Fprintf(w, "\nGenerated Password:\n%s\n\n", password)
}
