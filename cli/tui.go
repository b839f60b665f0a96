package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fahmaliyi/pwvault/vault"
)

type tuiState int

const (
	stateTable tuiState = iota
	stateShow
	stateAdd
)

const masked = "********"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	msgStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("0"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Show   key.Binding
	Reveal key.Binding
	Copy   key.Binding
	Add    key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Show:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
	Reveal: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "reveal")),
	Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// clearClipboardMsg fires when a copied password should be wiped. Only the
// most recent copy is honoured.
type clearClipboardMsg struct{ seq int }

type model struct {
	keeper     Keeper
	copyFn     func(string) error
	clearAfter time.Duration
	help       help.Model

	entries  []vault.Entry
	cursor   int
	state    tuiState
	revealed bool
	inputs   []textinput.Model
	focus    int

	clipSeq     int
	clipPending bool
	msg         string
	err         error
}

func newModel(k Keeper) model {
	m := model{
		keeper:     k,
		copyFn:     clipboard.WriteAll,
		clearAfter: clipboardTTL,
		help:       help.New(),
		state:      stateTable,
	}
	m.reload()
	return m
}

// RunTUI shows the vault in a full-screen table until the user quits.
func RunTUI(k Keeper) error {
	_, err := tea.NewProgram(newModel(k), tea.WithAltScreen()).Run()
	return err
}

func (m *model) reload() {
	entries, err := m.keeper.List()
	if err != nil {
		m.err = err
		return
	}
	m.entries = entries
	if m.cursor >= len(m.entries) {
		m.cursor = max(len(m.entries)-1, 0)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(clearClipboardMsg); ok {
		if msg.seq == m.clipSeq && m.clipPending {
			_ = m.copyFn("")
			m.clipPending = false
			m.msg = "Clipboard cleared."
		}
		return m, nil
	}

	switch m.state {
	case stateShow:
		return m.updateShow(msg)
	case stateAdd:
		return m.updateAdd(msg)
	default:
		return m.updateTable(msg)
	}
}

func (m model) View() string {
	var b strings.Builder
	switch m.state {
	case stateShow:
		m.viewShow(&b)
	case stateAdd:
		m.viewAdd(&b)
	default:
		m.viewTable(&b)
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.msg != "" {
		b.WriteString("\n" + msgStyle.Render(m.msg) + "\n")
	}
	return b.String()
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.clipPending {
		_ = m.copyFn("")
		m.clipPending = false
	}
	return m, tea.Quit
}

func (m model) selected() (vault.Entry, bool) {
	if len(m.entries) == 0 {
		return vault.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m model) copySelected() (tea.Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}
	if e.Failed() {
		m.msg = "Cannot copy: entry could not be decrypted."
		return m, nil
	}
	if err := m.copyFn(e.Secret); err != nil {
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return m, nil
	}

	m.clipSeq++
	m.clipPending = true
	m.msg = fmt.Sprintf("Password for '%s' copied! (clears in %s)", e.Account, m.clearAfter)

	seq := m.clipSeq
	return m, tea.Tick(m.clearAfter, func(time.Time) tea.Msg {
		return clearClipboardMsg{seq: seq}
	})
}

func (m model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch {
	case key.Matches(km, keys.Quit):
		return m.quit()
	case key.Matches(km, keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, keys.Show):
		if len(m.entries) > 0 {
			m.state = stateShow
			m.revealed = false
			m.msg = ""
		}
	case key.Matches(km, keys.Copy):
		return m.copySelected()
	case key.Matches(km, keys.Add):
		m.state = stateAdd
		m.msg = ""
		return m, m.newForm()
	}
	return m, nil
}

func (m *model) viewTable(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Vault Entries") + "\n\n")
	if len(m.entries) == 0 {
		b.WriteString("No passwords found. Press 'a' to add one.\n")
	}
	for i, e := range m.entries {
		created, secret := "-", masked
		if !e.Created.IsZero() {
			created = e.Created.Local().Format(time.DateTime)
		}
		if e.Failed() {
			secret = failedStyle.Render(vault.DecryptionFailed)
		}

		line := fmt.Sprintf("%-24s  %-19s  %s", e.Account, created, secret)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		keys.Up, keys.Down, keys.Show, keys.Copy, keys.Add, keys.Quit,
	}))
}

func (m model) updateShow(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch {
	case key.Matches(km, keys.Quit):
		return m.quit()
	case key.Matches(km, keys.Back):
		m.state = stateTable
		m.revealed = false
		m.msg = ""
	case key.Matches(km, keys.Reveal):
		m.revealed = !m.revealed
	case key.Matches(km, keys.Copy):
		return m.copySelected()
	}
	return m, nil
}

func (m *model) viewShow(b *strings.Builder) {
	e, _ := m.selected()

	secret := masked
	switch {
	case e.Failed():
		secret = failedStyle.Render(failedEntryText)
	case m.revealed:
		secret = e.Secret
	}

	b.WriteString(titleStyle.Render(e.Account) + "\n\n")
	fmt.Fprintf(b, "Account:  %s\n", e.Account)
	if !e.Created.IsZero() {
		fmt.Fprintf(b, "Created:  %s\n", e.Created.Local().Format(time.DateTime))
	}
	fmt.Fprintf(b, "Password: %s\n", secret)
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		keys.Reveal, keys.Copy, keys.Back, keys.Quit,
	}))
}

// newForm resets the add form and focuses the account field.
func (m *model) newForm() tea.Cmd {
	account := textinput.New()
	account.Placeholder = "Account (empty for " + vault.DefaultAccount + ")"
	account.Prompt = "Account:  "
	account.CharLimit = 128

	secret := textinput.New()
	secret.Placeholder = "Password"
	secret.Prompt = "Password: "
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	m.inputs = []textinput.Model{account, secret}
	m.focus = 0
	return m.inputs[0].Focus()
}

func (m *model) focusInput(i int) tea.Cmd {
	n := len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = (i + n) % n
	return m.inputs[m.focus].Focus()
}

func (m model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case km.Type == tea.KeyCtrlC:
			return m.quit()
		case key.Matches(km, keys.Back):
			m.state = stateTable
			m.inputs = nil
			m.err = nil
			return m, nil
		case key.Matches(km, keys.Next):
			return m, m.focusInput(m.focus + 1)
		case key.Matches(km, keys.Prev):
			return m, m.focusInput(m.focus - 1)
		case key.Matches(km, keys.Submit):
			if m.focus < len(m.inputs)-1 {
				return m, m.focusInput(m.focus + 1)
			}
			return m.save()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) save() (tea.Model, tea.Cmd) {
	rec, err := m.keeper.Add(m.inputs[0].Value(), m.inputs[1].Value())
	switch {
	case errors.Is(err, vault.ErrEmptyInput):
		m.err = errors.New("password cannot be empty")
		return m, m.focusInput(1)
	case errors.Is(err, vault.ErrInvalidAccount):
		m.err = errors.New("account name must not contain '|'")
		return m, m.focusInput(0)
	case err != nil:
		m.err = err
		return m, nil
	}

	m.inputs = nil
	m.state = stateTable
	m.err = nil
	m.msg = fmt.Sprintf("Password for '%s' added.", rec.Account)
	m.reload()
	return m, nil
}

func (m *model) viewAdd(b *strings.Builder) {
	b.WriteString(titleStyle.Render("Add New Entry") + "\n\n")
	for _, ti := range m.inputs {
		b.WriteString(ti.View() + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		keys.Next, keys.Submit, keys.Back,
	}))
}
