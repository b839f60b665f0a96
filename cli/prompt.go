package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fahmaliyi/pwvault/vault"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl-C at a masked prompt.
var ErrInterrupted = errors.New("interrupted")

type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewTerminalPrompter reads from in. When in is a terminal secrets are read
// in raw mode and echoed as '*'; otherwise they are read as plain lines.
func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	fd := int(in.Fd())
	return &terminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		tty: term.IsTerminal(fd),
	}
}

func (p *terminalPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := readLine(p.in)
	return strings.TrimSpace(line), err
}

func (p *terminalPrompter) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.tty {
		return readLine(p.in)
	}

	state, err := term.MakeRaw(p.fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(p.fd, state)

	return readMasked(p.in, p.out)
}

// readLine returns one line without its terminator. A final line without a
// newline is returned as is; io.EOF is only reported when nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readMasked reads a secret byte by byte from a terminal in raw mode,
// printing one '*' per character.
func readMasked(r io.ByteReader, w io.Writer) (string, error) {
	input := make([]byte, 0, 64)
	defer func() { vault.Zero(input) }()

	for {
		c, err := r.ReadByte()
		if err != nil {
			fmt.Fprint(w, "\r\n")
			if errors.Is(err, io.EOF) && len(input) > 0 {
				return string(input), nil
			}
			return "", err
		}

		switch c {
		case '\r', '\n':
			fmt.Fprint(w, "\r\n")
			return string(input), nil
		case 3: // Ctrl-C
			fmt.Fprint(w, "\r\n")
			return "", ErrInterrupted
		case 4: // Ctrl-D
			if len(input) == 0 {
				fmt.Fprint(w, "\r\n")
				return "", io.EOF
			}
		case 127, 8: // Backspace
			if len(input) > 0 {
				_, size := utf8.DecodeLastRune(input)
				input = input[:len(input)-size]
				fmt.Fprint(w, "\b \b")
			}
		default:
			if c < 0x20 {
				continue
			}
			input = append(input, c)
			if !utf8.RuneStart(c) {
				continue
			}
			fmt.Fprint(w, "*")
		}
	}
}
