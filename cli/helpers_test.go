package cli

import "io"

// scriptPrompter answers prompts from a fixed script and returns io.EOF
// once the script is exhausted.
type scriptPrompter struct {
	answers []string
	prompts []string
}

func newScript(answers ...string) *scriptPrompter {
	return &scriptPrompter{answers: answers}
}

func (s *scriptPrompter) next(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptPrompter) ReadLine(prompt string) (string, error)   { return s.next(prompt) }
func (s *scriptPrompter) ReadSecret(prompt string) (string, error) { return s.next(prompt) }

type fakeClipboard struct {
	writes []string
}

func (c *fakeClipboard) WriteAll(s string) error {
	c.writes = append(c.writes, s)
	return nil
}
