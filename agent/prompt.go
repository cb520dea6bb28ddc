package agent

import (
	"github.com/chzyer/readline"
)

type readlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter reads replies from a readline instance, using each
// prompt as the line prompt.
func NewReadlinePrompter(rl *readline.Instance) Prompter {
	return readlinePrompter{rl: rl}
}

func (p readlinePrompter) Prompt(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	return p.rl.Readline()
}
