package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/luscis/gretun/pkg/config"
	"github.com/luscis/gretun/pkg/libol"
	"github.com/luscis/gretun/pkg/tunnel"
)

const (
	ChoiceIran   = "1"
	ChoiceKharej = "2"
	ChoiceRemove = "3"
)

// Console is the line reader behind the menu.
type Console interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// Actions receives the answers collected by the menu.
type Actions interface {
	Setup(t *config.Tunnel) error
	Teardown(t *config.Tunnel, purge bool)
}

type Terminal struct {
	Console Console
	Actions Actions
	Output  io.Writer
	Tunnel  *config.Tunnel
}

func NewConsole() (Console, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(ChoiceIran),
		readline.PcItem(ChoiceKharej),
		readline.PcItem(ChoiceRemove),
	)
	cfg := &readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    completer,
	}
	l, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewTerminal asks with defaults taken from t, which may be nil.
func NewTerminal(console Console, actions Actions, output io.Writer, t *config.Tunnel) *Terminal {
	if t == nil {
		t = config.DefaultTunnel()
	}
	return &Terminal{
		Console: console,
		Actions: actions,
		Output:  output,
		Tunnel:  t,
	}
}

func (t *Terminal) CmdHelp() {
	fmt.Fprintf(t.Output, "Select an option:\n")
	fmt.Fprintf(t.Output, "  1\t Iran\n")
	fmt.Fprintf(t.Output, "  2\t Kharej\n")
	fmt.Fprintf(t.Output, "  3\t Remove tunnel\n")
}

func (t *Terminal) ask(prompt string) (string, error) {
	t.Console.SetPrompt(prompt)
	line, err := t.Console.Readline()
	if err == readline.ErrInterrupt {
		return "", libol.NewErr("interrupted")
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) askIPv4(prompt string) (string, error) {
	value, err := t.ask(prompt)
	if err != nil {
		return "", err
	}
	if err := tunnel.ValidIPv4(value); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) CmdSetup(role string) error {
	iran, err := t.askIPv4("Enter Iran IP: ")
	if err != nil {
		return err
	}
	kharej, err := t.askIPv4("Enter Kharej IP: ")
	if err != nil {
		return err
	}
	prefix, err := t.ask("Enter tunnel prefix (like 10.10.10): ")
	if err != nil {
		return err
	}
	if err := tunnel.ValidPrefix(prefix); err != nil {
		return err
	}
	tun := *t.Tunnel
	tun.Role = role
	tun.Prefix = prefix
	if role == config.RoleIran {
		tun.Local, tun.Remote = iran, kharej
	} else {
		tun.Local, tun.Remote = kharej, iran
	}
	if err := t.Actions.Setup(&tun); err != nil {
		return err
	}
	fmt.Fprintf(t.Output, "GRE tunnel %s is up as %s\n", tun.Device, role)
	return nil
}

func (t *Terminal) CmdRemove() error {
	tun := *t.Tunnel
	t.Actions.Teardown(&tun, false)
	fmt.Fprintf(t.Output, "GRE tunnel %s removed\n", tun.Device)
	return nil
}

// Start asks once for a choice and carries it out.
func (t *Terminal) Start() error {
	defer t.Console.Close()

	t.CmdHelp()
	choice, err := t.ask("Enter your choice: ")
	if err != nil {
		return err
	}
	switch choice {
	case ChoiceIran:
		return t.CmdSetup(config.RoleIran)
	case ChoiceKharej:
		return t.CmdSetup(config.RoleKharej)
	case ChoiceRemove:
		return t.CmdRemove()
	default:
		return libol.NewErr("invalid choice %q", choice)
	}
}
