package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/numberourdays/numberourdays/internal/config"
	"github.com/numberourdays/numberourdays/internal/input"
)

// ErrCancelled is returned when the user leaves the prompt with esc or ctrl+c.
var ErrCancelled = errors.New("cancelled")

const (
	promptTitle    = "Number Our Days"
	inputCharLimit = 64
	inputWidth     = 32
)

// Prompt is a Bubble Tea model that asks one question.
type Prompt struct {
	question input.Question
	input    textinput.Model
	theme    *Theme
	keys     KeyMap

	step  int
	total int
	width int

	answer    string
	done      bool
	cancelled bool
}

// NewPrompt creates a prompt for q, shown as step of total.
func NewPrompt(q input.Question, theme *Theme, step, total int) Prompt {
	ti := textinput.New()
	ti.Placeholder = q.Placeholder
	ti.CharLimit = inputCharLimit
	ti.Width = inputWidth
	ti.Prompt = "› "
	ti.PromptStyle = theme.Value
	ti.TextStyle = theme.Input
	ti.PlaceholderStyle = theme.Placeholder
	ti.Focus()

	return Prompt{
		question: q,
		input:    ti,
		theme:    theme,
		keys:     DefaultKeyMap(),
		step:     step,
		total:    total,
	}
}

// Init implements tea.Model.
func (p Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case p.keys.Cancel.Matches(msg):
			p.cancelled = true
			return p, tea.Quit
		case p.keys.Submit.Matches(msg):
			p.answer = p.input.Value()
			p.done = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p Prompt) View() string {
	label := strings.TrimSpace(p.question.Label)

	// The last frame stays on screen as a transcript line.
	if p.done {
		return p.theme.Label.Render(label) + " " + p.theme.Value.Render(p.answer) + "\n"
	}
	if p.cancelled {
		return p.theme.Error.Render("Cancelled.") + "\n"
	}

	var b strings.Builder
	b.WriteString(p.theme.Title.Render(promptTitle))
	b.WriteString(" ")
	b.WriteString(p.theme.Step.Render(fmt.Sprintf("(%d/%d)", p.step, p.total)))
	b.WriteString("\n")
	b.WriteString(p.theme.Label.Render(label))
	b.WriteString("\n")
	b.WriteString(p.input.View())

	box := p.theme.Box
	if p.width > 4 && p.width < inputWidth+8 {
		box = box.Width(p.width - 4)
	}
	return box.Render(b.String()) + "\n" + p.theme.Help.Render(p.keys.HelpLine()) + "\n"
}

// Answer returns the submitted text, or ErrCancelled.
func (p Prompt) Answer() (string, error) {
	if p.cancelled || !p.done {
		return "", ErrCancelled
	}
	return p.answer, nil
}

// Prompter asks each question in its own short-lived Bubble Tea program.
// It implements input.Prompter.
type Prompter struct {
	theme *Theme
	total int
	step  int
	opts  []tea.ProgramOption
}

// NewPrompter creates a prompter styled after the named poster theme.
// opts are passed to every program, e.g. tea.WithInput for tests.
func NewPrompter(name config.ThemeName, opts ...tea.ProgramOption) *Prompter {
	return &Prompter{
		theme: NewTheme(name),
		total: len(input.Questions()),
		opts:  opts,
	}
}

// Ask runs the prompt for q until it is submitted or cancelled.
func (p *Prompter) Ask(ctx context.Context, q input.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.step++
	model := NewPrompt(q, p.theme, p.step, p.total)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("running prompt: %w", err)
	}

	result, ok := final.(Prompt)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return result.Answer()
}

var _ input.Prompter = (*Prompter)(nil)
