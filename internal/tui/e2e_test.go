package tui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/numberourdays/numberourdays/internal/config"
	"github.com/numberourdays/numberourdays/internal/input"
)

// waitFor is a convenience wrapper around teatest.WaitFor with a standard timeout.
func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second))
}

func finalPrompt(t *testing.T, tm *teatest.TestModel) Prompt {
	t.Helper()
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	p, ok := fm.(Prompt)
	if !ok {
		t.Fatalf("final model is %T", fm)
	}
	return p
}

// --- End-to-end tests ---
// These launch the real Bubble Tea program in a headless virtual terminal,
// send actual keystrokes, and assert on the rendered screen output.

func TestE2E_BirthDatePrompt(t *testing.T) {
	m := NewPrompt(input.BirthDateQuestion, NewTheme(config.ThemeClassic), 2, 3)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	waitFor(t, tm, "MM/DD/YYYY")

	tm.Type("03/07/1990")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	answer, err := finalPrompt(t, tm).Answer()
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer != "03/07/1990" {
		t.Errorf("Answer() = %q", answer)
	}
}

func TestE2E_EditBeforeSubmit(t *testing.T) {
	m := NewPrompt(input.GenderQuestion, NewTheme(config.ThemeSepia), 3, 3)
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	waitFor(t, tm, "(3/3)")

	tm.Type("x")
	tm.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	tm.Type("F")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	answer, err := finalPrompt(t, tm).Answer()
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if answer != "F" {
		t.Errorf("Answer() = %q, want F", answer)
	}
}

func TestE2E_EscCancels(t *testing.T) {
	tm := teatest.NewTestModel(t, newTestPrompt(), teatest.WithInitialTermSize(80, 24))

	waitFor(t, tm, "Enter your first name")
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	if _, err := finalPrompt(t, tm).Answer(); !errors.Is(err, ErrCancelled) {
		t.Errorf("Answer() error = %v, want ErrCancelled", err)
	}
}
