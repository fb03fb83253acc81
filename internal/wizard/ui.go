package wizard

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/terminal"
)

// Choice is one selectable entry: Label is shown, Value is stored.
type Choice struct {
	Label string
	Value string
}

// UI is the prompt surface the interactive flow drives. Implementations
// return errWizardBack for Esc and errWizardCancelled for Ctrl+C.
type UI interface {
	Select(title string, choices []Choice, current *string) error
	MultiSelect(title string, choices []Choice, selected *[]string) error
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
	Note(title string, body string) error
}

// HuhUI implements UI with charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
	output     io.Writer
	ctrlCAbort bool // set by the key filter while a form runs
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a HuhUI rendering to stderr.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive, output: os.Stderr}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.WizardRequiresTerminal)
}

// wizardKeyMap maps Esc to back and Ctrl+C to exit. Both abort the form;
// runForm tells them apart. Prev and Next only carry the help hints.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	escBack := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	ctrlCExit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))
	km.MultiSelect.Prev, km.MultiSelect.Next = escBack, ctrlCExit
	km.Select.Prev, km.Select.Next = escBack, ctrlCExit
	km.Confirm.Prev, km.Confirm.Next = escBack, ctrlCExit
	km.Input.Prev, km.Input.Next = escBack, ctrlCExit
	km.Note.Prev, km.Note.Next = escBack, ctrlCExit

	// Filtering would swallow Esc.
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// hintField keeps the esc/ctrl+c hints visible. huh disables Prev on the
// first field and Next on the last, which is every field in a one-field form.
type hintField struct {
	huh.Field
	km *huh.KeyMap
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field, km: wizardKeyMap()}
}

// Update keeps the wrapper in the group's field list.
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition re-applies the key map after huh adjusts the bindings.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.WithKeyMap(f.km)
	return f
}

// formFilter flags Ctrl+C key presses and turns interrupts into a quit so
// the renderer clears the form. An external SIGINT has no key press and
// therefore maps to back.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

func (ui *HuhUI) runForm(field huh.Field) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	output := ui.output
	if output == nil {
		output = os.Stderr
	}

	ui.ctrlCAbort = false
	form := huh.NewForm(huh.NewGroup(newHintField(field)))
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(output),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return errWizardCancelled
		}
		return errWizardBack
	}
	return err
}

func huhOptions(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Value)
	}
	return opts
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, choices []Choice, current *string) error {
	return ui.runForm(huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(choices)...).
		Value(current))
}

// MultiSelect renders a multi-choice prompt. Preselected values stay checked.
func (ui *HuhUI) MultiSelect(title string, choices []Choice, selected *[]string) error {
	opts := huhOptions(choices)
	for i := range opts {
		for _, v := range *selected {
			if opts[i].Value == v {
				opts[i] = opts[i].Selected(true)
			}
		}
	}
	return ui.runForm(huh.NewMultiSelect[string]().
		Title(title).
		Filterable(false).
		Options(opts...).
		Value(selected))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewConfirm().Title(title).Value(value))
}

// Input renders a text prompt.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewInput().Title(title).Value(value))
}

// Note renders an informational screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewNote().Title(title).Description(body))
}

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// renderStatus styles a non-empty status for display.
func renderStatus(status Status) string {
	switch status.Kind {
	case StatusWarning:
		return warningStyle.Render(status.String())
	case StatusError:
		return errorStyle.Render(status.String())
	default:
		return ""
	}
}
