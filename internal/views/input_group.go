package views

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"zolve/formkit/internal/debounce"
	"zolve/formkit/internal/messages"
	"zolve/formkit/internal/utils"
	"zolve/formkit/internal/validation"
)

type InputType int

const (
	InputText InputType = iota
	InputNumber
	InputPassword
	InputEmail
	InputTel
)

type InputMode int

const (
	ModeText InputMode = iota
	ModeNumeric
)

// FieldChange is handed to the owning form after a debounced edit
type FieldChange struct {
	FieldID string
	Name    string
	Purpose validation.Purpose
	Value   string
	Result  validation.Result
}

// InputGroupProps configures an input group. OnChange is required.
type InputGroupProps struct {
	Name        string
	Label       string
	Purpose     validation.Purpose
	Value       string
	OnChange    func(FieldChange) tea.Cmd
	Type        InputType
	Mode        InputMode
	Placeholder string
	HelperText  string
	MaxLength   int
	AutoFocus   bool
	// Mask is a pattern of slots ('9' digit, 'a' letter, '*' any) and literals
	Mask     string
	ReadOnly bool
	Disabled bool
	CapsOnly bool
	Format   func(string) string
	// Split renders the label beside the input instead of above it
	Split   bool
	Country *validation.Country

	DebounceDelay time.Duration
	Messages      *messages.Catalog
	Theme         *utils.FieldTheme
	Width         int
}

// Keys that stay usable in numeric mode besides digits
var numericEditKeys = map[string]bool{
	"backspace": true,
	"delete":    true,
	"left":      true,
	"right":     true,
}

var readOnlyKeys = map[string]bool{
	"left":  true,
	"right": true,
	"home":  true,
	"end":   true,
}

const splitLabelWidth = 16

// InputGroupModel is a labelled, validated text field
type InputGroupModel struct {
	id    string
	props InputGroupProps

	input   textinput.Model
	gate    debounce.Gate
	catalog *messages.Catalog
	theme   utils.FieldTheme

	result   validation.Result
	filled   bool
	revealed bool
}

func NewInputGroup(props InputGroupProps) *InputGroupModel {
	if props.OnChange == nil {
		panic("views: input group " + props.Name + " has no OnChange callback")
	}

	if props.Type == InputNumber || props.Type == InputTel {
		props.Mode = ModeNumeric
	}
	if props.Width <= 0 {
		props.Width = 40
	}

	m := &InputGroupModel{
		id:      uuid.NewString(),
		props:   props,
		catalog: props.Messages,
		theme:   utils.DefaultFieldTheme,
		result:  validation.Result{Valid: true},
	}
	if m.catalog == nil {
		m.catalog = messages.Default()
	}
	if props.Theme != nil {
		m.theme = *props.Theme
	}
	m.gate = debounce.NewGate(m.id, props.DebounceDelay)

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = props.Placeholder
	input.CharLimit = props.MaxLength
	input.Width = props.Width - 4
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Placeholder))
	if props.Type == InputPassword {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}
	m.input = input

	m.input.SetValue(m.transform(props.Value))
	m.filled = m.input.Value() != ""

	if props.AutoFocus {
		m.Focus()
	}

	return m
}

func (m *InputGroupModel) ID() string {
	return m.id
}

func (m *InputGroupModel) Name() string {
	return m.props.Name
}

func (m *InputGroupModel) Label() string {
	return m.props.Label
}

func (m *InputGroupModel) Purpose() validation.Purpose {
	return m.props.Purpose
}

func (m *InputGroupModel) Value() string {
	return m.input.Value()
}

// Result returns the last computed validation result
func (m *InputGroupModel) Result() validation.Result {
	return m.result
}

func (m *InputGroupModel) Filled() bool {
	return m.filled
}

func (m *InputGroupModel) Revealed() bool {
	return m.revealed
}

func (m *InputGroupModel) Focused() bool {
	return m.input.Focused()
}

func (m *InputGroupModel) Disabled() bool {
	return m.props.Disabled
}

func (m *InputGroupModel) Sensitive() bool {
	return m.props.Type == InputPassword ||
		m.props.Purpose == validation.PurposeSSN ||
		m.props.Purpose == validation.PurposePAN
}

// Focus gives the field keyboard focus. Disabled fields never take focus.
func (m *InputGroupModel) Focus() tea.Cmd {
	if m.props.Disabled {
		return nil
	}
	return m.input.Focus()
}

func (m *InputGroupModel) Blur() {
	m.input.Blur()
}

// SetValue replaces the field text as if the user had typed it
func (m *InputGroupModel) SetValue(value string) tea.Cmd {
	m.input.SetValue(m.transform(value))
	m.input.CursorEnd()
	return m.gate.Trigger()
}

// SetCountry changes the phone country context and schedules revalidation
func (m *InputGroupModel) SetCountry(country *validation.Country) tea.Cmd {
	m.props.Country = country
	if !m.filled {
		return nil
	}
	return m.gate.Trigger()
}

// Validate runs the field rule immediately, bypassing the debounce
func (m *InputGroupModel) Validate() validation.Result {
	m.result = validation.Validate(m.props.Purpose, m.input.Value(), m.props.Country)
	m.filled = m.input.Value() != ""
	return m.result
}

func (m *InputGroupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *InputGroupModel) Update(msg tea.Msg) (*InputGroupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.FireMsg:
		if !m.gate.Accept(msg) {
			return m, nil
		}
		return m, m.commit()

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}

		if msg.String() == "ctrl+r" && m.props.Type == InputPassword {
			m.toggleReveal()
			return m, nil
		}

		if !m.keyAllowed(msg) {
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyKeyUp()

		if m.input.Value() == before {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.gate.Trigger())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// keyAllowed is the key-down filter
func (m *InputGroupModel) keyAllowed(msg tea.KeyMsg) bool {
	if m.props.Disabled {
		return false
	}

	key := msg.String()
	if m.props.ReadOnly {
		return readOnlyKeys[key]
	}

	if m.props.Mode != ModeNumeric {
		return true
	}

	if numericEditKeys[key] {
		return true
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// applyKeyUp writes the transformed text back into the input
func (m *InputGroupModel) applyKeyUp() {
	raw := m.input.Value()
	formatted := m.transform(raw)
	if formatted != raw {
		m.input.SetValue(formatted)
		m.input.CursorEnd()
	}
}

func (m *InputGroupModel) transform(value string) string {
	if m.props.Mask != "" {
		value = utils.ApplyMask(m.props.Mask, value)
	}
	if m.props.CapsOnly {
		value = utils.UpperCase(value)
	}
	if m.props.Format != nil {
		value = m.props.Format(value)
	}
	return value
}

func (m *InputGroupModel) toggleReveal() {
	m.revealed = !m.revealed
	if m.revealed {
		m.input.EchoMode = textinput.EchoNormal
	} else {
		m.input.EchoMode = textinput.EchoPassword
	}
}

func (m *InputGroupModel) commit() tea.Cmd {
	m.Validate()
	return m.props.OnChange(FieldChange{
		FieldID: m.id,
		Name:    m.props.Name,
		Purpose: m.props.Purpose,
		Value:   m.input.Value(),
		Result:  m.result,
	})
}

// HelperText returns the text shown under the input: the error message
// while invalid, the caller's helper text while empty, nothing otherwise.
func (m *InputGroupModel) HelperText() string {
	if !m.result.Valid {
		return m.catalog.Describe(m.result)
	}
	if !m.filled {
		return m.props.HelperText
	}
	return ""
}

func (m *InputGroupModel) View() string {
	invalid := !m.result.Valid

	labelColour := m.theme.Label
	borderColour := m.theme.Border
	helperColour := m.theme.Helper

	switch {
	case m.props.Disabled:
		labelColour = m.theme.Disabled
		borderColour = m.theme.Disabled
	case invalid:
		labelColour = m.theme.LabelError
		borderColour = m.theme.BorderError
		helperColour = m.theme.HelperError
	case m.input.Focused():
		borderColour = m.theme.BorderFocus
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(labelColour)).
		Bold(m.filled || m.input.Focused())

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColour)).
		Padding(0, 1).
		Width(m.props.Width)

	helperStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(helperColour)).
		Italic(!invalid)

	label := m.props.Label
	if m.props.Type == InputPassword && m.input.Focused() {
		if m.revealed {
			label += " (shown)"
		} else {
			label += " (hidden)"
		}
	}

	box := inputStyle.Render(m.input.View())

	var field string
	if m.props.Split {
		field = lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Width(splitLabelWidth).Render(label),
			box)
	} else {
		field = lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), box)
	}

	helper := m.HelperText()
	if m.props.Split && helper != "" {
		helper = utils.PadString("", splitLabelWidth, ' ') + helper
	}

	return lipgloss.JoinVertical(lipgloss.Left, field, helperStyle.Render(helper))
}
