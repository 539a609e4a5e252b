package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"zolve/formkit/internal/debounce"
	"zolve/formkit/internal/messages"
	"zolve/formkit/internal/models"
	"zolve/formkit/internal/utils"
	"zolve/formkit/internal/validation"
)

type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
	FeedbackInfo    FeedbackType = "info"
)

type FeedbackMessage struct {
	Type     FeedbackType
	Message  string
	Duration time.Duration
	ShowTime time.Time
}

type FeedbackTimeoutMsg struct {
	ShowTime time.Time
}

// SubmittedField is one field value of an accepted form
type SubmittedField struct {
	Name      string
	Label     string
	Purpose   validation.Purpose
	Value     string
	Sensitive bool
}

type FormSubmittedMsg struct {
	Fields []SubmittedField
}

type FormOptions struct {
	Country       models.Country
	DebounceDelay time.Duration
	Messages      *messages.Catalog
	Logger        *zap.Logger
}

// FormModel hosts a column of input groups and owns focus and submission
type FormModel struct {
	fields  []*InputGroupModel
	focused int
	results map[string]validation.Result

	country  models.Country
	catalog  *messages.Catalog
	logger   *zap.Logger
	feedback *FeedbackMessage

	width  int
	height int
}

func NewFormModel(opts FormOptions) *FormModel {
	m := &FormModel{
		results: make(map[string]validation.Result),
		country: opts.Country,
		catalog: opts.Messages,
		logger:  opts.Logger,
	}
	if m.catalog == nil {
		m.catalog = messages.Default()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.country.Code == "" {
		m.country = models.Countries()[0]
	}

	onChange := func(change FieldChange) tea.Cmd {
		return func() tea.Msg { return change }
	}

	field := func(p InputGroupProps) *InputGroupModel {
		p.OnChange = onChange
		p.DebounceDelay = opts.DebounceDelay
		p.Messages = m.catalog
		p.Split = true
		return NewInputGroup(p)
	}

	m.fields = []*InputGroupModel{
		field(InputGroupProps{
			Name:       "first_name",
			Label:      "First name",
			Purpose:    validation.PurposeFirstName,
			MaxLength:  40,
			AutoFocus:  true,
			HelperText: "As shown on your ID",
		}),
		field(InputGroupProps{
			Name:       "middle_name",
			Label:      "Middle name",
			Purpose:    validation.PurposeMiddleName,
			MaxLength:  40,
			HelperText: "Optional",
		}),
		field(InputGroupProps{
			Name:      "last_name",
			Label:     "Last name",
			Purpose:   validation.PurposeLastName,
			MaxLength: 40,
		}),
		field(InputGroupProps{
			Name:        "email",
			Label:       "Email",
			Purpose:     validation.PurposeEmail,
			Type:        InputEmail,
			Placeholder: "you@example.com",
			MaxLength:   254,
			Format:      func(s string) string { return strings.ReplaceAll(s, " ", "") },
		}),
		field(InputGroupProps{
			Name:       "phone",
			Label:      "Phone",
			Purpose:    validation.PurposePhone,
			Type:       InputTel,
			Value:      m.country.DialCode,
			Country:    m.country.Context(),
			MaxLength:  16,
			Format:     utils.DigitsOnly,
			HelperText: "Include the country code • ctrl+n changes country",
		}),
		field(InputGroupProps{
			Name:      "zip_code",
			Label:     "Zip code",
			Purpose:   validation.PurposeZipCode,
			Type:      InputNumber,
			MaxLength: 10,
		}),
		field(InputGroupProps{
			Name:        "pan",
			Label:       "PAN",
			Purpose:     validation.PurposePAN,
			Mask:        "aaaaa9999a",
			CapsOnly:    true,
			MaxLength:   10,
			Placeholder: "ABCDE1234F",
		}),
		field(InputGroupProps{
			Name:        "ssn",
			Label:       "SSN",
			Purpose:     validation.PurposeSSN,
			Mode:        ModeNumeric,
			Mask:        "999 99 9999",
			MaxLength:   11,
			Placeholder: "123 45 6789",
		}),
		field(InputGroupProps{
			Name:       "ctc",
			Label:      "Annual CTC",
			Purpose:    validation.PurposeCTC,
			Type:       InputNumber,
			MaxLength:  12,
			HelperText: "Whole amount, no separators",
		}),
		field(InputGroupProps{
			Name:       "password",
			Label:      "Password",
			Purpose:    validation.PurposePassword,
			Type:       InputPassword,
			MaxLength:  64,
			HelperText: "ctrl+r shows or hides the password",
		}),
	}

	return m
}

func (m *FormModel) Fields() []*InputGroupModel {
	return m.fields
}

// Field returns the input group with the given name, or nil
func (m *FormModel) Field(name string) *InputGroupModel {
	for _, f := range m.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

func (m *FormModel) FocusedField() *InputGroupModel {
	return m.fields[m.focused]
}

func (m *FormModel) Country() models.Country {
	return m.country
}

// LastResult returns the most recent result reported by a field's OnChange
func (m *FormModel) LastResult(name string) (validation.Result, bool) {
	result, ok := m.results[name]
	return result, ok
}

func (m *FormModel) Feedback() *FeedbackMessage {
	return m.feedback
}

func (m *FormModel) Init() tea.Cmd {
	return m.FocusedField().Init()
}

func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.moveFocus(1)

		case "shift+tab", "up":
			return m, m.moveFocus(-1)

		case "ctrl+n":
			return m, m.nextCountry()

		case "ctrl+s":
			return m, m.submit()

		case "enter":
			if m.focused == len(m.fields)-1 {
				return m, m.submit()
			}
			return m, m.moveFocus(1)
		}

		return m, m.updateFocused(msg)

	case FieldChange:
		m.results[msg.Name] = msg.Result
		m.logger.Debug("field validated",
			zap.String("field", msg.Name),
			zap.Stringer("purpose", msg.Purpose),
			zap.Bool("valid", msg.Result.Valid),
			zap.String("message", string(msg.Result.Message)))
		return m, nil

	case debounce.FireMsg:
		for i, f := range m.fields {
			if f.gate.Owns(msg) {
				var cmd tea.Cmd
				m.fields[i], cmd = f.Update(msg)
				return m, cmd
			}
		}
		return m, nil

	case FeedbackTimeoutMsg:
		if m.feedback != nil && m.feedback.ShowTime.Equal(msg.ShowTime) {
			m.feedback = nil
		}
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m *FormModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
	return cmd
}

// moveFocus steps focus by delta, skipping disabled fields
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	next := m.focused
	for i := 0; i < n; i++ {
		next = (next + delta + n) % n
		if !m.fields[next].Disabled() {
			break
		}
	}
	return m.focus(next)
}

func (m *FormModel) focus(index int) tea.Cmd {
	m.fields[m.focused].Blur()
	m.focused = index
	return m.fields[m.focused].Focus()
}

func (m *FormModel) nextCountry() tea.Cmd {
	previous := m.country
	m.country = models.NextCountry(previous.Code)

	phone := m.Field("phone")
	if phone == nil {
		return nil
	}

	cmds := []tea.Cmd{phone.SetCountry(m.country.Context())}
	if v := phone.Value(); v == "" || v == previous.DialCode {
		cmds = append(cmds, phone.SetValue(m.country.DialCode))
	}
	cmds = append(cmds, m.showFeedback(FeedbackInfo, "Phone country: "+m.country.String(), 2*time.Second))
	m.logger.Debug("phone country changed", zap.String("country", m.country.Code))
	return tea.Batch(cmds...)
}

// Submit validates every field at once. When a field fails, focus moves to
// the first invalid field and no values are returned.
func (m *FormModel) Submit() ([]SubmittedField, tea.Cmd) {
	firstInvalid := -1
	invalidCount := 0
	for i, f := range m.fields {
		result := f.Validate()
		m.results[f.Name()] = result
		if !result.Valid {
			invalidCount++
			if firstInvalid < 0 {
				firstInvalid = i
			}
		}
	}

	m.logger.Info("form submitted",
		zap.Int("fields", len(m.fields)),
		zap.Int("invalid", invalidCount))

	if invalidCount > 0 {
		noun := "fields need"
		if invalidCount == 1 {
			noun = "field needs"
		}
		return nil, tea.Batch(
			m.focus(firstInvalid),
			m.showFeedback(FeedbackError, fmt.Sprintf("%d %s attention", invalidCount, noun), 3*time.Second),
		)
	}

	submitted := make([]SubmittedField, 0, len(m.fields))
	for _, f := range m.fields {
		submitted = append(submitted, SubmittedField{
			Name:      f.Name(),
			Label:     f.Label(),
			Purpose:   f.Purpose(),
			Value:     f.Value(),
			Sensitive: f.Sensitive(),
		})
	}

	return submitted, m.showFeedback(FeedbackSuccess, "Form submitted", 3*time.Second)
}

func (m *FormModel) submit() tea.Cmd {
	submitted, cmd := m.Submit()
	if submitted == nil {
		return cmd
	}
	return tea.Batch(
		func() tea.Msg { return FormSubmittedMsg{Fields: submitted} },
		cmd,
	)
}

func (m *FormModel) showFeedback(feedbackType FeedbackType, message string, duration time.Duration) tea.Cmd {
	shown := time.Now()
	m.feedback = &FeedbackMessage{
		Type:     feedbackType,
		Message:  message,
		Duration: duration,
		ShowTime: shown,
	}
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return FeedbackTimeoutMsg{ShowTime: shown}
	})
}

func (m *FormModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Blue)).
		Bold(true)

	stepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	var content strings.Builder

	content.WriteString(titleStyle.Render("Profile"))
	content.WriteString("  ")
	content.WriteString(stepStyle.Render(utils.FormatStepIndicator(m.focused, len(m.fields))))
	content.WriteString("\n")
	content.WriteString(stepStyle.Render("Phone country: " + m.country.String()))
	content.WriteString("\n\n")

	for _, f := range m.fields {
		content.WriteString(f.View())
		content.WriteString("\n")
	}

	if m.feedback != nil {
		content.WriteString("\n")
		content.WriteString(m.renderFeedbackMessage())
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render("tab/shift+tab: move • ctrl+n: country • ctrl+s: submit • ctrl+c: quit"))

	return content.String()
}

func (m *FormModel) renderFeedbackMessage() string {
	var colour string
	switch m.feedback.Type {
	case FeedbackSuccess:
		colour = utils.Colours.Green
	case FeedbackError:
		colour = utils.Colours.Red
	case FeedbackInfo:
		colour = utils.Colours.Blue
	default:
		colour = utils.Colours.Text
	}

	feedbackStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colour)).
		Background(lipgloss.Color(utils.Colours.Surface0)).
		Padding(0, 1).
		Bold(true)

	return feedbackStyle.Render(m.feedback.Message)
}
