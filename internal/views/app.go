package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"zolve/formkit/internal/config"
	"zolve/formkit/internal/messages"
	"zolve/formkit/internal/models"
	"zolve/formkit/internal/utils"
	"zolve/formkit/internal/validation"
)

type ViewState int

const (
	ViewForm ViewState = iota
	ViewSummary
)

type AppModel struct {
	state  ViewState
	width  int
	height int

	config  *config.Config
	logger  *zap.Logger
	catalog *messages.Catalog

	form      *FormModel
	submitted []SubmittedField
}

func NewAppModel(cfg *config.Config, logger *zap.Logger, catalog *messages.Catalog) (*AppModel, error) {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = messages.Default()
	}

	country, err := models.FindCountry(cfg.DefaultCountry)
	if err != nil {
		return nil, fmt.Errorf("failed to select default country: %w", err)
	}

	app := &AppModel{
		state:   ViewForm,
		config:  cfg,
		logger:  logger,
		catalog: catalog,
		form: NewFormModel(FormOptions{
			Country:       country,
			DebounceDelay: cfg.DebounceDelay,
			Messages:      catalog,
			Logger:        logger,
		}),
	}

	return app, nil
}

func (m *AppModel) State() ViewState {
	return m.state
}

func (m *AppModel) Form() *FormModel {
	return m.form
}

func (m *AppModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("quit requested")
			return m, tea.Quit
		}

		if m.state == ViewSummary {
			switch msg.String() {
			case "esc":
				m.state = ViewForm
				return m, m.form.FocusedField().Focus()
			case "q":
				return m, tea.Quit
			}
			return m, nil
		}

	case FormSubmittedMsg:
		m.submitted = msg.Fields
		m.state = ViewSummary
		m.logger.Info("form accepted", zap.Int("fields", len(msg.Fields)))
		return m, nil
	}

	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	var content string
	switch m.state {
	case ViewSummary:
		content = m.renderSummary()
	default:
		content = m.form.View()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m *AppModel) renderSummary() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Green)).
		Bold(true)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Green)).
		Padding(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext0)).
		Italic(true)

	var details strings.Builder
	for i, f := range m.submitted {
		value := f.Value
		if f.Sensitive {
			visible := 4
			if f.Purpose == validation.PurposePassword {
				visible = 0
			}
			value = utils.MaskSensitive(value, visible)
		}
		if value == "" {
			value = "—"
		}
		if i > 0 {
			details.WriteString("\n")
		}
		details.WriteString(labelStyle.Render(utils.PadString(f.Label, 14, ' ')))
		details.WriteString(utils.TruncateString(value, 40))
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("✓ Profile complete"))
	content.WriteString("\n\n")
	content.WriteString(cardStyle.Render(details.String()))
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("esc: edit • q: quit"))

	return content.String()
}
