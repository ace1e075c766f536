package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seatwise/seatwise/pkg/config"
	apperrors "github.com/seatwise/seatwise/pkg/errors"
	"github.com/seatwise/seatwise/pkg/roster"
	"github.com/seatwise/seatwise/pkg/seating"
	"github.com/seatwise/seatwise/pkg/state"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sessionCommand creates the interactive session command.
func (c *CLI) sessionCommand() *cobra.Command {
	var (
		configPath string
		rosterPath string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive seating planning with live reorganisation",
		Long: `Interactive seating planning with live reorganisation.

The session starts from the configured roster and preferences, shows the
current arrangement, and lets you add people, tables, and preferences.
Every change reorganises the room immediately. Saving on exit writes the
preferences back to the config file and stores a snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}
			if rosterPath != "" {
				cfg.Roster = rosterPath
			}
			if cfg.Roster == "" {
				return apperrors.New(apperrors.ErrCodeInvalidConfig, "no roster file: set roster in seatwise.toml or pass --roster")
			}
			people, err := roster.ImportCSV(cfg.Roster)
			if err != nil {
				return err
			}

			org, err := seating.New(seating.Config{
				Tables:   cfg.Tables,
				Capacity: cfg.Capacity,
				Seed:     seed,
				Logger:   c.Logger,
			})
			if err != nil {
				return err
			}
			if err := org.Organise(people, cfg.Preferences, false); err != nil {
				return err
			}

			model := newSessionModel(cfg, people, org)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("session: %w", err)
			}

			m, ok := final.(sessionModel)
			if !ok || !m.save {
				printInfo("Session discarded")
				return nil
			}
			return c.saveSession(cmd, configPath, m)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default seatwise.toml)")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster CSV file (overrides config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed for reproducible runs")

	return cmd
}

// saveSession writes the session outcome: preferences back to the config
// file, exports named in the config, and a snapshot.
func (c *CLI) saveSession(cmd *cobra.Command, configPath string, m sessionModel) error {
	path := configPath
	if path == "" {
		path = config.DefaultFilename
	}
	if err := config.SavePreferences(m.cfg.Preferences, path); err != nil {
		return err
	}
	printSuccess("Preferences saved")
	printFile(path)

	if err := c.exportResults(m.cfg, m.people, m.org.Seating(), m.org); err != nil {
		return err
	}

	store, err := c.openStore(cmd, m.cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	snap := state.NewSnapshot(m.org)
	if err := store.Save(cmd.Context(), snap); err != nil {
		printWarning("snapshot not saved: %v", err)
		return nil
	}
	printDetail("snapshot %s", snap.ID)
	return nil
}

// =============================================================================
// sessionModel - Interactive planning loop
// =============================================================================

// session menu actions, in display order.
const (
	actionReorganise = iota
	actionAddPerson
	actionAddTable
	actionAddWith
	actionAddWithout
	actionSaveQuit
	actionCount
)

var actionLabels = [actionCount]string{
	"Reorganise everyone",
	"Add a person",
	"Add a table",
	"Add a 'sit with' preference",
	"Add a 'keep apart' constraint",
	"Save and quit",
}

// input prompts per action; actions without input run immediately.
var actionPrompts = [actionCount]string{
	actionAddPerson:  "Name",
	actionAddWith:    "Two names, comma separated (A, B)",
	actionAddWithout: "Two names, comma separated (A, B)",
}

// sessionModel is the bubbletea model for the planning session.
type sessionModel struct {
	cfg    config.Config
	people []string
	org    *seating.Organiser

	cursor   int
	typing   bool   // an input prompt is active
	action   int    // action awaiting input
	input    string // current input buffer
	status   string // last outcome line
	warn     bool   // status is a warning
	save     bool   // save on exit
}

// newSessionModel creates the model over an already-organised room.
func newSessionModel(cfg config.Config, people []string, org *seating.Organiser) sessionModel {
	return sessionModel{cfg: cfg, people: people, org: org}
}

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		return m.updateInput(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < actionCount-1 {
			m.cursor++
		}
	case "enter":
		return m.runAction(m.cursor)
	}
	return m, nil
}

// updateInput handles keys while an input prompt is active.
func (m sessionModel) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.typing = false
		m.input = ""
	case "enter":
		m.typing = false
		text := strings.TrimSpace(m.input)
		m.input = ""
		if text != "" {
			return m.apply(m.action, text)
		}
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		switch key.Type {
		case tea.KeyRunes:
			m.input += string(key.Runes)
		case tea.KeySpace:
			m.input += " "
		}
	}
	return m, nil
}

// runAction dispatches a menu action, opening an input prompt when the
// action needs one.
func (m sessionModel) runAction(action int) (tea.Model, tea.Cmd) {
	if actionPrompts[action] != "" {
		m.typing = true
		m.action = action
		m.input = ""
		m.status = ""
		return m, nil
	}

	switch action {
	case actionReorganise:
		return m.reorganise("Reorganised")
	case actionAddTable:
		name := m.org.AddTable()
		m.setStatus(fmt.Sprintf("Added %s", name), false)
	case actionSaveQuit:
		m.save = true
		return m, tea.Quit
	}
	return m, nil
}

// apply consumes submitted input for the pending action.
func (m sessionModel) apply(action int, text string) (tea.Model, tea.Cmd) {
	switch action {
	case actionAddPerson:
		if err := m.org.AddPerson(text); err != nil {
			m.setStatus(apperrors.UserMessage(err), true)
			return m, nil
		}
		m.people = append(m.people, text)
		m.setStatus(fmt.Sprintf("Seated %s", text), false)

	case actionAddWith, actionAddWithout:
		a, b, err := splitPair(text)
		if err != nil {
			m.setStatus(apperrors.UserMessage(err), true)
			return m, nil
		}
		if action == actionAddWith {
			m.cfg.Preferences.With = addPreference(m.cfg.Preferences.With, a, b)
			return m.reorganise(fmt.Sprintf("%s sits with %s", a, b))
		}
		m.cfg.Preferences.Without = addPreference(m.cfg.Preferences.Without, a, b)
		return m.reorganise(fmt.Sprintf("%s kept apart from %s", a, b))
	}
	return m, nil
}

// reorganise reruns the engine over the full roster.
func (m sessionModel) reorganise(status string) (tea.Model, tea.Cmd) {
	if err := m.org.Organise(m.people, m.cfg.Preferences, false); err != nil {
		m.setStatus(apperrors.UserMessage(err), true)
		return m, nil
	}
	if removed := m.org.RemovedEdges(); len(removed) > 0 {
		status += fmt.Sprintf(" (%d preferences overridden)", len(removed))
	}
	m.setStatus(status, false)
	return m, nil
}

func (m *sessionModel) setStatus(status string, warn bool) {
	m.status = status
	m.warn = warn
}

func (m sessionModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Seatwise Session"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit without saving"))
	b.WriteString("\n\n")

	b.WriteString(renderSeating(m.org.Seating()))
	b.WriteString("\n\n")

	if m.typing {
		b.WriteString(StyleHighlight.Render(actionPrompts[m.action]+": ") + m.input + "▏")
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("⏎ confirm  esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	for i, label := range actionLabels {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := cursor + label
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.warn {
			b.WriteString(StyleWarning.Render(m.status))
		} else {
			b.WriteString(StyleSuccess.Render(m.status))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// splitPair parses "A, B" into two non-empty names.
func splitPair(text string) (string, string, error) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidFormat, "expected two names separated by a comma")
	}
	a := strings.TrimSpace(parts[0])
	b := strings.TrimSpace(parts[1])
	if a == "" || b == "" {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidFormat, "expected two names separated by a comma")
	}
	return a, b, nil
}

// addPreference appends b to a's preference list, creating the map and
// skipping duplicates.
func addPreference(m map[string][]string, a, b string) map[string][]string {
	if m == nil {
		m = make(map[string][]string)
	}
	for _, existing := range m[a] {
		if existing == b {
			return m
		}
	}
	m[a] = append(m[a], b)
	return m
}
