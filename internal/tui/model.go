package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/zooskeys/internal/game"
	"github.com/muurk/zooskeys/internal/keyboard"
	"github.com/muurk/zooskeys/internal/logging"
	"github.com/muurk/zooskeys/internal/ui"
)

// Options configures a game screen.
type Options struct {
	Layout     keyboard.Layout
	MaxGuesses int
	Words      *game.WordList // nil uses the embedded list
	Answer     string         // fixed answer for the first round; empty picks one
	ShowHelp   bool
}

// input is the row being typed. It is shared by pointer so the keyboard's
// activation callback and the model see the same buffer.
type input struct {
	letters []rune
	message string
}

func (in *input) activate(token string) {
	if token == keyboard.TokenBackspace {
		if n := len(in.letters); n > 0 {
			in.letters = in.letters[:n-1]
		}
		in.message = ""
		return
	}
	if len(in.letters) >= game.WordLength {
		return
	}
	r := []rune(token)
	if len(r) == 1 {
		in.letters = append(in.letters, r[0])
		in.message = ""
	}
}

// Model is the game screen.
type Model struct {
	opts     Options
	surface  *ui.KeyboardSurface
	keyboard keyboard.Controller
	game     *game.Game
	input    *input
	rounds   int

	keys     keyMap
	help     help.Model
	showHelp bool

	Width  int
	Height int
}

// NewModel creates the game screen and starts the first round
func NewModel(opts Options) Model {
	if opts.MaxGuesses < 1 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	if len(opts.Layout.Rows) == 0 {
		opts.Layout = keyboard.QWERTY()
	}

	in := &input{}
	surface := ui.NewKeyboardSurface()

	m := Model{
		opts:     opts,
		surface:  surface,
		keyboard: keyboard.Mount(surface, opts.Layout, in.activate),
		input:    in,
		keys:     newKeyMap(),
		help:     help.New(),
		showHelp: opts.ShowHelp,
		Width:    ui.GetTerminalWidth(),
	}
	m.startRound(opts.Answer)
	return m
}

func (m *Model) startRound(answer string) {
	m.game = game.New(answer, m.opts.Words, m.opts.MaxGuesses)
	m.keyboard.Reset()
	m.input.letters = nil
	m.input.message = ""
	m.rounds++
	logging.LogRoundStart(m.opts.Layout.Name, m.opts.MaxGuesses)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewRound):
		m.startRound("")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.game.State() != game.StatePlaying {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
	case key.Matches(msg, m.keys.Delete):
		m.keyboard.Activate(keyboard.TokenBackspace)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]):
		m.keyboard.Activate(string(msg.Runes[0]))
	}
	return m, nil
}

func (m *Model) submit() {
	word := string(m.input.letters)
	row, state, err := m.game.Guess(word)
	if err != nil {
		m.input.message = guessErrorMessage(err)
		return
	}

	m.keyboard.ApplyFeedback(row.Word, row.Feedback())
	m.input.letters = nil

	switch state {
	case game.StateWon:
		m.input.message = fmt.Sprintf("Solved in %d! ctrl+n for a new round", len(m.game.Rows()))
	case game.StateLost:
		m.input.message = fmt.Sprintf("The word was %s. ctrl+n for a new round", strings.ToUpper(m.game.Answer()))
	default:
		m.input.message = ""
	}
}

func guessErrorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		return fmt.Sprintf("Not enough letters (need %d)", game.WordLength)
	case errors.Is(err, game.ErrNotInList):
		return "Not in word list"
	case errors.Is(err, game.ErrFinished):
		return "Round is over"
	default:
		return err.Error()
	}
}

// View implements tea.Model
func (m Model) View() string {
	width := m.Width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}

	sections := []string{
		TitleStyle.Render(fmt.Sprintf("%s  ·  round %d", AppName, m.rounds)),
		m.renderBoard(),
		ui.AttemptsBar(len(m.game.Rows()), m.game.MaxGuesses(), 40),
		MessageStyle.Render(ansi.Truncate(m.input.message, width-4, "…")),
		m.surface.View(),
	}
	if m.showHelp {
		sections = append(sections, HelpStyle.Render(m.help.View(m.keys)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m Model) renderBoard() string {
	rows := m.game.Rows()
	lines := make([]string, 0, m.game.MaxGuesses())

	for _, r := range rows {
		lines = append(lines, ui.RenderTiles([]rune(strings.ToUpper(r.Word)), r.Colors))
	}
	if m.game.State() == game.StatePlaying {
		current := make([]rune, game.WordLength)
		for i := range current {
			current[i] = ' '
		}
		copy(current, []rune(strings.ToUpper(string(m.input.letters))))
		lines = append(lines, ui.RenderTiles(current, nil))
	}
	for len(lines) < m.game.MaxGuesses() {
		lines = append(lines, ui.RenderTiles([]rune("     "), nil))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Typed returns the letters of the row being typed
func (m Model) Typed() string {
	return string(m.input.letters)
}

// Message returns the current status line
func (m Model) Message() string {
	return m.input.message
}

// Game returns the current round
func (m Model) Game() *game.Game {
	return m.game
}

// Keyboard returns the mounted keyboard
func (m Model) Keyboard() keyboard.Controller {
	return m.keyboard
}
