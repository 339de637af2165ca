package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescramble"
	"github.com/SeamusWaldron/cubescramble/internal/notation"
)

var (
	stepSize  int
	stepSpeed float64
	stepAuto  bool
)

var stepCmd = &cobra.Command{
	Use:   "step [event] [scramble...]",
	Short: "Step through a scramble move by move",
	Long: `Replay a scramble one move at a time in the terminal.

Usage:
  cubescramble step 333 "R U R' U'"          # Step manually
  cubescramble step 444 --auto "Rw U2 3Fw"   # Play automatically
  cubescramble step 555 --auto --speed 4 ...  # Play at 4 moves per second`,
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
	stepCmd.Flags().IntVar(&stepSize, "size", 0, "Cube order, instead of an event code")
	stepCmd.Flags().Float64VarP(&stepSpeed, "speed", "s", 1.0, "Moves per second in auto mode")
	stepCmd.Flags().BoolVarP(&stepAuto, "auto", "a", false, "Start playing automatically")
}

func runStep(cmd *cobra.Command, args []string) error {
	event, size, scramble, err := puzzleArgs(args, stepSize, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts, err := puzzleOptions()
	if err != nil {
		return err
	}
	stepper, err := cubescramble.NewStepper(size, scramble, opts...)
	if err != nil {
		return err
	}

	model := newStepModel(event, stepper, stepSpeed, stepAuto)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("step error: %w", err)
	}

	return nil
}

// Step model
type stepModel struct {
	title    string
	stepper  *cubescramble.Stepper
	speed    float64
	playing  bool
	plain    bool
	quitting bool
}

type stepTickMsg time.Time

func newStepModel(event string, s *cubescramble.Stepper, speed float64, auto bool) *stepModel {
	size := s.Puzzle().Size()
	title := fmt.Sprintf("%dx%d", size, size)
	if event != "" {
		title = event + " " + title
	}
	if speed <= 0 {
		speed = 1
	}
	return &stepModel{
		title:   title,
		stepper: s,
		speed:   speed,
		playing: auto,
	}
}

func (m *stepModel) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m *stepModel) tick() tea.Cmd {
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return stepTickMsg(t)
	})
}

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "right", "l", "n", " ":
			m.playing = false
			m.stepper.Forward()

		case "left", "h", "b":
			m.playing = false
			m.stepper.Back()

		case "home", "r":
			m.playing = false
			m.stepper.Reset()

		case "end", "e":
			m.playing = false
			m.stepper.Seek(m.stepper.Len())

		case "p", "a":
			m.playing = !m.playing
			if m.playing {
				if m.stepper.Done() {
					m.stepper.Reset()
				}
				return m, m.tick()
			}

		case "t":
			m.plain = !m.plain

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-":
			m.speed = max(m.speed/2, 0.25)
		}

	case stepTickMsg:
		if !m.playing {
			return m, nil
		}
		if !m.stepper.Forward() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *stepModel) View() string {
	if m.quitting {
		return "Done.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Scramble " + m.title))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Move %d/%d", m.stepper.Position(), m.stepper.Len())
	if m.playing {
		status += fmt.Sprintf(" [PLAYING %.2gx]", m.speed)
	}
	if m.stepper.Done() && m.stepper.Len() > 0 {
		status += " [END]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	// Full scramble with the last applied move highlighted
	moves := m.stepper.Moves()
	if len(moves) > 0 {
		parts := make([]string, len(moves))
		for i, mv := range moves {
			switch {
			case i == m.stepper.Position()-1:
				parts[i] = currentMoveStyle.Render(mv.Notation())
			case i < m.stepper.Position():
				parts[i] = moveStyle.Render(mv.Notation())
			default:
				parts[i] = statusStyle.Render(mv.Notation())
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	if last, ok := m.stepper.Last(); ok {
		b.WriteString(statusStyle.Render("Last: " + notation.Describe(last)))
	}
	b.WriteString("\n\n")

	p := m.stepper.Puzzle()
	if m.plain {
		b.WriteString(p.String())
	} else {
		b.WriteString(p.Terminal())
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("→/n=next  ←/b=back  r=reset  e=end  p=play  +/-=speed  t=text  q=quit"))
	b.WriteString("\n")

	return b.String()
}
