package cli

import (
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/solution"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// BrowserModel - Interactive solution browser
// =============================================================================

// BrowserModel is the bubbletea model for paging through solutions.
type BrowserModel struct {
	Board     *grid.Board
	Solutions []*solution.Solution
	Count     *big.Int // total routings, may exceed len(Solutions)
	Cursor    int
	ShowBoard bool // show the bare puzzle instead of the current solution
}

// NewBrowserModel creates a browser over sols.
func NewBrowserModel(b *grid.Board, sols []*solution.Solution, count *big.Int) BrowserModel {
	return BrowserModel{Board: b, Solutions: sols, Count: count}
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "k", "up":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "j", "down", " ":
			if m.Cursor < len(m.Solutions)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if len(m.Solutions) > 0 {
				m.Cursor = len(m.Solutions) - 1
			}
		case "b":
			m.ShowBoard = !m.ShowBoard
		}
	}
	return m, nil
}

func (m BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Numberlink %dx%d", m.Board.Width(), m.Board.Height())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ navigate  b board  g/G first/last  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.ShowBoard:
		b.WriteString(listFrameStyle.Render(strings.TrimSuffix(renderBoard(m.Board), "\n")))
	case len(m.Solutions) == 0:
		b.WriteString(StyleWarning.Render("No routing connects the selected pairs"))
	default:
		sol := m.Solutions[m.Cursor]
		b.WriteString(listFrameStyle.Render(strings.TrimSuffix(renderSolution(sol), "\n")))
	}
	b.WriteString("\n\n")

	status := fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Solutions)), len(m.Solutions))
	if m.Count != nil && m.Count.Cmp(big.NewInt(int64(len(m.Solutions)))) > 0 {
		status += fmt.Sprintf(" of %s", m.Count)
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
