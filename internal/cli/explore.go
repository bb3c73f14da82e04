package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	perrors "github.com/scottgigante/prosstt/pkg/errors"
	"github.com/scottgigante/prosstt/pkg/lineage"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the interactive timezone browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore FILE",
		Short: "Browse timezones and the branches alive in each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			top, err := c.loadTopology(args[0])
			if err != nil {
				return err
			}
			m, err := NewZoneListModel(top.Tree)
			if err != nil {
				return perrors.FromLineage(err)
			}

			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
}

// ZoneListModel is the bubbletea model for browsing timezones.
type ZoneListModel struct {
	Zones  []lineage.Zone
	Times  map[lineage.Branch]lineage.Interval
	Cursor int
	Height int
	Offset int
}

// NewZoneListModel computes the zones of t and starts on the first one.
func NewZoneListModel(t *lineage.Tree) (ZoneListModel, error) {
	zones, err := t.Zones()
	if err != nil {
		return ZoneListModel{}, err
	}
	times, err := t.BranchTimes()
	if err != nil {
		return ZoneListModel{}, err
	}
	return ZoneListModel{Zones: zones, Times: times, Height: 10}, nil
}

func (m ZoneListModel) Init() tea.Cmd {
	return nil
}

func (m ZoneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(m.Cursor - 1)
		case "down", "j":
			m.move(m.Cursor + 1)
		case "home", "g":
			m.move(0)
		case "end", "G":
			m.move(len(m.Zones) - 1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 3)
		m.move(m.Cursor)
	}
	return m, nil
}

// move places the cursor at i, clamped to the zone list, and scrolls the
// window so the cursor stays visible.
func (m *ZoneListModel) move(i int) {
	m.Cursor = max(0, min(i, len(m.Zones)-1))
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ZoneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Timezones"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Zones))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		z := m.Zones[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = iconCursor
		}
		rows = append(rows, []string{cursor, strconv.Itoa(i), z.Interval.String(), strconv.Itoa(z.Len()), strconv.Itoa(len(z.Branches))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "#", "Interval", "Points", "Alive").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if len(m.Zones) > 0 {
		z := m.Zones[m.Cursor]
		b.WriteString(StyleTitle.Render(fmt.Sprintf("Zone %d %s", m.Cursor, z.Interval)))
		b.WriteString("\n")
		for _, br := range z.Branches {
			b.WriteString("  " + StyleHighlight.Render(string(br)) + " " + listDimStyle.Render(m.Times[br].String()) + "\n")
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Zones))))

	return b.String()
}
