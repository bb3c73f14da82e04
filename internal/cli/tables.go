package cli

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleNumber
			}
			return StyleValue
		})
}

func joinBranches(bs []lineage.Branch) string {
	s := make([]string, len(bs))
	for i, b := range bs {
		s[i] = string(b)
	}
	return strings.Join(s, " → ")
}

func listBranches(bs []lineage.Branch) string {
	s := make([]string, len(bs))
	for i, b := range bs {
		s[i] = string(b)
	}
	return strings.Join(s, ", ")
}

// pathsTable lists root-to-leaf paths with their lengths.
func pathsTable(t *lineage.Tree, paths []lineage.Path) string {
	tbl := newTable("#", "Path", "Leaf", "Length")
	for i, p := range paths {
		length, _ := t.PathLength(p)
		tbl.Row(strconv.Itoa(i), joinBranches(p), string(p.Leaf()), strconv.Itoa(length))
	}
	return tbl.Render()
}

// timesTable lists every branch with its duration and absolute interval,
// in breadth-first order.
func timesTable(t *lineage.Tree, times map[lineage.Branch]lineage.Interval) string {
	tbl := newTable("Branch", "Parent", "Duration", "Start", "End")
	for _, b := range t.Branches() {
		parent, _, _ := t.Parent(b)
		d, _ := t.Duration(b)
		iv := times[b]
		tbl.Row(string(b), string(parent), strconv.Itoa(d), strconv.Itoa(iv.Start), strconv.Itoa(iv.End))
	}
	return tbl.Render()
}

// zonesTable lists timezones with the branches alive in each.
func zonesTable(zones []lineage.Zone) string {
	tbl := newTable("#", "Start", "End", "Points", "Branches")
	for i, z := range zones {
		tbl.Row(strconv.Itoa(i), strconv.Itoa(z.Start), strconv.Itoa(z.End), strconv.Itoa(z.Len()), listBranches(z.Branches))
	}
	return tbl.Render()
}

// parallelTable lists parents with their sibling groups, sorted by parent.
func parallelTable(groups map[lineage.Branch][]lineage.Branch) string {
	tbl := newTable("Parent", "Children")
	for _, p := range slices.Sorted(maps.Keys(groups)) {
		tbl.Row(string(p), listBranches(groups[p]))
	}
	return tbl.Render()
}

// indexRuns compresses a timezone index into "start-end:zone" runs.
func indexRuns(index []int) string {
	var b strings.Builder
	for start := 0; start < len(index); {
		end := start
		for end+1 < len(index) && index[end+1] == index[start] {
			end++
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(start))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(end))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(index[start]))
		start = end + 1
	}
	return b.String()
}
