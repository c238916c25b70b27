package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/world"
)

// memCanvas 记录写入的单元格
type memCanvas struct {
	cols, rows int
	cells      map[[2]int]rune
	styles     map[[2]int]tcell.Style
}

func newMemCanvas(cols, rows int) *memCanvas {
	return &memCanvas{
		cols:   cols,
		rows:   rows,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (m *memCanvas) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= m.cols || y >= m.rows {
		return
	}
	m.cells[[2]int{x, y}] = r
	m.styles[[2]int{x, y}] = st
}

func (m *memCanvas) Size() (int, int) { return m.cols, m.rows }

func (m *memCanvas) at(x, y int) rune { return m.cells[[2]int{x, y}] }

func (m *memCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.cols; x++ {
		r := m.at(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestGridCell(t *testing.T) {
	cfg := config.DefaultGameConfig()
	// 40 列 x 61 行：每列 10 像素，每行 10 像素
	g := newGrid(cfg, 40, 61)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 0, 0, 0, 1, true},
		{"flyer lane", 90, 300, 9, 31, true},
		{"last cell", 399, 599, 39, 60, true},
		{"left of screen", -1, 300, -1, 31, false},
		{"right of screen", 400, 300, 40, 31, false},
		{"below corridor", 100, 600, 10, 61, false},
		{"above corridor", 100, -5, 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := g.cell(tt.x, tt.y)
			if col != tt.col || row != tt.row || ok != tt.ok {
				t.Errorf("cell(%v, %v) = (%d, %d, %v), want (%d, %d, %v)",
					tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
			}
		})
	}
}

func TestGridSpanClipped(t *testing.T) {
	g := newGrid(config.DefaultGameConfig(), 40, 61)

	first, last := g.span(-50, 50)
	if first != 0 || last != 4 {
		t.Errorf("span(-50, 50) = (%d, %d), want (0, 4)", first, last)
	}
	first, last = g.span(350, 450)
	if first != 35 || last != 39 {
		t.Errorf("span(350, 450) = (%d, %d), want (35, 39)", first, last)
	}
	r0, r1 := g.rowsOf(0, 175)
	if r0 != 1 || r1 != 18 {
		t.Errorf("rowsOf(0, 175) = (%d, %d), want (1, 18)", r0, r1)
	}
}

func TestRenderSnapshot(t *testing.T) {
	cfg := config.DefaultGameConfig()
	snap := world.Snapshot{
		Flyer: world.FlyerView{ScreenX: 90, Y: 300},
		Items: []world.ItemView{
			{Kind: components.ItemObstacle, ScreenX: 200, Height: 100, Side: components.SideTop},
			{Kind: components.ItemObstacle, ScreenX: 200, Height: 350, Side: components.SideBottom},
			{Kind: components.ItemCoin, ScreenX: 300, Y: 400, Frame: 0},
			{Kind: components.ItemCoin, ScreenX: 310, Y: 400, Collected: true},
			{Kind: components.ItemEgg, ScreenX: 250, Y: 200, Variant: 3},
		},
		Score: 15,
		Lives: 2,
		Level: 1,
	}

	c := newMemCanvas(40, 61)
	render(c, snap, cfg, "")

	if got := c.at(9, 31); got != '>' {
		t.Errorf("flyer cell = %q, want '>'", got)
	}
	if got := c.at(30, 41); got != 'O' {
		t.Errorf("coin cell = %q, want 'O'", got)
	}
	if got := c.at(31, 41); got != ' ' {
		t.Errorf("collected coin should not be drawn, got %q", got)
	}
	if got := c.at(25, 21); got != '@' {
		t.Errorf("egg cell = %q, want '@'", got)
	}
	if c.styles[[2]int{15, 5}] != obstacleStyle {
		t.Error("top obstacle should cover column 15 row 5")
	}
	if c.styles[[2]int{15, 15}] == obstacleStyle {
		t.Error("gap between obstacles should be open")
	}
	if c.styles[[2]int{24, 50}] != obstacleStyle {
		t.Error("bottom obstacle should cover column 24 row 50")
	}
	if hud := c.row(0); !strings.Contains(hud, "Score 15") || !strings.Contains(hud, "Eggs 2") {
		t.Errorf("hud row = %q", hud)
	}
}

func TestRenderDeadFlyerAndBanner(t *testing.T) {
	cfg := config.DefaultGameConfig()
	snap := world.Snapshot{Flyer: world.FlyerView{ScreenX: 90, Y: 300, Dead: true}}

	c := newMemCanvas(40, 61)
	render(c, snap, cfg, "Level 2")

	if got := c.at(9, 31); got != 'x' {
		t.Errorf("dead flyer cell = %q, want 'x'", got)
	}
	if row := c.row(30); !strings.Contains(row, "Level 2") {
		t.Errorf("banner row = %q", row)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	c := newMemCanvas(10, 1)
	render(c, world.Snapshot{}, config.DefaultGameConfig(), "")
	if len(c.cells) != 0 {
		t.Errorf("nothing should be drawn on a one-row screen, got %d cells", len(c.cells))
	}
}
