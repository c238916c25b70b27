package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/world"
)

// canvas 终端绘制目标，tcell.Screen 满足该接口
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

var (
	skyStyle       = tcell.StyleDefault.Background(tcell.ColorDarkCyan)
	obstacleStyle  = tcell.StyleDefault.Background(tcell.ColorSlateGray)
	milestoneStyle = tcell.StyleDefault.Background(tcell.ColorSilver)
	coinStyle      = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorGold).Bold(true)
	flyerStyle     = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorRed).Bold(true)
	deadStyle      = tcell.StyleDefault.Background(tcell.ColorDarkCyan).Foreground(tcell.ColorGray)
	hudStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	bannerStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)

	eggColors = []tcell.Color{
		tcell.ColorWhite, tcell.ColorSalmon, tcell.ColorOrange,
		tcell.ColorYellow, tcell.ColorLightGreen, tcell.ColorLightBlue,
		tcell.ColorMediumPurple, tcell.ColorPink, tcell.ColorTan,
	}

	// coinGlyphs 按动画帧取字符，模拟旋转
	coinGlyphs = []rune{'O', '0', 'o', '|', 'o', '0'}
)

// grid 世界坐标到终端单元格的映射
//
// 第 0 行留给 HUD，其余行对应走廊高度。
type grid struct {
	cols, rows int
	cellW      float64 // 每列对应的世界宽度
	cellH      float64 // 每行对应的世界高度
}

func newGrid(cfg *config.GameConfig, cols, rows int) grid {
	g := grid{cols: cols, rows: rows}
	if cols > 0 {
		g.cellW = cfg.Corridor.Width / float64(cols)
	}
	if rows > 1 {
		g.cellH = cfg.Corridor.Height / float64(rows-1)
	}
	return g
}

// cell 返回世界点所在的单元格，越界时 ok 为 false
func (g grid) cell(screenX, y float64) (col, row int, ok bool) {
	if g.cellW == 0 || g.cellH == 0 {
		return 0, 0, false
	}
	col = int(math.Floor(screenX / g.cellW))
	row = 1 + int(math.Floor(y/g.cellH))
	ok = col >= 0 && col < g.cols && row >= 1 && row < g.rows
	return col, row, ok
}

// span 返回 [from, to) 世界区间覆盖的列范围（已裁剪）
func (g grid) span(from, to float64) (first, last int) {
	first = int(math.Floor(from / g.cellW))
	last = int(math.Ceil(to/g.cellW)) - 1
	if first < 0 {
		first = 0
	}
	if last >= g.cols {
		last = g.cols - 1
	}
	return first, last
}

// rowsOf 返回 [top, bottom) 世界高度覆盖的行范围（已裁剪）
func (g grid) rowsOf(top, bottom float64) (first, last int) {
	first = 1 + int(math.Floor(top/g.cellH))
	last = int(math.Ceil(bottom/g.cellH))
	if first < 1 {
		first = 1
	}
	if last >= g.rows {
		last = g.rows - 1
	}
	return first, last
}

func fill(c canvas, x0, y0, x1, y1 int, r rune, st tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.SetContent(x, y, r, nil, st)
		}
	}
}

func drawText(c canvas, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, st)
	}
}

// render 把快照绘制到终端
func render(c canvas, snap world.Snapshot, cfg *config.GameConfig, banner string) {
	cols, rows := c.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	g := newGrid(cfg, cols, rows)

	fill(c, 0, 0, cols-1, 0, ' ', hudStyle)
	fill(c, 0, 1, cols-1, rows-1, ' ', skyStyle)

	half := cfg.Obstacles.Width / 2
	for _, item := range snap.Items {
		switch item.Kind {
		case components.ItemObstacle:
			first, last := g.span(item.ScreenX-half, item.ScreenX+half)
			top, bottom := 0.0, item.Height
			if item.Side == components.SideBottom {
				top, bottom = cfg.Corridor.Height-item.Height, cfg.Corridor.Height
			}
			r0, r1 := g.rowsOf(top, bottom)
			if first <= last && r0 <= r1 {
				fill(c, first, r0, last, r1, ' ', obstacleStyle)
			}

		case components.ItemMilestone:
			first, last := g.span(item.ScreenX, item.ScreenX+config.MarkerDrawWidth)
			r0, r1 := g.rowsOf(config.MarkerDrawTop, cfg.Corridor.Height)
			if first <= last && r0 <= r1 {
				fill(c, first, r0, last, r1, '#', milestoneStyle)
			}

		case components.ItemCoin:
			if item.Collected {
				continue
			}
			if col, row, ok := g.cell(item.ScreenX, item.Y); ok {
				c.SetContent(col, row, coinGlyphs[item.Frame%len(coinGlyphs)], nil, coinStyle)
			}

		case components.ItemEgg:
			if item.Collected {
				continue
			}
			if col, row, ok := g.cell(item.ScreenX, item.Y); ok {
				st := skyStyle.Foreground(eggColors[item.Variant%len(eggColors)]).Bold(true)
				c.SetContent(col, row, '@', nil, st)
			}
		}
	}

	st, glyph := flyerStyle, '>'
	if snap.Flyer.Dead {
		st, glyph = deadStyle, 'x'
	}
	if col, row, ok := g.cell(snap.Flyer.ScreenX, snap.Flyer.Y); ok {
		c.SetContent(col, row, glyph, nil, st)
	}

	drawText(c, 0, 0, hudLine(snap), hudStyle)
	if banner != "" {
		x := (cols - len([]rune(banner))) / 2
		if x < 0 {
			x = 0
		}
		drawText(c, x, rows/2, banner, bannerStyle)
	}
}

func hudLine(snap world.Snapshot) string {
	return fmt.Sprintf(" Score %d  Eggs %d  Level %d ", snap.Score, snap.Lives, snap.Level)
}
