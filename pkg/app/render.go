package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/events"
	"github.com/decker502/dragonegg/pkg/world"
)

// bannerDurationMs 提示文字显示时长
const bannerDurationMs = 2000

var (
	skyColor       = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	obstacleColor  = color.RGBA{R: 84, G: 110, B: 122, A: 255}
	milestoneColor = color.RGBA{R: 158, G: 158, B: 158, A: 255}
	coinColor      = color.RGBA{R: 255, G: 213, B: 79, A: 255}
	flyerColor     = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	deadFlyerColor = color.RGBA{R: 97, G: 97, B: 97, A: 255}

	// eggColors 按彩蛋样式编号取色
	eggColors = []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, G: 138, B: 128, A: 255},
		{R: 255, G: 209, B: 128, A: 255},
		{R: 255, G: 255, B: 141, A: 255},
		{R: 185, G: 246, B: 202, A: 255},
		{R: 128, G: 216, B: 255, A: 255},
		{R: 179, G: 136, B: 255, A: 255},
		{R: 248, G: 187, B: 208, A: 255},
		{R: 188, G: 170, B: 164, A: 255},
	}
)

// drawWorld 绘制走廊、实体与飞龙
func drawWorld(screen *ebiten.Image, snap world.Snapshot, cfg *config.GameConfig) {
	screen.Fill(skyColor)

	halfWidth := cfg.Obstacles.Width / 2
	for _, item := range snap.Items {
		x := float32(item.ScreenX)
		switch item.Kind {
		case components.ItemObstacle:
			top := 0.0
			if item.Side == components.SideBottom {
				top = cfg.Corridor.Height - item.Height
			}
			vector.DrawFilledRect(screen, x-float32(halfWidth), float32(top),
				float32(cfg.Obstacles.Width), float32(item.Height), obstacleColor, false)

		case components.ItemCoin:
			if item.Collected {
				continue
			}
			// 以缩放模拟旋转动画
			phase := float32(item.Frame) / float32(config.CoinFrames)
			rx := float32(cfg.Items.CoinRadius) * (0.4 + 0.6*abs32(1-2*phase))
			drawEllipse(screen, x, float32(item.Y), rx, float32(cfg.Items.CoinRadius), coinColor)

		case components.ItemEgg:
			if item.Collected {
				continue
			}
			c := eggColors[item.Variant%len(eggColors)]
			r := float32(cfg.Items.EggRadius)
			drawEllipse(screen, x, float32(item.Y), r*0.75, r, c)

		case components.ItemMilestone:
			vector.DrawFilledRect(screen, x, config.MarkerDrawTop,
				config.MarkerDrawWidth, float32(cfg.Corridor.Height-config.MarkerDrawTop), milestoneColor, false)
		}
	}

	c := flyerColor
	if snap.Flyer.Dead {
		c = deadFlyerColor
	}
	vector.DrawFilledCircle(screen, float32(snap.Flyer.ScreenX), float32(snap.Flyer.Y), config.FlyerRadius, c, true)
}

// drawEllipse 通过缩放单位圆绘制椭圆
func drawEllipse(screen *ebiten.Image, cx, cy, rx, ry float32, c color.Color) {
	var path vector.Path
	path.Arc(0, 0, 1, 0, 2*math.Pi, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].DstX = cx + vs[i].DstX*rx
		vs[i].DstY = cy + vs[i].DstY*ry
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, fillSource(), op)
}

var whitePixel *ebiten.Image

func fillSource() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// drawHUD 绘制分数、彩蛋与关卡
func drawHUD(screen *ebiten.Image, snap world.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Eggs: %d", snap.Lives), 8, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), 8, 40)
}

// banner 根据事件显示短暂的提示文字
type banner struct {
	clock   func() float64
	text    string
	until   float64
	pending bool // 已收到 dead 事件，等待 lives 事件决定文案
}

func (b *banner) attach(bus *events.Bus, clock func() float64) {
	b.clock = clock
	bus.Subscribe(events.EventDead, func(ev events.Event) {
		b.pending = ev.Flag
	})
	bus.Subscribe(events.EventLives, func(ev events.Event) {
		if !b.pending {
			return
		}
		b.pending = false
		if ev.Value > 0 {
			b.show("Respawn from egg!")
		} else {
			b.show("Completely died!")
		}
	})
	bus.Subscribe(events.EventLevel, func(ev events.Event) {
		if ev.Value > 1 {
			b.show(fmt.Sprintf("Level %d", ev.Value))
		}
	})
}

func (b *banner) show(text string) {
	b.text = text
	b.until = b.clock() + bannerDurationMs
}

func (b *banner) draw(screen *ebiten.Image, now float64, terminal bool) {
	if terminal {
		ebitenutil.DebugPrintAt(screen, "Completely died! Press space to restart", 60, config.GameWindowHeight/2)
		return
	}
	if b.text == "" || now > b.until {
		return
	}
	ebitenutil.DebugPrintAt(screen, b.text, config.GameWindowWidth/2-len(b.text)*3, config.GameWindowHeight/2)
}
