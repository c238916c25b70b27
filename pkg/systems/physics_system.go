package systems

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
)

// PhysicsSystem 推进飞龙的运动
//
// 水平方向恒速前进；启用物理后垂直方向受升力速度与重力影响。
// 所有时间以毫秒输入，乘以 UnitScale 换算为秒。
type PhysicsSystem struct {
	cfg *config.GameConfig
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

// Update 推进飞龙一帧
//
// 参数:
//   - flyer: 飞龙
//   - elapsedMs: 与上一帧的间隔（毫秒）
func (ps *PhysicsSystem) Update(flyer *components.FlyerComponent, elapsedMs float64) {
	dt := ps.cfg.Flyer.UnitScale * elapsedMs

	flyer.X += dt * ps.cfg.Flyer.Speed

	if flyer.HasPhysics {
		// Y 轴向下为正，VY 向上为正
		flyer.Y -= dt * flyer.VY
		flyer.VY -= dt * ps.cfg.Flyer.Gravity
	}
}

// Flap 拍翅膀：垂直速度设为升力值
//
// 任何时候都会成功；出生保护期内速度会保留到物理启用后才生效。
func (ps *PhysicsSystem) Flap(flyer *components.FlyerComponent) {
	flyer.VY = ps.cfg.Flyer.LiftVY
}

// HasFallen 返回飞龙是否坠出走廊底部
func (ps *PhysicsSystem) HasFallen(flyer *components.FlyerComponent) bool {
	return flyer.Y > ps.cfg.Corridor.Height
}

// PlaceAtStart 把飞龙放回起点航道
//
// 参数:
//   - full: true 时同时恢复初始垂直速度（换关）；false 时保留当前垂直速度（重生）
func (ps *PhysicsSystem) PlaceAtStart(flyer *components.FlyerComponent, full bool) {
	flyer.X = 0
	flyer.Y = ps.cfg.Flyer.StartY
	flyer.HasPhysics = false
	flyer.Dead = false
	if full {
		flyer.VY = ps.cfg.Flyer.InitialVY
	}
}

// NewFlyer 创建处于起点的飞龙
func (ps *PhysicsSystem) NewFlyer() *components.FlyerComponent {
	flyer := &components.FlyerComponent{}
	ps.PlaceAtStart(flyer, true)
	return flyer
}
