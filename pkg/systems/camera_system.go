package systems

import (
	"log"

	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/entities"
	"github.com/decker502/dragonegg/pkg/game"
)

// CameraSystem 管理滚动坐标系
//
// 镜头始终跟随飞龙：滚动偏移 = 飞龙X - 领先距离。
// 同时负责两件依赖滚动位置的事：发放通过闸门奖励、在保护期结束后启用物理。
type CameraSystem struct {
	gameState *game.GameState
	cfg       *config.GameConfig
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(gs *game.GameState, cfg *config.GameConfig) *CameraSystem {
	return &CameraSystem{
		gameState: gs,
		cfg:       cfg,
	}
}

// Follow 根据飞龙位置更新滚动偏移并返回新值
func (cs *CameraSystem) Follow(flyer *components.FlyerComponent) float64 {
	cs.gameState.ScrollOffset = flyer.X - cs.cfg.Flyer.LeadMargin
	return cs.gameState.ScrollOffset
}

// Update 执行每帧的镜头逻辑
//
// 执行流程：
//  1. 更新滚动偏移
//  2. 若最早的通过阈值已被越过，弹出并加分（每帧最多一个）
//  3. 滚动偏移超过启动距离后启用物理
func (cs *CameraSystem) Update(flyer *components.FlyerComponent, ctx entities.EffectContext) {
	offset := cs.Follow(flyer)

	if cs.gameState.PopPassReward(flyer.X) {
		ctx.AddScore(cs.cfg.Items.PassScore)
	}

	if !flyer.HasPhysics && offset > cs.cfg.Flyer.PhysicsBootstrap {
		flyer.HasPhysics = true
		log.Printf("[CameraSystem] Physics enabled at offset=%.1f", offset)
	}
}

// ToScreenX 世界坐标转换为屏幕坐标
func (cs *CameraSystem) ToScreenX(worldX float64) float64 {
	return config.ScreenX(worldX, cs.gameState.ScrollOffset)
}
