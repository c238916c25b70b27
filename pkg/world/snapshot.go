package world

import (
	"github.com/decker502/dragonegg/pkg/components"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/ecs"
	"github.com/decker502/dragonegg/pkg/game"
)

// FlyerView 飞龙的绘制数据
type FlyerView struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	ScreenX float64 `json:"screenX"`
	VY      float64 `json:"vy"`
	Dead    bool    `json:"dead"`
}

// ItemView 单个实体的绘制数据
type ItemView struct {
	ID        ecs.EntityID            `json:"id"`
	Kind      components.ItemKind     `json:"kind"`
	X         float64                 `json:"x"`
	Y         float64                 `json:"y"`
	ScreenX   float64                 `json:"screenX"`
	Height    float64                 `json:"height,omitempty"`
	Side      components.ObstacleSide `json:"side"`
	Collected bool                    `json:"collected,omitempty"`
	Variant   int                     `json:"variant,omitempty"`
	Frame     int                     `json:"frame,omitempty"`
}

// Snapshot 某一时刻的世界快照，渲染层据此绘制
type Snapshot struct {
	Timestamp    float64    `json:"t"`
	ScrollOffset float64    `json:"offset"`
	Flyer        FlyerView  `json:"flyer"`
	Items        []ItemView `json:"items"`
	Score        int        `json:"score"`
	Lives        int        `json:"lives"`
	Level        int        `json:"level"`
	Phase        game.Phase `json:"phase"`
}

// Snapshot 生成绘制快照
//
// 只包含屏幕附近的障碍物；金币的动画帧由时间戳决定。
func (w *World) Snapshot(timestamp float64) Snapshot {
	offset := w.gameState.ScrollOffset
	snap := Snapshot{
		Timestamp:    timestamp,
		ScrollOffset: offset,
		Flyer: FlyerView{
			X:       w.flyer.X,
			Y:       w.flyer.Y,
			ScreenX: w.camera.ToScreenX(w.flyer.X),
			VY:      w.flyer.VY,
			Dead:    w.flyer.Dead,
		},
		Items: make([]ItemView, 0, w.entityManager.Len()),
		Score: w.gameState.Score,
		Lives: w.gameState.Lives,
		Level: w.gameState.Level,
		Phase: w.gameState.Phase,
	}

	for _, id := range w.entityManager.Entities() {
		view, ok := w.itemView(id, timestamp)
		if ok {
			snap.Items = append(snap.Items, view)
		}
	}

	return snap
}

func (w *World) itemView(id ecs.EntityID, timestamp float64) (ItemView, bool) {
	em := w.entityManager
	item, ok := ecs.GetComponent[*components.ItemComponent](em, id)
	if !ok {
		return ItemView{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return ItemView{}, false
	}

	view := ItemView{
		ID:      id,
		Kind:    item.Kind,
		X:       pos.X,
		Y:       pos.Y,
		ScreenX: w.camera.ToScreenX(pos.X),
	}

	switch item.Kind {
	case components.ItemObstacle:
		if !w.visible(view.ScreenX) {
			return ItemView{}, false
		}
		if obs, ok := ecs.GetComponent[*components.ObstacleComponent](em, id); ok {
			view.Height = obs.Height
			view.Side = obs.Side
		}

	case components.ItemCoin:
		if c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id); ok {
			view.Collected = c.Collected
		}
		view.Frame = config.AnimationFrame(timestamp)

	case components.ItemEgg:
		if c, ok := ecs.GetComponent[*components.CollectibleComponent](em, id); ok {
			view.Collected = c.Collected
			view.Variant = c.Variant
		}

	case components.ItemMilestone:
	}

	return view, true
}

// visible 障碍物在屏幕左右各放宽一个障碍物宽度的范围内才绘制
func (w *World) visible(screenX float64) bool {
	margin := w.cfg.Obstacles.Width
	return screenX >= -margin && screenX <= w.cfg.Corridor.Width+margin
}
