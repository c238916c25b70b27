package components

// FlyerComponent 玩家控制的飞龙
//
// 坐标为世界坐标，Y 轴向下为正；VY 向上为正（上升时 Y 减小）。
// 飞龙不进入实体序列，由 World 独占持有。
type FlyerComponent struct {
	X          float64 // 世界X，重置之间单调不减
	Y          float64
	VY         float64 // 垂直速度（向上为正）
	HasPhysics bool    // 重力与升力是否生效（出生保护期内为 false）
	Dead       bool
}
