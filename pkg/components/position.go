package components

// PositionComponent 实体在世界坐标系中的锚点
//
// 障碍物只使用 X（中心线），道具使用 (X, Y) 作为圆心，里程碑只使用 X。
type PositionComponent struct {
	X float64
	Y float64
}
