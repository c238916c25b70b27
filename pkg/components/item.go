package components

import "fmt"

// ItemKind 世界实体的种类
//
// 种类集合是封闭的：碰撞测试与碰撞效果都对其做穷举 switch，
// 新增种类时编译器无法提醒，必须同步修改 entities 包中的两个分派函数。
type ItemKind int

const (
	ItemObstacle  ItemKind = iota // 闸门障碍物（上/下成对出现）
	ItemCoin                      // 金币
	ItemEgg                       // 彩蛋（额外生命）
	ItemMilestone                 // 里程碑石像（关卡结束标志）
)

// String 返回种类名称（用于日志和观战协议）
func (k ItemKind) String() string {
	switch k {
	case ItemObstacle:
		return "obstacle"
	case ItemCoin:
		return "coin"
	case ItemEgg:
		return "egg"
	case ItemMilestone:
		return "milestone"
	default:
		return "unknown"
	}
}

// MarshalText 以名称形式序列化（观战协议使用 JSON）
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 由名称解析种类
func (k *ItemKind) UnmarshalText(text []byte) error {
	for _, kind := range []ItemKind{ItemObstacle, ItemCoin, ItemEgg, ItemMilestone} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown item kind %q", text)
}

// ItemComponent 标记实体为世界物体，并记录其种类
type ItemComponent struct {
	Kind ItemKind
}

// ObstacleSide 障碍物朝向
type ObstacleSide int

const (
	SideTop    ObstacleSide = iota // 从走廊顶部向下延伸
	SideBottom                     // 从走廊底部向上延伸
)

// String 返回朝向名称
func (s ObstacleSide) String() string {
	if s == SideTop {
		return "top"
	}
	return "bottom"
}

// MarshalText 以名称形式序列化
func (s ObstacleSide) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 由名称解析朝向
func (s *ObstacleSide) UnmarshalText(text []byte) error {
	switch string(text) {
	case "top":
		*s = SideTop
	case "bottom":
		*s = SideBottom
	default:
		return fmt.Errorf("unknown obstacle side %q", text)
	}
	return nil
}

// ObstacleComponent 闸门障碍物数据
type ObstacleComponent struct {
	Height float64      // 障碍物从所在边缘延伸的高度
	Side   ObstacleSide // 所在边缘
}

// CollectibleComponent 可收集道具（金币、彩蛋）的状态
type CollectibleComponent struct {
	Collected bool // 一次性标记：false -> true，不会回退
	Variant   int  // 彩蛋外观编号 [0, EggVariants)，金币恒为 0
}

// MilestoneComponent 里程碑石像（纯视觉，不参与碰撞）
type MilestoneComponent struct{}
