package events

// EventType 模拟层向外发布的事件类型
type EventType int

const (
	// EventScore 分数变化
	// 触发: 金币/彩蛋收集、通过闸门 | 载荷: Value = 当前分数
	EventScore EventType = iota

	// EventLives 剩余生命（彩蛋）变化
	// 触发: 收集彩蛋、死亡扣减 | 载荷: Value = 剩余生命
	EventLives

	// EventLevel 关卡变化
	// 触发: 里程碑滚出屏幕 | 载荷: Value = 当前关卡
	EventLevel

	// EventDead 飞龙死亡
	// 触发: 撞上障碍物、坠出走廊 | 载荷: Flag = true
	EventDead
)

// String 返回事件名
func (t EventType) String() string {
	switch t {
	case EventScore:
		return "score"
	case EventLives:
		return "lives"
	case EventLevel:
		return "level"
	case EventDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Event 一条事件
type Event struct {
	Type  EventType
	Value int  // score/lives/level 的数值
	Flag  bool // dead 的布尔值
}

// ScoreEvent 构造分数事件
func ScoreEvent(score int) Event { return Event{Type: EventScore, Value: score} }

// LivesEvent 构造生命事件
func LivesEvent(lives int) Event { return Event{Type: EventLives, Value: lives} }

// LevelEvent 构造关卡事件
func LevelEvent(level int) Event { return Event{Type: EventLevel, Value: level} }

// DeadEvent 构造死亡事件
func DeadEvent(dead bool) Event { return Event{Type: EventDead, Flag: dead} }
