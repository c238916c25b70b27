package game

import (
	"fmt"

	"github.com/decker502/dragonegg/pkg/config"
)

// Phase 飞龙的生死状态
type Phase int

const (
	PhaseRunning       Phase = iota // 正常飞行
	PhaseDeadWithLives              // 已死亡，仍有彩蛋可重生（瞬时状态）
	PhaseDeadTerminal               // 彩蛋耗尽，模拟停止
)

// String 返回状态名称
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseDeadWithLives:
		return "dead_with_lives"
	case PhaseDeadTerminal:
		return "dead_terminal"
	default:
		return "unknown"
	}
}

// MarshalText 以名称形式序列化
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 由名称解析状态
func (p *Phase) UnmarshalText(text []byte) error {
	for _, phase := range []Phase{PhaseRunning, PhaseDeadWithLives, PhaseDeadTerminal} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// GameState 存储一局游戏的全部跨帧状态
//
// 由 World 独占持有，不再是全局单例：终止状态记录在 Phase 中，
// 驱动层通过 World.IsTerminal() 检查，而不是轮询全局标志。
type GameState struct {
	Score int // 当前分数，单调不减
	Lives int // 剩余彩蛋（生命），下限为 0
	Level int // 当前关卡，从 1 开始

	// 滚动与生成
	ScrollOffset     float64   // 世界到屏幕的平移量 = 飞龙X - 领先距离
	NextSpawnX       float64   // 下一次评估生成的滚动阈值
	ObstaclesCreated int       // 本关已生成的闸门数
	PassRewards      []float64 // 通过奖励阈值队列（FIFO，升序）

	Phase Phase

	// 帧时间
	LastTimestamp float64 // 上一帧时间戳（毫秒）
	HasTimestamp  bool    // 是否已记录过时间戳

	maxLives int
}

// NewGameState 根据配置创建初始游戏状态
func NewGameState(cfg *config.GameConfig) *GameState {
	return &GameState{
		Score:       0,
		Lives:       cfg.Run.StartLives,
		Level:       cfg.Run.StartLevel,
		NextSpawnX:  cfg.Obstacles.InitialSpawnX,
		PassRewards: make([]float64, 0),
		Phase:       PhaseRunning,
		maxLives:    cfg.Run.MaxLives,
	}
}

// AddScore 增加分数并返回新值
func (gs *GameState) AddScore(amount int) int {
	if amount > 0 {
		gs.Score += amount
	}
	return gs.Score
}

// AddLives 增加生命，带上限检查，返回新值
func (gs *GameState) AddLives(amount int) int {
	gs.Lives += amount
	if gs.maxLives > 0 && gs.Lives > gs.maxLives {
		gs.Lives = gs.maxLives
	}
	return gs.Lives
}

// LoseLife 扣除一条生命（不低于 0），返回剩余生命
func (gs *GameState) LoseLife() int {
	if gs.Lives > 0 {
		gs.Lives--
	}
	return gs.Lives
}

// IsTerminal 返回是否已进入终止状态
func (gs *GameState) IsTerminal() bool {
	return gs.Phase == PhaseDeadTerminal
}

// PushPassReward 追加一个通过奖励阈值
func (gs *GameState) PushPassReward(x float64) {
	gs.PassRewards = append(gs.PassRewards, x)
}

// PopPassReward 若最早的通过阈值已被越过则弹出并返回 true
//
// 每次调用最多弹出一个阈值。
func (gs *GameState) PopPassReward(flyerX float64) bool {
	if len(gs.PassRewards) == 0 || flyerX < gs.PassRewards[0] {
		return false
	}
	gs.PassRewards = gs.PassRewards[1:]
	return true
}

// ResetProgress 清空本关的生成进度（重生与换关共用）
func (gs *GameState) ResetProgress(nextSpawnX float64) {
	gs.NextSpawnX = nextSpawnX
	gs.ObstaclesCreated = 0
	gs.PassRewards = gs.PassRewards[:0]
}

// RecordTimestamp 记录本帧时间戳，返回与上一帧的间隔
//
// 返回:
//   - elapsed: 与上一帧的毫秒间隔
//   - ok: 是否存在上一帧（首帧为 false）
func (gs *GameState) RecordTimestamp(timestamp float64) (elapsed float64, ok bool) {
	ok = gs.HasTimestamp
	if ok {
		elapsed = timestamp - gs.LastTimestamp
	}
	gs.LastTimestamp = timestamp
	gs.HasTimestamp = true
	return elapsed, ok
}
