package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏模拟调参配置
//
// 包含走廊尺寸、飞龙物理、障碍物生成、道具与得分、生命/关卡规则。
// 所有距离单位为世界坐标像素，速度单位为 像素/秒，时间单位为毫秒。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Corridor  CorridorConfig `yaml:"corridor"`
	Flyer     FlyerConfig    `yaml:"flyer"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Items     ItemConfig     `yaml:"items"`
	Run       RunConfig      `yaml:"run"`
}

// CorridorConfig 走廊（可见窗口）尺寸
type CorridorConfig struct {
	Width  float64 `yaml:"width"`  // 可见窗口宽度
	Height float64 `yaml:"height"` // 走廊高度，飞龙 Y 超过此值视为坠落
}

// FlyerConfig 飞龙物理参数
type FlyerConfig struct {
	StartY           float64 `yaml:"startY"`           // 出生航道 Y
	Speed            float64 `yaml:"speed"`            // 水平前进速度
	InitialVY        float64 `yaml:"initialVY"`        // 初始垂直速度（向上为正）
	LiftVY           float64 `yaml:"liftVY"`           // 拍翅膀后的垂直速度
	Gravity          float64 `yaml:"gravity"`          // 重力加速度
	UnitScale        float64 `yaml:"unitScale"`        // 毫秒到秒的换算系数
	LeadMargin       float64 `yaml:"leadMargin"`       // 飞龙距屏幕左边缘的距离
	PhysicsBootstrap float64 `yaml:"physicsBootstrap"` // 滚动偏移超过此值后启用重力
}

// ObstacleConfig 障碍物（闸门）生成参数
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`         // 障碍物宽度
	GapSize       float64 `yaml:"gapSize"`       // 上下障碍物之间的通道高度
	MinGap        float64 `yaml:"minGap"`        // 高度随机范围的保留余量
	Spacing       float64 `yaml:"spacing"`       // 相邻闸门的间距
	InitialSpawnX float64 `yaml:"initialSpawnX"` // 开局时的首个生成阈值
	ResetSpawnX   float64 `yaml:"resetSpawnX"`   // 重生/换关后的生成阈值
	SpawnSentinel float64 `yaml:"spawnSentinel"` // 放置里程碑后生成阈值的推进量
	PairsPerLevel int     `yaml:"pairsPerLevel"` // 每关每级的闸门数量系数（配额 = 系数 × 关卡）
}

// ItemConfig 道具与得分参数
type ItemConfig struct {
	CoinRadius      float64 `yaml:"coinRadius"`
	EggRadius       float64 `yaml:"eggRadius"`
	EggVariants     int     `yaml:"eggVariants"`
	EggLift         float64 `yaml:"eggLift"`    // 蛋相对下方障碍物顶端的抬升量
	CoinMargin      float64 `yaml:"coinMargin"` // 金币距走廊上下边缘的最小距离
	CoinScore       int     `yaml:"coinScore"`
	EggScore        int     `yaml:"eggScore"`
	PassScore       int     `yaml:"passScore"`
	EarlyProgress   float64 `yaml:"earlyProgress"` // 滚动偏移小于此值时使用前期概率
	EarlyCoinChance float64 `yaml:"earlyCoinChance"`
	EarlyEggChance  float64 `yaml:"earlyEggChance"`
	LateCoinChance  float64 `yaml:"lateCoinChance"`
	LateEggChance   float64 `yaml:"lateEggChance"`
}

// RunConfig 生命、关卡与帧时间规则
type RunConfig struct {
	StartLives   int     `yaml:"startLives"`
	MaxLives     int     `yaml:"maxLives"`
	StartLevel   int     `yaml:"startLevel"`
	DebounceMs   float64 `yaml:"debounceMs"`   // 小于等于此间隔的帧被忽略
	MaxElapsedMs float64 `yaml:"maxElapsedMs"` // 单帧最大步长，0 表示不限制
}

// DefaultGameConfig 返回默认配置（与 data/game.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Corridor: CorridorConfig{
			Width:  400,
			Height: 600,
		},
		Flyer: FlyerConfig{
			StartY:           300,
			Speed:            100,
			InitialVY:        200,
			LiftVY:           400,
			Gravity:          900,
			UnitScale:        0.001,
			LeadMargin:       90,
			PhysicsBootstrap: 100,
		},
		Obstacles: ObstacleConfig{
			Width:         100,
			GapSize:       150,
			MinGap:        100,
			Spacing:       400,
			InitialSpawnX: -90,
			ResetSpawnX:   0,
			SpawnSentinel: 100000,
			PairsPerLevel: 2,
		},
		Items: ItemConfig{
			CoinRadius:      30,
			EggRadius:       40,
			EggVariants:     9,
			EggLift:         30,
			CoinMargin:      40,
			CoinScore:       5,
			EggScore:        50,
			PassScore:       10,
			EarlyProgress:   300,
			EarlyCoinChance: 0.5,
			EarlyEggChance:  0.5,
			LateCoinChance:  0.25,
			LateEggChance:   0.1,
		},
		Run: RunConfig{
			StartLives:   3,
			MaxLives:     9,
			StartLevel:   1,
			DebounceMs:   15,
			MaxElapsedMs: 0,
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
//
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据为游戏配置（用于嵌入资源）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Corridor.Width <= 0 {
		return fmt.Errorf("corridor.width must be > 0, got %v", c.Corridor.Width)
	}
	if c.Corridor.Height <= 0 {
		return fmt.Errorf("corridor.height must be > 0, got %v", c.Corridor.Height)
	}
	if c.Flyer.UnitScale <= 0 {
		return fmt.Errorf("flyer.unitScale must be > 0, got %v", c.Flyer.UnitScale)
	}
	if c.Flyer.Speed < 0 {
		return fmt.Errorf("flyer.speed must be >= 0, got %v", c.Flyer.Speed)
	}

	// 高度随机范围必须非负：H - minGap - gapSize >= 0
	if c.Obstacles.GapSize <= 0 {
		return fmt.Errorf("obstacles.gapSize must be > 0, got %v", c.Obstacles.GapSize)
	}
	if c.Corridor.Height-c.Obstacles.MinGap-c.Obstacles.GapSize < 0 {
		return fmt.Errorf("obstacles.minGap + obstacles.gapSize (%v) exceeds corridor.height (%v)",
			c.Obstacles.MinGap+c.Obstacles.GapSize, c.Corridor.Height)
	}
	if c.Obstacles.Width <= 0 {
		return fmt.Errorf("obstacles.width must be > 0, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.Spacing <= 0 {
		return fmt.Errorf("obstacles.spacing must be > 0, got %v", c.Obstacles.Spacing)
	}
	if c.Obstacles.PairsPerLevel < 1 {
		return fmt.Errorf("obstacles.pairsPerLevel must be >= 1, got %d", c.Obstacles.PairsPerLevel)
	}
	if c.Obstacles.SpawnSentinel <= c.Obstacles.Spacing {
		return fmt.Errorf("obstacles.spawnSentinel must be > spacing, got %v", c.Obstacles.SpawnSentinel)
	}

	if c.Items.EggVariants < 1 {
		return fmt.Errorf("items.eggVariants must be >= 1, got %d", c.Items.EggVariants)
	}
	if c.Items.CoinRadius <= 0 || c.Items.EggRadius <= 0 {
		return fmt.Errorf("item radii must be > 0, got coin=%v egg=%v", c.Items.CoinRadius, c.Items.EggRadius)
	}
	if 2*c.Items.CoinMargin > c.Corridor.Height {
		return fmt.Errorf("items.coinMargin (%v) too large for corridor.height (%v)", c.Items.CoinMargin, c.Corridor.Height)
	}
	for _, chance := range []struct {
		name  string
		value float64
	}{
		{"earlyCoinChance", c.Items.EarlyCoinChance},
		{"earlyEggChance", c.Items.EarlyEggChance},
		{"lateCoinChance", c.Items.LateCoinChance},
		{"lateEggChance", c.Items.LateEggChance},
	} {
		if chance.value < 0 || chance.value > 1 {
			return fmt.Errorf("items.%s must be between 0 and 1, got %v", chance.name, chance.value)
		}
	}

	if c.Run.StartLives < 0 {
		return fmt.Errorf("run.startLives must be >= 0, got %d", c.Run.StartLives)
	}
	if c.Run.MaxLives < c.Run.StartLives {
		return fmt.Errorf("run.maxLives (%d) must be >= run.startLives (%d)", c.Run.MaxLives, c.Run.StartLives)
	}
	if c.Run.StartLevel < 1 {
		return fmt.Errorf("run.startLevel must be >= 1, got %d", c.Run.StartLevel)
	}
	if c.Run.DebounceMs < 0 {
		return fmt.Errorf("run.debounceMs must be >= 0, got %v", c.Run.DebounceMs)
	}
	if c.Run.MaxElapsedMs < 0 {
		return fmt.Errorf("run.maxElapsedMs must be >= 0, got %v", c.Run.MaxElapsedMs)
	}
	if c.Run.MaxElapsedMs > 0 && c.Run.MaxElapsedMs <= c.Run.DebounceMs {
		return fmt.Errorf("run.maxElapsedMs (%v) must exceed run.debounceMs (%v)", c.Run.MaxElapsedMs, c.Run.DebounceMs)
	}

	return nil
}

// ObstacleQuota 返回指定关卡的闸门配额
func (c *GameConfig) ObstacleQuota(level int) int {
	return c.Obstacles.PairsPerLevel * level
}

// MaxObstacleHeight 返回上方障碍物高度的随机上限（不含）
func (c *GameConfig) MaxObstacleHeight() float64 {
	return c.Corridor.Height - c.Obstacles.MinGap - c.Obstacles.GapSize
}

// PairHeightSum 返回一对障碍物高度之和（走廊高度减去通道高度）
func (c *GameConfig) PairHeightSum() float64 {
	return c.Corridor.Height - c.Obstacles.GapSize
}
