package config

// 布局配置常量
// 本文件定义了驱动层（窗口、终端）使用的画面参数，与模拟逻辑无关

const (
	// GameWindowWidth 逻辑屏幕宽度，与默认走廊宽度一致
	GameWindowWidth = 400

	// GameWindowHeight 逻辑屏幕高度，与默认走廊高度一致
	GameWindowHeight = 600

	// FlyerRadius 飞龙绘制半径（仅用于绘制，碰撞按点检测）
	FlyerRadius = 20.0

	// MarkerDrawWidth 里程碑石像绘制宽度
	MarkerDrawWidth = 487.0

	// MarkerDrawTop 里程碑石像顶部 Y
	MarkerDrawTop = 40.0

	// CoinFrames 金币动画帧数
	CoinFrames = 6

	// CoinFramesPerSecond 金币动画帧率
	CoinFramesPerSecond = 6.0
)

// AnimationFrame 根据时间戳（毫秒）计算金币动画帧
func AnimationFrame(timestamp float64) int {
	frame := int(CoinFramesPerSecond*timestamp/1000.0) % CoinFrames
	if frame < 0 {
		frame += CoinFrames
	}
	return frame
}

// ScreenX 将世界坐标X转换为屏幕坐标X
func ScreenX(worldX, offset float64) float64 {
	return worldX - offset
}
