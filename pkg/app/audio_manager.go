package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	cue "github.com/decker502/dragonegg/internal/audio"
	"github.com/decker502/dragonegg/pkg/game"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 为每个音效合成 PCM 并缓存播放器
//   - 从 SettingsManager 读取开关与音量
//   - 提供按音效播放的接口
type AudioManager struct {
	context         *audio.Context
	settingsManager *game.SettingsManager     // 可为 nil（使用默认设置）
	players         map[cue.Cue]*audio.Player // 音效播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，采样率必须为 AudioSampleRate；为 nil 时所有播放静默失败
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *game.SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[cue.Cue]*audio.Player),
	}
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(c cue.Cue) bool {
	if am.context == nil || !am.soundEnabled() {
		return false
	}

	player := am.getPlayer(c)
	if player == nil {
		return false
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", c, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量
// 已缓存的播放器立即应用新音量
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
		volume = am.settingsManager.GetSettings().SoundVolume
	}
	for _, player := range am.players {
		player.SetVolume(volume)
	}
}

// getPlayer 获取或创建播放器
func (am *AudioManager) getPlayer(c cue.Cue) *audio.Player {
	if player, ok := am.players[c]; ok {
		player.SetVolume(am.soundVolume())
		return player
	}

	// 以满音量合成，由播放器控制实际音量
	stream := cue.NewPCMStream(c, AudioSampleRate, 1)
	player, err := am.context.NewPlayer(stream)
	if err != nil {
		log.Printf("[AudioManager] Failed to create player for %s: %v", c, err)
		return nil
	}
	player.SetVolume(am.soundVolume())
	am.players[c] = player

	log.Printf("[AudioManager] Created player for %s (%d bytes)", c, stream.Length())
	return player
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return game.DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
