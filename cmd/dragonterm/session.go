package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/dragonegg/internal/audio"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/events"
	"github.com/decker502/dragonegg/pkg/spectator"
	"github.com/decker502/dragonegg/pkg/world"
)

const bannerDurationMs = 2000

// snapshotEvery 每隔多少帧向观战端推送一次快照
const snapshotEvery = 5

// cuePlayer 播放音效
type cuePlayer interface {
	Play(c audio.Cue)
}

// session 一次终端游戏会话，彻底死亡后可重开
type session struct {
	screen tcell.Screen
	cfg    *config.GameConfig
	player cuePlayer
	hub    *spectator.Hub
	seed   int64

	world     *world.World
	start     time.Time
	now       float64
	muted     bool
	frames    int
	banner    string
	bannerEnd float64
	awaiting  bool // 收到 dead 事件，等待 lives 事件决定提示
}

func newSession(screen tcell.Screen, cfg *config.GameConfig, player cuePlayer, hub *spectator.Hub, seed int64) *session {
	s := &session{
		screen: screen,
		cfg:    cfg,
		player: player,
		hub:    hub,
		seed:   seed,
	}
	s.restart()
	return s
}

// restart 开始新的一局
func (s *session) restart() {
	s.world = world.NewWorld(s.cfg, newRandom(s.seed))
	s.start = time.Now()
	s.now = 0
	s.banner = ""

	bus := s.world.Bus()
	audio.NewTracker(s.cfg, func(c audio.Cue) {
		if !s.muted {
			s.player.Play(c)
		}
	}).Attach(bus)
	s.attachBanner(bus)
	if s.hub != nil {
		bus.SubscribeAll(s.hub.PublishEvent)
	}

	s.world.Start()
	log.Printf("[Term] New run started (seed=%d)", s.seed)
}

func (s *session) attachBanner(bus *events.Bus) {
	bus.Subscribe(events.EventDead, func(ev events.Event) {
		s.awaiting = ev.Flag
	})
	bus.Subscribe(events.EventLives, func(ev events.Event) {
		if !s.awaiting {
			return
		}
		s.awaiting = false
		if ev.Value > 0 {
			s.showBanner("Respawn from egg!")
		}
	})
	bus.Subscribe(events.EventLevel, func(ev events.Event) {
		if ev.Value > 1 {
			s.showBanner(fmt.Sprintf("Level %d", ev.Value))
		}
	})
}

func (s *session) showBanner(text string) {
	s.banner = text
	s.bannerEnd = s.now + bannerDurationMs
}

// currentBanner 返回当前应显示的提示文字
func (s *session) currentBanner() string {
	if s.world.IsTerminal() {
		return "Completely died! Press space to restart"
	}
	if s.banner == "" || s.now > s.bannerEnd {
		return ""
	}
	return s.banner
}

// loop 主循环：定时推进模拟，输入事件由独立 goroutine 转发
func (s *session) loop(frame time.Duration) {
	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
		}
	}
}

// handleInput 处理输入，返回 false 表示退出
func (s *session) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			s.flap()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'k', 'w':
				s.flap()
			case 'm':
				s.muted = !s.muted
			case 'q':
				return false
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *session) flap() {
	if s.world.IsTerminal() {
		s.restart()
		return
	}
	s.world.Flap()
}

func (s *session) tick() {
	s.now = float64(time.Since(s.start).Milliseconds())
	s.world.Update(s.now)
	s.frames++

	snap := s.world.Snapshot(s.now)
	if s.hub != nil && s.frames%snapshotEvery == 0 {
		s.hub.PublishSnapshot(snap)
	}

	render(s.screen, snap, s.cfg, s.currentBanner())
	s.screen.Show()
}
