// dragonterm 在终端中运行飞龙模拟
//
// 用法:
//
//	go run ./cmd/dragonterm [--config data/game.yaml] [--seed 42] [--mute] [--spectate :8080]
//
// 空格/上方向键拍翅膀，彻底死亡后按空格重新开始，Esc 或 Ctrl+C 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/dragonegg/internal/audio"
	"github.com/decker502/dragonegg/pkg/config"
	"github.com/decker502/dragonegg/pkg/spectator"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	mute       = flag.Bool("mute", false, "关闭音效")
	logPath    = flag.String("log", "", "日志文件路径（终端被占用，默认丢弃日志）")
	spectate   = flag.String("spectate", "", "观战服务监听地址，如 :8080（默认关闭）")
	frameMs    = flag.Int("frame", 20, "帧间隔（毫秒）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dragonterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	player := audio.NewSpeakerPlayer(0.8)
	if !*mute {
		// 没有音频设备时静默运行
		if err := player.Init(); err != nil {
			log.Printf("[Term] Audio disabled: %v", err)
		}
	}
	defer player.Close()

	var hub *spectator.Hub
	if *spectate != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		hub = spectator.NewHub()
		go func() {
			if err := hub.Serve(ctx, *spectate); err != nil {
				log.Printf("[Term] %v", err)
			}
		}()
	}

	s := newSession(screen, cfg, player, hub, *seed)
	s.loop(time.Duration(*frameMs) * time.Millisecond)
	return nil
}

func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// newRandom 返回随机源，seed 为 0 时使用当前时间
func newRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
