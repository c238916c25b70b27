package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/dragonegg/pkg/app"
	"github.com/decker502/dragonegg/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	spectate   = flag.String("spectate", "", "观战服务监听地址，如 :8080（默认关闭）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何资源加载之前
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		SpectateAddr: *spectate,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowTitle("Dragon Egg Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	gameApp.ApplySettings()

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Shutdown(); err != nil {
		log.Printf("[Main] %v", err)
	}
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
