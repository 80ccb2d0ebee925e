package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision points")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml and bounce scripts on change")
	player := flag.String("player", "", "player prefab in prefabs/ (player.yaml or player_composite.yaml)")
	bounce := flag.String("bounce", "", "bounce mode override: steered, damped or script")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("pogo")

	game, err := NewGame(Options{
		Debug:        *debug,
		Watch:        *watch,
		PlayerPrefab: *player,
		BounceMode:   *bounce,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
