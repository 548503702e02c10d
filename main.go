package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pongcourt/game"
)

func main() {
	config := game.DefaultConfig()
	app, err := NewApp(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(config.CourtWidth), int(config.CourtHeight))
	ebiten.SetWindowTitle("Pong Court")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
