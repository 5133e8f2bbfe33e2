package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"invaders/internal/config"
)

func main() {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
	log.Println("game ended")
}
