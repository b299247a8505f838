package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/zucenko/homeward/sprite"
)

var menuLines = []string{
	"Press 1: Simple Level - Perfect for beginners",
	"Press 2: Medium Level - For experienced players",
	"Press 3: Hard Level - Ultimate maze challenge",
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	w, h := screen.Size()
	cx := w / 2
	screen.Fill(sprite.MenuColor)

	g.panel.Draw(screen, cx-300, 320, 600, 230)

	drawCentered(screen, "MAZE ADVENTURE", g.faces.Title, cx, 150, sprite.TextColor)
	drawCentered(screen, "Help the player find their way home!", g.faces.Subtitle, cx, 220, sprite.TextColor)
	drawCentered(screen, "Navigate through the maze to reach your house", g.faces.Body, cx, 270, sprite.TextColor)

	drawText(screen, "Select your challenge:", g.faces.Subtitle, cx-150, 340, sprite.TextColor)
	for i, line := range menuLines {
		drawText(screen, line, g.faces.Body, cx-250, 400+50*i, sprite.TextColor)
	}
	drawCentered(screen, "Arrows or WASD to walk, Esc for menu", g.faces.Small, cx, h-60, sprite.TextColor)
}

// mazeOrigin centres the maze on the screen.
func (g *Game) mazeOrigin(screen *ebiten.Image) (float64, float64) {
	w, h := screen.Size()
	s := g.ctrl.Session()
	px := float64(s.Grid.Size()) * s.CellSize()
	return (float64(w) - px) / 2, (float64(h) - px) / 2
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	s := g.ctrl.Session()
	screen.Fill(sprite.Background)
	ox, oy := g.mazeOrigin(screen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(g.maze, op)

	goal := s.Grid.Goal()
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox+float64(goal.X)*s.CellSize(), oy+float64(goal.Y)*s.CellSize())
	screen.DrawImage(g.house, op)

	at := s.DrawPosition()
	aw, ah := g.avatar.Size()
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox+at.X-float64(aw)/2, oy+at.Y-float64(ah)/2)
	screen.DrawImage(g.avatar, op)

	drawText(screen, fmt.Sprintf("Time: %.1f", s.Elapsed()), g.faces.Small, 10, 10, color.Black)

	if *debug {
		_, h := screen.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  cell %v  at %.1f,%.1f",
			ebiten.CurrentTPS(), s.Cell(), s.Position().X, s.Position().Y), 10, h-20)
	}
}

func (g *Game) drawFinished(screen *ebiten.Image) {
	w, h := screen.Size()
	cx, cy := w/2, h/2
	screen.Fill(sprite.Background)

	if g.backdrop != nil {
		ox, oy := g.mazeOrigin(screen)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox, oy)
		op.ColorM.Scale(1, 1, 1, .45)
		screen.DrawImage(g.backdrop, op)
	}

	drawCentered(screen, "Congratulations!", g.faces.Banner, cx, cy-60, color.Black)
	drawCentered(screen, fmt.Sprintf("Time: %.1f seconds", g.ctrl.FinalTime()), g.faces.Subtitle, cx, cy, color.Black)
	drawCentered(screen, "Press SPACE to play again", g.faces.Small, cx, cy+60, color.Black)
}
