package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"VoxelVision/internal/util"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(120, 170, 230, 255)) // céu

	a.drawScene()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseMenu()
	}

	rl.EndDrawing()
}

// drawScene renderiza o mundo 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera())

	a.renderer.Draw()

	if a.hasTarget {
		a.renderer.DrawSelection(a.target, a.Player.BreakProgress())
	}

	rl.EndMode3D()
}

// drawHUD desenha a mira, a hotbar e o painel de debug.
func (a *App) drawHUD() {
	a.drawCrosshair()
	a.drawHotbar()

	if a.Config.ShowDebugInfo {
		a.drawDebugPanel()
	}
}

func (a *App) drawCrosshair() {
	cx := int32(rl.GetScreenWidth()) / 2
	cy := int32(rl.GetScreenHeight()) / 2
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)
}

// drawHotbar desenha os slots de bloco na base da tela, com o selecionado
// em destaque.
func (a *App) drawHotbar() {
	const slotSize = int32(48)
	const pad = int32(6)

	n := int32(len(a.Player.Hotbar))
	total := n*slotSize + (n-1)*pad
	x := (int32(rl.GetScreenWidth()) - total) / 2
	y := int32(rl.GetScreenHeight()) - slotSize - 12

	for i, b := range a.Player.Hotbar {
		sx := x + int32(i)*(slotSize+pad)

		bg := rl.NewColor(0, 0, 0, 140)
		border := rl.NewColor(60, 60, 60, 255)
		if i == a.Player.Selected {
			border = rl.White
		}

		rl.DrawRectangle(sx, y, slotSize, slotSize, bg)
		rl.DrawRectangleLines(sx, y, slotSize, slotSize, border)
		rl.DrawText(fmt.Sprintf("%d", i+1), sx+4, y+2, 10, rl.LightGray)
		rl.DrawText(b.Name(), sx+4, y+slotSize-14, 10, rl.White)
	}
}

// drawDebugPanel mostra posição, chunk atual e contadores internos.
func (a *App) drawDebugPanel() {
	width := int32(300)
	height := int32(150)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	pos := a.Player.Pos
	chunk := util.WorldToBlockCoord(pos).Chunk()
	rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z), x+10, y+38, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Chunk: (%d, %d, %d)", chunk.X, chunk.Y, chunk.Z), x+10, y+56, 14, rl.White)

	rl.DrawText(fmt.Sprintf("Chunks: %d (GPU: %d)", a.store.Len(), a.renderer.ChunkCount()), x+10, y+78, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Re-mesh pendente: %d", a.store.PendingRemesh()), x+10, y+96, 14, rl.LightGray)

	if a.hasTarget {
		name := a.store.GetBlock(a.target.Block).Name()
		rl.DrawText(fmt.Sprintf("Mira: %s %s", name, a.target.Block), x+10, y+118, 14, rl.Gold)
	}
}

// drawPauseMenu escurece a tela e mostra as instruções de retomada.
func (a *App) drawPauseMenu() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, w, h, rl.NewColor(0, 0, 0, 120))

	title := "PAUSADO"
	size := int32(40)
	tw := rl.MeasureText(title, size)
	rl.DrawText(title, (w-tw)/2, h/2-60, size, rl.White)

	hint := "ESC ou ENTER para voltar"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, (w-hw)/2, h/2, 20, rl.LightGray)
}
