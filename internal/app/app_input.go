package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"VoxelVision/internal/player"
)

// readInput traduz teclado e mouse nas intenções do tick. O jogador nunca
// lê input diretamente: tudo passa por aqui, o que deixa a simulação
// testável sem janela.
func (a *App) readInput() player.Intents {
	// Rotação da câmera pelo delta do mouse.
	delta := rl.GetMouseDelta()
	a.Cam.Rotate(delta.X*a.Config.MouseSensitivity, delta.Y*a.Config.MouseSensitivity)

	in := player.Intents{SelectSlot: -1}

	if rl.IsKeyDown(rl.KeyW) {
		in.Forward = 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Back = 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Left = 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right = 1
	}
	in.Jump = rl.IsKeyDown(rl.KeySpace)

	in.Breaking = rl.IsMouseButtonDown(rl.MouseLeftButton)
	in.Place = rl.IsMouseButtonPressed(rl.MouseRightButton)

	// Hotbar: teclas 1-4 ou roda do mouse.
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour} {
		if rl.IsKeyPressed(key) {
			in.SelectSlot = i
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		slot := a.Player.Selected - int(wheel)
		n := len(a.Player.Hotbar)
		in.SelectSlot = ((slot % n) + n) % n
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle wireframe
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
		a.renderer.SetWireframe(a.Config.WireframeMode)
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.State = StatePaused
		rl.EnableCursor()
		log.Println("[App] Pausado")
	}

	return in
}

// readPausedInput só escuta o que despausa ou fecha.
func (a *App) readPausedInput() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyEnter) {
		a.State = StatePlaying
		rl.DisableCursor()
		log.Println("[App] Retomado")
	}
}
