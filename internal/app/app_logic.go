package app

import (
	"VoxelVision/internal/meshing"
	"VoxelVision/internal/player"
	"VoxelVision/internal/world"
)

// updateWorld avança a simulação um tick, na ordem fixa: streaming de
// chunks, física e ações do jogador, re-mesh dos sujos, mira. O re-mesh vem
// depois do jogador para que um bloco editado neste tick seja desenhado já
// neste frame, nunca com a malha antiga.
func (a *App) updateWorld(dt float32, in player.Intents) {
	// Streaming: adota resultados prontos, pede chunks novos, descarta os
	// distantes. Descartados liberam a malha da GPU na hora.
	for _, coord := range a.store.Tick(a.Player.Pos) {
		a.renderer.DropChunk(coord)
	}

	a.Player.Update(dt, in, a.store)

	a.remeshDirty()

	a.target, a.hasTarget = a.Player.Target(a.store)
}

// remeshDirty reconstrói as malhas dos chunks sujos do tick. O lote respeita
// o orçamento configurado para amortizar rajadas de chunks recém-gerados,
// mas edições do jogador furam o orçamento: o chunk editado e o vizinho de
// fronteira saem sempre neste mesmo tick.
func (a *App) remeshDirty() {
	budget := a.Config.RemeshBudget
	if budget <= 0 {
		budget = 1
	}

	for _, coord := range a.store.DirtyBatch(budget) {
		ch := a.store.Chunk(coord)
		mesh := meshing.BuildMesh(&ch.Blocks, a.store.NeighborBoundaries(coord))
		a.renderer.UploadChunk(coord, mesh)

		ch.Dirty = false
		ch.State = world.StateMeshed
	}
}
