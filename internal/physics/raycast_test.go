package physics

import (
	"testing"

	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// blockMap implementa BlockField: células não listadas são ar.
type blockMap map[util.BlockCoord]world.BlockType

func (m blockMap) BlockAt(c util.BlockCoord) world.BlockType {
	return m[c]
}

func TestRaycastHitsFirstBlock(t *testing.T) {
	field := blockMap{
		{X: 3, Y: 0, Z: 0}: world.Stone,
		{X: 5, Y: 0, Z: 0}: world.Dirt, // atrás do primeiro, nunca atingido
	}

	hit, ok := Raycast(util.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, util.Vector3{X: 1}, 6, field)
	if !ok {
		t.Fatal("raio não atingiu o bloco")
	}
	if hit.Block != (util.BlockCoord{X: 3, Y: 0, Z: 0}) {
		t.Errorf("atingiu %v, want (3, 0, 0)", hit.Block)
	}
	if hit.Face != util.DirWest {
		t.Errorf("face de entrada = %v, want oeste", hit.Face)
	}
	if adj := hit.Adjacent(); adj != (util.BlockCoord{X: 2, Y: 0, Z: 0}) {
		t.Errorf("célula adjacente = %v, want (2, 0, 0)", adj)
	}
}

func TestRaycastRespectsReach(t *testing.T) {
	field := blockMap{
		{X: 8, Y: 0, Z: 0}: world.Stone,
	}

	if _, ok := Raycast(util.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, util.Vector3{X: 1}, 6, field); ok {
		t.Error("raio atingiu bloco além do alcance")
	}
	if _, ok := Raycast(util.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, util.Vector3{X: 1}, 9, field); !ok {
		t.Error("raio com alcance maior deveria atingir")
	}
}

func TestRaycastEntryFaces(t *testing.T) {
	tests := []struct {
		name   string
		origin util.Vector3
		dir    util.Vector3
		want   util.Direction
	}{
		{"de cima", util.Vector3{X: 0.5, Y: 4.5, Z: 0.5}, util.Vector3{Y: -1}, util.DirUp},
		{"de baixo", util.Vector3{X: 0.5, Y: -3.5, Z: 0.5}, util.Vector3{Y: 1}, util.DirDown},
		{"do norte", util.Vector3{X: 0.5, Y: 0.5, Z: -3.5}, util.Vector3{Z: 1}, util.DirNorth},
		{"do sul", util.Vector3{X: 0.5, Y: 0.5, Z: 4.5}, util.Vector3{Z: -1}, util.DirSouth},
		{"do leste", util.Vector3{X: 4.5, Y: 0.5, Z: 0.5}, util.Vector3{X: -1}, util.DirEast},
	}

	field := blockMap{{X: 0, Y: 0, Z: 0}: world.Stone}

	for _, tt := range tests {
		hit, ok := Raycast(tt.origin, tt.dir, 8, field)
		if !ok {
			t.Errorf("%s: raio não atingiu", tt.name)
			continue
		}
		if hit.Face != tt.want {
			t.Errorf("%s: face = %v, want %v", tt.name, hit.Face, tt.want)
		}
	}
}

func TestRaycastDominantAxisFace(t *testing.T) {
	// Raio quase horizontal com leve inclinação: ao cruzar uma aresta, a
	// face escolhida é a do eixo dominante da direção.
	field := blockMap{{X: 4, Y: 0, Z: 0}: world.Stone}

	hit, ok := Raycast(util.Vector3{X: 0.5, Y: 0.9, Z: 0.5}, util.Vector3{X: 1, Y: -0.1}, 8, field)
	if !ok {
		t.Fatal("raio não atingiu")
	}
	if hit.Face != util.DirWest {
		t.Errorf("face = %v, want oeste (eixo dominante X)", hit.Face)
	}
}

func TestRaycastZeroDirection(t *testing.T) {
	field := blockMap{{X: 0, Y: 0, Z: 0}: world.Stone}
	if _, ok := Raycast(util.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, util.Vector3{}, 6, field); ok {
		t.Error("direção nula não deveria atingir nada")
	}
}
