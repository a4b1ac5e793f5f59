package world

import (
	"testing"

	"VoxelVision/internal/util"
)

func TestBlockArrayIndexing(t *testing.T) {
	var a BlockArray

	a.Set(1, 2, 3, Stone)
	a.Set(15, 15, 15, Dirt)
	a.Set(0, 0, 0, Grass)

	if a.At(1, 2, 3) != Stone || a.At(15, 15, 15) != Dirt || a.At(0, 0, 0) != Grass {
		t.Error("At/Set não fazem ida e volta")
	}
	if a.At(3, 2, 1) != Air {
		t.Error("célula não gravada deveria ser ar")
	}
}

func TestBoundarySliceExtraction(t *testing.T) {
	c := NewChunk(util.ChunkCoord{})
	c.State = StatePopulated

	// Marca um bloco em cada face para conferir camada e indexação.
	c.Set(15, 3, 4, Stone)  // face leste: u=y, v=z
	c.Set(0, 5, 6, Dirt)    // face oeste
	c.Set(7, 15, 8, Grass)  // face cima: u=x, v=z
	c.Set(9, 0, 10, Planks) // face baixo
	c.Set(11, 12, 15, Log)  // face sul: u=x, v=y
	c.Set(13, 14, 0, Glass) // face norte

	tests := []struct {
		dir  util.Direction
		u, v int32
		want BlockType
	}{
		{util.DirEast, 3, 4, Stone},
		{util.DirWest, 5, 6, Dirt},
		{util.DirUp, 7, 8, Grass},
		{util.DirDown, 9, 10, Planks},
		{util.DirSouth, 11, 12, Log},
		{util.DirNorth, 13, 14, Glass},
	}

	for _, tt := range tests {
		slice := c.BoundarySlice(tt.dir)
		if got := slice[tt.v*util.ChunkSize+tt.u]; got != tt.want {
			t.Errorf("fatia %v[%d,%d] = %v, want %v", tt.dir, tt.u, tt.v, got, tt.want)
		}
	}
}

func TestBoundarySliceIsCopy(t *testing.T) {
	c := NewChunk(util.ChunkCoord{})
	c.State = StatePopulated
	c.Set(15, 0, 0, Stone)

	slice := c.BoundarySlice(util.DirEast)
	c.Set(15, 0, 0, Dirt)

	if slice[0] != Stone {
		t.Error("fatia de fronteira deveria ser cópia, não referência")
	}
}

func TestPlaneToLocal(t *testing.T) {
	tests := []struct {
		axis                int
		layer, u, v         int32
		wantX, wantY, wantZ int32
	}{
		{0, 5, 6, 7, 5, 6, 7},
		{1, 5, 6, 7, 6, 5, 7},
		{2, 5, 6, 7, 6, 7, 5},
	}
	for _, tt := range tests {
		x, y, z := PlaneToLocal(tt.axis, tt.layer, tt.u, tt.v)
		if x != tt.wantX || y != tt.wantY || z != tt.wantZ {
			t.Errorf("PlaneToLocal(%d, %d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.axis, tt.layer, tt.u, tt.v, x, y, z, tt.wantX, tt.wantY, tt.wantZ)
		}
	}
}

func TestChunkStateLifecycle(t *testing.T) {
	c := NewChunk(util.ChunkCoord{X: 1, Y: 2, Z: 3})

	if c.Populated() {
		t.Error("chunk novo não deveria estar populado")
	}
	c.State = StateGenerating
	if c.Populated() {
		t.Error("chunk em geração não deveria estar populado")
	}
	c.State = StatePopulated
	if !c.Populated() {
		t.Error("chunk populado deveria estar populado")
	}
	c.State = StateMeshed
	if !c.Populated() {
		t.Error("chunk com malha continua populado")
	}
}
