package world

import (
	"time"

	"VoxelVision/internal/util"
)

// ChunkState representa o ciclo de vida de um chunk.
type ChunkState int

const (
	StateRequested  ChunkState = iota // Criado, aguardando vaga na fila de geração
	StateGenerating                   // Despachado para um worker
	StatePopulated                    // Blocos preenchidos, sem malha ainda
	StateMeshed                       // Geometria construída e enviada ao renderer
)

// String retorna o nome do estado.
func (s ChunkState) String() string {
	switch s {
	case StateRequested:
		return "requisitado"
	case StateGenerating:
		return "gerando"
	case StatePopulated:
		return "populado"
	case StateMeshed:
		return "com malha"
	default:
		return "?"
	}
}

// BlockArray é o grid denso 16x16x16 de um chunk.
// O índice é (y*16+z)*16+x; o valor zero (Air) deixa o array pronto para uso.
type BlockArray [util.ChunkVolume]BlockType

// At retorna o bloco na coordenada local (0-15 em cada eixo).
func (a *BlockArray) At(x, y, z int32) BlockType {
	return a[(y*util.ChunkSize+z)*util.ChunkSize+x]
}

// Set grava o bloco na coordenada local.
func (a *BlockArray) Set(x, y, z int32, t BlockType) {
	a[(y*util.ChunkSize+z)*util.ChunkSize+x] = t
}

// BoundarySlice é a camada de um bloco de espessura de uma das faces do
// chunk, consultada pelo mesher do vizinho para decidir visibilidade de
// faces na fronteira. Indexada por [v*16+u] onde u e v são os dois eixos
// perpendiculares à face, em ordem crescente de eixo (X < Y < Z).
type BoundarySlice [util.ChunkSize * util.ChunkSize]BlockType

// Chunk é a unidade de geração, meshing e descarte do mundo.
//
// O array de blocos só é mutado em dois lugares: pelo worker de geração
// (antes da adoção, em um array desacoplado) e por SetBlock no loop
// principal. Nunca pelos dois ao mesmo tempo.
type Chunk struct {
	Coord  util.ChunkCoord
	State  ChunkState
	Dirty  bool // malha desatualizada em relação aos blocos (próprios ou de vizinho)
	Blocks BlockArray

	// LoadedAt marca quando o chunk foi populado; o descarte respeita um
	// período de carência para evitar churn quando o jogador fica indo e
	// voltando na borda do raio.
	LoadedAt time.Time
}

// NewChunk cria um chunk vazio no estado Requested.
func NewChunk(coord util.ChunkCoord) *Chunk {
	return &Chunk{Coord: coord, State: StateRequested}
}

// Populated indica se os blocos do chunk já foram preenchidos.
func (c *Chunk) Populated() bool {
	return c.State == StatePopulated || c.State == StateMeshed
}

// Get retorna o bloco na coordenada local.
func (c *Chunk) Get(x, y, z int32) BlockType {
	return c.Blocks.At(x, y, z)
}

// Set grava o bloco na coordenada local.
func (c *Chunk) Set(x, y, z int32, t BlockType) {
	c.Blocks.Set(x, y, z, t)
}

// BoundarySlice extrai a camada de fronteira do chunk no lado dado.
// Para DirEast é o plano x=15, para DirWest o plano x=0, e assim por diante.
func (c *Chunk) BoundarySlice(dir util.Direction) *BoundarySlice {
	var slice BoundarySlice

	var layer int32
	if dir.Positive() {
		layer = util.ChunkSize - 1
	}

	for v := int32(0); v < util.ChunkSize; v++ {
		for u := int32(0); u < util.ChunkSize; u++ {
			x, y, z := PlaneToLocal(dir.Axis(), layer, u, v)
			slice[v*util.ChunkSize+u] = c.Blocks.At(x, y, z)
		}
	}
	return &slice
}

// PlaneToLocal converte (camada no eixo da face, u, v) para coordenadas
// locais. u e v são os eixos perpendiculares em ordem crescente:
// eixo X -> (u=Y, v=Z); eixo Y -> (u=X, v=Z); eixo Z -> (u=X, v=Y).
func PlaneToLocal(axis int, layer, u, v int32) (int32, int32, int32) {
	switch axis {
	case 0:
		return layer, u, v
	case 1:
		return u, layer, v
	default:
		return u, v, layer
	}
}
