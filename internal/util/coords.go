package util

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3 é um alias para rl.Vector3 para conveniência
type Vector3 = rl.Vector3

// ChunkSize é a aresta de um chunk em blocos (16x16x16).
const ChunkSize = 16

// ChunkVolume é o total de blocos em um chunk.
const ChunkVolume = ChunkSize * ChunkSize * ChunkSize

// BlockCoord representa a posição de um bloco no espaço do mundo.
// X = leste/oeste, Y = vertical, Z = sul/norte
type BlockCoord struct {
	X, Y, Z int32
}

// NewBlockCoord cria uma nova coordenada de bloco.
func NewBlockCoord(x, y, z int32) BlockCoord {
	return BlockCoord{X: x, Y: y, Z: z}
}

// Add soma duas coordenadas.
func (c BlockCoord) Add(other BlockCoord) BlockCoord {
	return BlockCoord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Equals verifica igualdade entre coordenadas.
func (c BlockCoord) Equals(other BlockCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// String retorna a representação em string da coordenada.
func (c BlockCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Chunk retorna a coordenada do chunk que contém este bloco.
// O shift aritmético faz a divisão por 16 com arredondamento para baixo,
// inclusive para coordenadas negativas.
func (c BlockCoord) Chunk() ChunkCoord {
	return ChunkCoord{X: c.X >> 4, Y: c.Y >> 4, Z: c.Z >> 4}
}

// Local retorna a coordenada local dentro do chunk (0-15 em cada eixo).
func (c BlockCoord) Local() (int32, int32, int32) {
	return c.X & 0xF, c.Y & 0xF, c.Z & 0xF
}

// ToWorldPos converte a coordenada para o canto mínimo do bloco no espaço 3D.
func (c BlockCoord) ToWorldPos() rl.Vector3 {
	return rl.Vector3{X: float32(c.X), Y: float32(c.Y), Z: float32(c.Z)}
}

// Center retorna o centro do bloco no espaço 3D.
func (c BlockCoord) Center() rl.Vector3 {
	return rl.Vector3{X: float32(c.X) + 0.5, Y: float32(c.Y) + 0.5, Z: float32(c.Z) + 0.5}
}

// WorldToBlockCoord converte uma posição 3D contínua para a coordenada do
// bloco que a contém.
func WorldToBlockCoord(pos rl.Vector3) BlockCoord {
	return BlockCoord{
		X: int32(math.Floor(float64(pos.X))),
		Y: int32(math.Floor(float64(pos.Y))),
		Z: int32(math.Floor(float64(pos.Z))),
	}
}

// ChunkCoord identifica um chunk no mundo.
type ChunkCoord struct {
	X, Y, Z int32
}

// NewChunkCoord cria uma nova coordenada de chunk.
func NewChunkCoord(x, y, z int32) ChunkCoord {
	return ChunkCoord{X: x, Y: y, Z: z}
}

// Origin retorna a coordenada do bloco mínimo do chunk.
func (c ChunkCoord) Origin() BlockCoord {
	return BlockCoord{X: c.X << 4, Y: c.Y << 4, Z: c.Z << 4}
}

// Add soma duas coordenadas de chunk.
func (c ChunkCoord) Add(other ChunkCoord) ChunkCoord {
	return ChunkCoord{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Neighbor retorna a coordenada do chunk vizinho na direção dada.
func (c ChunkCoord) Neighbor(dir Direction) ChunkCoord {
	off := DirOffsets[dir]
	return ChunkCoord{X: c.X + off.X, Y: c.Y + off.Y, Z: c.Z + off.Z}
}

// String retorna a representação em string da coordenada.
func (c ChunkCoord) String() string {
	return fmt.Sprintf("chunk(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Abs retorna o valor absoluto de um int32.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Direction representa uma das 6 direções de face alinhadas aos eixos.
type Direction uint8

const (
	DirEast  Direction = iota // +X
	DirWest                   // -X
	DirUp                     // +Y
	DirDown                   // -Y
	DirSouth                  // +Z
	DirNorth                  // -Z

	DirCount = 6
)

// DirOffsets mapeia direções para offsets de coordenada.
var DirOffsets = [DirCount]BlockCoord{
	DirEast:  {X: 1, Y: 0, Z: 0},
	DirWest:  {X: -1, Y: 0, Z: 0},
	DirUp:    {X: 0, Y: 1, Z: 0},
	DirDown:  {X: 0, Y: -1, Z: 0},
	DirSouth: {X: 0, Y: 0, Z: 1},
	DirNorth: {X: 0, Y: 0, Z: -1},
}

// DirNormals mapeia direções para normais unitárias no espaço 3D.
var DirNormals = [DirCount]rl.Vector3{
	DirEast:  {X: 1, Y: 0, Z: 0},
	DirWest:  {X: -1, Y: 0, Z: 0},
	DirUp:    {X: 0, Y: 1, Z: 0},
	DirDown:  {X: 0, Y: -1, Z: 0},
	DirSouth: {X: 0, Y: 0, Z: 1},
	DirNorth: {X: 0, Y: 0, Z: -1},
}

var dirNames = [DirCount]string{"leste", "oeste", "cima", "baixo", "sul", "norte"}

// String retorna o nome da direção.
func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "?"
}

// Axis retorna o índice do eixo da direção (0=X, 1=Y, 2=Z).
func (d Direction) Axis() int {
	return int(d) >> 1
}

// Positive indica se a direção aponta no sentido positivo do seu eixo.
func (d Direction) Positive() bool {
	return d&1 == 0
}

// Opposite retorna a direção oposta.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// AddDir retorna uma nova coordenada deslocada na direção especificada.
func (c BlockCoord) AddDir(dir Direction) BlockCoord {
	return c.Add(DirOffsets[dir])
}
