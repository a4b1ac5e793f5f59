package physics

import (
	"math"

	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// rayStep é o passo de amostragem do raio, em blocos.
const rayStep float32 = 0.1

// BlockField é a visão que a mira tem do mundo. Ao contrário da colisão,
// chunks ausentes contam como ar: não dá para mirar no que não existe.
type BlockField interface {
	BlockAt(c util.BlockCoord) world.BlockType
}

// RayHit descreve o bloco atingido por um raio de mira.
type RayHit struct {
	Block util.BlockCoord // o bloco sólido atingido
	Face  util.Direction  // a face pela qual o raio entrou
}

// Adjacent retorna a célula vazia colada na face atingida (onde um bloco
// novo seria colocado).
func (h RayHit) Adjacent() util.BlockCoord {
	return h.Block.AddDir(h.Face)
}

// Raycast marcha um raio da origem na direção dada (não precisa estar
// normalizada) até reach blocos, e retorna o primeiro bloco sólido
// atingido. A face de entrada é o eixo dominante da direção entre os eixos
// que mudaram de célula no passo do impacto.
func Raycast(origin, dir util.Vector3, reach float32, field BlockField) (RayHit, bool) {
	length := float32(math.Sqrt(float64(dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z)))
	if length == 0 {
		return RayHit{}, false
	}
	step := util.Vector3{
		X: dir.X / length * rayStep,
		Y: dir.Y / length * rayStep,
		Z: dir.Z / length * rayStep,
	}

	pos := origin
	prev := util.WorldToBlockCoord(pos)

	for travelled := float32(0); travelled <= reach; travelled += rayStep {
		pos.X += step.X
		pos.Y += step.Y
		pos.Z += step.Z

		cell := util.WorldToBlockCoord(pos)
		if cell.Equals(prev) {
			continue
		}

		if field.BlockAt(cell).Solid() {
			return RayHit{Block: cell, Face: entryFace(prev, cell, dir)}, true
		}
		prev = cell
	}
	return RayHit{}, false
}

// entryFace escolhe a face de entrada: entre os eixos em que a célula
// mudou, o de maior componente absoluta da direção; a face aponta contra o
// sentido do movimento.
func entryFace(prev, cell util.BlockCoord, dir util.Vector3) util.Direction {
	type candidate struct {
		mag  float32
		face util.Direction
	}
	var best candidate
	found := false

	consider := func(changed bool, mag float32, face util.Direction) {
		if !changed {
			return
		}
		if !found || abs32(mag) > abs32(best.mag) {
			best = candidate{mag: mag, face: face}
			found = true
		}
	}

	consider(cell.X != prev.X, dir.X, faceFor(dir.X, util.DirWest, util.DirEast))
	consider(cell.Y != prev.Y, dir.Y, faceFor(dir.Y, util.DirDown, util.DirUp))
	consider(cell.Z != prev.Z, dir.Z, faceFor(dir.Z, util.DirNorth, util.DirSouth))

	if !found {
		return util.DirUp
	}
	return best.face
}

// faceFor retorna a face de entrada para um eixo: movendo no sentido
// positivo o raio entra pela face negativa, e vice-versa.
func faceFor(d float32, negSide, posSide util.Direction) util.Direction {
	if d > 0 {
		return negSide
	}
	return posSide
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
