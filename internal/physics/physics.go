package physics

import (
	"math"

	"VoxelVision/internal/util"
)

// ContactEpsilon é a tolerância de contato: sobreposição menor que isso
// não conta como colisão, então um AABB encostado em uma face desliza ao
// longo dela sem travar e pousa exatamente sobre a superfície.
const ContactEpsilon float32 = 1e-4

// Obstacles é a visão que a colisão tem do mundo. Implementações devem
// tratar colunas ainda não geradas como sólidas, para que nada atravesse o
// chão de um chunk atrasado.
type Obstacles interface {
	SolidAt(c util.BlockCoord) bool
}

// AABB é uma caixa alinhada aos eixos, em coordenadas de mundo.
type AABB struct {
	Min, Max util.Vector3
}

// NewAABB cria uma caixa a partir da posição dos pés: a posição é o centro
// da base, width se espalha simetricamente em X e Z, height sobe em Y.
func NewAABB(feet util.Vector3, width, height float32) AABB {
	half := width / 2
	return AABB{
		Min: util.Vector3{X: feet.X - half, Y: feet.Y, Z: feet.Z - half},
		Max: util.Vector3{X: feet.X + half, Y: feet.Y + height, Z: feet.Z + half},
	}
}

// Translate retorna a caixa deslocada.
func (b AABB) Translate(d util.Vector3) AABB {
	return AABB{
		Min: util.Vector3{X: b.Min.X + d.X, Y: b.Min.Y + d.Y, Z: b.Min.Z + d.Z},
		Max: util.Vector3{X: b.Max.X + d.X, Y: b.Max.Y + d.Y, Z: b.Max.Z + d.Z},
	}
}

// Contains indica se um ponto está dentro da caixa (bordas inclusas).
func (b AABB) Contains(p util.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// axisOf retorna a componente do eixo dado do vetor.
func axisOf(v util.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Resolve varre a caixa pelo deslocamento desejado contra os blocos
// sólidos e retorna o deslocamento efetivo, resolvendo eixo por eixo na
// ordem Y, X, Z. Cada eixo usa a caixa já deslocada pelos eixos
// anteriores, o que produz o deslizamento: movimento bloqueado em um eixo
// não cancela o movimento nos outros.
func Resolve(box AABB, delta util.Vector3, obs Obstacles) util.Vector3 {
	var out util.Vector3

	out.Y = sweepAxis(box, 1, delta.Y, obs)
	box = box.Translate(util.Vector3{Y: out.Y})

	out.X = sweepAxis(box, 0, delta.X, obs)
	box = box.Translate(util.Vector3{X: out.X})

	out.Z = sweepAxis(box, 2, delta.Z, obs)
	return out
}

// sweepAxis calcula o quanto a caixa pode andar ao longo de um eixo antes
// de encostar em um bloco sólido. Contato rente (dentro de ContactEpsilon)
// não bloqueia; o resultado deixa a caixa exatamente na superfície.
func sweepAxis(box AABB, axis int, d float32, obs Obstacles) float32 {
	if d == 0 {
		return 0
	}

	// Extensão varrida no eixo do movimento; nos eixos perpendiculares a
	// caixa encolhe pelo epsilon para que colunas apenas encostadas não
	// entrem na varredura.
	var lo, hi [3]float32
	for a := 0; a < 3; a++ {
		lo[a] = axisOf(box.Min, a)
		hi[a] = axisOf(box.Max, a)
		if a != axis {
			lo[a] += ContactEpsilon
			hi[a] -= ContactEpsilon
		}
	}
	if d > 0 {
		hi[axis] += d
	} else {
		lo[axis] += d
	}

	x0, x1 := floorRange(lo[0], hi[0])
	y0, y1 := floorRange(lo[1], hi[1])
	z0, z1 := floorRange(lo[2], hi[2])

	boxMin := axisOf(box.Min, axis)
	boxMax := axisOf(box.Max, axis)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if !obs.SolidAt(util.BlockCoord{X: x, Y: y, Z: z}) {
					continue
				}

				var blockA int32
				switch axis {
				case 0:
					blockA = x
				case 1:
					blockA = y
				default:
					blockA = z
				}

				if d > 0 {
					face := float32(blockA)
					if face >= boxMax-ContactEpsilon {
						if gap := face - boxMax; gap < d {
							d = gap
						}
					}
				} else {
					face := float32(blockA) + 1
					if face <= boxMin+ContactEpsilon {
						if gap := face - boxMin; gap > d {
							d = gap
						}
					}
				}
			}
		}
	}

	// O clamp final impede que contato já rente gere deslocamento negativo.
	if d > 0 {
		return max32(d, 0)
	}
	return min32(d, 0)
}

// floorRange retorna a faixa de células de bloco cobertas pelo intervalo.
func floorRange(lo, hi float32) (int32, int32) {
	return int32(math.Floor(float64(lo))), int32(math.Floor(float64(hi)))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
