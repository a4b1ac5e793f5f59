package meshing

import (
	"sync"

	"VoxelVision/internal/util"
)

// Quad é uma face retangular fundida pelo greedy mesher, em coordenadas de
// plano: Layer é a camada ao longo do eixo da face, e (U, V) x (W, H) o
// retângulo nos dois eixos perpendiculares em ordem crescente (X < Y < Z).
type Quad struct {
	Dir   util.Direction
	Layer int32
	U, V  int32
	W, H  int32
	Tex   uint8
}

// Mesh é a malha de um chunk como lista de quads fundidos.
// É a forma canônica da geometria: o que os testes inspecionam e o que o
// renderer rebaixa para buffers de vértices.
type Mesh struct {
	Quads []Quad
}

// Empty indica se a malha não tem nenhuma face.
func (m *Mesh) Empty() bool {
	return len(m.Quads) == 0
}

// GeometryData contém os buffers de vértices para uma malha.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	Colors   []uint8
}

// Clone cria uma cópia profunda dos dados para evitar corrupção de memória.
func (g GeometryData) Clone() GeometryData {
	clone := GeometryData{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]float32, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Normals) > 0 {
		clone.Normals = make([]float32, len(g.Normals))
		copy(clone.Normals, g.Normals)
	}
	if len(g.Colors) > 0 {
		clone.Colors = make([]uint8, len(g.Colors))
		copy(clone.Colors, g.Colors)
	}
	return clone
}

// VertexCount retorna quantos vértices a malha tem.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// Pool global para reciclar MeshBuffers e evitar alocação excessiva (GC Pressure)
var meshBufferPool = sync.Pool{
	New: func() interface{} {
		return &MeshBuffer{
			Geometry: GeometryData{
				Vertices: make([]float32, 0, 4096),
				Normals:  make([]float32, 0, 4096),
				Colors:   make([]uint8, 0, 4096),
			},
		}
	},
}

// GetMeshBuffer aloca ou recicla um buffer vazio para meshing.
func GetMeshBuffer() *MeshBuffer {
	return meshBufferPool.Get().(*MeshBuffer)
}

// PutMeshBuffer zera os slices e devolve a memória para o Pool.
func PutMeshBuffer(b *MeshBuffer) {
	if b == nil {
		return
	}
	b.Geometry.Vertices = b.Geometry.Vertices[:0]
	b.Geometry.Normals = b.Geometry.Normals[:0]
	b.Geometry.Colors = b.Geometry.Colors[:0]
	meshBufferPool.Put(b)
}

// MeshBuffer auxilia na construção de malhas dinâmicas.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddFace adiciona uma face retangular (quad) ao buffer, em ordem CCW
// vista de fora.
func (b *MeshBuffer) AddFace(v1, v2, v3, v4 [3]float32, n [3]float32, c [4]uint8) {
	// Triângulo 1 (v1, v2, v3)
	b.addVertex(v1, n, c)
	b.addVertex(v2, n, c)
	b.addVertex(v3, n, c)

	// Triângulo 2 (v1, v3, v4)
	b.addVertex(v1, n, c)
	b.addVertex(v3, n, c)
	b.addVertex(v4, n, c)
}

func (b *MeshBuffer) addVertex(v [3]float32, n [3]float32, c [4]uint8) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
	b.Geometry.Colors = append(b.Geometry.Colors, c[0], c[1], c[2], c[3])
}

// Geometry rebaixa a malha de quads para buffers de vértices (lista de
// triângulos, 6 vértices por quad), em coordenadas locais do chunk. A cor
// de cada face vem do callback, que recebe a camada de textura e a direção
// da face (para sombreamento direcional).
func (m *Mesh) Geometry(colorFor func(tex uint8, dir util.Direction) [4]uint8) GeometryData {
	buf := GetMeshBuffer()
	defer PutMeshBuffer(buf)

	for _, q := range m.Quads {
		axis := q.Dir.Axis()

		// A face fica no plano mais distante da camada quando a direção é
		// positiva (o bloco ocupa [Layer, Layer+1) no eixo da face).
		plane := float32(q.Layer)
		if q.Dir.Positive() {
			plane++
		}

		u0, v0 := float32(q.U), float32(q.V)
		u1, v1 := u0+float32(q.W), v0+float32(q.H)

		c1 := planeCorner(axis, plane, u0, v0)
		var c2, c3, c4 [3]float32
		if windsFromOrigin(q.Dir) {
			c2 = planeCorner(axis, plane, u0, v1)
			c3 = planeCorner(axis, plane, u1, v1)
			c4 = planeCorner(axis, plane, u1, v0)
		} else {
			c2 = planeCorner(axis, plane, u1, v0)
			c3 = planeCorner(axis, plane, u1, v1)
			c4 = planeCorner(axis, plane, u0, v1)
		}

		n := util.DirNormals[q.Dir]
		buf.AddFace(c1, c2, c3, c4, [3]float32{n.X, n.Y, n.Z}, colorFor(q.Tex, q.Dir))
	}

	return buf.Geometry.Clone()
}

// planeCorner converte (plano, u, v) para um vértice 3D local, com o mesmo
// mapeamento de eixos perpendiculares das fatias de fronteira.
func planeCorner(axis int, plane, u, v float32) [3]float32 {
	switch axis {
	case 0:
		return [3]float32{plane, u, v}
	case 1:
		return [3]float32{u, plane, v}
	default:
		return [3]float32{u, v, plane}
	}
}

// windsFromOrigin indica se a ordem CCW da face percorre (u0,v0) ->
// (u0,v1) -> (u1,v1) -> (u1,v0); as direções restantes usam a ordem
// espelhada. Derivado do produto vetorial das arestas em cada eixo.
func windsFromOrigin(dir util.Direction) bool {
	switch dir {
	case util.DirUp, util.DirWest, util.DirNorth:
		return true
	default:
		return false
	}
}
