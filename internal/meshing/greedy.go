package meshing

import (
	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// BuildMesh constrói a malha greedy de um chunk.
//
// O mesher só enxerga o array de blocos do chunk e as fatias de fronteira
// dos vizinhos; ele nunca consulta o mundo. Fatias nil (vizinho ausente ou
// ainda não populado) contam como ar, o que expõe a face da fronteira até
// o vizinho ser populado e os dois lados serem re-meshados.
//
// Para cada uma das 6 direções, cada camada perpendicular vira uma máscara
// 16x16 de faces visíveis; retângulos de mesma textura são fundidos
// crescendo primeiro em largura (u) e depois em altura (v). Faces fundidas
// cobrem exatamente as faces visíveis: sem sobreposição e sem buraco.
func BuildMesh(blocks *world.BlockArray, neighbors [util.DirCount]*world.BoundarySlice) *Mesh {
	mesh := &Mesh{}
	var mask [util.ChunkSize * util.ChunkSize]uint16

	for dir := util.Direction(0); dir < util.DirCount; dir++ {
		for layer := int32(0); layer < util.ChunkSize; layer++ {
			if !fillMask(&mask, blocks, neighbors, dir, layer) {
				continue
			}
			mergeMask(mesh, &mask, dir, layer)
		}
	}
	return mesh
}

// fillMask preenche a máscara de visibilidade de uma camada: 0 para face
// oculta, camada de textura + 1 para face visível. Retorna false se a
// camada inteira está oculta.
func fillMask(mask *[util.ChunkSize * util.ChunkSize]uint16, blocks *world.BlockArray,
	neighbors [util.DirCount]*world.BoundarySlice, dir util.Direction, layer int32) bool {

	axis := dir.Axis()
	any := false

	for v := int32(0); v < util.ChunkSize; v++ {
		for u := int32(0); u < util.ChunkSize; u++ {
			mask[v*util.ChunkSize+u] = 0

			x, y, z := world.PlaneToLocal(axis, layer, u, v)
			b := blocks.At(x, y, z)
			if b == world.Air {
				continue
			}

			if neighborBlock(blocks, neighbors, dir, layer, u, v).Occludes(b) {
				continue
			}

			mask[v*util.ChunkSize+u] = uint16(b.TextureLayer(dir)) + 1
			any = true
		}
	}
	return any
}

// neighborBlock retorna o bloco do outro lado da face. Dentro do chunk lê
// o próprio array; na fronteira lê a fatia do vizinho (nil = ar).
func neighborBlock(blocks *world.BlockArray, neighbors [util.DirCount]*world.BoundarySlice,
	dir util.Direction, layer, u, v int32) world.BlockType {

	next := layer + 1
	if !dir.Positive() {
		next = layer - 1
	}

	if next >= 0 && next < util.ChunkSize {
		x, y, z := world.PlaneToLocal(dir.Axis(), next, u, v)
		return blocks.At(x, y, z)
	}

	slice := neighbors[dir]
	if slice == nil {
		return world.Air
	}
	return slice[v*util.ChunkSize+u]
}

// mergeMask funde os retângulos da máscara e emite os quads. Varre em
// ordem (v, u); em cada célula visível cresce a largura ao longo de u e
// depois a altura ao longo de v enquanto as linhas inteiras baterem, e
// zera a área consumida.
func mergeMask(mesh *Mesh, mask *[util.ChunkSize * util.ChunkSize]uint16, dir util.Direction, layer int32) {
	for v := int32(0); v < util.ChunkSize; v++ {
		for u := int32(0); u < util.ChunkSize; u++ {
			val := mask[v*util.ChunkSize+u]
			if val == 0 {
				continue
			}

			w := int32(1)
			for u+w < util.ChunkSize && mask[v*util.ChunkSize+u+w] == val {
				w++
			}

			h := int32(1)
		grow:
			for v+h < util.ChunkSize {
				for i := int32(0); i < w; i++ {
					if mask[(v+h)*util.ChunkSize+u+i] != val {
						break grow
					}
				}
				h++
			}

			for dv := int32(0); dv < h; dv++ {
				for du := int32(0); du < w; du++ {
					mask[(v+dv)*util.ChunkSize+u+du] = 0
				}
			}

			mesh.Quads = append(mesh.Quads, Quad{
				Dir:   dir,
				Layer: layer,
				U:     u,
				V:     v,
				W:     w,
				H:     h,
				Tex:   uint8(val - 1),
			})
		}
	}
}
