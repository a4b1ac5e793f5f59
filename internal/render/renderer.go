package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"VoxelVision/internal/meshing"
	"VoxelVision/internal/physics"
	"VoxelVision/internal/util"
)

// chunkModel é a geometria de um chunk residente na GPU.
type chunkModel struct {
	model  rl.Model
	origin rl.Vector3
}

// Renderer gerencia o upload e renderização das malhas de chunk na GPU.
// Todos os métodos devem ser chamados na thread principal, onde o contexto
// OpenGL é válido; não há acesso concorrente.
type Renderer struct {
	models    map[util.ChunkCoord]*chunkModel
	wireframe bool
}

// NewRenderer cria um renderizador vazio.
func NewRenderer() *Renderer {
	return &Renderer{
		models: make(map[util.ChunkCoord]*chunkModel),
	}
}

// SetWireframe alterna o modo de arame do desenho de chunks.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
}

// ChunkCount retorna quantos chunks têm malha na GPU.
func (r *Renderer) ChunkCount() int {
	return len(r.models)
}

// UploadChunk rebaixa a malha de quads para buffers de vértices e a sobe
// para a GPU, substituindo qualquer malha anterior do mesmo chunk. Malha
// vazia apenas remove a anterior.
func (r *Renderer) UploadChunk(coord util.ChunkCoord, mesh *meshing.Mesh) {
	if !rl.IsWindowReady() {
		return
	}

	r.DropChunk(coord)

	if mesh.Empty() {
		return
	}

	geo := mesh.Geometry(FaceColor)
	rlMesh := geometryToMesh(geo)
	rl.UploadMesh(&rlMesh, false)

	origin := coord.Origin()
	r.models[coord] = &chunkModel{
		model: rl.LoadModelFromMesh(rlMesh),
		origin: rl.Vector3{
			X: float32(origin.X),
			Y: float32(origin.Y),
			Z: float32(origin.Z),
		},
	}
}

// DropChunk libera a malha do chunk da GPU, se existir.
func (r *Renderer) DropChunk(coord util.ChunkCoord) {
	if bm, ok := r.models[coord]; ok {
		rl.UnloadModel(bm.model)
		delete(r.models, coord)
	}
}

// Draw desenha todos os chunks carregados. A geometria é local ao chunk;
// o deslocamento para o mundo vai na posição do modelo.
func (r *Renderer) Draw() {
	for _, bm := range r.models {
		if r.wireframe {
			rl.DrawModelWires(bm.model, bm.origin, 1.0, rl.White)
			continue
		}
		rl.DrawModel(bm.model, bm.origin, 1.0, rl.White)
	}
}

// DrawSelection desenha o contorno do bloco sob a mira e, se uma quebra
// está em andamento, um preenchimento que escurece com o progresso.
func (r *Renderer) DrawSelection(hit physics.RayHit, breakProgress float32) {
	center := hit.Block.Center()
	rl.DrawCubeWires(center, 1.002, 1.002, 1.002, rl.Black)

	if breakProgress > 0 {
		alpha := uint8(90 * breakProgress)
		rl.DrawCube(center, 1.004, 1.004, 1.004, rl.Color{R: 20, G: 20, B: 20, A: alpha})
	}
}

// Unload libera todos os recursos de GPU.
func (r *Renderer) Unload() {
	for _, bm := range r.models {
		rl.UnloadModel(bm.model)
	}
	r.models = make(map[util.ChunkCoord]*chunkModel)
}

// geometryToMesh monta uma rl.Mesh a partir dos buffers de geometria.
func geometryToMesh(data meshing.GeometryData) rl.Mesh {
	mesh := rl.Mesh{}

	vCount := int32(len(data.Vertices) / 3)
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	// Os buffers vão para memória C (C.malloc): o raylib fica dono deles e
	// os libera no UnloadModel, sem o GC do Go por perto.
	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}

	return mesh
}

// copyToC aloca memória C e copia os dados.
func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}
