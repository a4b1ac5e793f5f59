package world

import "VoxelVision/internal/util"

// BlockType identifica o tipo de um bloco do mundo.
// O valor zero é ar, então um array recém-alocado já é um chunk vazio.
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	DarkGrass
	Dirt
	Stone
	Glass
	Planks
	Log
	SpruceLog
	SnowLog
	Leaves
	SpruceLeaves
	SnowLeaves
	Snow

	BlockTypeCount
)

// Camadas de textura do atlas. Cada face de cada tipo de bloco aponta para
// uma dessas camadas; o renderer resolve a camada em cor/textura.
const (
	TexGrassTop uint8 = iota
	TexGrassSide
	TexDarkGrassTop
	TexDarkGrassSide
	TexDirt
	TexStone
	TexGlass
	TexPlanks
	TexLogSide
	TexLogTop
	TexSpruceLogSide
	TexSnowLogSide
	TexLeaves
	TexSpruceLeaves
	TexSnowLeaves
	TexSnowTop
	TexSnowSide

	TexLayerCount
)

// faceTextures define a camada de textura por face (topo/fundo/lateral
// podem diferir, como grama e neve).
type faceTextures struct {
	top, bottom, side uint8
}

type blockInfo struct {
	name        string
	textures    faceTextures
	breakTime   float32
	transparent bool
}

var blockTable = [BlockTypeCount]blockInfo{
	Air:          {name: "Ar"},
	Grass:        {name: "Grama", textures: faceTextures{TexGrassTop, TexDirt, TexGrassSide}, breakTime: 0.5},
	DarkGrass:    {name: "Grama Escura", textures: faceTextures{TexDarkGrassTop, TexDirt, TexDarkGrassSide}, breakTime: 0.5},
	Dirt:         {name: "Terra", textures: faceTextures{TexDirt, TexDirt, TexDirt}, breakTime: 0.5},
	Stone:        {name: "Pedra", textures: faceTextures{TexStone, TexStone, TexStone}, breakTime: 1.0},
	Glass:        {name: "Vidro", textures: faceTextures{TexGlass, TexGlass, TexGlass}, breakTime: 0.3, transparent: true},
	Planks:       {name: "Tábuas", textures: faceTextures{TexPlanks, TexPlanks, TexPlanks}, breakTime: 0.8},
	Log:          {name: "Tronco", textures: faceTextures{TexLogTop, TexLogTop, TexLogSide}, breakTime: 0.8},
	SpruceLog:    {name: "Tronco de Pinheiro", textures: faceTextures{TexLogTop, TexLogTop, TexSpruceLogSide}, breakTime: 0.8},
	SnowLog:      {name: "Tronco Nevado", textures: faceTextures{TexLogTop, TexLogTop, TexSnowLogSide}, breakTime: 0.8},
	Leaves:       {name: "Folhas", textures: faceTextures{TexLeaves, TexLeaves, TexLeaves}, breakTime: 0.2, transparent: true},
	SpruceLeaves: {name: "Folhas de Pinheiro", textures: faceTextures{TexSpruceLeaves, TexSpruceLeaves, TexSpruceLeaves}, breakTime: 0.2, transparent: true},
	SnowLeaves:   {name: "Folhas Nevadas", textures: faceTextures{TexSnowLeaves, TexSnowLeaves, TexSnowLeaves}, breakTime: 0.2, transparent: true},
	Snow:         {name: "Neve", textures: faceTextures{TexSnowTop, TexDirt, TexSnowSide}, breakTime: 0.5},
}

// Name retorna o nome do bloco para HUD e logs.
func (b BlockType) Name() string {
	if b < BlockTypeCount {
		return blockTable[b].name
	}
	return "?"
}

// Solid indica se o bloco bloqueia movimento.
func (b BlockType) Solid() bool {
	return b != Air
}

// Transparent indica se o bloco deixa faces vizinhas visíveis (vidro, folhas).
func (b BlockType) Transparent() bool {
	if b < BlockTypeCount {
		return blockTable[b].transparent
	}
	return false
}

// BreakTime retorna quanto tempo (segundos) leva para quebrar o bloco.
func (b BlockType) BreakTime() float32 {
	if b < BlockTypeCount {
		return blockTable[b].breakTime
	}
	return 1.0
}

// TextureLayer retorna a camada de textura da face do bloco na direção dada.
func (b BlockType) TextureLayer(dir util.Direction) uint8 {
	if b >= BlockTypeCount {
		return TexStone
	}
	switch dir {
	case util.DirUp:
		return blockTable[b].textures.top
	case util.DirDown:
		return blockTable[b].textures.bottom
	default:
		return blockTable[b].textures.side
	}
}

// Occludes indica se este bloco esconde a face de um vizinho do tipo dado.
// Blocos opacos escondem qualquer face; transparentes só escondem faces do
// mesmo tipo (vidro encostado em vidro não desenha a face interna).
func (b BlockType) Occludes(neighbor BlockType) bool {
	if b == Air {
		return false
	}
	if b.Transparent() {
		return b == neighbor
	}
	return true
}
