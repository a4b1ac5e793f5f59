package render

import (
	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// palette resolve cada camada de textura do atlas em uma cor base.
// Renderização por cor de vértice, sem atlas de imagens: mais simples de
// subir para a GPU e suficiente para distinguir os materiais.
var palette = [world.TexLayerCount][4]uint8{
	world.TexGrassTop:      {106, 170, 64, 255},
	world.TexGrassSide:     {134, 120, 74, 255},
	world.TexDarkGrassTop:  {72, 120, 48, 255},
	world.TexDarkGrassSide: {110, 100, 62, 255},
	world.TexDirt:          {134, 96, 67, 255},
	world.TexStone:         {128, 128, 128, 255},
	world.TexGlass:         {190, 224, 230, 140},
	world.TexPlanks:        {178, 142, 90, 255},
	world.TexLogSide:       {102, 81, 50, 255},
	world.TexLogTop:        {152, 122, 76, 255},
	world.TexSpruceLogSide: {64, 48, 30, 255},
	world.TexSnowLogSide:   {120, 104, 92, 255},
	world.TexLeaves:        {60, 140, 50, 220},
	world.TexSpruceLeaves:  {40, 96, 54, 220},
	world.TexSnowLeaves:    {150, 176, 158, 220},
	world.TexSnowTop:       {238, 240, 245, 255},
	world.TexSnowSide:      {210, 214, 222, 255},
}

// faceShade escurece faces laterais e inferiores para dar volume sem
// iluminação de verdade, no estilo clássico de voxel.
var faceShade = [util.DirCount]float32{
	util.DirUp:    1.00,
	util.DirDown:  0.55,
	util.DirEast:  0.80,
	util.DirWest:  0.80,
	util.DirSouth: 0.70,
	util.DirNorth: 0.70,
}

// FaceColor retorna a cor final de uma face: cor da camada de textura com
// o sombreamento direcional aplicado.
func FaceColor(tex uint8, dir util.Direction) [4]uint8 {
	c := palette[world.TexStone]
	if tex < world.TexLayerCount {
		c = palette[tex]
	}
	s := faceShade[dir]
	return [4]uint8{
		uint8(float32(c[0]) * s),
		uint8(float32(c[1]) * s),
		uint8(float32(c[2]) * s),
		c[3],
	}
}
