package worldgen

import (
	"math/rand"

	"VoxelVision/internal/config"
	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// Tree descreve a espécie de árvore de um bioma.
type Tree struct {
	Trunk world.BlockType
	Leaf  world.BlockType
}

// Biome descreve a pilha de camadas de solo (da superfície para baixo) e a
// vegetação de uma região. A última camada se repete até o fundo.
type Biome struct {
	Name       string
	Layers     []world.BlockType
	Tree       Tree
	TreeChance int // % de chance de árvore por bloco de superfície elegível
}

var biomes = []Biome{
	{
		Name:       "campos",
		Layers:     []world.BlockType{world.Grass, world.Dirt, world.Stone},
		Tree:       Tree{Trunk: world.Log, Leaf: world.Leaves},
		TreeChance: 20,
	},
	{
		Name:       "bosque",
		Layers:     []world.BlockType{world.DarkGrass, world.Dirt, world.Stone},
		Tree:       Tree{Trunk: world.SpruceLog, Leaf: world.SpruceLeaves},
		TreeChance: 20,
	},
	{
		Name:       "nevado",
		Layers:     []world.BlockType{world.Snow, world.Stone},
		Tree:       Tree{Trunk: world.SnowLog, Leaf: world.SnowLeaves},
		TreeChance: 10,
	},
}

// Generator transforma coordenadas de chunk em arrays de blocos.
// É determinístico: mesma seed + mesma coordenada = mesmo chunk, sempre.
// Roda dentro dos workers do Pool, nunca no loop principal.
type Generator struct {
	seed    int64
	sampler *Sampler
}

// NewGenerator cria um gerador para a seed dada.
func NewGenerator(seed int64, cfg config.NoiseConfig) *Generator {
	return &Generator{
		seed:    seed,
		sampler: NewSampler(seed, cfg),
	}
}

// Sampler expõe o amostrador de ruído do gerador.
func (g *Generator) Sampler() *Sampler {
	return g.sampler
}

// Generate preenche um array de blocos desacoplado para o chunk.
//
// Abaixo de y=0 o mundo é pedra maciça (com cavernas escavadas); acima, o
// terreno segue a elevação por coluna do Sampler, com a pilha de camadas do
// bioma por profundidade. Árvores usam um RNG próprio por chunk (seed
// misturada com a coordenada) e são sempre recortadas nos limites do chunk,
// para que chunks vizinhos continuem independentes entre si.
func (g *Generator) Generate(coord util.ChunkCoord) *world.BlockArray {
	blocks := &world.BlockArray{}
	origin := coord.Origin()

	if coord.Y < 0 {
		g.fillUnderground(blocks, origin)
		return blocks
	}

	rng := rand.New(rand.NewSource(g.chunkSeed(coord)))

	for x := int32(0); x < util.ChunkSize; x++ {
		for z := int32(0); z < util.ChunkSize; z++ {
			worldX := float64(origin.X + x)
			worldZ := float64(origin.Z + z)

			elevation := g.sampler.HeightAt(worldX, worldZ)
			biome := &biomes[int(g.sampler.BiomeAt(worldX, worldZ)*float64(len(biomes)))]
			inTrees := g.sampler.InTreeBand(worldX, worldZ)

			for y := int32(0); y < util.ChunkSize; y++ {
				worldY := origin.Y + y
				if worldY >= elevation {
					continue
				}

				if g.sampler.CarveCave(worldX, float64(worldY), worldZ) {
					continue
				}

				// Profundidade a partir da superfície escolhe a camada do bioma.
				depth := int(elevation - worldY - 1)
				if depth >= len(biome.Layers) {
					depth = len(biome.Layers) - 1
				}
				blocks.Set(x, y, z, biome.Layers[depth])

				// Árvores só nascem na superfície, na faixa de elevação
				// certa, e baixas o bastante para caber no chunk.
				if depth == 0 && inTrees && y < 9 {
					g.placeTree(blocks, x, y, z, biome, rng)
				}
			}
		}
	}

	return blocks
}

// fillUnderground preenche um chunk subterrâneo: pedra maciça com cavernas.
func (g *Generator) fillUnderground(blocks *world.BlockArray, origin util.BlockCoord) {
	for x := int32(0); x < util.ChunkSize; x++ {
		for z := int32(0); z < util.ChunkSize; z++ {
			for y := int32(0); y < util.ChunkSize; y++ {
				wx := float64(origin.X + x)
				wy := float64(origin.Y + y)
				wz := float64(origin.Z + z)
				if g.sampler.CarveCave(wx, wy, wz) {
					continue
				}
				blocks.Set(x, y, z, world.Stone)
			}
		}
	}
}

// chunkSeed mistura a seed do mundo com a coordenada do chunk, para que o
// RNG de vegetação seja determinístico por chunk.
func (g *Generator) chunkSeed(coord util.ChunkCoord) int64 {
	return g.seed + int64(coord.X)*31 + int64(coord.Y)*17 + int64(coord.Z)*13
}

// treeNeighborhood são os 8 vizinhos horizontais checados antes de plantar
// (a árvore precisa de espaço livre ao redor do tronco).
var treeNeighborhood = [8][2]int32{
	{1, 0}, {-1, 0}, {0, -1}, {0, 1},
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

var treeDiagonals = [4][2]int32{
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

// placeTree tenta plantar uma árvore com a base na coordenada local dada.
// Tronco de 3 a 5 blocos, copa 3x3x3 em volta do topo, e dois tufos
// diagonais removidos para quebrar a simetria. Tudo recortado nos limites
// do chunk.
func (g *Generator) placeTree(blocks *world.BlockArray, x, y, z int32, biome *Biome, rng *rand.Rand) {
	if rng.Intn(100) >= biome.TreeChance {
		return
	}

	// Espaço livre em volta da futura base do tronco.
	for _, off := range treeNeighborhood {
		nx, nz := x+off[0], z+off[1]
		if !inChunk(nx, y+1, nz) {
			return
		}
		if blocks.At(nx, y+1, nz) != world.Air {
			return
		}
	}

	trunkHeight := int32(rng.Intn(3)) + 3

	// Copa primeiro, só em células vazias; o tronco é gravado por cima
	// para a coluna central ficar inteira.
	fillArea(blocks,
		x-1, y+trunkHeight, z-1,
		x+1, y+trunkHeight+2, z+1,
		biome.Tree.Leaf)
	fillArea(blocks,
		x, y+1, z,
		x, y+trunkHeight, z,
		biome.Tree.Trunk)

	// Dois tufos diagonais a menos, para a copa não ficar um cubo perfeito.
	for i := 0; i < 2; i++ {
		d := treeDiagonals[rng.Intn(len(treeDiagonals))]
		lx, ly, lz := x+d[0], y+trunkHeight+2, z+d[1]
		if inChunk(lx, ly, lz) && blocks.At(lx, ly, lz) == biome.Tree.Leaf {
			blocks.Set(lx, ly, lz, world.Air)
		}
	}
}

// fillArea grava o tipo em todas as células vazias do cuboide, ignorando o
// que cair fora do chunk.
func fillArea(blocks *world.BlockArray, x0, y0, z0, x1, y1, z1 int32, t world.BlockType) {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if inChunk(x, y, z) && blocks.At(x, y, z) == world.Air {
					blocks.Set(x, y, z, t)
				}
			}
		}
	}
}

func inChunk(x, y, z int32) bool {
	return x >= 0 && x < util.ChunkSize &&
		y >= 0 && y < util.ChunkSize &&
		z >= 0 && z < util.ChunkSize
}
