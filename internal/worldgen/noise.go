package worldgen

import (
	"math"

	"github.com/aquilax/go-perlin"

	"VoxelVision/internal/config"
)

// Parâmetros de suavização do gerador de Perlin. Junto com as oitavas de
// cada camada, controlam quanto detalhe fino cada campo de ruído carrega.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// Sampler é o amostrador de campos de ruído da geração de terreno.
//
// É uma função pura de (coordenada, seed): amostrar a mesma coordenada duas
// vezes dá o mesmo valor, e colunas de chunks vizinhos concordam na
// fronteira sem nenhuma comunicação, porque tudo é amostrado em coordenadas
// de mundo. São quatro campos independentes, cada um com seed derivada da
// seed do mundo.
type Sampler struct {
	cfg config.NoiseConfig

	continental *perlin.Perlin
	detail      *perlin.Perlin
	biome       *perlin.Perlin
	cave        *perlin.Perlin
}

// NewSampler cria um amostrador para a seed dada.
func NewSampler(seed int64, cfg config.NoiseConfig) *Sampler {
	return &Sampler{
		cfg:         cfg,
		continental: perlin.NewPerlin(perlinAlpha, perlinBeta, cfg.Continental.Octaves, seed),
		detail:      perlin.NewPerlin(perlinAlpha, perlinBeta, cfg.Detail.Octaves, seed+1),
		biome:       perlin.NewPerlin(perlinAlpha, perlinBeta, cfg.Biome.Octaves, seed+2),
		cave:        perlin.NewPerlin(perlinAlpha, perlinBeta, cfg.Cave.Octaves, seed+3),
	}
}

// ContinentalAt retorna o ruído de elevação base em [-1, 1].
func (s *Sampler) ContinentalAt(x, z float64) float64 {
	f := s.cfg.Continental.Frequency
	return s.continental.Noise2D(x*f, z*f)
}

// DetailAt retorna o ruído de áreas elevadas em [-1, 1].
func (s *Sampler) DetailAt(x, z float64) float64 {
	f := s.cfg.Detail.Frequency
	return s.detail.Noise2D(x*f, z*f)
}

// BiomeAt retorna o seletor de bioma normalizado para [0, 1).
func (s *Sampler) BiomeAt(x, z float64) float64 {
	f := s.cfg.Biome.Frequency
	v := (s.biome.Noise2D(x*f, z*f) + 1.0) / 2.0
	// Noise2D pode encostar em -1/1; manter o índice de bioma dentro do range
	if v < 0 {
		v = 0
	}
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

// CaveAt retorna a densidade de caverna 3D normalizada para [0, 1].
func (s *Sampler) CaveAt(x, y, z float64) float64 {
	f := s.cfg.Cave.Frequency
	return (s.cave.Noise3D(x*f, y*f, z*f) + 1.0) / 2.0
}

// HeightAt retorna a elevação do terreno (em blocos, coordenada Y de mundo)
// para uma coluna. Base: ruído continental quantizado sobre BaseHeight;
// onde o ruído de detalhe passa do limiar, o terreno sobe junto com ele.
func (s *Sampler) HeightAt(x, z float64) int32 {
	sample := s.ContinentalAt(x, z)
	elevation := int32(math.Floor(sample*s.cfg.Continental.Amplitude)) + s.cfg.BaseHeight

	raised := s.DetailAt(x, z)
	if raised > s.cfg.RaisedThreshold {
		elevation += int32(math.Floor(raised * s.cfg.Detail.Amplitude))
	}
	return elevation
}

// InTreeBand indica se a coluna está na faixa de elevação onde nascem
// árvores (amostra continental positiva).
func (s *Sampler) InTreeBand(x, z float64) bool {
	return s.ContinentalAt(x, z) > 0
}

// CarveCave indica se o bloco na coordenada deve ser escavado como caverna.
func (s *Sampler) CarveCave(x, y, z float64) bool {
	return s.CaveAt(x, y, z) > s.cfg.CaveThreshold
}
