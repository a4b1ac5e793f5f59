package world

import (
	"log"
	"time"

	"VoxelVision/internal/util"
)

// GenResult é o produto de um worker de geração: um array de blocos
// desacoplado que o loop principal adota (ou descarta, se o chunk já saiu
// do raio ativo). Err indica falha definitiva após retry.
type GenResult struct {
	Coord  util.ChunkCoord
	Blocks *BlockArray
	Err    error
}

// GenBackend é a visão que o ChunkStore tem do pool de geração.
// Submit nunca bloqueia (retorna false se a fila está cheia ou o pedido é
// duplicado); Poll devolve o que estiver pronto, sem garantia de ordem.
type GenBackend interface {
	Submit(coord util.ChunkCoord) bool
	Poll(max int) []GenResult
}

// StoreParams agrupa os parâmetros imutáveis do ChunkStore.
type StoreParams struct {
	GenRadius      int32         // raio horizontal de geração, em chunks
	VerticalRadius int32         // raio vertical de geração, em chunks
	EvictRadius    int32         // raio além do qual chunks são descartados
	EvictGrace     time.Duration // idade mínima antes de descartar
}

// ChunkStore é o dono do mapeamento esparso de coordenada -> chunk.
//
// Ele vive inteiramente no loop principal: workers nunca tocam o store,
// apenas produzem arrays desacoplados que o Tick adota. A transferência de
// posse acontece pelas filas do GenBackend, então não há locks aqui.
type ChunkStore struct {
	chunks map[util.ChunkCoord]*Chunk
	gen    GenBackend
	params StoreParams

	// remesh é a fila de chunks sujos. Edições entram pela frente, marcadas
	// com true, para furar o orçamento e re-meshar antes da próxima
	// submissão ao renderer.
	remesh *util.UniqueQueue[util.ChunkCoord, bool]

	lastPlayerBlock util.BlockCoord
	firstTick       bool

	now func() time.Time // substituível em testes
}

// NewChunkStore cria um ChunkStore vazio.
func NewChunkStore(gen GenBackend, params StoreParams) *ChunkStore {
	if params.EvictRadius <= params.GenRadius {
		params.EvictRadius = params.GenRadius + 1
	}
	return &ChunkStore{
		chunks:    make(map[util.ChunkCoord]*Chunk),
		gen:       gen,
		params:    params,
		remesh:    util.NewUniqueQueue[util.ChunkCoord, bool](),
		firstTick: true,
		now:       time.Now,
	}
}

// Chunk retorna o chunk na coordenada, ou nil se não existir.
func (s *ChunkStore) Chunk(coord util.ChunkCoord) *Chunk {
	return s.chunks[coord]
}

// Len retorna quantos chunks estão carregados (em qualquer estado).
func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// GetBlock retorna o bloco na coordenada de mundo. Nunca bloqueia: se o
// chunk não existe ou ainda não foi populado, retorna Air.
func (s *ChunkStore) GetBlock(c util.BlockCoord) BlockType {
	ch := s.chunks[c.Chunk()]
	if ch == nil || !ch.Populated() {
		return Air
	}
	x, y, z := c.Local()
	return ch.Get(x, y, z)
}

// BlockAt implementa a visão de mira (raycast): chunks ausentes são ar.
func (s *ChunkStore) BlockAt(c util.BlockCoord) BlockType {
	return s.GetBlock(c)
}

// SolidAt implementa a visão de colisão. Ao contrário de GetBlock, uma
// coluna ainda não gerada conta como sólida ("sólido até provar que é ar"),
// para que o jogador nunca atravesse o chão de um chunk atrasado.
func (s *ChunkStore) SolidAt(c util.BlockCoord) bool {
	ch := s.chunks[c.Chunk()]
	if ch == nil || !ch.Populated() {
		return true
	}
	x, y, z := c.Local()
	return ch.Get(x, y, z).Solid()
}

// SetBlock grava um bloco editado pelo jogador e marca para re-mesh o
// chunk dono e qualquer vizinho que compartilhe a face editada (a
// visibilidade da face do vizinho do outro lado da fronteira depende do
// que acabou de mudar aqui). Retorna false se o chunk não está populado.
func (s *ChunkStore) SetBlock(c util.BlockCoord, t BlockType) bool {
	ch := s.chunks[c.Chunk()]
	if ch == nil || !ch.Populated() {
		return false
	}

	x, y, z := c.Local()
	if ch.Get(x, y, z) == t {
		return false
	}
	ch.Set(x, y, z, t)
	s.markDirtyFront(ch.Coord)

	for dir := util.Direction(0); dir < util.DirCount; dir++ {
		if onBoundary(x, y, z, dir) {
			s.markDirtyFront(ch.Coord.Neighbor(dir))
		}
	}
	return true
}

// onBoundary indica se a coordenada local encosta na face do chunk na
// direção dada.
func onBoundary(x, y, z int32, dir util.Direction) bool {
	var c int32
	switch dir.Axis() {
	case 0:
		c = x
	case 1:
		c = y
	default:
		c = z
	}
	if dir.Positive() {
		return c == util.ChunkSize-1
	}
	return c == 0
}

// markDirty marca um chunk populado como sujo e o enfileira para re-mesh.
func (s *ChunkStore) markDirty(coord util.ChunkCoord) {
	ch := s.chunks[coord]
	if ch == nil || !ch.Populated() {
		return
	}
	ch.Dirty = true
	s.remesh.Enqueue(coord, false)
}

// markDirtyFront é como markDirty, mas fura a fila (edições do jogador).
func (s *ChunkStore) markDirtyFront(coord util.ChunkCoord) {
	ch := s.chunks[coord]
	if ch == nil || !ch.Populated() {
		return
	}
	ch.Dirty = true
	s.remesh.EnqueueFront(coord, true)
}

// NextRemesh retira o próximo chunk sujo da fila, ou ok=false se vazia.
func (s *ChunkStore) NextRemesh() (util.ChunkCoord, bool) {
	coord, _, ok := s.remesh.Dequeue()
	return coord, ok
}

// DirtyBatch retira da fila os chunks a re-meshar neste tick: até budget
// chunks populados, mais todas as edições de jogador, que furam o orçamento.
// As edições ficam na frente da fila, então o chunk editado e o vizinho de
// fronteira saem sempre no mesmo lote. Entradas de chunks já descartados ou
// ainda não populados são ignoradas sem consumir orçamento.
func (s *ChunkStore) DirtyBatch(budget int) []util.ChunkCoord {
	var out []util.ChunkCoord
	for {
		coord, edit, ok := s.remesh.Peek()
		if !ok {
			return out
		}
		if !edit && len(out) >= budget {
			return out
		}
		s.remesh.Dequeue()

		ch := s.chunks[coord]
		if ch == nil || !ch.Populated() {
			continue
		}
		out = append(out, coord)
	}
}

// PendingRemesh retorna quantos chunks aguardam re-mesh.
func (s *ChunkStore) PendingRemesh() int {
	return s.remesh.Len()
}

// NeighborBoundaries coleta as camadas de fronteira dos até 6 vizinhos
// populados do chunk. Vizinhos ausentes ficam nil (o mesher trata como ar;
// quando o vizinho populamos de verdade, os dois lados são re-meshados).
// As fatias são cópias: o mesher nunca segura referência para dentro de
// outro chunk.
func (s *ChunkStore) NeighborBoundaries(coord util.ChunkCoord) [util.DirCount]*BoundarySlice {
	var nb [util.DirCount]*BoundarySlice
	for dir := util.Direction(0); dir < util.DirCount; dir++ {
		n := s.chunks[coord.Neighbor(dir)]
		if n != nil && n.Populated() {
			nb[dir] = n.BoundarySlice(dir.Opposite())
		}
	}
	return nb
}

// Tick avança o store em um tick de simulação:
//
//  1. adota resultados prontos do pool (descartando os de chunks que já
//     saíram do raio: a checagem de vida acontece na adoção, sem cancel);
//  2. emite pedidos de geração para chunks dentro do raio;
//  3. descarta chunks fora do raio de descarte.
//
// Retorna as coordenadas descartadas para o renderer liberar as malhas.
func (s *ChunkStore) Tick(playerPos util.Vector3) []util.ChunkCoord {
	s.adoptResults()

	playerBlock := util.WorldToBlockCoord(playerPos)
	var evicted []util.ChunkCoord

	// Recalcular o conjunto de chunks no raio só quando o jogador muda de
	// bloco; movimento contínuo dentro do mesmo bloco não muda nada.
	if s.firstTick || !playerBlock.Equals(s.lastPlayerBlock) {
		s.firstTick = false
		s.lastPlayerBlock = playerBlock
		s.requestInRange(playerBlock.Chunk())
		evicted = s.evictOutOfRange(playerBlock.Chunk())
	}

	// Chunks que ficaram presos em Requested (fila cheia) tentam de novo.
	for _, ch := range s.chunks {
		if ch.State == StateRequested && s.gen.Submit(ch.Coord) {
			ch.State = StateGenerating
		}
	}

	return evicted
}

// maxAdoptPerTick limita quantos resultados são mesclados por tick.
const maxAdoptPerTick = 64

func (s *ChunkStore) adoptResults() {
	for _, res := range s.gen.Poll(maxAdoptPerTick) {
		ch := s.chunks[res.Coord]
		if ch == nil || ch.State != StateGenerating {
			// Resultado atrasado de um chunk descartado: cai no chão.
			continue
		}

		if res.Err != nil {
			// Falha definitiva: o chunk fica vazio (só ar) e populado,
			// renderizando como terreno ausente. Nunca derruba o processo.
			log.Printf("[MUNDO] geração de %s falhou, mantendo vazio: %v", res.Coord, res.Err)
		} else {
			ch.Blocks = *res.Blocks
		}

		ch.State = StatePopulated
		ch.LoadedAt = s.now()
		s.markDirty(ch.Coord)

		// O vizinho pode ter malha construída assumindo fronteira de ar;
		// agora que este chunk existe, os dois lados precisam re-meshar.
		for dir := util.Direction(0); dir < util.DirCount; dir++ {
			s.markDirty(ch.Coord.Neighbor(dir))
		}
	}
}

func (s *ChunkStore) requestInRange(center util.ChunkCoord) {
	r := s.params.GenRadius
	vr := s.params.VerticalRadius
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			for dy := -vr; dy <= vr; dy++ {
				coord := center.Add(util.ChunkCoord{X: dx, Y: dy, Z: dz})
				if s.chunks[coord] != nil {
					continue
				}
				ch := NewChunk(coord)
				s.chunks[coord] = ch
				if s.gen.Submit(coord) {
					ch.State = StateGenerating
				}
			}
		}
	}
}

func (s *ChunkStore) evictOutOfRange(center util.ChunkCoord) []util.ChunkCoord {
	// O raio vertical de descarte acompanha o de geração com a mesma margem
	// do eixo horizontal; senão colunas carregadas durante uma queda só
	// sairiam quando o jogador estivesse EvictRadius chunks acima ou abaixo.
	vertRadius := s.params.VerticalRadius + (s.params.EvictRadius - s.params.GenRadius)

	var evicted []util.ChunkCoord
	for coord, ch := range s.chunks {
		dx := util.Abs(coord.X - center.X)
		dy := util.Abs(coord.Y - center.Y)
		dz := util.Abs(coord.Z - center.Z)
		if dx <= s.params.EvictRadius && dz <= s.params.EvictRadius && dy <= vertRadius {
			continue
		}
		// Carência evita descartar e regenerar em sequência quando o
		// jogador fica oscilando na borda do raio.
		if ch.Populated() && s.now().Sub(ch.LoadedAt) < s.params.EvictGrace {
			continue
		}
		delete(s.chunks, coord)
		s.remesh.Remove(coord)
		evicted = append(evicted, coord)
	}
	return evicted
}
