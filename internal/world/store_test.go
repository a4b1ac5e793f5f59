package world

import (
	"errors"
	"testing"

	"VoxelVision/internal/util"
)

// fakeGen implementa GenBackend em memória: registra submissões e entrega
// os resultados que o teste empurrar.
type fakeGen struct {
	submitted []util.ChunkCoord
	results   []GenResult
	full      bool
}

func (f *fakeGen) Submit(c util.ChunkCoord) bool {
	if f.full {
		return false
	}
	f.submitted = append(f.submitted, c)
	return true
}

func (f *fakeGen) Poll(max int) []GenResult {
	n := len(f.results)
	if n > max {
		n = max
	}
	out := f.results[:n]
	f.results = f.results[n:]
	return out
}

func (f *fakeGen) push(coord util.ChunkCoord, blocks *BlockArray, err error) {
	f.results = append(f.results, GenResult{Coord: coord, Blocks: blocks, Err: err})
}

func testParams() StoreParams {
	return StoreParams{GenRadius: 1, VerticalRadius: 1, EvictRadius: 2}
}

func stoneChunk() *BlockArray {
	var a BlockArray
	for i := range a {
		a[i] = Stone
	}
	return &a
}

func TestAbsentChunkViews(t *testing.T) {
	s := NewChunkStore(&fakeGen{}, testParams())
	c := util.BlockCoord{X: 100, Y: 100, Z: 100}

	if got := s.GetBlock(c); got != Air {
		t.Errorf("GetBlock em chunk ausente = %v, want Air", got)
	}
	if !s.SolidAt(c) {
		t.Error("SolidAt em chunk ausente deveria ser true (colisão conservadora)")
	}
}

func TestTickRequestsInRange(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())

	s.Tick(util.Vector3{X: 8, Y: 8, Z: 8})

	// Raio 1 em volta do chunk (0,0,0): um cubo 3x3x3.
	if len(gen.submitted) != 27 {
		t.Fatalf("submissões = %d, want 27", len(gen.submitted))
	}
	if s.Len() != 27 {
		t.Fatalf("Len = %d, want 27", s.Len())
	}

	// Sem movimento, nenhum pedido novo.
	s.Tick(util.Vector3{X: 8, Y: 8, Z: 8})
	if len(gen.submitted) != 27 {
		t.Errorf("tick sem movimento gerou pedidos novos: %d", len(gen.submitted))
	}
}

func TestAdoptOutOfOrder(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}

	s.Tick(pos)

	// Resultados chegam em ordem diferente da submissão; a adoção é por
	// coordenada, então a ordem não importa.
	a := util.ChunkCoord{X: 1, Y: 0, Z: 0}
	b := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	gen.push(a, stoneChunk(), nil)
	gen.push(b, stoneChunk(), nil)

	s.Tick(pos)

	for _, coord := range []util.ChunkCoord{a, b} {
		ch := s.Chunk(coord)
		if ch == nil || !ch.Populated() {
			t.Fatalf("%v não foi adotado", coord)
		}
	}
	if got := s.GetBlock(util.BlockCoord{X: 16, Y: 0, Z: 0}); got != Stone {
		t.Errorf("bloco adotado = %v, want Stone", got)
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())

	s.Tick(util.Vector3{})

	// Jogador se teleporta para longe; os chunks originais são descartados.
	far := util.Vector3{X: 1000, Y: 0, Z: 1000}
	evicted := s.Tick(far)
	if len(evicted) == 0 {
		t.Fatal("nenhum chunk descartado após teleporte")
	}

	// Um resultado atrasado do chunk descartado chega agora: cai no chão.
	stale := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	gen.push(stale, stoneChunk(), nil)
	s.Tick(far)

	if ch := s.Chunk(stale); ch != nil {
		t.Errorf("resultado atrasado ressuscitou o chunk %v", stale)
	}
}

func TestGenFailureAdoptsEmpty(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}

	s.Tick(pos)

	coord := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	gen.push(coord, nil, errors.New("falha definitiva"))
	s.Tick(pos)

	ch := s.Chunk(coord)
	if ch == nil || !ch.Populated() {
		t.Fatal("chunk com falha deveria ficar populado (vazio)")
	}
	if got := s.GetBlock(util.BlockCoord{X: 0, Y: 0, Z: 0}); got != Air {
		t.Errorf("chunk com falha deveria ser só ar, tem %v", got)
	}
	// Populado e vazio: a colisão volta a enxergar ar.
	if s.SolidAt(util.BlockCoord{X: 0, Y: 0, Z: 0}) {
		t.Error("chunk vazio adotado não deveria ser sólido")
	}
}

func TestRequestedRetriesWhenQueueFull(t *testing.T) {
	gen := &fakeGen{full: true}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}

	s.Tick(pos)
	if len(gen.submitted) != 0 {
		t.Fatalf("fila cheia não deveria aceitar submissões")
	}

	// A fila abre; os chunks presos em Requested são reenviados sem o
	// jogador precisar se mover.
	gen.full = false
	s.Tick(pos)
	if len(gen.submitted) != 27 {
		t.Errorf("reenvio após fila cheia = %d, want 27", len(gen.submitted))
	}
}

func TestSetBlockMarksBoundaryNeighbors(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}

	s.Tick(pos)
	owner := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	east := util.ChunkCoord{X: 1, Y: 0, Z: 0}
	gen.push(owner, stoneChunk(), nil)
	gen.push(east, stoneChunk(), nil)
	s.Tick(pos)

	// Limpa a fila de re-mesh da adoção.
	for {
		if _, ok := s.NextRemesh(); !ok {
			break
		}
	}

	// Edição na face leste do chunk dono: os dois lados precisam re-meshar.
	if !s.SetBlock(util.BlockCoord{X: 15, Y: 5, Z: 5}, Air) {
		t.Fatal("SetBlock em chunk populado falhou")
	}

	var dirtied []util.ChunkCoord
	for {
		coord, ok := s.NextRemesh()
		if !ok {
			break
		}
		dirtied = append(dirtied, coord)
	}

	want := map[util.ChunkCoord]bool{owner: true, east: true}
	for _, c := range dirtied {
		delete(want, c)
	}
	if len(want) != 0 {
		t.Errorf("chunks não re-enfileirados após edição de fronteira: %v (fila: %v)", want, dirtied)
	}
}

func TestSetBlockRejections(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}
	s.Tick(pos)

	// Chunk ainda não populado: edição recusada.
	if s.SetBlock(util.BlockCoord{X: 0, Y: 0, Z: 0}, Stone) {
		t.Error("SetBlock em chunk não populado deveria falhar")
	}

	gen.push(util.ChunkCoord{}, stoneChunk(), nil)
	s.Tick(pos)
	for {
		if _, ok := s.NextRemesh(); !ok {
			break
		}
	}

	// Gravar o mesmo valor é um no-op e não suja nada.
	if s.SetBlock(util.BlockCoord{X: 1, Y: 1, Z: 1}, Stone) {
		t.Error("SetBlock com o mesmo valor deveria ser no-op")
	}
	if s.PendingRemesh() != 0 {
		t.Errorf("no-op sujou %d chunks", s.PendingRemesh())
	}
}

func TestDirtyBatchRespectsBudget(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}
	s.Tick(pos)

	for i := int32(-1); i <= 1; i++ {
		gen.push(util.ChunkCoord{X: i}, stoneChunk(), nil)
	}
	s.Tick(pos)

	batch := s.DirtyBatch(2)
	if len(batch) != 2 {
		t.Fatalf("lote = %d chunks, want 2 (orçamento)", len(batch))
	}
	// O excedente fica na fila para o próximo tick.
	if s.PendingRemesh() == 0 {
		t.Error("excedente do orçamento sumiu da fila")
	}
}

func TestDirtyBatchDrainsEditsPastBudget(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}
	s.Tick(pos)

	owner := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	east := util.ChunkCoord{X: 1, Y: 0, Z: 0}
	gen.push(owner, stoneChunk(), nil)
	gen.push(east, stoneChunk(), nil)
	s.Tick(pos)
	s.DirtyBatch(64) // limpa a fila da adoção

	// Um chunk recém-adotado ocupa a fila, e então o jogador edita a face
	// leste do chunk dono: os dois lados da fronteira furam o orçamento e
	// saem no mesmo lote, antes do chunk adotado.
	above := util.ChunkCoord{X: 0, Y: 1, Z: 0}
	gen.push(above, stoneChunk(), nil)
	s.Tick(pos)
	if !s.SetBlock(util.BlockCoord{X: 15, Y: 5, Z: 5}, Air) {
		t.Fatal("SetBlock falhou")
	}

	batch := s.DirtyBatch(1)
	got := map[util.ChunkCoord]bool{}
	for _, c := range batch {
		got[c] = true
	}
	if !got[owner] || !got[east] {
		t.Fatalf("lote %v não contém os dois lados da edição (%v e %v)", batch, owner, east)
	}
	if got[above] {
		t.Errorf("chunk não editado %v passou na frente do orçamento", above)
	}
	if s.PendingRemesh() == 0 {
		t.Error("chunk não editado deveria esperar o próximo tick")
	}
}

func TestDirtyBatchSkipsAbsentWithoutBudget(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}
	s.Tick(pos)

	coord := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	gen.push(coord, stoneChunk(), nil)
	s.Tick(pos)

	// Entrada órfã na frente da fila: o chunk não existe mais. Ela não pode
	// consumir o orçamento do lote.
	s.remesh.EnqueueFront(util.ChunkCoord{X: 9, Y: 9, Z: 9}, false)

	batch := s.DirtyBatch(1)
	if len(batch) != 1 || batch[0] != coord {
		t.Errorf("lote = %v, want [%v] (órfã ignorada sem gastar orçamento)", batch, coord)
	}
}

func TestEvictAppliesVerticalRadius(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, StoreParams{GenRadius: 3, VerticalRadius: 0, EvictRadius: 4})

	// Jogador em queda: carrega a fileira de chunks em Y=2.
	s.Tick(util.Vector3{Y: 40})
	high := util.ChunkCoord{X: 0, Y: 2, Z: 0}
	if s.Chunk(high) == nil {
		t.Fatal("fileira alta não foi carregada")
	}

	// Pousou em Y=0: a fileira alta saiu do raio vertical e é descartada,
	// mesmo estando dentro do raio horizontal de descarte.
	s.Tick(util.Vector3{Y: 8})
	if s.Chunk(high) != nil {
		t.Errorf("chunk %v fora do raio vertical não foi descartado", high)
	}
}

func TestNeighborBoundaries(t *testing.T) {
	gen := &fakeGen{}
	s := NewChunkStore(gen, testParams())
	pos := util.Vector3{}
	s.Tick(pos)

	center := util.ChunkCoord{X: 0, Y: 0, Z: 0}
	east := util.ChunkCoord{X: 1, Y: 0, Z: 0}
	gen.push(center, stoneChunk(), nil)
	gen.push(east, stoneChunk(), nil)
	s.Tick(pos)

	nb := s.NeighborBoundaries(center)

	if nb[util.DirEast] == nil {
		t.Fatal("vizinho leste populado deveria ter fatia")
	}
	if nb[util.DirWest] != nil {
		t.Error("vizinho oeste não populado deveria ser nil")
	}
	for _, b := range nb[util.DirEast] {
		if b != Stone {
			t.Fatal("fatia do vizinho leste deveria ser toda pedra")
		}
	}
}
