package worldgen

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"VoxelVision/internal/util"
	"VoxelVision/internal/world"
)

// request é um pedido de geração em trânsito. attempt conta os retries:
// um pânico no worker reenfileira o pedido uma vez antes de desistir.
type request struct {
	coord   util.ChunkCoord
	attempt int
}

// ChunkGenerator produz o array de blocos de um chunk. Deve ser seguro
// para chamadas concorrentes de vários workers.
type ChunkGenerator interface {
	Generate(coord util.ChunkCoord) *world.BlockArray
}

// Pool distribui a geração de chunks entre goroutines trabalhadoras.
//
// O contrato com o loop principal é só de filas: Submit enfileira sem
// bloquear, Poll drena resultados prontos sem bloquear, e nenhum worker
// jamais toca no ChunkStore. A posse do array de blocos viaja junto com o
// resultado.
type Pool struct {
	gen ChunkGenerator

	requests chan request
	results  chan world.GenResult
	stop     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	pending map[util.ChunkCoord]bool
}

// NewPool cria o pool e inicia os workers. workers <= 0 usa um por núcleo.
func NewPool(workers int, gen ChunkGenerator) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 2 {
		workers = 2
	}

	p := &Pool{
		gen:      gen,
		requests: make(chan request, 256),
		results:  make(chan world.GenResult, 256),
		stop:     make(chan struct{}),
		pending:  make(map[util.ChunkCoord]bool),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	log.Printf("[GEN] pool iniciado com %d workers", workers)
	return p
}

// Submit enfileira um pedido de geração. Retorna false se a fila está
// cheia ou o chunk já tem pedido em andamento; o chamador tenta de novo
// no próximo tick.
func (p *Pool) Submit(coord util.ChunkCoord) bool {
	p.mu.Lock()
	if p.pending[coord] {
		p.mu.Unlock()
		return false
	}
	p.pending[coord] = true
	p.mu.Unlock()

	select {
	case p.requests <- request{coord: coord}:
		return true
	default:
		p.mu.Lock()
		delete(p.pending, coord)
		p.mu.Unlock()
		return false
	}
}

// Poll drena até max resultados prontos, sem bloquear e sem garantia de
// ordem. Cada resultado carrega a própria coordenada.
func (p *Pool) Poll(max int) []world.GenResult {
	var out []world.GenResult
	for len(out) < max {
		select {
		case res := <-p.results:
			p.mu.Lock()
			delete(p.pending, res.Coord)
			p.mu.Unlock()
			out = append(out, res)
		default:
			return out
		}
	}
	return out
}

// Pending retorna quantos pedidos estão em andamento.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Stop encerra os workers e espera todos terminarem.
func (p *Pool) Stop() {
	close(p.stop)
	p.wg.Wait()
	log.Printf("[GEN] pool encerrado")
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case req := <-p.requests:
			p.process(id, req)
		}
	}
}

// process gera um chunk, protegendo o pool contra pânico no gerador: a
// primeira falha reenfileira o pedido, a segunda produz um resultado com
// Err para o chamador adotar um chunk vazio.
func (p *Pool) process(id int, req request) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[GEN] [PANIC] worker %d em %s: %v", id, req.coord, r)
			if req.attempt == 0 {
				req.attempt++
				select {
				case p.requests <- req:
					return
				default:
					// Fila cheia; cai no caso de falha definitiva.
				}
			}
			p.deliver(world.GenResult{
				Coord: req.coord,
				Err:   fmt.Errorf("geração de %s falhou após retry: %v", req.coord, r),
			})
		}
	}()

	blocks := p.gen.Generate(req.coord)
	p.deliver(world.GenResult{Coord: req.coord, Blocks: blocks})
}

// deliver entrega um resultado, desistindo se o pool for encerrado
// enquanto a fila de resultados está cheia.
func (p *Pool) deliver(res world.GenResult) {
	select {
	case p.results <- res:
	case <-p.stop:
	}
}
