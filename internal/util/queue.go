package util

// UniqueQueue é uma fila que garante elementos únicos por chave.
// É usada para enfileirar chunks para re-mesh: um chunk sujo só aparece
// uma vez na fila, não importa quantas vezes foi marcado.
type UniqueQueue[K comparable, V any] struct {
	items   []entry[K, V]
	present map[K]bool
}

type entry[K comparable, V any] struct {
	Key   K
	Value V
}

// NewUniqueQueue cria uma nova UniqueQueue.
func NewUniqueQueue[K comparable, V any]() *UniqueQueue[K, V] {
	return &UniqueQueue[K, V]{
		items:   make([]entry[K, V], 0, 64),
		present: make(map[K]bool),
	}
}

// Enqueue adiciona um item ao fim se a chave ainda não existir na fila.
// Se a chave já existir, o valor é atualizado.
// Retorna true se foi adicionado (novo), false se foi atualizado.
func (q *UniqueQueue[K, V]) Enqueue(key K, value V) bool {
	if q.present[key] {
		for i := range q.items {
			if q.items[i].Key == key {
				q.items[i].Value = value
				break
			}
		}
		return false
	}

	q.items = append(q.items, entry[K, V]{Key: key, Value: value})
	q.present[key] = true
	return true
}

// EnqueueFront adiciona um item na frente da fila (prioridade).
// Se a chave já existir em outra posição, ela é movida para a frente.
// Edições de bloco usam isso para garantir o re-mesh no mesmo tick.
func (q *UniqueQueue[K, V]) EnqueueFront(key K, value V) {
	if q.present[key] {
		for i := range q.items {
			if q.items[i].Key == key {
				q.items = append(q.items[:i], q.items[i+1:]...)
				break
			}
		}
	}
	q.items = append([]entry[K, V]{{Key: key, Value: value}}, q.items...)
	q.present[key] = true
}

// Peek retorna o primeiro item da fila sem removê-lo.
func (q *UniqueQueue[K, V]) Peek() (K, V, bool) {
	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return q.items[0].Key, q.items[0].Value, true
}

// Dequeue remove e retorna o primeiro item da fila.
// Retorna a chave, o valor e true se havia item; zero values e false se vazia.
func (q *UniqueQueue[K, V]) Dequeue() (K, V, bool) {
	if len(q.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}

	e := q.items[0]
	q.items = q.items[1:]
	delete(q.present, e.Key)
	return e.Key, e.Value, true
}

// Remove retira uma chave da fila, se presente.
func (q *UniqueQueue[K, V]) Remove(key K) {
	if !q.present[key] {
		return
	}
	for i := range q.items {
		if q.items[i].Key == key {
			q.items = append(q.items[:i], q.items[i+1:]...)
			break
		}
	}
	delete(q.present, key)
}

// Len retorna o número de items na fila.
func (q *UniqueQueue[K, V]) Len() int {
	return len(q.items)
}

// Contains verifica se uma chave está na fila.
func (q *UniqueQueue[K, V]) Contains(key K) bool {
	return q.present[key]
}
