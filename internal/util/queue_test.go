package util

import "testing"

func TestUniqueQueueDedup(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	if !q.Enqueue("a", 1) {
		t.Error("primeira inserção deveria retornar true")
	}
	if q.Enqueue("a", 2) {
		t.Error("inserção duplicada deveria retornar false")
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}

	// O valor da duplicata substitui o original.
	_, v, ok := q.Dequeue()
	if !ok || v != 2 {
		t.Errorf("Dequeue = (%d, %v), want (2, true)", v, ok)
	}

	if _, _, ok := q.Dequeue(); ok {
		t.Error("fila vazia deveria retornar false")
	}
}

func TestUniqueQueueOrder(t *testing.T) {
	q := NewUniqueQueue[int, struct{}]()
	for _, k := range []int{1, 2, 3} {
		q.Enqueue(k, struct{}{})
	}

	for _, want := range []int{1, 2, 3} {
		k, _, ok := q.Dequeue()
		if !ok || k != want {
			t.Errorf("Dequeue = %d, want %d", k, want)
		}
	}
}

func TestUniqueQueueEnqueueFront(t *testing.T) {
	q := NewUniqueQueue[int, struct{}]()
	q.Enqueue(1, struct{}{})
	q.Enqueue(2, struct{}{})
	q.Enqueue(3, struct{}{})

	// Move uma chave existente para a frente sem duplicar.
	q.EnqueueFront(3, struct{}{})
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}

	q.EnqueueFront(9, struct{}{})

	var got []int
	for {
		k, _, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, k)
	}

	want := []int{9, 3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordem = %v, want %v", got, want)
		}
	}
}

func TestUniqueQueuePeek(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	if _, _, ok := q.Peek(); ok {
		t.Error("Peek em fila vazia deveria retornar ok=false")
	}

	q.Enqueue("a", 1)
	q.Enqueue("b", 2)

	k, v, ok := q.Peek()
	if !ok || k != "a" || v != 1 {
		t.Errorf("Peek = (%v, %v, %v), want (a, 1, true)", k, v, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Peek removeu item: Len = %d, want 2", q.Len())
	}

	// Peek e Dequeue enxergam o mesmo primeiro item.
	dk, dv, _ := q.Dequeue()
	if dk != k || dv != v {
		t.Errorf("Dequeue = (%v, %v) difere do Peek (%v, %v)", dk, dv, k, v)
	}
}

func TestUniqueQueueRemove(t *testing.T) {
	q := NewUniqueQueue[int, struct{}]()
	q.Enqueue(1, struct{}{})
	q.Enqueue(2, struct{}{})

	q.Remove(1)
	if q.Contains(1) {
		t.Error("chave removida ainda presente")
	}

	k, _, ok := q.Dequeue()
	if !ok || k != 2 {
		t.Errorf("Dequeue = (%d, %v), want (2, true)", k, ok)
	}
}
