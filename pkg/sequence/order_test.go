package sequence

import (
	"errors"
	"reflect"
	"testing"
)

func TestInitializeProducesIdentity(t *testing.T) {
	s := New()
	s.Initialize(4)

	if got, want := s.Order(), []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v, want %v", got, want)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name string
		n    int
		from int
		to   int
		want []int
	}{
		{name: "first to last of three", n: 3, from: 0, to: 2, want: []int{1, 2, 0}},
		{name: "last to first", n: 3, from: 2, to: 0, want: []int{2, 0, 1}},
		{name: "middle forward", n: 4, from: 1, to: 2, want: []int{0, 2, 1, 3}},
		{name: "same position", n: 3, from: 1, to: 1, want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Initialize(tt.n)
			if err := s.Reorder(tt.from, tt.to); err != nil {
				t.Fatalf("Reorder(%d, %d) error: %v", tt.from, tt.to, err)
			}
			if got := s.Order(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReorderOutOfRange(t *testing.T) {
	s := New()
	s.Initialize(3)

	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {3, 0}, {0, -1}} {
		if err := s.Reorder(pair[0], pair[1]); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Reorder(%d, %d) = %v, want ErrInvalidIndex", pair[0], pair[1], err)
		}
	}

	// A failed reorder leaves the order untouched.
	if got, want := s.Order(), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order after failed Reorder = %v, want %v", got, want)
	}
}

func TestResolveAppliesPermutation(t *testing.T) {
	s := New()
	s.Initialize(3)
	if err := s.Reorder(0, 2); err != nil {
		t.Fatal(err)
	}

	backing := []string{"A", "B", "C"}
	if got, want := Resolve(s, backing), []string{"B", "C", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}

	// The backing slice itself is never mutated.
	if !reflect.DeepEqual(backing, []string{"A", "B", "C"}) {
		t.Error("Resolve mutated the backing slice")
	}
}

func TestResolveSelfHealsOnLengthMismatch(t *testing.T) {
	s := New()
	s.Initialize(5)

	backing := []string{"A", "B", "C"}
	if got, want := Resolve(s, backing), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
	if got, want := s.Order(), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Order after self-heal = %v, want %v", got, want)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		order     []int
		n         int
		wantOK    bool
		wantOrder []int
	}{
		{name: "valid permutation", order: []int{2, 0, 1}, n: 3, wantOK: true, wantOrder: []int{2, 0, 1}},
		{name: "wrong length", order: []int{0, 1}, n: 3, wantOK: false, wantOrder: []int{0, 1, 2}},
		{name: "duplicate index", order: []int{0, 0, 2}, n: 3, wantOK: false, wantOrder: []int{0, 1, 2}},
		{name: "index out of range", order: []int{0, 1, 3}, n: 3, wantOK: false, wantOrder: []int{0, 1, 2}},
		{name: "negative index", order: []int{0, -1, 2}, n: 3, wantOK: false, wantOrder: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if ok := s.Load(tt.order, tt.n); ok != tt.wantOK {
				t.Errorf("Load = %v, want %v", ok, tt.wantOK)
			}
			if got := s.Order(); !reflect.DeepEqual(got, tt.wantOrder) {
				t.Errorf("Order = %v, want %v", got, tt.wantOrder)
			}
		})
	}
}
