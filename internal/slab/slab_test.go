package slab

import (
	"testing"
)

func TestSlab_Insert(t *testing.T) {
	t.Run("sequential indices", func(t *testing.T) {
		s := New[string](0)

		for i := 0; i < 5; i++ {
			idx := s.Insert("v")
			if idx != uint32(i) {
				t.Errorf("expected index %d, got %d", i, idx)
			}
		}
		if s.Len() != 5 {
			t.Errorf("expected len=5, got %d", s.Len())
		}
	})

	t.Run("with capacity", func(t *testing.T) {
		s := New[int](16)

		if s.Cap() != 0 {
			t.Errorf("expected cap=0 before inserts, got %d", s.Cap())
		}
		s.Insert(1)
		if s.Len() != 1 {
			t.Errorf("expected len=1, got %d", s.Len())
		}
	})
}

func TestSlab_Get(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		s := New[string](0)
		idx := s.Insert("hello")

		v, ok := s.Get(idx)
		if !ok {
			t.Fatal("expected slot to be occupied")
		}
		if *v != "hello" {
			t.Errorf("expected %q, got %q", "hello", *v)
		}
	})

	t.Run("mutation through pointer", func(t *testing.T) {
		s := New[int](0)
		idx := s.Insert(1)

		v, _ := s.Get(idx)
		*v = 42

		v2, _ := s.Get(idx)
		if *v2 != 42 {
			t.Errorf("expected 42, got %d", *v2)
		}
	})

	t.Run("vacant slot", func(t *testing.T) {
		s := New[int](0)
		idx := s.Insert(1)
		s.Remove(idx)

		if _, ok := s.Get(idx); ok {
			t.Error("expected vacant slot")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		s := New[int](0)

		if _, ok := s.Get(99); ok {
			t.Error("expected miss for out-of-range index")
		}
		if _, ok := s.Get(NilIndex); ok {
			t.Error("expected miss for NilIndex")
		}
	})
}

func TestSlab_Remove(t *testing.T) {
	t.Run("returns value", func(t *testing.T) {
		s := New[string](0)
		idx := s.Insert("a")

		v := s.Remove(idx)
		if v != "a" {
			t.Errorf("expected %q, got %q", "a", v)
		}
		if s.Len() != 0 {
			t.Errorf("expected len=0, got %d", s.Len())
		}
	})

	t.Run("index reuse", func(t *testing.T) {
		s := New[string](0)
		s.Insert("a")
		idx := s.Insert("b")
		s.Insert("c")

		s.Remove(idx)

		reused := s.Insert("d")
		if reused != idx {
			t.Errorf("expected freed index %d to be reused, got %d", idx, reused)
		}

		v, _ := s.Get(reused)
		if *v != "d" {
			t.Errorf("expected %q, got %q", "d", *v)
		}
	})

	t.Run("vacant slot panics", func(t *testing.T) {
		s := New[int](0)
		idx := s.Insert(1)
		s.Remove(idx)

		defer func() {
			if recover() == nil {
				t.Error("expected panic on double remove")
			}
		}()
		s.Remove(idx)
	})
}

func TestSlab_Retain(t *testing.T) {
	t.Run("surviving indices are stable", func(t *testing.T) {
		s := New[int](0)
		for i := 0; i < 6; i++ {
			s.Insert(i * 10)
		}

		removed := s.Retain(func(i uint32, _ *int) bool {
			return i%2 == 0
		})
		if removed != 3 {
			t.Errorf("expected 3 removed, got %d", removed)
		}

		for _, i := range []uint32{0, 2, 4} {
			v, ok := s.Get(i)
			if !ok {
				t.Fatalf("slot %d should have survived", i)
			}
			if *v != int(i)*10 {
				t.Errorf("slot %d renumbered: expected %d, got %d", i, i*10, *v)
			}
		}
		for _, i := range []uint32{1, 3, 5} {
			if s.Contains(i) {
				t.Errorf("slot %d should have been removed", i)
			}
		}
	})

	t.Run("keep all", func(t *testing.T) {
		s := New[int](0)
		s.Insert(1)
		s.Insert(2)

		removed := s.Retain(func(uint32, *int) bool { return true })
		if removed != 0 {
			t.Errorf("expected 0 removed, got %d", removed)
		}
		if s.Len() != 2 {
			t.Errorf("expected len=2, got %d", s.Len())
		}
	})

	t.Run("removed slots are reusable", func(t *testing.T) {
		s := New[int](0)
		for i := 0; i < 4; i++ {
			s.Insert(i)
		}
		s.Retain(func(uint32, *int) bool { return false })

		idx := s.Insert(99)
		if idx >= 4 {
			t.Errorf("expected a reused index < 4, got %d", idx)
		}
		if s.Cap() != 4 {
			t.Errorf("expected cap=4, got %d", s.Cap())
		}
	})
}

func TestSlab_All(t *testing.T) {
	s := New[string](0)
	s.Insert("a")
	idx := s.Insert("b")
	s.Insert("c")
	s.Remove(idx)

	got := map[uint32]string{}
	for i, v := range s.All() {
		got[i] = *v
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0] != "a" || got[2] != "c" {
		t.Errorf("unexpected iteration result: %v", got)
	}
}

func TestSlab_Stats(t *testing.T) {
	s := New[int](0)
	a := s.Insert(1)
	s.Insert(2)
	s.Remove(a)

	stats := s.Stats()
	if stats.Len != 1 {
		t.Errorf("expected Len=1, got %d", stats.Len)
	}
	if stats.Cap != 2 {
		t.Errorf("expected Cap=2, got %d", stats.Cap)
	}
	if stats.Inserts != 2 {
		t.Errorf("expected Inserts=2, got %d", stats.Inserts)
	}
	if stats.Removals != 1 {
		t.Errorf("expected Removals=1, got %d", stats.Removals)
	}
}

func BenchmarkSlab_Insert(b *testing.B) {
	s := New[int](1024)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = s.Insert(i)
	}
}

func BenchmarkSlab_InsertRemove(b *testing.B) {
	s := New[int](1024)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		idx := s.Insert(i)
		_ = s.Remove(idx)
	}
}
