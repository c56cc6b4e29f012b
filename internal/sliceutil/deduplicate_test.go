package sliceutil

import (
	"strconv"
	"testing"
)

type testRoom struct {
	ID   string
	Name string
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		items []testRoom
		want  []testRoom
	}{
		{
			name: "No duplicates",
			items: []testRoom{
				{ID: "biblioteca", Name: "Biblioteca"},
				{ID: "refeitorio", Name: "Refeitório"},
			},
			want: []testRoom{
				{ID: "biblioteca", Name: "Biblioteca"},
				{ID: "refeitorio", Name: "Refeitório"},
			},
		},
		{
			name: "Duplicates keep first occurrence",
			items: []testRoom{
				{ID: "biblioteca", Name: "Biblioteca"},
				{ID: "sala_315", Name: "Sala 315"},
				{ID: "biblioteca", Name: "Biblioteca (anexo)"},
			},
			want: []testRoom{
				{ID: "biblioteca", Name: "Biblioteca"},
				{ID: "sala_315", Name: "Sala 315"},
			},
		},
		{
			name:  "Empty slice",
			items: []testRoom{},
			want:  []testRoom{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Deduplicate(tt.items, func(r testRoom) string { return r.ID })
			if len(got) != len(tt.want) {
				t.Fatalf("Deduplicate() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Deduplicate()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDeduplicateStrings(t *testing.T) {
	t.Parallel()
	questions := []string{
		"onde fica a biblioteca?",
		"qual o telefone?",
		"onde fica a biblioteca?",
		"qual o email?",
	}

	got := Deduplicate(questions, func(q string) string { return q })

	want := []string{"onde fica a biblioteca?", "qual o telefone?", "qual o email?"}
	if len(got) != len(want) {
		t.Fatalf("Deduplicate() length = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Deduplicate()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func BenchmarkDeduplicate(b *testing.B) {
	items := make([]testRoom, 1000)
	for i := 0; i < 1000; i++ {
		items[i] = testRoom{ID: strconv.Itoa(i % 100), Name: "sala"}
	}

	keyFunc := func(r testRoom) string { return r.ID }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Deduplicate(items, keyFunc)
	}
}
