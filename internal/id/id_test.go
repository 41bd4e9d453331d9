package id

import "testing"

func TestNewIDLength(t *testing.T) {
	generated, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(generated) != 26 {
		t.Fatalf("expected 26-character id, got %d (%q)", len(generated), generated)
	}
}

func TestNewIDLowercaseAlphabet(t *testing.T) {
	generated, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	for _, c := range generated {
		if (c < 'a' || c > 'z') && (c < '2' || c > '7') {
			t.Fatalf("unexpected character %q in id %q", c, generated)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		generated, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[generated] {
			t.Fatalf("duplicate id %q", generated)
		}
		seen[generated] = true
	}
}
