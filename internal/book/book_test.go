package book

import "testing"

func TestStoreAndLookup(t *testing.T) {
	b, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer b.Close()

	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	entry := Entry{BestUCI: "e2e4", Score: 35, Depth: 4, Nodes: 1200}
	if err := b.Store(fen, entry); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := b.Lookup(fen, 4)
	if !ok {
		t.Fatal("Lookup did not find the stored entry")
	}
	if got != entry {
		t.Errorf("Lookup = %+v, want %+v", got, entry)
	}

	if _, ok := b.Lookup(fen, 5); ok {
		t.Error("Lookup should reject an entry shallower than the requested depth")
	}

	if _, ok := b.Lookup("no such fen", 1); ok {
		t.Error("Lookup should miss on an unknown key")
	}
}
