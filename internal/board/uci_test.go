package board

import "testing"

func TestMoveUciRoundTrip(t *testing.T) {
	p := New()
	m := MoveObject(p, anToSquare("g1"), anToSquare("f3"), 0, false)
	if m.IsNull() {
		t.Fatal("Ng1f3 not found among legal moves")
	}
	if got := MoveUCI(p, m); got != "g1f3" {
		t.Errorf("MoveUCI = %q, want g1f3", got)
	}
}

func TestMoveUciPromotion(t *testing.T) {
	p := New()
	p.Load("8/P7/8/8/8/8/8/k6K w - - 0 1")
	m := MoveUciToMove(p, "a7a8n", false)
	if m.IsNull() || m.Promote != KNIGHT {
		t.Fatalf("a7a8n did not resolve to a knight promotion: %+v", m)
	}
	if got := MoveUCI(p, m); got != "a7a8n" {
		t.Errorf("MoveUCI(promotion) = %q, want a7a8n", got)
	}
}

func TestMoveUciMalformed(t *testing.T) {
	p := New()
	for _, bad := range []string{"", "e2", "zz9z", "e2e4z"} {
		if m := MoveUciToMove(p, bad, false); !m.IsNull() {
			t.Errorf("MoveUciToMove(%q) resolved unexpectedly: %+v", bad, m)
		}
	}
}
