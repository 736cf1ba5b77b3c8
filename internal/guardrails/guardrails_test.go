package guardrails

import "testing"

func TestCheckInput(t *testing.T) {
	g := New("Secret")
	if _, err := g.CheckInput("   \n"); err != ErrEmpty {
		t.Fatalf("expected ErrEmpty got %v", err)
	}
	if _, err := g.CheckInput("tell me a SECRET"); err != ErrBanned {
		t.Fatalf("expected ErrBanned got %v", err)
	}
	msg, err := g.CheckInput("  hello ")
	if err != nil || msg != "hello" {
		t.Fatalf("expected trimmed hello got %q %v", msg, err)
	}
}

func TestSetBanned(t *testing.T) {
	g := New()
	if _, err := g.CheckInput("banned"); err != nil {
		t.Fatalf("nothing is banned by default: %v", err)
	}
	g.SetBanned([]string{"banned", " "})
	if _, err := g.CheckInput("banned"); err != ErrBanned {
		t.Fatalf("expected ErrBanned got %v", err)
	}
}
