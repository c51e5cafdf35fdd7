package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %d", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestDerefOrZero(t *testing.T) {
	if n := DerefOrZero[int](nil); n != 0 {
		t.Fatalf("got %d", n)
	}
	n := 42
	if v := DerefOrZero(&n); v != 42 {
		t.Fatalf("got %d", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Y":    true,
		"no":   false,
		"junk": false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
