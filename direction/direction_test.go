package direction

import "testing"

func TestDirectionAlgebra(t *testing.T) {
	for d := Direction(0); d < 8; d++ {
		if got := d.Add(Back).Add(Back); got != d {
			t.Errorf("d=%v: d+Back+Back = %v, want %v", d, got, d)
		}
		if d.IsAlong() == d.IsDiag() {
			t.Errorf("d=%v: IsAlong and IsDiag must disagree, got along=%v diag=%v", d, d.IsAlong(), d.IsDiag())
		}
	}

	if got := East.Add(Left); got != North {
		t.Errorf("East+Left = %v, want North", got)
	}
	if got := Left.Neg(); got != Right {
		t.Errorf("-Left = %v, want Right", got)
	}
	if got := East.Sub(West); got != Back {
		t.Errorf("East-West = %v, want Back", got)
	}
}

func TestAlong4Diag4(t *testing.T) {
	along := Along4()
	if len(along) != 4 {
		t.Fatalf("Along4() len = %d, want 4", len(along))
	}
	for _, d := range along {
		if !d.IsAlong() {
			t.Errorf("Along4() contains non-along direction %v", d)
		}
	}

	diag := Diag4()
	if len(diag) != 4 {
		t.Fatalf("Diag4() len = %d, want 4", len(diag))
	}
	for _, d := range diag {
		if !d.IsDiag() {
			t.Errorf("Diag4() contains non-diagonal direction %v", d)
		}
	}
}

func TestDirectionString(t *testing.T) {
	cases := map[Direction]string{
		East:  "East",
		North: "North",
		West:  "West",
		South: "South",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(d), got, want)
		}
	}
}
