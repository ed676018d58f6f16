package geomath

import "testing"

// A difference of exactly the tolerance still counts as near.
func TestComputeNearlyAtTolerance(t *testing.T) {
	n := ComputeNearly(0, 2.0, 1e-6, 2.0, DefaultTolerance)
	if !n.Lat || !n.Lon || !n.Both {
		t.Fatalf("exact-tolerance delta = %+v, want all true", n)
	}
}

func TestComputeNearlyBeyondTolerance(t *testing.T) {
	n := ComputeNearly(0, 2.0, 2e-6, 2.0, DefaultTolerance)
	if n.Lat {
		t.Fatalf("lat delta of 2e-6 reported near: %+v", n)
	}
	if !n.Lon {
		t.Fatalf("identical lon reported far: %+v", n)
	}
	if n.Both {
		t.Fatalf("Both must be false when one axis differs: %+v", n)
	}
}

// Axes are evaluated independently.
func TestComputeNearlyIndependentAxes(t *testing.T) {
	n := ComputeNearly(48.0, 2.0, 48.0, 3.0, DefaultTolerance)
	if !n.Lat || n.Lon || n.Both {
		t.Fatalf("got %+v, want lat near, lon far", n)
	}
}

func TestComputeNearlyCustomTolerance(t *testing.T) {
	wide := Tolerance{Deg: 0.5}
	n := ComputeNearly(48.0, 2.0, 48.4, 2.3, wide)
	if !n.Both {
		t.Fatalf("0.5° tolerance should cover 0.4°/0.3° deltas: %+v", n)
	}

	n = ComputeNearly(48.0, 2.0, 48.4, 2.3, Tolerance{Deg: 0})
	if n.Lat || n.Lon || n.Both {
		t.Fatalf("zero tolerance matched distinct points: %+v", n)
	}
}
