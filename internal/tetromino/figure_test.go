package tetromino

import (
	"errors"
	"testing"
)

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Kind("X"), P(0, 0))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New with unknown kind: err = %v, expected ErrUnknownKind", err)
	}
}

func TestNewAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind, P(5, 5))
		if err != nil {
			t.Fatalf("New(%s) failed: %v", kind, err)
		}
		if len(f.Points) != 4 {
			t.Errorf("New(%s): %d points, expected 4", kind, len(f.Points))
		}
		if got := f.CenterPoint(); got != P(5, 5) {
			t.Errorf("New(%s): center at %v, expected (5,5)", kind, got)
		}
	}
}

func TestRotateUnsupportedAngles(t *testing.T) {
	f, _ := New(KindT, P(3, 3))

	for _, deg := range []int{0, 45, -90, 360, 91} {
		if _, err := f.Rotate(deg); !errors.Is(err, ErrUnsupportedRotation) {
			t.Errorf("Rotate(%d): err = %v, expected ErrUnsupportedRotation", deg, err)
		}
	}
}

func TestRotateInverse(t *testing.T) {
	// Rotating by a then by 360-a must return the exact original point
	// sequence, for every kind and every supported angle.
	pairs := [][2]int{{90, 270}, {180, 180}, {270, 90}}

	for _, kind := range Kinds() {
		f, err := New(kind, P(4, 6))
		if err != nil {
			t.Fatalf("New(%s) failed: %v", kind, err)
		}
		for _, pair := range pairs {
			r1, err := f.Rotate(pair[0])
			if err != nil {
				t.Fatalf("Rotate(%d) failed: %v", pair[0], err)
			}
			r2, err := r1.Rotate(pair[1])
			if err != nil {
				t.Fatalf("Rotate(%d) failed: %v", pair[1], err)
			}
			if r2.Key() != f.Key() {
				t.Errorf("%s: rotate %d then %d = %s, expected %s",
					kind, pair[0], pair[1], r2.Key(), f.Key())
			}
		}
	}
}

func TestRotatePreservesPointCount(t *testing.T) {
	f, _ := New(KindS, P(2, 2))
	r, err := f.Rotate(90)
	if err != nil {
		t.Fatalf("Rotate(90) failed: %v", err)
	}
	if len(r.Points) != len(f.Points) {
		t.Errorf("rotation changed point count: %d -> %d", len(f.Points), len(r.Points))
	}
}

func TestRotateIBoundingBoxSwaps(t *testing.T) {
	// A horizontal I figure (1x4 box) rotated 90 degrees becomes a 4x1
	// box centered at the same pivot.
	f, _ := New(KindI, P(5, 5))

	min, max := f.Bounds()
	if w, h := max.X-min.X+1, max.Y-min.Y+1; w != 4 || h != 1 {
		t.Fatalf("I bounds before rotate = %dx%d, expected 4x1", w, h)
	}

	r, err := f.Rotate(90)
	if err != nil {
		t.Fatalf("Rotate(90) failed: %v", err)
	}

	min, max = r.Bounds()
	if w, h := max.X-min.X+1, max.Y-min.Y+1; w != 1 || h != 4 {
		t.Errorf("I bounds after rotate = %dx%d, expected 1x4", w, h)
	}
	if got := r.CenterPoint(); got != P(5, 5) {
		t.Errorf("pivot moved to %v, expected (5,5)", got)
	}
}

func TestTranslateCenterLands(t *testing.T) {
	tests := []struct {
		kind   Kind
		target Point
	}{
		{KindI, P(0, 0)},
		{KindO, P(7, 3)},
		{KindT, P(-2, 9)},
	}

	for _, tc := range tests {
		f, _ := New(tc.kind, P(1, 1))
		moved := f.Translate(tc.target)
		if got := moved.CenterPoint(); got != tc.target {
			t.Errorf("%s: Translate(%v) center = %v", tc.kind, tc.target, got)
		}
		// Original is untouched
		if got := f.CenterPoint(); got != P(1, 1) {
			t.Errorf("%s: Translate mutated original, center = %v", tc.kind, got)
		}
	}
}

func TestBoundsContainAllPoints(t *testing.T) {
	f, _ := New(KindL, P(3, 3))

	// Apply a chain of transforms; bounds must contain every cell after
	// each one.
	poses := []Figure{f}
	if r, err := f.Rotate(90); err == nil {
		poses = append(poses, r)
	}
	poses = append(poses, f.Shift(P(2, -1)))
	poses = append(poses, f.Translate(P(10, 10)))

	for i, pose := range poses {
		min, max := pose.Bounds()
		for _, p := range pose.Points {
			if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
				t.Errorf("pose %d: point %v outside bounds [%v, %v]", i, p, min, max)
			}
		}
	}
}

func TestKeyIdentity(t *testing.T) {
	a, _ := New(KindZ, P(4, 4))
	b, _ := New(KindZ, P(4, 4))
	c, _ := New(KindZ, P(5, 4))

	if a.Key() != b.Key() {
		t.Error("identical figures should have equal keys")
	}
	if a.Key() == c.Key() {
		t.Error("figures at different positions should have distinct keys")
	}
}

func TestCloneIndependence(t *testing.T) {
	f, _ := New(KindO, P(0, 0))
	c := f.Clone()

	c.Points[0] = P(99, 99)
	if f.Points[0] == P(99, 99) {
		t.Error("Clone shares point storage with original")
	}
}
