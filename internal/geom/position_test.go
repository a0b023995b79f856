package geom

import "testing"

func TestParseCorner(t *testing.T) {
	tests := []struct {
		in      string
		want    Corner
		wantErr bool
	}{
		{"0", TopLeft, false},
		{"3", BottomRight, false},
		{"top-right", TopRight, false},
		{" Bottom-Left ", BottomLeft, false},
		{"br", BottomRight, false},
		{"4", NoCorner, true},
		{"-1", NoCorner, true},
		{"middle", NoCorner, true},
	}
	for _, tt := range tests {
		got, err := ParseCorner(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseCorner(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseCorner(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPositionNormalize(t *testing.T) {
	tests := []struct {
		in   Position
		n    int
		want Position
	}{
		{Position{0, TopRight}, 2, Position{0, TopRight}},
		{Position{1, NoCorner}, 2, Position{1, NoCorner}},
		{Position{2, TopLeft}, 2, None},
		{Position{-5, BottomLeft}, 2, None},
		{Position{0, Corner(7)}, 1, Position{0, NoCorner}},
		{Position{0, TopLeft}, 0, None},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(tt.n); got != tt.want {
			t.Errorf("%+v.Normalize(%d) = %+v, want %+v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestPositionValid(t *testing.T) {
	if None.Valid() || None.HasScreen() {
		t.Fatalf("None must not be valid")
	}
	if (Position{Screen: 0, Corner: NoCorner}).Valid() {
		t.Fatalf("position without corner must not be valid")
	}
	if !(Position{Screen: 1, Corner: BottomRight}).Valid() {
		t.Fatalf("expected screen 1 bottom-right to be valid")
	}
}
