package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	// Out-of-bounds writes are ignored
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	// Out-of-bounds reads return space
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1, 0) = %q, expected space", got)
	}
	if got := s.Get(10, 4); got != ' ' {
		t.Errorf("Get(10, 4) = %q, expected space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '█', ColorCyan)

	cell := s.GetCell(1, 1)
	if cell.Rune != '█' {
		t.Errorf("GetCell rune = %q, expected '█'", cell.Rune)
	}
	if cell.Color != ColorCyan {
		t.Errorf("GetCell color = %v, expected ColorCyan", cell.Color)
	}

	// Default cells carry the default color
	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("empty cell should have ColorDefault")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", got, "        ab")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, '@')

	s.Resize(8, 3)

	if s.Width() != 8 || s.Height() != 3 {
		t.Errorf("size after resize = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	// Content within the preserved region survives
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("Get(2, 2) after resize = %q, expected '@'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Error("top corners not drawn")
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners not drawn")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
