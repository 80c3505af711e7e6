package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "text is clipped at the edge",
			draw: func(s *Screen) { s.DrawText(3, 0, "2048") },
			want: "   20\n     \n     ",
		},
		{
			name: "negative start is clipped",
			draw: func(s *Screen) { s.DrawText(-2, 1, "xyz") },
			want: "     \nz    \n     ",
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(2, "ab") },
			want: "     \n     \n ab  ",
		},
		{
			name: "set out of bounds is ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(5, 0, 'x')
				s.Set(0, 3, 'x')
			},
			want: "     \n     \n     ",
		},
		{
			name: "fill rect",
			draw: func(s *Screen) { s.FillRect(NewRect(1, 1, 3, 2), '#', ColorDefault, ColorDefault) },
			want: "     \n ### \n ### ",
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: "┌──┐ \n│  │ \n└──┘ ",
		},
		{
			name: "clear",
			draw: func(s *Screen) {
				s.DrawText(0, 0, "junk")
				s.Clear()
			},
			want: "     \n     \n     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("screen =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenColours(t *testing.T) {
	s := NewScreen(10, 2)
	s.FillRect(NewRect(0, 0, 10, 1), ' ', ColorDefault, ColorYellow)
	s.DrawTextColor(1, 0, "128", ColorBrightWhite, ColorRed)
	s.Set(6, 0, 'x')
	s.SetCell(0, 1, Cell{Rune: 'y', Fg: ColorGray})

	if c := s.GetCell(2, 0); c.Rune != '2' || c.Fg != ColorBrightWhite || c.Bg != ColorRed {
		t.Errorf("DrawTextColor cell = %+v", c)
	}
	// Set keeps the existing colours.
	if c := s.GetCell(6, 0); c.Rune != 'x' || c.Bg != ColorYellow {
		t.Errorf("Set should keep background, got %+v", c)
	}
	if c := s.GetCell(0, 1); c.Fg != ColorGray || s.Get(0, 1) != 'y' {
		t.Errorf("SetCell cell = %+v", c)
	}
	if c := s.GetCell(99, 99); c != blankCell {
		t.Errorf("out-of-bounds GetCell = %+v, want blank", c)
	}
	if s.Row(0) != " 128  x   " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 9, "gone")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("shrinking lost content: %q", s.Row(0))
	}

	s.Resize(15, 12)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("growing lost content: %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(9)) != "" {
		t.Errorf("row cut by the shrink came back: %q", s.Row(9))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, want blanks", got)
	}
	if got := s.Row(1); got != "   " {
		t.Errorf("Row(1) = %q, want blanks", got)
	}
}
