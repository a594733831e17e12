package life

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderShape(t *testing.T) {
	u := New()
	out := u.Render()
	if got, want := utf8.RuneCountInString(out), u.Height()*(u.Width()+1); got != want {
		t.Fatalf("rendered %d runes, want %d", got, want)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != u.Height() {
		t.Fatalf("rendered %d rows, want %d", len(lines), u.Height())
	}
	if !strings.HasPrefix(lines[0], "◼◻◼◻◼◻◼◼") {
		t.Fatalf("unexpected first row prefix %q", lines[0][:24])
	}
}

func TestRenderIdempotent(t *testing.T) {
	u := New()
	if u.Render() != u.Render() {
		t.Fatal("render changed without a tick")
	}
	if u.Render() != u.String() {
		t.Fatal("Render and String disagree")
	}
}

func TestRenderSmallGrid(t *testing.T) {
	u := emptyUniverse(t, 3, 2)
	u.Set(0, 1, Alive)
	u.Set(1, 2, Alive)
	want := "◻◼◻\n◻◻◼\n"
	if got := u.Render(); got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestCellGlyph(t *testing.T) {
	if Dead.String() != "◻" || Alive.String() != "◼" {
		t.Fatalf("glyphs: dead=%q alive=%q", Dead.String(), Alive.String())
	}
}
