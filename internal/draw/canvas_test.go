package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestCanvasScaling(t *testing.T) {
	c := NewCanvas(100, 50, 1000, 625)
	if c.TerminalWidth() != 100 || c.TerminalHeight() != 50 {
		t.Fatalf("size = %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}

	c.SetFloat(505, 0, 0xff0000)
	if col, ok := c.At(50, 0); !ok || col != 0xff0000 {
		t.Errorf("At(50,0) = %06x, %v", uint32(col), ok)
	}

	col, row := c.LogicalToTerminal(505, 624)
	if col != 51 || row != 50 {
		t.Errorf("LogicalToTerminal = (%d,%d), want (51,50)", col, row)
	}

	x, y := c.TerminalToLogical(50, 0)
	if math.Abs(x-505) > 1e-9 || math.Abs(y-6.25) > 1e-9 {
		t.Errorf("TerminalToLogical = (%v,%v), want (505,6.25)", x, y)
	}
}

func TestBlackIsDistinctFromEmpty(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.SetFloat(1, 1, 0x000000)
	if _, ok := c.At(1, 1); !ok {
		t.Error("black pixel should be set")
	}
	if _, ok := c.At(2, 2); ok {
		t.Error("untouched pixel should be empty")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.DrawLine(Point{0, 0}, Point{9, 9}, 0x00ff00)
	for i := 0; i < 10; i++ {
		if _, ok := c.At(i, i); !ok {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
}

func TestFillRectAndPolygon(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.FillRect(2, 2, 3, 3, 0x123456)
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if _, ok := c.At(x, y); !ok {
				t.Errorf("rect pixel (%d,%d) not set", x, y)
			}
		}
	}
	if _, ok := c.At(5, 5); ok {
		t.Error("rect overflowed")
	}

	c.Clear()
	c.DrawPolygon([]Point{{10, 10}, {18, 10}, {18, 18}, {10, 18}}, true, 0xabcdef)
	if col, ok := c.At(14, 14); !ok || col != 0xabcdef {
		t.Error("polygon interior not filled")
	}
}

func TestRenderOnlyEmitsChanges(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	c.SetFloat(0, 0, 0xff0000)

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	first := buf.String()
	if !strings.Contains(first, "\033[0;38;2;255;0;0m▀") {
		t.Errorf("first frame missing red upper half block: %q", first)
	}
	if strings.Count(first, "H") != 8 {
		t.Errorf("first frame should paint all 8 cells, got %d", strings.Count(first, "H"))
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Errorf("unchanged frame emitted %q", buf.String())
	}

	c.Clear()
	buf.Reset()
	c.Render(&buf)
	if got := buf.String(); got != "\033[1;1H\033[0m \033[0m" {
		t.Errorf("cleared pixel frame = %q", got)
	}
}

func TestRenderCellVariants(t *testing.T) {
	c := NewCanvas(3, 1, 3, 2)
	c.SetFloat(0, 0, 0x010203)
	c.SetFloat(0, 1, 0x010203)
	c.SetFloat(1, 0, 0x0000ff)
	c.SetFloat(1, 1, 0x00ff00)
	c.SetFloat(2, 1, 0xffffff)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{
		"\033[0;38;2;1;2;3m█",
		"\033[0;38;2;0;0;255m\033[48;2;0;255;0m▀",
		"\033[0;38;2;255;255;255m▄",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q in %q", want, out)
		}
	}
}

func TestMarkTextDirtyRepaintsCells(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(2, 1, 2)
	buf.Reset()
	c.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "\033[1;2H") || !strings.Contains(out, "\033[1;3H") {
		t.Errorf("dirty cells not repainted: %q", out)
	}
	if strings.Contains(out, "\033[1;1H") {
		t.Error("clean cell repainted")
	}
}

func TestResizeForcesRedraw(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2)
	var buf bytes.Buffer
	c.Render(&buf)

	c.Resize(3, 1)
	buf.Reset()
	c.Render(&buf)
	if strings.Count(buf.String(), "H") != 3 {
		t.Errorf("resize should repaint every cell: %q", buf.String())
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteAt(3, 2, "hi")
	cw.WriteString(strings.Repeat("x", 3000))
	if cw.Len() == 0 {
		t.Fatal("nothing buffered")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[2;3Hhi") {
		t.Errorf("unexpected prefix %q", out.String()[:10])
	}
	if out.Len() != len("\033[2;3Hhi")+3000 {
		t.Errorf("flushed %d bytes", out.Len())
	}
	if cw.Len() != 0 {
		t.Error("buffer not reset after Flush")
	}
}
