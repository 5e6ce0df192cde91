package renderer

import (
	"bytes"
	"image/color"
	"testing"
)

func TestPPMSink_Format(t *testing.T) {
	var out bytes.Buffer
	sink := NewPPMSink(&out)

	if err := sink.Begin(2, 1); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	pixels := []color.RGBA{{R: 255, G: 128, B: 0, A: 255}, {R: 1, G: 2, B: 3, A: 255}}
	for _, p := range pixels {
		if err := sink.WritePixel(p); err != nil {
			t.Fatalf("WritePixel: %v", err)
		}
	}

	// Output is buffered until End
	if out.Len() != 0 {
		t.Errorf("Expected no output before End, got %q", out.String())
	}
	if err := sink.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	expected := "P3\n2 1\n255\n255 128 0\n1 2 3\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestImageSink_RowMajorOrder(t *testing.T) {
	sink := NewImageSink()
	if sink.Image() != nil {
		t.Fatal("Expected nil image before Begin")
	}
	if err := sink.Begin(3, 2); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	for n := 0; n < 6; n++ {
		if err := sink.WritePixel(color.RGBA{R: uint8(n), A: 255}); err != nil {
			t.Fatalf("WritePixel %d: %v", n, err)
		}
	}
	if err := sink.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	img := sink.Image()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := img.RGBAAt(x, y).R; int(got) != y*3+x {
				t.Errorf("Pixel (%d,%d): expected %d, got %d", x, y, y*3+x, got)
			}
		}
	}

	if err := sink.WritePixel(color.RGBA{}); err == nil {
		t.Error("Expected error writing past the end of the image")
	}
}
