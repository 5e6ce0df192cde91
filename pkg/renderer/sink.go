package renderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
)

// PixelSink receives a rendered image one pixel at a time in row-major order
type PixelSink interface {
	Begin(width, height int) error
	WritePixel(c color.RGBA) error
	End() error
}

// PPMSink writes a plain-text P3 pixel map. The whole image is held in memory
// and reaches the writer only on End, so an aborted render writes nothing.
type PPMSink struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewPPMSink creates a sink writing to w
func NewPPMSink(w io.Writer) *PPMSink {
	return &PPMSink{w: w}
}

// Begin writes the P3 header
func (s *PPMSink) Begin(width, height int) error {
	s.buf.Reset()
	_, err := fmt.Fprintf(&s.buf, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (s *PPMSink) WritePixel(c color.RGBA) error {
	_, err := fmt.Fprintf(&s.buf, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// End writes the completed image
func (s *PPMSink) End() error {
	_, err := s.buf.WriteTo(s.w)
	return err
}

// ImageSink collects pixels into an in-memory RGBA image
type ImageSink struct {
	img  *image.RGBA
	next int
}

// NewImageSink creates an empty image sink
func NewImageSink() *ImageSink {
	return &ImageSink{}
}

// Begin allocates the image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel stores the next pixel
func (s *ImageSink) WritePixel(c color.RGBA) error {
	width := s.img.Rect.Dx()
	if s.next >= width*s.img.Rect.Dy() {
		return fmt.Errorf("image sink overflow at pixel %d", s.next)
	}
	s.img.SetRGBA(s.next%width, s.next/width, c)
	s.next++
	return nil
}

// End is a no-op
func (s *ImageSink) End() error {
	return nil
}

// Image returns the collected image, nil before Begin
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}
