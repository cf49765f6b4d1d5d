package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a new Frame instance with the given pixel count.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

// Fill paints every pixel with one colour.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Blend mixes a colour into the pixel at i in HCL space.
func (f *Frame) Blend(i int, c colorful.Color, bias float64) {
	if i < 0 || i >= len(f.pixels) {
		return
	}
	f.pixels[i] = f.pixels[i].BlendHcl(c, bias)
}

// Pixel returns the colour at i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Len returns the pixel count.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
