// Package scene provides the concrete target objects the tween engine
// animates: layers, views wrapping layers, and a registry that hands out
// non-owning references to them.
package scene

import (
	"github.com/matt-g-everett/motion/tween"
)

// A Layer is the basic animatable object: a frame, a transform, an
// opacity and free-form named colour and float attributes.
type Layer struct {
	frame     tween.Rect
	transform tween.Transform3D
	opacity   float64
	colors    map[string]tween.Color
	attrs     map[string]float64
}

// NewLayer creates an instance of a Layer.
func NewLayer() *Layer {
	l := new(Layer)
	l.transform = tween.Identity3D()
	l.opacity = 1
	l.colors = make(map[string]tween.Color)
	l.attrs = make(map[string]float64)
	return l
}

// Frame returns the layer's frame rectangle.
func (l *Layer) Frame() tween.Rect {
	return l.frame
}

// SetFrame sets the layer's frame rectangle.
func (l *Layer) SetFrame(f tween.Rect) {
	l.frame = f
}

// Transform returns the layer's transform matrix.
func (l *Layer) Transform() tween.Transform3D {
	return l.transform
}

// SetTransform sets the layer's transform matrix.
func (l *Layer) SetTransform(m tween.Transform3D) {
	l.transform = m
}

// Opacity returns the layer's opacity.
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity sets the layer's opacity.
func (l *Layer) SetOpacity(v float64) {
	l.opacity = v
}

// ColorAttr looks up a named colour attribute.
func (l *Layer) ColorAttr(name string) (tween.Color, bool) {
	c, ok := l.colors[name]
	return c, ok
}

// SetColorAttr sets a named colour attribute.
func (l *Layer) SetColorAttr(name string, c tween.Color) {
	l.colors[name] = c
}

// FloatAttr looks up a named float attribute. A layer exposes its opacity
// under "opacity"; a view exposes it under "alpha" instead.
func (l *Layer) FloatAttr(name string) (float64, bool) {
	if name == "opacity" {
		return l.opacity, true
	}
	v, ok := l.attrs[name]
	return v, ok
}

// SetFloatAttr sets a named float attribute.
func (l *Layer) SetFloatAttr(name string, v float64) {
	if name == "opacity" {
		l.opacity = v
		return
	}
	l.attrs[name] = v
}

// DefineFloatAttr declares a named float attribute so tweens can resolve
// it; undeclared attributes cause the request to be dropped.
func (l *Layer) DefineFloatAttr(name string, v float64) {
	l.attrs[name] = v
}

// A View wraps a Layer, the way a higher-level UI object wraps its
// backing layer. Geometry and colours delegate; the opacity float
// attribute goes by "alpha" on this flavour.
type View struct {
	layer *Layer
}

// NewView creates an instance of a View with a fresh backing layer.
func NewView() *View {
	v := new(View)
	v.layer = NewLayer()
	return v
}

// Layer returns the backing layer.
func (v *View) Layer() *Layer {
	return v.layer
}

// Frame returns the view's frame rectangle.
func (v *View) Frame() tween.Rect {
	return v.layer.Frame()
}

// SetFrame sets the view's frame rectangle.
func (v *View) SetFrame(f tween.Rect) {
	v.layer.SetFrame(f)
}

// Transform returns the view's transform matrix.
func (v *View) Transform() tween.Transform3D {
	return v.layer.Transform()
}

// SetTransform sets the view's transform matrix.
func (v *View) SetTransform(m tween.Transform3D) {
	v.layer.SetTransform(m)
}

// Opacity returns the view's alpha.
func (v *View) Opacity() float64 {
	return v.layer.Opacity()
}

// SetOpacity sets the view's alpha.
func (v *View) SetOpacity(a float64) {
	v.layer.SetOpacity(a)
}

// ColorAttr looks up a named colour attribute.
func (v *View) ColorAttr(name string) (tween.Color, bool) {
	return v.layer.ColorAttr(name)
}

// SetColorAttr sets a named colour attribute.
func (v *View) SetColorAttr(name string, c tween.Color) {
	v.layer.SetColorAttr(name, c)
}

// FloatAttr looks up a named float attribute, exposing alpha under
// "alpha" rather than the layer's "opacity".
func (v *View) FloatAttr(name string) (float64, bool) {
	if name == "alpha" {
		return v.layer.Opacity(), true
	}
	if name == "opacity" {
		return 0, false
	}
	return v.layer.FloatAttr(name)
}

// SetFloatAttr sets a named float attribute.
func (v *View) SetFloatAttr(name string, value float64) {
	if name == "alpha" {
		v.layer.SetOpacity(value)
		return
	}
	v.layer.SetFloatAttr(name, value)
}
