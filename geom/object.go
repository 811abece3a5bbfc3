package geom

import "slices"

// Tag is one key/value annotation carried over from the object's source, such
// as a GeoJSON feature property.
type Tag struct {
	Key   string
	Value string
}

// Object pairs a shape with its style metadata: the color (which doubles as
// the layer identifier downstream) and optional source tags. Objects are
// immutable once constructed; transforms and crops produce new Objects.
type Object struct {
	Shape Shape
	Color string
	Tags  []Tag
}

// NewObject returns an object drawing the given shape in the given color.
func NewObject(s Shape, color string) Object {
	return Object{Shape: s, Color: color}
}

// WithTags returns a copy of the object carrying the given tags.
func (o Object) WithTags(tags ...Tag) Object {
	o.Tags = slices.Clone(tags)
	return o
}

// WithColor returns a copy of the object in a different color.
func (o Object) WithColor(color string) Object {
	o.Color = color
	return o
}

// Transform returns the object with its shape transformed. Style metadata is
// carried over untouched.
func (o Object) Transform(aff Affine) Object {
	return Object{
		Shape: TransformShape(o.Shape, aff),
		Color: o.Color,
		Tags:  o.Tags,
	}
}

// Bounds returns the bounding box of the object's shape.
func (o Object) Bounds() Rect {
	return BoundsOf(o.Shape)
}
