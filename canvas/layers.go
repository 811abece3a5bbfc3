package canvas

import "github.com/inkplot/inkplot/geom"

// Layer is an ordered group of objects sharing a color, corresponding to one
// pen pass on the plotter.
type Layer struct {
	Color   string
	Objects []geom.Object
}

// Layers buckets the scene's objects by color. Layer order is the order
// colors are first seen; within a layer, objects keep their scene order.
// Colors named in priority come first, in the given order, whether or not
// any object uses them (empty layers are dropped); unnamed colors follow in
// first-seen order.
func (s Scene) Layers(priority []string) []Layer {
	index := make(map[string]int)
	var layers []Layer
	for _, color := range priority {
		if _, ok := index[color]; ok {
			continue
		}
		index[color] = len(layers)
		layers = append(layers, Layer{Color: color})
	}
	for _, o := range s.Objects {
		i, ok := index[o.Color]
		if !ok {
			i = len(layers)
			index[o.Color] = i
			layers = append(layers, Layer{Color: o.Color})
		}
		layers[i].Objects = append(layers[i].Objects, o)
	}

	out := layers[:0:0]
	for _, l := range layers {
		if len(l.Objects) > 0 {
			out = append(out, l)
		}
	}
	return out
}
