package nn

import (
	"fmt"
)

// Network is an ordered stack of layers.
//
// Forward threads a vector through every layer in insertion order;
// Backward threads an error gradient through the same layers in
// reverse, updating trainable parameters along the way.
//
// The inputs seen by each layer during Forward are cached in a buffer
// owned by the network, and Backward consumes that cache. The two
// calls therefore come in strict pairs: Backward fails with
// ErrStaleCache unless a fresh Forward preceded it. The layer
// sequence is fixed after construction, so the cache always lines up
// with the layers it was recorded against.
//
// Example:
//
//	net, err := nn.NewNetwork(
//	    nn.NewDense(2, 6, nil),
//	    nn.NewTanh(6),
//	    nn.NewDense(6, 1, nil),
//	    nn.NewSigmoid(1),
//	)
type Network struct {
	layers []Layer
	cache  [][]float64 // per-layer forward inputs, nil until Forward
}

// NewNetwork creates a network from the given layers.
//
// Adjacent widths must be compatible: each layer's output width must
// equal the next layer's input width. The check happens once, here,
// not on every call.
func NewNetwork(layers ...Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	for i := 1; i < len(layers); i++ {
		prev, next := layers[i-1].OutputSize(), layers[i].InputSize()
		if prev != next {
			return nil, fmt.Errorf("network: layer %d outputs %d values but layer %d expects %d",
				i-1, prev, i, next)
		}
	}
	return &Network{layers: layers}, nil
}

// Len returns the number of layers.
func (n *Network) Len() int { return len(n.layers) }

// At returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) At(index int) Layer {
	if index < 0 || index >= len(n.layers) {
		panic("nn: layer index out of bounds")
	}
	return n.layers[index]
}

// InputSize returns the input width of the first layer.
func (n *Network) InputSize() int { return n.layers[0].InputSize() }

// OutputSize returns the output width of the last layer.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].OutputSize() }

// Forward feeds input through every layer in order and returns the
// final layer's output.
//
// Every intermediate input, including the network's own input, is
// cached for the next Backward call. The input is copied into the
// cache, so the caller may reuse its slice.
func (n *Network) Forward(input []float64) ([]float64, error) {
	cache := make([][]float64, len(n.layers))

	cur := make([]float64, len(input))
	copy(cur, input)

	for i, l := range n.layers {
		cache[i] = cur
		out, err := l.Output(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	n.cache = cache
	return cur, nil
}

// Backward propagates the loss gradient at the network output through
// the layers in reverse order.
//
// At each layer the cached forward input and the current gradient
// drive a parameter update first, then the chain rule carries the
// gradient to the preceding layer. The gradient reaching past the
// first layer is discarded. The forward cache is consumed, so a
// second Backward without a new Forward returns ErrStaleCache.
func (n *Network) Backward(outputGrad []float64, lr float64) error {
	if n.cache == nil {
		return ErrStaleCache
	}
	if len(outputGrad) != n.OutputSize() {
		return &ShapeError{Op: "Network.Backward", Want: n.OutputSize(), Got: len(outputGrad)}
	}

	cache := n.cache
	n.cache = nil

	grad := outputGrad
	for i := len(n.layers) - 1; i >= 0; i-- {
		l := n.layers[i]
		if err := l.Update(cache[i], grad, lr); err != nil {
			return err
		}
		if i == 0 {
			break
		}
		next, err := l.InputGradient(cache[i], grad)
		if err != nil {
			return err
		}
		grad = next
	}
	return nil
}
