// Package nn implements the layer stack of the Sprout engine.
//
// This package provides the building blocks for small feed-forward
// networks over []float64 vectors:
//   - Layer interface: the capability set shared by every layer
//   - Dense: fully connected layer with trainable weights and biases
//   - Activations: Tanh, Sigmoid, ReLU
//   - Network: ordered layer stack with an explicit forward cache
//   - SquaredError: loss value and output-layer gradient
//
// Unlike graph-based frameworks, gradients here are computed by the
// explicit per-layer chain rule: each layer knows how to turn the
// gradient at its output into the gradient at its input, and how to
// apply its own parameter update.
package nn

// Layer is the capability set implemented by every layer variant.
//
// A layer transforms vectors of a fixed input width into vectors of a
// fixed output width. The three operations share the same pair of
// arguments: the vector that was fed forward and the gradient of the
// loss with respect to the layer's output.
//
// The variant set is closed: Dense holds trainable parameters, the
// activation layers (Tanh, Sigmoid, ReLU) are parameter-free and
// implement Update as a no-op.
type Layer interface {
	// InputSize returns the expected input vector length.
	InputSize() int

	// OutputSize returns the produced output vector length.
	OutputSize() int

	// Output computes the forward transform of input. It never
	// mutates layer state. Returns a *ShapeError if the input
	// length does not match InputSize.
	Output(input []float64) ([]float64, error)

	// InputGradient applies the chain rule: given the input that
	// was fed forward and the gradient of the loss with respect to
	// this layer's output, it returns the gradient with respect to
	// the layer's input. Parameters are not touched.
	InputGradient(input, outputGrad []float64) ([]float64, error)

	// Update applies one gradient-descent step to the layer's
	// parameters in place, scaled by lr. Parameter-free layers
	// return nil without doing anything.
	Update(input, outputGrad []float64, lr float64) error
}
