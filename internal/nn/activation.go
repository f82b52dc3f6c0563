package nn

import (
	"math"
)

// Tanh is a hyperbolic tangent activation layer.
//
// Applies the element-wise function: tanh(x)
//
// Tanh squashes values to the range (-1, 1) and is zero-centered,
// which helps hidden layers train. Its derivative is expressed in
// terms of its own output: d/dx tanh(x) = 1 - tanh(x)².
type Tanh struct {
	size int
}

// NewTanh creates a Tanh activation layer for vectors of the given length.
func NewTanh(size int) *Tanh {
	return &Tanh{size: size}
}

// InputSize returns the expected vector length.
func (a *Tanh) InputSize() int { return a.size }

// OutputSize returns the produced vector length, equal to InputSize.
func (a *Tanh) OutputSize() int { return a.size }

// Output applies tanh element-wise.
func (a *Tanh) Output(input []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "Tanh.Output", Want: a.size, Got: len(input)}
	}
	out := make([]float64, a.size)
	for i, x := range input {
		out[i] = math.Tanh(x)
	}
	return out, nil
}

// InputGradient scales the output gradient by 1 - tanh(x)².
func (a *Tanh) InputGradient(input, outputGrad []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "Tanh.InputGradient", Want: a.size, Got: len(input)}
	}
	if len(outputGrad) != a.size {
		return nil, &ShapeError{Op: "Tanh.InputGradient", Want: a.size, Got: len(outputGrad)}
	}
	grad := make([]float64, a.size)
	for i, x := range input {
		y := math.Tanh(x)
		grad[i] = outputGrad[i] * (1 - y*y)
	}
	return grad, nil
}

// Update is a no-op; Tanh has no trainable parameters.
func (a *Tanh) Update(input, outputGrad []float64, lr float64) error { return nil }

// Sigmoid is a logistic activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), making it the usual
// choice for a binary output neuron. Its derivative is
// σ(x)·(1 - σ(x)).
type Sigmoid struct {
	size int
}

// NewSigmoid creates a Sigmoid activation layer for vectors of the given length.
func NewSigmoid(size int) *Sigmoid {
	return &Sigmoid{size: size}
}

// InputSize returns the expected vector length.
func (a *Sigmoid) InputSize() int { return a.size }

// OutputSize returns the produced vector length, equal to InputSize.
func (a *Sigmoid) OutputSize() int { return a.size }

// Output applies σ element-wise.
func (a *Sigmoid) Output(input []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "Sigmoid.Output", Want: a.size, Got: len(input)}
	}
	out := make([]float64, a.size)
	for i, x := range input {
		out[i] = sigmoid(x)
	}
	return out, nil
}

// InputGradient scales the output gradient by σ(x)·(1 - σ(x)).
func (a *Sigmoid) InputGradient(input, outputGrad []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "Sigmoid.InputGradient", Want: a.size, Got: len(input)}
	}
	if len(outputGrad) != a.size {
		return nil, &ShapeError{Op: "Sigmoid.InputGradient", Want: a.size, Got: len(outputGrad)}
	}
	grad := make([]float64, a.size)
	for i, x := range input {
		y := sigmoid(x)
		grad[i] = outputGrad[i] * y * (1 - y)
	}
	return grad, nil
}

// Update is a no-op; Sigmoid has no trainable parameters.
func (a *Sigmoid) Update(input, outputGrad []float64, lr float64) error { return nil }

// ReLU is a rectified linear activation layer.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct {
	size int
}

// NewReLU creates a ReLU activation layer for vectors of the given length.
func NewReLU(size int) *ReLU {
	return &ReLU{size: size}
}

// InputSize returns the expected vector length.
func (a *ReLU) InputSize() int { return a.size }

// OutputSize returns the produced vector length, equal to InputSize.
func (a *ReLU) OutputSize() int { return a.size }

// Output applies max(0, x) element-wise.
func (a *ReLU) Output(input []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "ReLU.Output", Want: a.size, Got: len(input)}
	}
	out := make([]float64, a.size)
	for i, x := range input {
		out[i] = math.Max(0, x)
	}
	return out, nil
}

// InputGradient passes the output gradient through where the forward
// input was positive and zeroes it elsewhere.
func (a *ReLU) InputGradient(input, outputGrad []float64) ([]float64, error) {
	if len(input) != a.size {
		return nil, &ShapeError{Op: "ReLU.InputGradient", Want: a.size, Got: len(input)}
	}
	if len(outputGrad) != a.size {
		return nil, &ShapeError{Op: "ReLU.InputGradient", Want: a.size, Got: len(outputGrad)}
	}
	grad := make([]float64, a.size)
	for i, x := range input {
		if x > 0 {
			grad[i] = outputGrad[i]
		}
	}
	return grad, nil
}

// Update is a no-op; ReLU has no trainable parameters.
func (a *ReLU) Update(input, outputGrad []float64, lr float64) error { return nil }

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
