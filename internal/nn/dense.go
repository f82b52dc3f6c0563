package nn

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Dense implements a fully connected (dense) layer.
//
// Performs the affine transform: y = W·x + b
// where:
//   - x is the input vector of length inSize
//   - W is the weight matrix with shape [outSize, inSize]
//   - b is the bias vector of length outSize
//
// Dense is the only layer variant holding trainable parameters. The
// parameters are owned exclusively by the layer and are mutated only
// through Update.
type Dense struct {
	inSize  int
	outSize int
	weight  *mat.Dense    // [outSize, inSize]
	bias    *mat.VecDense // [outSize]
}

// NewDense creates a Dense layer with weights and biases drawn
// independently from a standard normal distribution, breaking the
// symmetry between neurons.
//
// src selects the random source; pass nil to use the global generator.
// Supplying a fixed-seed source makes construction deterministic
// without a separate code path:
//
//	src := rand.NewSource(42)
//	layer := nn.NewDense(2, 6, src)
func NewDense(inSize, outSize int, src rand.Source) *Dense {
	return &Dense{
		inSize:  inSize,
		outSize: outSize,
		weight:  mat.NewDense(outSize, inSize, normalVector(outSize*inSize, src)),
		bias:    mat.NewVecDense(outSize, normalVector(outSize, src)),
	}
}

// NewDenseFromParams creates a Dense layer with explicit parameters.
//
// weights holds the matrix in row-major order, one row of inSize
// values per output neuron; bias holds one value per output neuron.
// The data is copied, so the caller keeps no alias into the layer.
func NewDenseFromParams(inSize, outSize int, weights, bias []float64) (*Dense, error) {
	if len(weights) != inSize*outSize {
		return nil, fmt.Errorf("dense %dx%d: expected %d weights, got %d",
			inSize, outSize, inSize*outSize, len(weights))
	}
	if len(bias) != outSize {
		return nil, fmt.Errorf("dense %dx%d: expected %d biases, got %d",
			inSize, outSize, outSize, len(bias))
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	b := make([]float64, len(bias))
	copy(b, bias)
	return &Dense{
		inSize:  inSize,
		outSize: outSize,
		weight:  mat.NewDense(outSize, inSize, w),
		bias:    mat.NewVecDense(outSize, b),
	}, nil
}

// InputSize returns the expected input vector length.
func (d *Dense) InputSize() int { return d.inSize }

// OutputSize returns the number of neurons.
func (d *Dense) OutputSize() int { return d.outSize }

// Output computes y = W·x + b.
func (d *Dense) Output(input []float64) ([]float64, error) {
	if len(input) != d.inSize {
		return nil, &ShapeError{Op: "Dense.Output", Want: d.inSize, Got: len(input)}
	}
	out := mat.NewVecDense(d.outSize, nil)
	out.MulVec(d.weight, mat.NewVecDense(d.inSize, input))
	out.AddVec(out, d.bias)
	return out.RawVector().Data, nil
}

// InputGradient computes Wᵀ·outputGrad, the gradient of the loss with
// respect to the layer's input.
func (d *Dense) InputGradient(input, outputGrad []float64) ([]float64, error) {
	if len(input) != d.inSize {
		return nil, &ShapeError{Op: "Dense.InputGradient", Want: d.inSize, Got: len(input)}
	}
	if len(outputGrad) != d.outSize {
		return nil, &ShapeError{Op: "Dense.InputGradient", Want: d.outSize, Got: len(outputGrad)}
	}
	grad := mat.NewVecDense(d.inSize, nil)
	grad.MulVec(d.weight.T(), mat.NewVecDense(d.outSize, outputGrad))
	return grad.RawVector().Data, nil
}

// Update applies one gradient-descent step in place:
//
//	W -= lr · outputGrad·inputᵀ
//	b -= lr · outputGrad
func (d *Dense) Update(input, outputGrad []float64, lr float64) error {
	if len(input) != d.inSize {
		return &ShapeError{Op: "Dense.Update", Want: d.inSize, Got: len(input)}
	}
	if len(outputGrad) != d.outSize {
		return &ShapeError{Op: "Dense.Update", Want: d.outSize, Got: len(outputGrad)}
	}
	grad := mat.NewVecDense(d.outSize, outputGrad)

	var step mat.Dense
	step.Outer(lr, grad, mat.NewVecDense(d.inSize, input))
	d.weight.Sub(d.weight, &step)

	d.bias.AddScaledVec(d.bias, -lr, grad)
	return nil
}

// Weights returns a copy of the weight matrix in row-major order.
//
// A copy is returned because the parameters are owned exclusively by
// the layer; callers must not be able to alias them.
func (d *Dense) Weights() []float64 {
	raw := d.weight.RawMatrix().Data
	out := make([]float64, len(raw))
	copy(out, raw)
	return out
}

// Bias returns a copy of the bias vector.
func (d *Dense) Bias() []float64 {
	raw := d.bias.RawVector().Data
	out := make([]float64, len(raw))
	copy(out, raw)
	return out
}
