package nn

import (
	"gonum.org/v1/gonum/floats"
)

// SquaredError is the squared-error loss: Σ(pred - target)².
//
// Its gradient with respect to the predictions is taken as
// pred - target; the constant scale factor is absorbed into the
// learning rate.
type SquaredError struct{}

// Loss returns Σ(pred - target)².
func (SquaredError) Loss(pred, target []float64) (float64, error) {
	if len(pred) != len(target) {
		return 0, &ShapeError{Op: "SquaredError.Loss", Want: len(pred), Got: len(target)}
	}
	d := floats.Distance(pred, target, 2)
	return d * d, nil
}

// Gradient returns pred - target, the loss gradient at the output layer.
func (SquaredError) Gradient(pred, target []float64) ([]float64, error) {
	if len(pred) != len(target) {
		return nil, &ShapeError{Op: "SquaredError.Gradient", Want: len(pred), Got: len(target)}
	}
	grad := make([]float64, len(pred))
	copy(grad, pred)
	floats.Sub(grad, target)
	return grad, nil
}
