package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// twoByThree builds the 2-input, 3-neuron fixture used throughout the
// Dense tests.
func twoByThree(t *testing.T) *Dense {
	t.Helper()
	layer, err := NewDenseFromParams(2, 3,
		[]float64{0.5, 2.0, -1.0, 0.5, 2.0, 3.0},
		[]float64{0.1, 0.2, 0.3},
	)
	require.NoError(t, err)
	return layer
}

func TestDense_Output(t *testing.T) {
	layer := twoByThree(t)

	out, err := layer.Output([]float64{1.0, -1.0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1.4, -1.3, -0.7}, out, 1e-12)
}

// Output on a zero vector must return exactly the bias.
func TestDense_OutputZeroInput(t *testing.T) {
	layer := twoByThree(t)

	out, err := layer.Output([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, out)
}

func TestDense_OutputShapeMismatch(t *testing.T) {
	layer := twoByThree(t)

	_, err := layer.Output([]float64{1, 2, 3})
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Want)
	assert.Equal(t, 3, shapeErr.Got)
}

func TestDense_InputGradient(t *testing.T) {
	layer := twoByThree(t)

	grad, err := layer.InputGradient([]float64{1, 2}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 5.5}, grad, 1e-12)
}

// Cross-check InputGradient against central finite differences of the
// forward pass: for f(x) = c·Output(x), the gradient of f is exactly
// InputGradient(x, c).
func TestDense_InputGradientFiniteDifference(t *testing.T) {
	layer := twoByThree(t)

	x := []float64{0.9, -1.4}
	c := []float64{0.3, -0.7, 1.2}

	f := func(x []float64) float64 {
		out, err := layer.Output(x)
		require.NoError(t, err)
		return floats.Dot(c, out)
	}

	got, err := layer.InputGradient(x, c)
	require.NoError(t, err)

	want := fd.Gradient(nil, f, x, nil)
	assert.InDeltaSlice(t, want, got, 1e-6)
}

func TestDense_Update(t *testing.T) {
	layer := twoByThree(t)

	err := layer.Update([]float64{1, 2}, []float64{1, 1, 1}, 0.1)
	require.NoError(t, err)

	// weight[j][i] -= lr * grad[j] * input[i]
	assert.InDeltaSlice(t, []float64{0.4, 1.8, -1.1, 0.3, 1.9, 2.8}, layer.Weights(), 1e-12)
	// bias[j] -= lr * grad[j]
	assert.InDeltaSlice(t, []float64{0.0, 0.1, 0.2}, layer.Bias(), 1e-12)
}

func TestDense_UpdateShapeMismatch(t *testing.T) {
	layer := twoByThree(t)

	var shapeErr *ShapeError
	require.ErrorAs(t, layer.Update([]float64{1}, []float64{1, 1, 1}, 0.1), &shapeErr)
	require.ErrorAs(t, layer.Update([]float64{1, 2}, []float64{1, 1}, 0.1), &shapeErr)
}

// One update step against the loss gradient must not increase the
// squared error on the pair it was computed from.
func TestDense_UpdateStrictDescent(t *testing.T) {
	layer := twoByThree(t)
	loss := SquaredError{}

	input := []float64{1.0, -0.5}
	target := []float64{0.5, -0.25, 1.0}

	pred, err := layer.Output(input)
	require.NoError(t, err)
	before, err := loss.Loss(pred, target)
	require.NoError(t, err)

	grad, err := loss.Gradient(pred, target)
	require.NoError(t, err)
	require.NoError(t, layer.Update(input, grad, 0.01))

	pred, err = layer.Output(input)
	require.NoError(t, err)
	after, err := loss.Loss(pred, target)
	require.NoError(t, err)

	assert.LessOrEqual(t, after, before)
}

func TestDense_RandomConstruction(t *testing.T) {
	layer := NewDense(4, 3, rand.NewSource(7))

	assert.Equal(t, 4, layer.InputSize())
	assert.Equal(t, 3, layer.OutputSize())
	assert.Len(t, layer.Weights(), 12)
	assert.Len(t, layer.Bias(), 3)

	// The same seed must reproduce the same parameters.
	twin := NewDense(4, 3, rand.NewSource(7))
	assert.Equal(t, layer.Weights(), twin.Weights())
	assert.Equal(t, layer.Bias(), twin.Bias())

	// Distinct neurons must not be initialized identically.
	w := layer.Weights()
	assert.NotEqual(t, w[0:4], w[4:8])
}

func TestDense_FromParamsValidation(t *testing.T) {
	_, err := NewDenseFromParams(2, 3, []float64{1, 2, 3}, []float64{1, 2, 3})
	assert.Error(t, err)

	_, err = NewDenseFromParams(2, 3, make([]float64, 6), []float64{1})
	assert.Error(t, err)
}

// Weights and Bias hand out copies; mutating them must not leak back
// into the layer.
func TestDense_ParamsAreCopies(t *testing.T) {
	layer := twoByThree(t)

	w := layer.Weights()
	w[0] = 999
	b := layer.Bias()
	b[0] = 999

	assert.Equal(t, 0.5, layer.Weights()[0])
	assert.Equal(t, 0.1, layer.Bias()[0])
}
