// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/sprout/internal/nn"
)

// Layer is the capability set implemented by every layer variant.
type Layer = nn.Layer

// Layers

// Dense represents a fully connected (dense) layer.
type Dense = nn.Dense

// NewDense creates a dense layer with standard-normal initialization.
//
// Pass nil as src to use the global random source, or a fixed-seed
// source for deterministic weights:
//
//	layer := nn.NewDense(2, 6, rand.NewSource(42))
func NewDense(inSize, outSize int, src rand.Source) *Dense {
	return nn.NewDense(inSize, outSize, src)
}

// NewDenseFromParams creates a dense layer with explicit row-major
// weights and biases.
func NewDenseFromParams(inSize, outSize int, weights, bias []float64) (*Dense, error) {
	return nn.NewDenseFromParams(inSize, outSize, weights, bias)
}

// Activations

// Tanh represents the hyperbolic tangent activation layer.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation layer.
func NewTanh(size int) *Tanh {
	return nn.NewTanh(size)
}

// Sigmoid represents the logistic activation layer.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid(size int) *Sigmoid {
	return nn.NewSigmoid(size)
}

// ReLU represents the rectified linear activation layer.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation layer.
func NewReLU(size int) *ReLU {
	return nn.NewReLU(size)
}

// Container

// Network is an ordered stack of layers with forward/backward passes.
type Network = nn.Network

// NewNetwork creates a network, validating adjacent layer widths.
//
// Example:
//
//	net, err := nn.NewNetwork(
//	    nn.NewDense(2, 6, nil),
//	    nn.NewTanh(6),
//	    nn.NewDense(6, 1, nil),
//	    nn.NewSigmoid(1),
//	)
func NewNetwork(layers ...Layer) (*Network, error) {
	return nn.NewNetwork(layers...)
}

// Loss

// SquaredError is the squared-error loss Σ(pred-target)².
type SquaredError = nn.SquaredError

// Errors

// ShapeError reports a vector length that does not match the expected width.
type ShapeError = nn.ShapeError

// Common errors.
var (
	ErrStaleCache   = nn.ErrStaleCache
	ErrEmptyNetwork = nn.ErrEmptyNetwork
)
