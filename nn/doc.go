// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layers and network container of the Sprout
// feed-forward engine.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (trainable), Tanh, Sigmoid, ReLU (parameter-free)
//   - Network: ordered layer stack with forward/backward passes
//   - SquaredError: loss value and output-layer gradient
//   - Error types: ShapeError, ErrStaleCache, ErrEmptyNetwork
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/sprout/nn"
//	    "github.com/born-ml/sprout/optim"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork(
//	        nn.NewDense(2, 6, nil),
//	        nn.NewTanh(6),
//	        nn.NewDense(6, 1, nil),
//	        nn.NewSigmoid(1),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := net.Forward([]float64{0, 1})
//	    ...
//	}
//
// # Layers
//
// Dense: fully connected layer, standard-normal initialization with a
// pluggable random source
//
//	layer := nn.NewDense(inSize, outSize, src)
//
// Deterministic construction for tests or hand-built models:
//
//	layer, err := nn.NewDenseFromParams(inSize, outSize, weights, bias)
//
// Activations hold only their expected vector length:
//
//	tanh := nn.NewTanh(6)
//	sigmoid := nn.NewSigmoid(1)
//	relu := nn.NewReLU(6)
//
// # Training
//
// Training is driven by the optim package; the network only exposes
// Forward and Backward. See the optim package documentation.
package nn
