// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the SGD trainer of the Sprout feed-forward
// engine.
//
// Example usage:
//
//	trainer, err := optim.NewSGD(optim.Config{Epochs: 1000, LR: 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := trainer.Train(net, inputs, targets); err != nil {
//	    log.Fatal(err)
//	}
//
// The trainer runs exactly the configured number of epochs; there is
// no convergence check or early stopping.
package optim

import (
	"github.com/born-ml/sprout/internal/optim"
)

// Config holds configuration for the SGD trainer.
type Config = optim.Config

// SGD is a per-sample stochastic gradient descent trainer.
type SGD = optim.SGD

// NewSGD creates a new SGD trainer from cfg.
//
// The epoch count must not be negative and the learning rate must be
// positive and finite.
func NewSGD(cfg Config) (*SGD, error) {
	return optim.NewSGD(cfg)
}

// Common errors.
var (
	ErrInvalidEpochs = optim.ErrInvalidEpochs
	ErrInvalidRate   = optim.ErrInvalidRate
	ErrDataMismatch  = optim.ErrDataMismatch
)
