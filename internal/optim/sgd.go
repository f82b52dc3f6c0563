// Package optim implements training algorithms for the Sprout engine.
//
// The only algorithm provided is plain per-sample stochastic gradient
// descent: no momentum, no weight decay, no convergence check. The
// trainer repeats forward/backward passes over the training set for a
// fixed number of epochs and lets the network apply its own updates.
package optim

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/sprout/internal/nn"
)

// Common errors.
var (
	// ErrInvalidEpochs is returned for a negative epoch count.
	ErrInvalidEpochs = errors.New("epochs must not be negative")

	// ErrInvalidRate is returned for a learning rate that is not a
	// positive finite number.
	ErrInvalidRate = errors.New("learning rate must be positive and finite")

	// ErrDataMismatch is returned when the training inputs and
	// targets do not form equal-length parallel collections or a
	// vector does not match the network's widths.
	ErrDataMismatch = errors.New("training data does not match network")
)

// Config holds configuration for the SGD trainer.
type Config struct {
	Epochs int     // Number of full passes over the training set
	LR     float64 // Learning rate
}

// SGD is a stochastic gradient descent trainer.
//
// For every epoch it walks the training pairs in order and, for each
// pair, runs one forward pass, computes the squared-error gradient at
// the output, and runs one backward pass that updates the network's
// parameters in place.
//
// Example:
//
//	trainer, err := optim.NewSGD(optim.Config{Epochs: 1000, LR: 0.1})
//	if err != nil {
//	    ...
//	}
//	if err := trainer.Train(net, inputs, targets); err != nil {
//	    ...
//	}
type SGD struct {
	epochs int
	lr     float64
	loss   nn.SquaredError
}

// NewSGD creates a new SGD trainer.
//
// The epoch count must not be negative (zero is valid and makes Train
// a no-op) and the learning rate must be positive and finite. The
// configuration is immutable for the trainer's lifetime.
func NewSGD(cfg Config) (*SGD, error) {
	if cfg.Epochs < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEpochs, cfg.Epochs)
	}
	if cfg.LR <= 0 || math.IsInf(cfg.LR, 0) || math.IsNaN(cfg.LR) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, cfg.LR)
	}
	return &SGD{epochs: cfg.Epochs, lr: cfg.LR}, nil
}

// Epochs returns the configured epoch count.
func (s *SGD) Epochs() int { return s.epochs }

// LR returns the configured learning rate.
func (s *SGD) LR() float64 { return s.lr }

// Train runs the configured number of epochs over the training set.
//
// inputs and targets are parallel collections: inputs[i] is fed
// forward and targets[i] supplies the loss gradient for the same
// pair. All vectors are validated against the network's widths before
// the first epoch starts, so a malformed pair fails fast instead of
// surfacing mid-training. Iteration order is fixed, which keeps runs
// with identical weights and data bit-identical.
func (s *SGD) Train(net *nn.Network, inputs, targets [][]float64) error {
	if err := s.validate(net, inputs, targets); err != nil {
		return err
	}

	for epoch := 0; epoch < s.epochs; epoch++ {
		for i, input := range inputs {
			pred, err := net.Forward(input)
			if err != nil {
				return err
			}
			grad, err := s.loss.Gradient(pred, targets[i])
			if err != nil {
				return err
			}
			if err := net.Backward(grad, s.lr); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SGD) validate(net *nn.Network, inputs, targets [][]float64) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs vs %d targets", ErrDataMismatch, len(inputs), len(targets))
	}
	for i, input := range inputs {
		if len(input) != net.InputSize() {
			return fmt.Errorf("%w: input %d has length %d, network expects %d",
				ErrDataMismatch, i, len(input), net.InputSize())
		}
		if len(targets[i]) != net.OutputSize() {
			return fmt.Errorf("%w: target %d has length %d, network produces %d",
				ErrDataMismatch, i, len(targets[i]), net.OutputSize())
		}
	}
	return nil
}
