package descriptor

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ndfft/dsp/fft/plan"
)

// Status is the numeric outcome of a descriptor call.
type Status int

const (
	StatusOK                        Status = 0
	StatusMemory                    Status = 1
	StatusInvalidConfiguration      Status = 2
	StatusInconsistentConfiguration Status = 3
	StatusBadDescriptor             Status = 5
	StatusUnimplemented             Status = 6
	StatusInternal                  Status = 7
)

var statusMessages = map[Status]string{
	StatusOK:                        "no error",
	StatusMemory:                    "memory allocation failed",
	StatusInvalidConfiguration:      "invalid configuration parameters",
	StatusInconsistentConfiguration: "inconsistent configuration parameters",
	StatusBadDescriptor:             "descriptor is invalid or freed",
	StatusUnimplemented:             "functionality is not implemented",
	StatusInternal:                  "internal kernel error",
}

func (s Status) String() string {
	if msg, ok := statusMessages[s]; ok {
		return msg
	}
	return fmt.Sprintf("status %d", int(s))
}

// StatusOf classifies err the way the descriptor reports it.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, plan.ErrClosed), errors.Is(err, plan.ErrNotCommitted):
		return StatusBadDescriptor
	case errors.Is(err, plan.ErrPlacementNotHonored), errors.Is(err, plan.ErrNoBoundBuffers):
		return StatusInconsistentConfiguration
	case errors.Is(err, algofft.ErrInvalidLength):
		return StatusUnimplemented
	case errors.Is(err, plan.ErrInvalidShape), errors.Is(err, plan.ErrInvalidBatch),
		errors.Is(err, plan.ErrPrecisionMismatch), errors.Is(err, plan.ErrBufferTooSmall),
		errors.Is(err, plan.ErrNilBuffer):
		return StatusInvalidConfiguration
	default:
		return StatusInternal
	}
}
