// internal/service/delivery.go
package service

import "math/rand"

// Simulator decides the outcome of one simulated delivery attempt. It stands
// in for a real delivery channel; tests inject deterministic implementations.
type Simulator interface {
	Deliver(message string) bool
}

// RandomSimulator succeeds with the configured probability
type RandomSimulator struct {
	SuccessRate float64
}

// NewRandomSimulator returns the default simulator with 90% success
func NewRandomSimulator() *RandomSimulator {
	return &RandomSimulator{SuccessRate: 0.9}
}

func (s *RandomSimulator) Deliver(message string) bool {
	return rand.Float64() < s.SuccessRate
}
