// Package photoid defines the contract with the external vehicle photo
// recognition vendor.
package photoid

import (
	"context"
	"math/rand"
	"time"
)

// Result is the vendor's answer: the vehicle it saw in the photo.
type Result struct {
	Make  string `json:"make"`
	Model string `json:"model"`
}

// Identifier recognizes a vehicle from a photo capture.
type Identifier interface {
	IdentifyFromPhoto(ctx context.Context) (Result, error)
}

// Simulated stands in for the vendor until the real integration lands: it
// waits a fixed latency and answers with one of a few common vehicles.
type Simulated struct {
	Latency time.Duration
}

func NewSimulated() *Simulated {
	return &Simulated{Latency: 2 * time.Second}
}

var sampleVehicles = []Result{
	{Make: "Toyota", Model: "Camry"},
	{Make: "Honda", Model: "CR-V"},
	{Make: "Ford", Model: "F-150"},
	{Make: "Chevrolet", Model: "Equinox"},
}

func (s *Simulated) IdentifyFromPhoto(ctx context.Context) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-time.After(s.Latency):
	}
	return sampleVehicles[rand.Intn(len(sampleVehicles))], nil
}
