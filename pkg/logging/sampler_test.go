package logging

import (
	"testing"
)

func TestErrorSampler(t *testing.T) {
	sampler := NewErrorSampler(10)

	// First occurrence should be logged
	if !sampler.ShouldLog("provider_down") {
		t.Error("First occurrence should be logged")
	}

	// Occurrences 2-9 should not be logged
	for i := 2; i <= 9; i++ {
		if sampler.ShouldLog("provider_down") {
			t.Errorf("Occurrence %d should not be logged", i)
		}
	}

	// 10th occurrence should be logged
	if !sampler.ShouldLog("provider_down") {
		t.Error("10th occurrence should be logged")
	}

	if count := sampler.Count("provider_down"); count != 10 {
		t.Errorf("Expected count 10, got %d", count)
	}

	sampler.Reset("provider_down")
	if count := sampler.Count("provider_down"); count != 0 {
		t.Errorf("Expected count 0 after reset, got %d", count)
	}
	if !sampler.ShouldLog("provider_down") {
		t.Error("First occurrence after reset should be logged")
	}
}

func TestErrorSamplerMultipleKeys(t *testing.T) {
	sampler := NewErrorSampler(5)

	// Different error kinds are tracked independently
	sampler.ShouldLog("auth")
	sampler.ShouldLog("network")

	if sampler.Count("auth") != 1 {
		t.Error("auth count should be 1")
	}
	if sampler.Count("network") != 1 {
		t.Error("network count should be 1")
	}
}

func TestErrorSamplerDefaultInterval(t *testing.T) {
	sampler := NewErrorSampler(0)
	if !sampler.ShouldLog("x") {
		t.Error("First occurrence should be logged")
	}
}
