package service

import "testing"

func TestRenderDelivery(t *testing.T) {
	got := RenderDelivery("your offer is waiting!", "Ana")
	want := "Hi Ana, your offer is waiting!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderDeliveryKeepsMessageVerbatim(t *testing.T) {
	// no template engine: placeholders inside the campaign message survive
	got := RenderDelivery("Hello {name}, offer!", "Ana")
	want := "Hi Ana, Hello {name}, offer!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRandomSimulatorRespectsRates(t *testing.T) {
	always := &RandomSimulator{SuccessRate: 1.0}
	for i := 0; i < 100; i++ {
		if !always.Deliver("msg") {
			t.Fatal("rate 1.0 must always succeed")
		}
	}

	never := &RandomSimulator{SuccessRate: 0.0}
	for i := 0; i < 100; i++ {
		if never.Deliver("msg") {
			t.Fatal("rate 0.0 must always fail")
		}
	}
}
