package solution

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	sodiumMass   = 22.98977
	chlorideMass = 35.453
)

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) Emit(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) ofKind(kind EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// newSaline builds 1 kg of water with the given amounts of Na+ and Cl-.
func newSaline(t *testing.T, na, cl float64, unit string, opts ...Option) *Solution {
	t.Helper()
	s, err := New(DefaultSolvent(), []Descriptor{
		{Formula: "Na+", MolarMass: sodiumMass, Amount: na, Unit: unit},
		{Formula: "Cl-", MolarMass: chlorideMass, Amount: cl, Unit: unit},
	}, opts...)
	require.NoError(t, err)
	return s
}
