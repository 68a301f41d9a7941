package sos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alowish/internal/profile"
)

type fakeLocator struct {
	lat, lon float64
	err      error
}

func (f fakeLocator) Current(context.Context) (float64, float64, error) {
	return f.lat, f.lon, f.err
}

type fakeMessenger struct {
	numbers []string
	body    string
	sent    int
}

func (f *fakeMessenger) SendText(numbers []string, body string) {
	f.numbers = numbers
	f.body = body
	f.sent++
}

type fakeDialer struct{ called []string }

func (f *fakeDialer) Call(n string) { f.called = append(f.called, n) }

type fakeSpeaker struct{ spoken []string }

func (f *fakeSpeaker) SpeakForced(t string) { f.spoken = append(f.spoken, t) }

func contactsOf(cs ...profile.EmergencyContact) func() []profile.EmergencyContact {
	return func() []profile.EmergencyContact { return cs }
}

// swaps the timer for an immediate synchronous fire
func immediate(f *Flow) {
	f.after = func(_ time.Duration, fn func()) { fn() }
}

func TestRunWithLocationAndContacts(t *testing.T) {
	msg := &fakeMessenger{}
	dial := &fakeDialer{}
	spk := &fakeSpeaker{}
	flow := NewFlow(fakeLocator{lat: 12.9716, lon: 77.5946}, msg, dial, spk, contactsOf(
		profile.EmergencyContact{ID: "1", Name: "Asha", Number: "111"},
		profile.EmergencyContact{ID: "2", Name: "Vik", Number: "222"},
	))
	immediate(flow)

	warnings := flow.Run(context.Background())

	assert.Empty(t, warnings)
	assert.Equal(t, Dispatched, flow.Step())
	require.Len(t, spk.spoken, 1)
	assert.Contains(t, spk.spoken[0], "Emergency Alert")

	assert.Equal(t, []string{"111", "222"}, msg.numbers)
	assert.Contains(t, msg.body, "https://www.google.com/maps?q=12.9716,77.5946")

	// delayed call targets the first contact only
	assert.Equal(t, []string{"111"}, dial.called)
}

func TestLocationFailureDegrades(t *testing.T) {
	msg := &fakeMessenger{}
	dial := &fakeDialer{}
	flow := NewFlow(fakeLocator{err: errors.New("gps off")}, msg, dial, &fakeSpeaker{}, contactsOf(
		profile.EmergencyContact{ID: "1", Number: "111"},
	))
	immediate(flow)

	warnings := flow.Run(context.Background())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "location")
	assert.Equal(t, Dispatched, flow.Step())
	assert.Contains(t, msg.body, "GPS Failed")
	assert.NotContains(t, msg.body, "maps")
	assert.Equal(t, 1, msg.sent)
	assert.Equal(t, []string{"111"}, dial.called)
}

func TestZeroContactsStillDispatches(t *testing.T) {
	msg := &fakeMessenger{}
	dial := &fakeDialer{}
	flow := NewFlow(fakeLocator{lat: 1, lon: 2}, msg, dial, &fakeSpeaker{}, contactsOf())
	immediate(flow)

	warnings := flow.Run(context.Background())

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "No emergency contacts")
	assert.Equal(t, 1, msg.sent)
	assert.Nil(t, msg.numbers)
	assert.Empty(t, dial.called)
	assert.Equal(t, Dispatched, flow.Step())
}

func TestAlertSpokenBeforeLocation(t *testing.T) {
	spk := &fakeSpeaker{}
	loc := &orderedLocator{spk: spk}
	flow := NewFlow(loc, &fakeMessenger{}, &fakeDialer{}, spk, contactsOf())
	immediate(flow)

	flow.Run(context.Background())
	assert.True(t, loc.alertFirst)
}

type orderedLocator struct {
	spk        *fakeSpeaker
	alertFirst bool
}

func (o *orderedLocator) Current(context.Context) (float64, float64, error) {
	o.alertFirst = len(o.spk.spoken) > 0
	return 0, 0, nil
}
