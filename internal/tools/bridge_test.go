package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alowish/internal/device"
	"alowish/internal/intent"
)

type fakeDialer struct{ calls []string }

func (f *fakeDialer) Call(n string) { f.calls = append(f.calls, n) }

type fakeEscalator struct{ count int }

func (f *fakeEscalator) Escalate() { f.count++ }

func TestToggleFlashlightIdempotent(t *testing.T) {
	st := device.NewState()
	b := NewBridge(st, nil, nil, nil, nil)

	for i := 0; i < 2; i++ {
		out := b.Execute(ToggleFlashlight{Action: "on"})
		assert.Equal(t, "Flashlight turned on", out)
		assert.True(t, st.Flashlight)
	}

	assert.Equal(t, "Flashlight turned off", b.Execute(ToggleFlashlight{Action: "off"}))
	assert.False(t, st.Flashlight)
}

func TestMalformedFlashlightIsNoop(t *testing.T) {
	st := device.NewState()
	b := NewBridge(st, nil, nil, nil, nil)
	st.Flashlight = true

	out := b.Execute(Decode("toggleFlashlight", map[string]any{"action": 42}))
	assert.Equal(t, "Done", out)
	assert.True(t, st.Flashlight)
}

func TestControlMusic(t *testing.T) {
	st := device.NewState()
	b := NewBridge(st, nil, nil, nil, nil)

	assert.Equal(t, "Music playing", b.Execute(ControlMusic{Action: "play"}))
	assert.True(t, st.MusicPlaying)

	assert.Equal(t, "Skipped to next song", b.Execute(ControlMusic{Action: "next"}))
	assert.Equal(t, "Next Song Track 02", st.CurrentSong)

	assert.Equal(t, "Music paused", b.Execute(ControlMusic{Action: "pause"}))
	assert.False(t, st.MusicPlaying)
}

func TestMakeCall(t *testing.T) {
	st := device.NewState()
	d := &fakeDialer{}
	b := NewBridge(st, d, nil, nil, nil)

	out := b.Execute(MakeCall{NameOrNumber: "+91 98765 43210"})
	assert.Equal(t, "Calling +91 98765 43210", out)
	assert.Equal(t, []string{"+91 98765 43210"}, d.calls)
}

func TestToggleConnectivity(t *testing.T) {
	st := device.NewState()
	b := NewBridge(st, nil, nil, nil, nil)

	assert.Equal(t, "wifi turned off", b.Execute(ToggleConnectivity{Type: "wifi", Action: "off"}))
	assert.False(t, st.Wifi)

	assert.Equal(t, "bluetooth turned on", b.Execute(ToggleConnectivity{Type: "bluetooth", Action: "on"}))
	assert.True(t, st.Bluetooth)

	assert.Equal(t, "Done", b.Execute(ToggleConnectivity{Type: "nfc", Action: "on"}))
}

func TestTriggerSOS(t *testing.T) {
	st := device.NewState()
	esc := &fakeEscalator{}
	b := NewBridge(st, nil, esc, nil, nil)

	out := b.Execute(TriggerSOS{Confirm: true})
	assert.Equal(t, "SOS triggered. Location sent and contacts alerted.", out)
	assert.Equal(t, 1, esc.count)
}

func TestUnknownToolNeverBlocks(t *testing.T) {
	b := NewBridge(device.NewState(), nil, nil, nil, nil)
	assert.Equal(t, "Done", b.Execute(Decode("selfDestruct", map[string]any{"countdown": 3})))
}

func TestDecodeToleratesMissingArgs(t *testing.T) {
	inv := Decode("toggleConnectivity", nil)
	tc, ok := inv.(ToggleConnectivity)
	require.True(t, ok)
	assert.Empty(t, tc.Type)
	assert.Empty(t, tc.Action)
}

// The router's action path and the model's tool-call path must produce the
// same state transitions and the same confirmation shapes.
func TestRouterAndModelPathsAgree(t *testing.T) {
	fromRouter := device.NewState()
	fromModel := device.NewState()

	action := &intent.Action{Type: intent.ToggleFlashlight, Value: true}
	outRouter := NewBridge(fromRouter, nil, nil, nil, nil).Execute(FromAction(action))
	outModel := NewBridge(fromModel, nil, nil, nil, nil).Execute(
		Decode("toggleFlashlight", map[string]any{"action": "on"}))

	assert.Equal(t, outModel, outRouter)
	assert.Equal(t, *fromModel, *fromRouter)
}

func TestFromActionNonToolActions(t *testing.T) {
	assert.Nil(t, FromAction(nil))
	assert.Nil(t, FromAction(&intent.Action{Type: intent.OpenCamera}))
}
