package tools

import (
	"fmt"
	log "log/slog"

	"alowish/internal/device"
)

// Dialer hands a call intent to the platform. No contact-name resolution
// happens here; the literal string goes out.
type Dialer interface {
	Call(nameOrNumber string)
}

// Escalator starts the SOS flow.
type Escalator interface {
	Escalate()
}

// Player backs the controlMusic tool with real playback.
type Player interface {
	Play()
	Pause()
	// Next advances the track and returns the new title.
	Next() string
}

// Connectivity flips the platform radios.
type Connectivity interface {
	SetWifi(on bool) error
	SetBluetooth(on bool) error
}

// Bridge is the only writer of device state. Execute always returns a
// confirmation string and never fails: safety-critical callers must not be
// blocked by an unrecognized tool.
type Bridge struct {
	state  *device.State
	dialer Dialer
	sos    Escalator
	player Player
	conn   Connectivity
}

// NewBridge wires the bridge to its collaborators. Any of them may be nil;
// the corresponding effect then only touches device state.
func NewBridge(state *device.State, dialer Dialer, sos Escalator, player Player, conn Connectivity) *Bridge {
	return &Bridge{state: state, dialer: dialer, sos: sos, player: player, conn: conn}
}

const ackText = "Done"

func (b *Bridge) Execute(inv Invocation) string {
	switch v := inv.(type) {
	case ToggleFlashlight:
		return b.flashlight(v)
	case ControlMusic:
		return b.music(v)
	case MakeCall:
		if b.dialer != nil {
			b.dialer.Call(v.NameOrNumber)
		}
		return fmt.Sprintf("Calling %s", v.NameOrNumber)
	case ToggleConnectivity:
		return b.connectivity(v)
	case TriggerSOS:
		if b.sos != nil {
			b.sos.Escalate()
		}
		return "SOS triggered. Location sent and contacts alerted."
	case Unknown:
		log.Warn("Unknown tool, acknowledging without effect", "name", v.Name)
		return ackText
	default:
		return ackText
	}
}

func (b *Bridge) flashlight(v ToggleFlashlight) string {
	switch v.Action {
	case "on", "off":
		b.state.Flashlight = v.Action == "on"
		return fmt.Sprintf("Flashlight turned %s", v.Action)
	default:
		return ackText
	}
}

func (b *Bridge) music(v ControlMusic) string {
	switch v.Action {
	case "play":
		b.state.MusicPlaying = true
		if b.player != nil {
			b.player.Play()
		}
		return "Music playing"
	case "pause":
		b.state.MusicPlaying = false
		if b.player != nil {
			b.player.Pause()
		}
		return "Music paused"
	case "next":
		song := "Next Song Track 02"
		if b.player != nil {
			song = b.player.Next()
		}
		b.state.CurrentSong = song
		return "Skipped to next song"
	default:
		return ackText
	}
}

func (b *Bridge) connectivity(v ToggleConnectivity) string {
	if v.Action != "on" && v.Action != "off" {
		return ackText
	}
	on := v.Action == "on"

	var err error
	switch v.Type {
	case "wifi":
		b.state.Wifi = on
		if b.conn != nil {
			err = b.conn.SetWifi(on)
		}
	case "bluetooth":
		b.state.Bluetooth = on
		if b.conn != nil {
			err = b.conn.SetBluetooth(on)
		}
	default:
		return ackText
	}
	if err != nil {
		// state already reflects the request; the radio just didn't follow
		log.Warn("Connectivity toggle failed", "type", v.Type, "err", err)
	}
	return fmt.Sprintf("%s turned %s", v.Type, v.Action)
}
