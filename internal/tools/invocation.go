// Package tools decodes tool calls into a closed set of invocations and
// applies them to device state. Both the remote model and the offline
// router funnel through here so the two paths stay behaviorally identical.
package tools

import (
	"alowish/internal/intent"
)

// Invocation is the closed variant set of the five device tools. Anything
// the bridge does not recognize decodes to Unknown, which executes as a
// no-op acknowledgment.
type Invocation interface {
	isInvocation()
}

type ToggleFlashlight struct {
	Action string // "on" or "off"
}

type ControlMusic struct {
	Action string // "play", "pause" or "next"
	Genre  string
}

type MakeCall struct {
	NameOrNumber string
}

type ToggleConnectivity struct {
	Type   string // "wifi" or "bluetooth"
	Action string // "on" or "off"
}

type TriggerSOS struct {
	Confirm bool
}

type Unknown struct {
	Name string
}

func (ToggleFlashlight) isInvocation()   {}
func (ControlMusic) isInvocation()       {}
func (MakeCall) isInvocation()           {}
func (ToggleConnectivity) isInvocation() {}
func (TriggerSOS) isInvocation()         {}
func (Unknown) isInvocation()            {}

// Decode maps a tool name and the model's untyped argument mapping onto an
// invocation. It never fails: unknown names become Unknown and malformed
// fields are left at their zero value.
func Decode(name string, args map[string]any) Invocation {
	switch name {
	case "toggleFlashlight":
		return ToggleFlashlight{Action: str(args, "action")}
	case "controlMusic":
		return ControlMusic{Action: str(args, "action"), Genre: str(args, "genre")}
	case "makeCall":
		return MakeCall{NameOrNumber: str(args, "nameOrNumber")}
	case "toggleConnectivity":
		return ToggleConnectivity{Type: str(args, "type"), Action: str(args, "action")}
	case "triggerSOS":
		return TriggerSOS{Confirm: boolean(args, "confirm")}
	default:
		return Unknown{Name: name}
	}
}

// FromAction converts an offline router action into the equivalent
// invocation, or nil for actions that are not device tools (camera, none).
func FromAction(a *intent.Action) Invocation {
	if a == nil {
		return nil
	}
	switch a.Type {
	case intent.ToggleFlashlight:
		return ToggleFlashlight{Action: onOff(a.Value)}
	case intent.PlayMusic:
		return ControlMusic{Action: "play"}
	case intent.PauseMusic:
		return ControlMusic{Action: "pause"}
	case intent.ToggleWifi:
		return ToggleConnectivity{Type: "wifi", Action: onOff(a.Value)}
	case intent.ToggleBluetooth:
		return ToggleConnectivity{Type: "bluetooth", Action: onOff(a.Value)}
	case intent.TriggerSOS:
		return TriggerSOS{Confirm: true}
	default:
		return nil
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func str(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolean(args map[string]any, key string) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return false
}
