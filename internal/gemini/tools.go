package gemini

import "google.golang.org/genai"

// declarations mirror the tool bridge: whatever the model may call, the
// bridge can execute.
var declarations = []*genai.FunctionDeclaration{
	{
		Name:        "toggleFlashlight",
		Description: "Turn the flashlight on or off.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"action": {
					Type:        genai.TypeString,
					Description: "Either 'on' or 'off'",
					Enum:        []string{"on", "off"},
				},
			},
			Required: []string{"action"},
		},
	},
	{
		Name:        "controlMusic",
		Description: "Play or pause music.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"action": {
					Type:        genai.TypeString,
					Description: "Either 'play' or 'pause' or 'next'",
					Enum:        []string{"play", "pause", "next"},
				},
				"genre": {
					Type:        genai.TypeString,
					Description: "Genre of music if specified (e.g., bollywood, pop)",
				},
			},
			Required: []string{"action"},
		},
	},
	{
		Name:        "makeCall",
		Description: "Initiate a phone call to a contact or number.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"nameOrNumber": {
					Type:        genai.TypeString,
					Description: "The name of the contact or the phone number.",
				},
			},
			Required: []string{"nameOrNumber"},
		},
	},
	{
		Name:        "toggleConnectivity",
		Description: "Turn Wifi or Bluetooth on or off.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"type": {
					Type: genai.TypeString,
					Enum: []string{"wifi", "bluetooth"},
				},
				"action": {
					Type: genai.TypeString,
					Enum: []string{"on", "off"},
				},
			},
			Required: []string{"type", "action"},
		},
	},
	{
		Name:        "triggerSOS",
		Description: "Trigger emergency SOS protocol (Location sharing, SMS, Alert). Use this when user asks for help or is in danger.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"confirm": {
					Type:        genai.TypeBoolean,
					Description: "Always true",
				},
			},
			Required: []string{"confirm"},
		},
	},
}
