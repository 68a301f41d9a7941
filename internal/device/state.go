// Package device holds the simulated device snapshot shown on the
// dashboard. Fields are written only by the tool bridge; everything else
// reads.
package device

type State struct {
	Flashlight   bool   `json:"flashlight"`
	MusicPlaying bool   `json:"music_playing"`
	CurrentSong  string `json:"current_song"`
	Wifi         bool   `json:"wifi"`
	Bluetooth    bool   `json:"bluetooth"`
}

func NewState() *State {
	return &State{
		CurrentSong: "Local MP3 Mix",
		Wifi:        true,
		Bluetooth:   true,
	}
}
