package platform

import (
	log "log/slog"
	"net/url"
	"os/exec"
	"strings"
)

// Intents launches tel:/sms: URIs and the camera through the desktop's
// default handlers. Everything here is fire-and-forget; the assistant
// never waits on an external app.
type Intents struct {
	// opener is exec'd with the URI as its single argument
	opener string
	camera []string
}

func NewIntents() *Intents {
	return &Intents{
		opener: "xdg-open",
		camera: []string{"cheese"},
	}
}

func (i *Intents) open(uri string) {
	cmd := exec.Command(i.opener, uri)
	if err := cmd.Start(); err != nil {
		log.Error("Failed to open URI", "uri", uri, "err", err)
		return
	}
	go cmd.Wait()
}

// Call hands a tel: URI to the desktop. Spaces are stripped so spoken
// numbers ("98765 43210") dial cleanly.
func (i *Intents) Call(nameOrNumber string) {
	number := strings.ReplaceAll(nameOrNumber, " ", "")
	i.open("tel:" + url.PathEscape(number))
}

// SendText opens the messaging handler with recipients and body
// prefilled. An empty recipient list still opens the composer.
func (i *Intents) SendText(numbers []string, body string) {
	uri := "sms:" + strings.Join(numbers, ",") + "?body=" + url.QueryEscape(body)
	i.open(uri)
}

// OpenCamera launches the camera application.
func (i *Intents) OpenCamera() {
	cmd := exec.Command(i.camera[0], i.camera[1:]...)
	if err := cmd.Start(); err != nil {
		log.Error("Failed to launch camera", "err", err)
		return
	}
	go cmd.Wait()
}
