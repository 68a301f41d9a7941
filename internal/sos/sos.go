// Package sos runs the emergency escalation: spoken alert, location
// acquisition, message composition and fire-and-forget dispatch, plus a
// delayed call to the first emergency contact. Once triggered there is no
// cancellation path; that is a deliberate safety trade-off.
package sos

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"alowish/internal/profile"
)

type Step int

const (
	Idle Step = iota
	LocationRequested
	MessagePrepared
	MessageFallback
	Dispatched
)

const (
	alertText     = "Emergency Alert! Sending Location to Emergency Contacts!"
	locateTimeout = 15 * time.Second
	callDelay     = 3 * time.Second
)

// Locator is the one-shot platform location service.
type Locator interface {
	Current(ctx context.Context) (lat, lon float64, err error)
}

// Messenger hands a recipient list and body to the platform messaging
// intent. Delivery is not confirmed.
type Messenger interface {
	SendText(numbers []string, body string)
}

type Dialer interface {
	Call(number string)
}

// Speaker must play the alert even when spoken replies are muted.
type Speaker interface {
	SpeakForced(text string)
}

type Flow struct {
	locator   Locator
	messenger Messenger
	dialer    Dialer
	speaker   Speaker
	contacts  func() []profile.EmergencyContact

	// after is time.AfterFunc unless a test substitutes it
	after func(d time.Duration, f func())

	mu   sync.Mutex
	step Step
}

func NewFlow(locator Locator, messenger Messenger, dialer Dialer, speaker Speaker, contacts func() []profile.EmergencyContact) *Flow {
	return &Flow{
		locator:   locator,
		messenger: messenger,
		dialer:    dialer,
		speaker:   speaker,
		contacts:  contacts,
		after:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Escalate satisfies the tool bridge contract: it must never block the
// calling flow, so the machine runs in the background.
func (f *Flow) Escalate() {
	go func() {
		for _, w := range f.Run(context.Background()) {
			log.Warn("SOS degraded", "warning", w)
		}
	}()
}

// Run drives the machine to Dispatched and returns any warnings collected
// on the way. Location failure degrades to the fallback edge; it is never
// fatal and never retried.
func (f *Flow) Run(ctx context.Context) []string {
	var warnings []string

	f.setStep(LocationRequested)
	f.speaker.SpeakForced(alertText)

	lctx, cancel := context.WithTimeout(ctx, locateTimeout)
	defer cancel()

	body := "EMERGENCY! I need help. Sent via SYAL AI (GPS Failed)."
	lat, lon, err := f.locator.Current(lctx)
	if err != nil {
		f.setStep(MessageFallback)
		warnings = append(warnings, "Could not fetch location for SOS. Please enable GPS.")
		log.Error("SOS location acquisition failed", "err", err)
	} else {
		f.setStep(MessagePrepared)
		body = fmt.Sprintf("EMERGENCY! I need help. My current location is: %s. Sent via SYAL AI.", mapsLink(lat, lon))
	}

	contacts := f.contacts()
	if len(contacts) == 0 {
		warnings = append(warnings, "No emergency contacts set! Opening SMS app.")
		f.messenger.SendText(nil, body)
	} else {
		numbers := make([]string, len(contacts))
		for i, c := range contacts {
			numbers[i] = c.Number
		}
		f.messenger.SendText(numbers, body)

		// one-shot, single fire, not cancellable once armed
		first := contacts[0].Number
		f.after(callDelay, func() { f.dialer.Call(first) })
	}

	f.setStep(Dispatched)
	return warnings
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) setStep(s Step) {
	f.mu.Lock()
	f.step = s
	f.mu.Unlock()
}

func mapsLink(lat, lon float64) string {
	return "https://www.google.com/maps?q=" + strings.Join([]string{
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
	}, ",")
}
