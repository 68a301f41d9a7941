// Package platform adapts Linux desktop services (D-Bus radios, GeoClue2
// location, URI handlers) to the assistant's collaborator interfaces.
package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	propsIface = "org.freedesktop.DBus.Properties"

	bluezBus         = "org.bluez"
	bluezAdapterPath = "/org/bluez/hci0"
	bluezAdapter     = "org.bluez.Adapter1"

	nmBus   = "org.freedesktop.NetworkManager"
	nmPath  = "/org/freedesktop/NetworkManager"
	nmIface = "org.freedesktop.NetworkManager"
)

// Radios flips wifi through NetworkManager and bluetooth through the
// BlueZ adapter, both over the system bus.
type Radios struct {
	conn *dbus.Conn
}

func NewRadios() (*Radios, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	return &Radios{conn: conn}, nil
}

func (r *Radios) Close() {
	r.conn.Close()
}

func (r *Radios) SetWifi(on bool) error {
	obj := r.conn.Object(nmBus, nmPath)
	err := obj.Call(propsIface+".Set", 0, nmIface, "WirelessEnabled", dbus.MakeVariant(on)).Err
	if err != nil {
		return fmt.Errorf("set WirelessEnabled: %w", err)
	}
	return nil
}

func (r *Radios) SetBluetooth(on bool) error {
	obj := r.conn.Object(bluezBus, dbus.ObjectPath(bluezAdapterPath))
	err := obj.Call(propsIface+".Set", 0, bluezAdapter, "Powered", dbus.MakeVariant(on)).Err
	if err != nil {
		return fmt.Errorf("set adapter Powered: %w", err)
	}
	return nil
}
