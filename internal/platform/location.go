package platform

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	geoBus         = "org.freedesktop.GeoClue2"
	geoManagerPath = "/org/freedesktop/GeoClue2/Manager"
	geoManager     = "org.freedesktop.GeoClue2.Manager"
	geoClient      = "org.freedesktop.GeoClue2.Client"
	geoLocation    = "org.freedesktop.GeoClue2.Location"

	desktopID = "alowish"
)

// GeoClue asks GeoClue2 for a one-shot position fix. Each call creates a
// client, waits for the first LocationUpdated signal and stops the client
// again.
type GeoClue struct {
	conn *dbus.Conn
}

func NewGeoClue() (*GeoClue, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	return &GeoClue{conn: conn}, nil
}

func (g *GeoClue) Close() {
	g.conn.Close()
}

func (g *GeoClue) Current(ctx context.Context) (float64, float64, error) {
	var clientPath dbus.ObjectPath
	manager := g.conn.Object(geoBus, geoManagerPath)
	if err := manager.Call(geoManager+".GetClient", 0).Store(&clientPath); err != nil {
		return 0, 0, fmt.Errorf("get geoclue client: %w", err)
	}

	client := g.conn.Object(geoBus, clientPath)
	if err := client.Call(propsIface+".Set", 0, geoClient, "DesktopId", dbus.MakeVariant(desktopID)).Err; err != nil {
		return 0, 0, fmt.Errorf("set DesktopId: %w", err)
	}

	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(clientPath),
		dbus.WithMatchInterface(geoClient),
		dbus.WithMatchMember("LocationUpdated"),
	}
	if err := g.conn.AddMatchSignal(match...); err != nil {
		return 0, 0, fmt.Errorf("subscribe LocationUpdated: %w", err)
	}
	defer g.conn.RemoveMatchSignal(match...)

	signals := make(chan *dbus.Signal, 4)
	g.conn.Signal(signals)
	defer g.conn.RemoveSignal(signals)

	if err := client.Call(geoClient+".Start", 0).Err; err != nil {
		return 0, 0, fmt.Errorf("start geoclue client: %w", err)
	}
	defer client.Call(geoClient+".Stop", 0)

	for {
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case sig := <-signals:
			if sig == nil || sig.Name != geoClient+".LocationUpdated" || len(sig.Body) < 2 {
				continue
			}
			locPath, ok := sig.Body[1].(dbus.ObjectPath)
			if !ok {
				continue
			}
			return g.readLocation(locPath)
		}
	}
}

func (g *GeoClue) readLocation(path dbus.ObjectPath) (float64, float64, error) {
	obj := g.conn.Object(geoBus, path)

	var lat, lon dbus.Variant
	if err := obj.Call(propsIface+".Get", 0, geoLocation, "Latitude").Store(&lat); err != nil {
		return 0, 0, fmt.Errorf("get Latitude: %w", err)
	}
	if err := obj.Call(propsIface+".Get", 0, geoLocation, "Longitude").Store(&lon); err != nil {
		return 0, 0, fmt.Errorf("get Longitude: %w", err)
	}

	latV, ok := lat.Value().(float64)
	if !ok {
		return 0, 0, fmt.Errorf("Latitude is not float64")
	}
	lonV, ok := lon.Value().(float64)
	if !ok {
		return 0, 0, fmt.Errorf("Longitude is not float64")
	}
	return latV, lonV, nil
}
