// Package udevdiscovery enumerates USB-serial adapters likely to be a
// radio's control cable, using github.com/jochenvg/go-udev. This
// generalizes the teacher's device-discovery instinct in dns_sd.go (find
// a running TNC over the network) to the USB-hardware case a station
// binary needs at startup before it can even construct a
// radiodriver/serial.Radio.
package udevdiscovery

import (
	"sort"

	"github.com/jochenvg/go-udev"

	"github.com/sebmillet/rflink/engine/rlog"
)

// DiscoverSerialRadios returns the /dev/tty* device nodes whose udev
// entry identifies them as a USB-serial adapter, sorted for stable
// --autodetect output.
func DiscoverSerialRadios() ([]string, error) {
	u := udev.Udev{}
	enum := u.NewEnumerate()

	if err := enum.AddMatchSubsystem("tty"); err != nil {
		return nil, err
	}
	if err := enum.AddMatchProperty("ID_BUS", "usb"); err != nil {
		return nil, err
	}

	devices, err := enum.Devices()
	if err != nil {
		return nil, err
	}

	var nodes []string
	for _, d := range devices {
		path := d.Devnode()
		if path == "" {
			continue
		}
		nodes = append(nodes, path)
	}
	sort.Strings(nodes)

	rlog.Debug("udevdiscovery: found candidate serial radios", "count", len(nodes))
	return nodes, nil
}
