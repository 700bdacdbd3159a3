// Package advertise announces a running rflink station over mDNS/DNS-SD
// using github.com/brutella/dnssd, the direct generalization of the
// teacher's dns_sd.go (which announces a KISS-over-TCP TNC) to this
// engine's single-address radio station advertising its debug socket.
package advertise

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/brutella/dnssd"

	"github.com/sebmillet/rflink/engine/rlog"
)

// ServiceType is the DNS-SD service type this package announces under.
const ServiceType = "_rflink._tcp"

// Station describes what to announce: the station's link-layer address,
// a human name, and the host:port of its optional debug socket.
type Station struct {
	Name       string
	OwnAddress uint8
	Port       int
}

// DefaultName returns "rflink station on <hostname>", or just "rflink
// station" if the hostname can't be read, mirroring
// dns_sd_default_service_name's fallback.
func DefaultName() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "rflink station"
	}
	hostname, _, _ = strings.Cut(hostname, ".")
	return "rflink station on " + hostname
}

// Announce publishes st and runs the mDNS responder in the background
// until ctx is cancelled.
func Announce(ctx context.Context, st Station) error {
	name := st.Name
	if name == "" {
		name = DefaultName()
	}

	cfg := dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: ServiceType,
		Port: st.Port,
		Text: map[string]string{
			"address": strconv.Itoa(int(st.OwnAddress)),
		},
	}

	svc, err := dnssd.NewService(cfg)
	if err != nil {
		rlog.Error("advertise: failed to create service", "err", err)
		return err
	}

	responder, err := dnssd.NewResponder()
	if err != nil {
		rlog.Error("advertise: failed to create responder", "err", err)
		return err
	}

	if _, err := responder.Add(svc); err != nil {
		rlog.Error("advertise: failed to add service", "err", err)
		return err
	}

	rlog.Info("advertise: announcing station", "name", name, "port", st.Port)

	go func() {
		if err := responder.Respond(ctx); err != nil && ctx.Err() == nil {
			rlog.Error("advertise: responder error", "err", err)
		}
	}()

	return nil
}
