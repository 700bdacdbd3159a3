// Command rflink-station is a runnable demo station: it opens a serial
// radio, runs the protocol engine's event pump, and exposes send/receive
// as line-oriented stdin commands for manual testing. spec.md calls
// sample application sketches out of scope; this stays thin and
// undocumented beyond --help, the way cmd/kissutil's stdin-driven loop
// demonstrates a TNC without being part of the core TNC itself.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sebmillet/rflink/engine"
	"github.com/sebmillet/rflink/engine/config"
	"github.com/sebmillet/rflink/engine/rlog"
	"github.com/sebmillet/rflink/engine/tracelog"
	"github.com/sebmillet/rflink/radiodriver/advertise"
	"github.com/sebmillet/rflink/radiodriver/serial"
	"github.com/sebmillet/rflink/radiodriver/udevdiscovery"
)

func main() {
	var (
		device      = pflag.StringP("device", "d", "", "serial device the radio is attached to")
		baud        = pflag.IntP("baud", "b", 9600, "serial baud rate, 0 to leave alone")
		configFile  = pflag.StringP("config", "c", "", "YAML config file overlaying the built-in defaults")
		ownAddress  = pflag.Uint8P("address", "a", 0, "this station's link-layer address (overrides config)")
		autoDetect  = pflag.Bool("autodetect", false, "pick the first USB-serial device udev reports")
		traceDir    = pflag.String("trace-dir", "", "directory for a daily-rotated CSV packet trace; empty disables tracing")
		mdnsAdvert  = pflag.Bool("advertise", false, "announce this station over mDNS/DNS-SD")
		mdnsPort    = pflag.Int("advertise-port", 0, "port to advertise alongside the station (0 = address only)")
		logLevel    = pflag.String("log-level", "", "override the config file's log_level")
	)
	pflag.Parse()

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rflink-station: bad config file:", err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("address") {
		cfg.OwnAddress = *ownAddress
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	rlog.SetMinLevel(rlog.ParseLevel(cfg.LogLevel))

	devicename := *device
	if devicename == "" && *autoDetect {
		found, err := udevdiscovery.DiscoverSerialRadios()
		if err != nil || len(found) == 0 {
			fmt.Fprintln(os.Stderr, "rflink-station: --autodetect found no serial radios:", err)
			os.Exit(1)
		}
		devicename = found[0]
		rlog.Info("rflink-station: autodetected serial radio", "device", devicename)
	}
	if devicename == "" {
		fmt.Fprintln(os.Stderr, "rflink-station: --device or --autodetect is required")
		pflag.Usage()
		os.Exit(1)
	}

	var radio engine.Radio = serial.New(devicename, *baud)
	clock := engine.NewRealClock()

	if *traceDir != "" {
		trace, err := tracelog.New(*traceDir, "")
		if err != nil {
			fmt.Fprintln(os.Stderr, "rflink-station: tracelog init failed:", err)
			os.Exit(1)
		}
		defer trace.Close()
		radio = tracelog.Wrap(radio, trace)
	}

	e, err := engine.New(radio, clock, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rflink-station: engine init failed:", err)
		os.Exit(1)
	}

	if *mdnsAdvert {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		st := advertise.Station{OwnAddress: cfg.OwnAddress, Port: *mdnsPort}
		if err := advertise.Announce(ctx, st); err != nil {
			rlog.Error("rflink-station: mDNS advertisement failed", "err", err)
		}
	}

	rlog.Info("rflink-station: ready", "address", cfg.OwnAddress, "device", devicename)
	runStdinLoop(e, cfg)
}

// runStdinLoop implements a tiny line-oriented protocol for manual
// testing: "send <addr> <ack|noack> <text>" and "recv [timeout_ms]",
// driving the engine's blocking API, which in turn pumps DoEvents.
func runStdinLoop(e *engine.Engine, cfg config.Config) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("rflink-station ready. Commands: send <addr> <ack|noack> <text> | recv [timeout_ms] | quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 4)
		switch fields[0] {
		case "quit", "exit":
			return

		case "send":
			if len(fields) < 4 {
				fmt.Println("usage: send <addr> <ack|noack> <text>")
				continue
			}
			addr, err := strconv.ParseUint(fields[1], 0, 8)
			if err != nil {
				fmt.Println("bad address:", err)
				continue
			}
			wantAck := fields[2] == "ack"
			status, txCount, err := e.Send(engine.Address(addr), []byte(fields[3]), wantAck)
			if err != nil {
				fmt.Println("send error:", err)
				continue
			}
			fmt.Printf("send result: %s (tx_count=%d)\n", status, txCount)

		case "recv":
			var timeout uint32 = cfg.DataAvailDelayMillis
			if len(fields) >= 2 {
				if ms, err := strconv.ParseUint(fields[1], 10, 32); err == nil {
					timeout = uint32(ms)
				}
			}
			payload, sender, err := e.Receive(engine.RxConfig{Timeout: timeout})
			if err != nil {
				fmt.Println("receive:", err)
				continue
			}
			fmt.Printf("received from %d: %q\n", sender, payload)

		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}
