// Command pfcpcap is a collaborator over the wire/ie/message codec, exactly
// the kind that stays external to the core codec: it opens a pcap
// capture, filters UDP/8805 payloads, and calls message.Parse on each one,
// printing a one-line summary. It never touches a live socket and carries
// no retransmission or session-state logic — those remain the excluded
// collaborators' job.
//
// Modeled on internal/pcap/extract.go's
// gopacket.NewPacketSource + per-transport-layer dispatch shape, adapted
// from gopacket/pcap's cgo-backed OpenOffline to the pure-Go
// gopacket/pcapgo reader so this command has no libpcap build dependency.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/pfcpcodec/pfcpcodec/internal/logging"
	"github.com/pfcpcodec/pfcpcodec/message"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

const pfcpPort = 8805

func main() {
	var (
		pcapPath string
		verbose  bool
	)
	flag.StringVar(&pcapPath, "pcap", "", "pcap file to read")
	flag.BoolVar(&verbose, "v", false, "verbose (show every skipped non-PFCP packet too)")
	flag.Parse()

	if pcapPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pfcpcap -pcap <file.pcap>")
		os.Exit(2)
	}

	level := logging.LevelInfo
	if verbose {
		level = logging.LevelVerbose
	}
	log, err := logging.New(level, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(pcapPath, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(pcapPath string, log *logging.Logger) error {
	f, err := os.Open(pcapPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", pcapPath, err)
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		return fmt.Errorf("pcapgo: %w", err)
	}

	src := gopacket.NewPacketSource(reader, reader.LinkType())
	var total, matched, failed int
	for packet := range src.Packets() {
		total++
		udpLayer := packet.Layer(layers.LayerTypeUDP)
		if udpLayer == nil {
			continue
		}
		udp, ok := udpLayer.(*layers.UDP)
		if !ok || (uint16(udp.SrcPort) != pfcpPort && uint16(udp.DstPort) != pfcpPort) {
			continue
		}
		if len(udp.Payload) == 0 {
			continue
		}
		matched++

		m, err := message.Parse(udp.Payload)
		if err != nil {
			failed++
			log.LogDecode(0, 0, len(udp.Payload), err)
			fmt.Printf("#%d udp %d->%d: decode error: %v (cause=%s)\n",
				total, udp.SrcPort, udp.DstPort, err, pfcperr.ToCauseCode(err))
			continue
		}
		log.LogDecode(m.MsgType(), m.Sequence().Uint32(), len(udp.Payload), nil)
		seid, hasSeid := m.SEID()
		if hasSeid {
			fmt.Printf("#%d udp %d->%d: %s seq=%d seid=%s\n",
				total, udp.SrcPort, udp.DstPort, message.TypeName(m.MsgType()), m.Sequence(), seid)
		} else {
			fmt.Printf("#%d udp %d->%d: %s seq=%d\n",
				total, udp.SrcPort, udp.DstPort, message.TypeName(m.MsgType()), m.Sequence())
		}
	}

	fmt.Printf("\n%d packets read, %d on port %d, %d failed to decode\n", total, matched, pfcpPort, failed)
	return nil
}
