package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/ipfold/pkg/partition"
)

const ruleWidth = 80

// Writer renders a partition result to an output stream.
type Writer struct {
	out io.Writer
	au  *aurora.Aurora
}

// NewWriter creates a report writer. Colors only affect the text renderer.
func NewWriter(out io.Writer, colors bool) *Writer {
	return &Writer{out: out, au: aurora.New(aurora.WithColors(colors))}
}

// WriteText renders the human-readable report: aggregated blocks first with
// their range, occupancy ratio and member list, then the standalone /32
// addresses with their count.
func (w *Writer) WriteText(result partition.Result) error {
	var sb strings.Builder

	sb.WriteString(w.au.Bold("IPv4 subnet breakdown").String())
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")

	if len(result.Subnets) > 0 {
		sb.WriteString(w.au.Bold("Aggregated subnets:").String())
		sb.WriteString("\n")
		for i, subnet := range result.Subnets {
			sb.WriteString(fmt.Sprintf("\nSubnet %d: %s", i+1, w.au.Cyan(subnet.Block.CIDR())))
			if subnet.Block.Partial {
				sb.WriteString(w.au.Red(" (partial: some members fall outside this block)").String())
			}
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("  Range: %s - %s\n", subnet.Block.Network, subnet.Block.Broadcast))
			sb.WriteString(fmt.Sprintf("  Occupancy: %.6f%%\n", subnet.Ratio))
			sb.WriteString("  Members:\n")
			for _, member := range subnet.Members {
				sb.WriteString(fmt.Sprintf("    - %s\n", member))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", ruleWidth))
		sb.WriteString("\n")
	}

	if len(result.Singletons) > 0 {
		sb.WriteString(w.au.Bold("Standalone addresses (/32):").String())
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %d standalone addresses, each fully occupying its own /32:\n", len(result.Singletons)))
		for _, addr := range result.Singletons {
			sb.WriteString(fmt.Sprintf("%s\n", addr))
		}
		sb.WriteString(strings.Repeat("-", ruleWidth))
		sb.WriteString("\n")
	}

	if len(result.Subnets) == 0 && len(result.Singletons) == 0 {
		sb.WriteString("no addresses to report\n")
	}

	_, err := io.WriteString(w.out, sb.String())
	return err
}

type subnetRecord struct {
	CIDR           string   `json:"cidr"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	PrefixLength   int      `json:"prefix_length"`
	TotalAddresses uint64   `json:"total_addresses"`
	MemberCount    int      `json:"member_count"`
	OccupancyRatio float64  `json:"occupancy_ratio"`
	Partial        bool     `json:"partial,omitempty"`
	Members        []string `json:"members"`
}

type reportRecord struct {
	Subnets    []subnetRecord `json:"subnets"`
	Singletons []string       `json:"singletons"`
}

// WriteJSON renders the result as indented JSON for machine consumption.
func (w *Writer) WriteJSON(result partition.Result) error {
	record := reportRecord{
		Subnets:    make([]subnetRecord, 0, len(result.Subnets)),
		Singletons: make([]string, 0, len(result.Singletons)),
	}
	for _, subnet := range result.Subnets {
		members := make([]string, 0, len(subnet.Members))
		for _, member := range subnet.Members {
			members = append(members, member.String())
		}
		record.Subnets = append(record.Subnets, subnetRecord{
			CIDR:           subnet.Block.CIDR(),
			Start:          subnet.Block.Network.String(),
			End:            subnet.Block.Broadcast.String(),
			PrefixLength:   subnet.Block.Prefix,
			TotalAddresses: subnet.TotalAddresses,
			MemberCount:    len(subnet.Members),
			OccupancyRatio: subnet.Ratio,
			Partial:        subnet.Block.Partial,
			Members:        members,
		})
	}
	for _, addr := range result.Singletons {
		record.Singletons = append(record.Singletons, addr.String())
	}

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}
