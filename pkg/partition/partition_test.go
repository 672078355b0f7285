package partition

import (
	"reflect"
	"sort"
	"testing"

	"github.com/projectdiscovery/ipfold/pkg/ipcalc"
)

func mustParse(t *testing.T, texts ...string) []ipcalc.Address {
	t.Helper()
	addrs := make([]ipcalc.Address, 0, len(texts))
	for _, text := range texts {
		addr, err := ipcalc.ParseAddress(text)
		if err != nil {
			t.Fatalf("ParseAddress(%q) error = %v", text, err)
		}
		addrs = append(addrs, addr)
	}
	return addrs
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name           string
		addrs          []string
		floor          int
		wantSubnets    int
		wantSingletons int
		validate       func(t *testing.T, result Result)
	}{
		{
			name:        "Three hosts in one /24 aggregate to /29",
			addrs:       []string{"192.168.1.10", "192.168.1.11", "192.168.1.12"},
			floor:       DefaultFloor,
			wantSubnets: 1,
			validate: func(t *testing.T, result Result) {
				subnet := result.Subnets[0]
				if got := subnet.Block.CIDR(); got != "192.168.1.8/29" {
					t.Errorf("CIDR = %s, want 192.168.1.8/29", got)
				}
				if subnet.TotalAddresses != 8 {
					t.Errorf("total = %d, want 8", subnet.TotalAddresses)
				}
				if subnet.Ratio != 37.5 {
					t.Errorf("ratio = %f, want 37.5", subnet.Ratio)
				}
				if len(subnet.Members) != 3 {
					t.Errorf("members = %d, want 3", len(subnet.Members))
				}
			},
		},
		{
			name:           "Single address is a singleton",
			addrs:          []string{"10.0.0.1"},
			floor:          DefaultFloor,
			wantSingletons: 1,
			validate: func(t *testing.T, result Result) {
				if got := result.Singletons[0].String(); got != "10.0.0.1" {
					t.Errorf("singleton = %s, want 10.0.0.1", got)
				}
			},
		},
		{
			name:           "Two distant addresses stay singletons",
			addrs:          []string{"2.2.2.2", "1.1.1.1"},
			floor:          DefaultFloor,
			wantSingletons: 2,
			validate: func(t *testing.T, result Result) {
				// production order follows ascending numeric order
				if got := result.Singletons[0].String(); got != "1.1.1.1" {
					t.Errorf("first singleton = %s, want 1.1.1.1", got)
				}
				if got := result.Singletons[1].String(); got != "2.2.2.2" {
					t.Errorf("second singleton = %s, want 2.2.2.2", got)
				}
			},
		},
		{
			name:           "Mixed groups and singletons",
			addrs:          []string{"10.0.0.1", "192.168.1.12", "10.0.0.2", "192.168.1.10", "172.16.0.9"},
			floor:          DefaultFloor,
			wantSubnets:    2,
			wantSingletons: 1,
			validate: func(t *testing.T, result Result) {
				if got := result.Subnets[0].Block.CIDR(); got != "10.0.0.0/30" {
					t.Errorf("first subnet = %s, want 10.0.0.0/30", got)
				}
				if got := result.Subnets[1].Block.CIDR(); got != "192.168.1.8/29" {
					t.Errorf("second subnet = %s, want 192.168.1.8/29", got)
				}
				if got := result.Singletons[0].String(); got != "172.16.0.9" {
					t.Errorf("singleton = %s, want 172.16.0.9", got)
				}
			},
		},
		{
			name:        "Duplicates are kept as separate members",
			addrs:       []string{"10.0.0.5", "10.0.0.5"},
			floor:       DefaultFloor,
			wantSubnets: 1,
			validate: func(t *testing.T, result Result) {
				subnet := result.Subnets[0]
				if len(subnet.Members) != 2 {
					t.Errorf("members = %d, want 2", len(subnet.Members))
				}
				if got := subnet.Block.CIDR(); got != "10.0.0.5/32" {
					t.Errorf("CIDR = %s, want 10.0.0.5/32", got)
				}
			},
		},
		{
			name:        "Raised floor forces a partial block",
			addrs:       []string{"10.0.0.1", "10.0.0.200"},
			floor:       28,
			wantSubnets: 1,
			validate: func(t *testing.T, result Result) {
				subnet := result.Subnets[0]
				if !subnet.Block.Partial {
					t.Error("expected the block to be marked partial")
				}
				if subnet.Block.Prefix != 28 {
					t.Errorf("prefix = %d, want 28", subnet.Block.Prefix)
				}
			},
		},
		{
			name:  "Empty input produces an empty result",
			addrs: nil,
			floor: DefaultFloor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Partition(mustParse(t, tt.addrs...), tt.floor)
			if len(result.Subnets) != tt.wantSubnets {
				t.Fatalf("subnets = %d, want %d", len(result.Subnets), tt.wantSubnets)
			}
			if len(result.Singletons) != tt.wantSingletons {
				t.Fatalf("singletons = %d, want %d", len(result.Singletons), tt.wantSingletons)
			}
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestPartitionCompleteness(t *testing.T) {
	// Every input address must land in exactly one output entry, duplicates
	// included.
	input := mustParse(t,
		"192.168.1.10", "10.0.0.1", "192.168.1.11", "172.16.0.9",
		"10.0.0.1", "192.168.1.12", "203.0.113.7",
	)
	result := Partition(input, DefaultFloor)

	var output []ipcalc.Address
	for _, subnet := range result.Subnets {
		output = append(output, subnet.Members...)
	}
	output = append(output, result.Singletons...)

	if len(output) != len(input) {
		t.Fatalf("output has %d addresses, input has %d", len(output), len(input))
	}

	wantSorted := make([]ipcalc.Address, len(input))
	copy(wantSorted, input)
	sort.Slice(wantSorted, func(i, j int) bool { return wantSorted[i] < wantSorted[j] })
	sort.Slice(output, func(i, j int) bool { return output[i] < output[j] })
	if !reflect.DeepEqual(output, wantSorted) {
		t.Errorf("output multiset %v differs from input multiset %v", output, wantSorted)
	}
}

func TestPartitionCoverage(t *testing.T) {
	input := mustParse(t,
		"192.168.1.10", "192.168.1.11", "192.168.1.250",
		"10.1.2.3", "10.1.2.4", "10.1.2.5",
	)
	result := Partition(input, DefaultFloor)

	for _, subnet := range result.Subnets {
		if subnet.Block.Partial {
			continue
		}
		for _, member := range subnet.Members {
			if !subnet.Block.Contains(member) {
				t.Errorf("member %s outside block %s", member, subnet.Block.CIDR())
			}
		}
		if subnet.Ratio <= 0 || subnet.Ratio > 100 {
			t.Errorf("ratio %f out of (0,100] for %s", subnet.Ratio, subnet.Block.CIDR())
		}
	}
}

func TestPartitionDeterminism(t *testing.T) {
	input := mustParse(t,
		"203.0.113.7", "192.168.1.12", "10.0.0.1", "192.168.1.10",
		"10.0.0.2", "192.168.1.11",
	)
	first := Partition(input, DefaultFloor)
	second := Partition(input, DefaultFloor)
	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different results")
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	input := mustParse(t, "203.0.113.7", "10.0.0.1", "192.168.1.10")
	original := make([]ipcalc.Address, len(input))
	copy(original, input)

	Partition(input, DefaultFloor)
	if !reflect.DeepEqual(input, original) {
		t.Error("input slice was reordered")
	}
}
