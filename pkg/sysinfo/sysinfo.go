package sysinfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

const gigabyte = 1024 * 1024 * 1024

// ErrNoBattery is returned on hosts without a battery sensor.
var ErrNoBattery = errors.New("sysinfo: battery information not available")

// BatteryStatus is the current battery charge and plug state.
type BatteryStatus struct {
	Percentage float64 `json:"percentage"`
	Plugged    bool    `json:"plugged"`
}

// MemoryStatus is the current virtual memory utilization.
type MemoryStatus struct {
	Percentage float64 `json:"percentage"`
	UsedGB     float64 `json:"used"`
	TotalGB    float64 `json:"total"`
}

// CPUStatus is the current overall CPU utilization.
type CPUStatus struct {
	Percentage float64 `json:"percentage"`
}

// DiskStatus is the utilization of the root filesystem.
type DiskStatus struct {
	Percentage float64 `json:"percentage"`
	UsedGB     float64 `json:"used"`
	FreeGB     float64 `json:"free"`
	TotalGB    float64 `json:"total"`
}

// Provider reads live utilization from the host. It exists as an interface
// so handlers can be tested without real sensors.
type Provider interface {
	Battery() (BatteryStatus, error)
	Memory() (MemoryStatus, error)
	CPU() (CPUStatus, error)
	Disk() (DiskStatus, error)
}

type hostProvider struct{}

// NewProvider returns the Provider backed by the local machine.
func NewProvider() Provider {
	return hostProvider{}
}

func (hostProvider) Battery() (BatteryStatus, error) {
	batteries, err := battery.GetAll()
	if err != nil || len(batteries) == 0 {
		return BatteryStatus{}, ErrNoBattery
	}

	b := batteries[0]
	if b.Full == 0 {
		return BatteryStatus{}, ErrNoBattery
	}

	return BatteryStatus{
		Percentage: b.Current / b.Full * 100,
		Plugged:    b.State.Raw == battery.Charging || b.State.Raw == battery.Full,
	}, nil
}

func (hostProvider) Memory() (MemoryStatus, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStatus{}, fmt.Errorf("sysinfo: read memory: %w", err)
	}
	return MemoryStatus{
		Percentage: vm.UsedPercent,
		UsedGB:     float64(vm.Used) / gigabyte,
		TotalGB:    float64(vm.Total) / gigabyte,
	}, nil
}

func (hostProvider) CPU() (CPUStatus, error) {
	// A short sampling window; instantaneous reads are meaningless.
	percents, err := cpu.Percent(time.Second, false)
	if err != nil || len(percents) == 0 {
		return CPUStatus{}, fmt.Errorf("sysinfo: read cpu: %w", err)
	}
	return CPUStatus{Percentage: percents[0]}, nil
}

func (hostProvider) Disk() (DiskStatus, error) {
	usage, err := disk.Usage("/")
	if err != nil {
		return DiskStatus{}, fmt.Errorf("sysinfo: read disk: %w", err)
	}
	return DiskStatus{
		Percentage: usage.UsedPercent,
		UsedGB:     float64(usage.Used) / gigabyte,
		FreeGB:     float64(usage.Free) / gigabyte,
		TotalGB:    float64(usage.Total) / gigabyte,
	}, nil
}
