package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
)

// handleSystemInfo reads live utilization from the host. A missing sensor
// (no battery on desktops) is a genuine failure, not a degraded answer.
func (uc *implUseCase) handleSystemInfo(ctx context.Context, query string) assistant.CommandResult {
	switch {
	case strings.Contains(query, "battery"):
		status, err := uc.system.Battery()
		if err != nil {
			uc.l.Warnf(ctx, "handleSystemInfo: battery: %v", err)
			return assistant.CommandResult{
				Success: false,
				Message: "Battery information not available",
				Action:  actionBatteryInfo,
			}
		}
		plugged := "not plugged in"
		if status.Plugged {
			plugged = "plugged in"
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("Battery is at %.0f%% and %s", status.Percentage, plugged),
			Action:  actionBatteryInfo,
			Data:    status,
		}

	case strings.Contains(query, "memory") || strings.Contains(query, "ram"):
		status, err := uc.system.Memory()
		if err != nil {
			return uc.systemInfoError(ctx, err)
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("Memory usage: %.1f%% (%.1fGB of %.1fGB used)", status.Percentage, status.UsedGB, status.TotalGB),
			Action:  actionMemoryInfo,
			Data:    status,
		}

	case strings.Contains(query, "cpu"):
		status, err := uc.system.CPU()
		if err != nil {
			return uc.systemInfoError(ctx, err)
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("CPU usage: %.1f%%", status.Percentage),
			Action:  actionCPUInfo,
			Data:    status,
		}

	case strings.Contains(query, "disk"):
		status, err := uc.system.Disk()
		if err != nil {
			return uc.systemInfoError(ctx, err)
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("Disk usage: %.1f%% (%.1fGB used, %.1fGB free of %.1fGB total)", status.Percentage, status.UsedGB, status.FreeGB, status.TotalGB),
			Action:  actionDiskInfo,
			Data:    status,
		}
	}

	// "system info" with no specific sensor asks for the full picture.
	return uc.systemOverview(ctx)
}

func (uc *implUseCase) systemInfoError(ctx context.Context, err error) assistant.CommandResult {
	uc.l.Errorf(ctx, "handleSystemInfo: %v", err)
	return assistant.CommandResult{
		Success: false,
		Message: fmt.Sprintf("Error getting system information: %v", err),
		Action:  actionSystemInfo,
	}
}

func (uc *implUseCase) systemOverview(ctx context.Context) assistant.CommandResult {
	var parts []string
	data := map[string]any{}

	if cpu, err := uc.system.CPU(); err == nil {
		parts = append(parts, fmt.Sprintf("CPU: %.1f%%", cpu.Percentage))
		data["cpu"] = cpu
	}
	if mem, err := uc.system.Memory(); err == nil {
		parts = append(parts, fmt.Sprintf("Memory: %.1f%%", mem.Percentage))
		data["memory"] = mem
	}
	if disk, err := uc.system.Disk(); err == nil {
		parts = append(parts, fmt.Sprintf("Disk: %.1f%%", disk.Percentage))
		data["disk"] = disk
	}
	if bat, err := uc.system.Battery(); err == nil {
		parts = append(parts, fmt.Sprintf("Battery: %.0f%%", bat.Percentage))
		data["battery"] = bat
	}

	if len(parts) == 0 {
		return uc.systemInfoError(ctx, fmt.Errorf("no sensors available"))
	}

	return assistant.CommandResult{
		Success: true,
		Message: "System status: " + strings.Join(parts, ", "),
		Action:  actionSystemInfo,
		Data:    data,
	}
}
