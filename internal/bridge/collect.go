package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// Collector produces telemetry reports.
type Collector interface {
	Collect(ctx context.Context) (Report, error)
}

// SystemCollector reads the local machine through gopsutil.
type SystemCollector struct {
	DiskPath   string
	Interfaces []string
}

func NewSystemCollector(cfg Config) *SystemCollector {
	return &SystemCollector{DiskPath: cfg.DiskPath, Interfaces: cfg.Interfaces}
}

// Collect gathers one report. Sub-readings that fail are left at zero and
// reported together; the report is still usable unless every one failed.
func (c *SystemCollector) Collect(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	s, err := c.sample(ctx)
	return Shape(s, c.Interfaces), err
}

func (c *SystemCollector) sample(ctx context.Context) (Sample, error) {
	var s Sample
	var errs []error

	// A zero interval compares against the previous call, so the first
	// report after start reads 0.
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(pct) > 0 {
		s.CPU = pct[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else {
		s.MemTotal, s.MemUsed, s.MemPercent = vm.Total, vm.Used, vm.UsedPercent
	}

	path := c.DiskPath
	if path == "" {
		path = "/"
	}
	if du, err := disk.UsageWithContext(ctx, path); err != nil {
		errs = append(errs, fmt.Errorf("disk %s: %w", path, err))
	} else {
		s.DiskTotal, s.DiskUsed, s.DiskPercent = du.Total, du.Used, du.UsedPercent
	}

	// Sensors often return partial results alongside a warning error.
	temps, err := sensors.TemperaturesWithContext(ctx)
	if len(temps) > 0 {
		s.Temps = make(map[string]float64, len(temps))
		for _, t := range temps {
			s.Temps[t.SensorKey] = t.Temperature
		}
	} else if err != nil {
		errs = append(errs, fmt.Errorf("sensors: %w", err))
	}

	if ifaces, err := psnet.InterfacesWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("net: %w", err))
	} else {
		s.Addrs = make(map[string]string)
		for _, iface := range ifaces {
			if addr := firstIPv4(iface.Addrs); addr != "" {
				s.Addrs[iface.Name] = addr
			}
		}
	}

	if up, err := host.UptimeWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("uptime: %w", err))
	} else {
		s.Uptime = up
	}

	return s, errors.Join(errs...)
}

// firstIPv4 returns the first IPv4 address in CIDR or bare form.
func firstIPv4(addrs psnet.InterfaceAddrList) string {
	for _, a := range addrs {
		var ip netip.Addr
		if p, err := netip.ParsePrefix(a.Addr); err == nil {
			ip = p.Addr()
		} else if parsed, err := netip.ParseAddr(a.Addr); err == nil {
			ip = parsed
		} else {
			continue
		}
		if ip.Is4() || ip.Is4In6() {
			return ip.Unmap().String()
		}
	}
	return ""
}
