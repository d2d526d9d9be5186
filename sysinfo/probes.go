// Package sysinfo - hardware and OS probes
package sysinfo

import (
	"fmt"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/distatus/battery"
	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// getOSInfo resolves the OS display name, the lower-case platform identifier,
// the kernel version and the formatted uptime.
//
// Returns an error only when no OS identity can be established at all. When
// host detection fails but the runtime still knows its target OS, a minimal
// identity is returned and the remaining values stay empty.
func getOSInfo() (osName, platform, kernel, uptime string, err error) {
	hi, herr := host.Info()
	if herr != nil {
		log.WithError(herr).Debug("host probe failed")
		if runtime.GOOS == "" {
			return "", "", "", "", herr
		}
		return prettyOSName(runtime.GOOS, "", ""), runtime.GOOS, unameKernel(), "", nil
	}

	platform = hi.Platform
	if platform == "" {
		platform = hi.OS
	}

	osName = prettyOSName(hi.OS, hi.Platform, hi.PlatformVersion)
	if hi.KernelArch != "" {
		osName += " " + hi.KernelArch
	}

	kernel = hi.KernelVersion
	if kernel == "" {
		kernel = unameKernel()
	}

	if hi.Uptime > 0 {
		uptime = FormatUptime(time.Duration(hi.Uptime) * time.Second)
	}

	return osName, platform, kernel, uptime, nil
}

// prettyOSName builds a human-friendly OS name from the raw identifiers
// gopsutil reports (e.g. os "linux", platform "ubuntu", version "22.04").
func prettyOSName(osID, platform, version string) string {
	switch osID {
	case "darwin":
		name := "macOS"
		if version != "" {
			name += " " + version
		}
		return name
	case "windows":
		// Platform already carries the product name ("Microsoft Windows 11 Pro").
		if platform != "" {
			return platform
		}
		return "Windows"
	}

	name := titleCase(platform)
	if name == "" {
		name = titleCase(osID)
	}
	if version != "" {
		name += " " + version
	}
	return strings.TrimSpace(name)
}

// titleCase upper-cases the first letter of each word of a distro identifier.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// getCPUInfo returns the processor model name with its logical core count,
// e.g. "AMD Ryzen 7 5800X 8-Core Processor (16 cores)".
func getCPUInfo() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		log.WithError(err).Debug("cpu probe failed")
		return ""
	}

	model := strings.TrimSpace(infos[0].ModelName)
	if model == "" {
		return ""
	}

	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		return model
	}
	return fmt.Sprintf("%s (%d cores)", model, cores)
}

// getMemoryInfo returns used and total physical memory, e.g. "4.2 GB / 15.6 GB".
func getMemoryInfo() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.WithError(err).Debug("memory probe failed")
		return ""
	}
	return fmt.Sprintf("%s / %s", FormatBytes(vm.Used), FormatBytes(vm.Total))
}

// getDiskInfo returns used and total space of the root filesystem with the
// usage percentage rounded to the nearest integer.
func getDiskInfo() string {
	du, err := disk.Usage(rootMount())
	if err != nil || du.Total == 0 {
		log.WithError(err).Debug("disk probe failed")
		return ""
	}
	pct := int(math.Round(float64(du.Used) * 100 / float64(du.Total)))
	return fmt.Sprintf("%s / %s (%d%%)", FormatBytes(du.Used), FormatBytes(du.Total), pct)
}

// dmiJunk lists firmware placeholder strings vendors ship instead of a real
// product name.
var dmiJunk = []string{
	"to be filled by o.e.m.",
	"system product name",
	"system manufacturer",
	"default string",
	"none",
}

func isDMIJunk(s string) bool {
	l := strings.ToLower(strings.TrimSpace(s))
	if l == "" {
		return true
	}
	for _, junk := range dmiJunk {
		if l == junk {
			return true
		}
	}
	return false
}

// getHostModel returns the machine vendor and product name from DMI data,
// e.g. "LENOVO ThinkPad X1 Carbon Gen 9".
func getHostModel() string {
	product, err := ghw.Product()
	if err != nil {
		log.WithError(err).Debug("product probe failed")
		return ""
	}

	var parts []string
	if !isDMIJunk(product.Vendor) {
		parts = append(parts, strings.TrimSpace(product.Vendor))
	}
	if !isDMIJunk(product.Name) {
		parts = append(parts, strings.TrimSpace(product.Name))
	}
	return strings.Join(parts, " ")
}

// getGPUInfo returns the graphics card model(s), comma-separated when the
// machine has more than one.
func getGPUInfo() string {
	gpu, err := ghw.GPU()
	if err != nil || len(gpu.GraphicsCards) == 0 {
		log.WithError(err).Debug("gpu probe failed")
		return ""
	}

	var names []string
	for _, card := range gpu.GraphicsCards {
		di := card.DeviceInfo
		if di == nil || di.Product == nil || di.Product.Name == "" {
			continue
		}
		name := di.Product.Name
		if di.Vendor != nil && di.Vendor.Name != "" && !strings.Contains(name, di.Vendor.Name) {
			name = di.Vendor.Name + " " + name
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// getBatteryInfo returns the charge percentage of the first battery with an
// "(AC)" suffix when the machine runs on mains power. Desktops without a
// battery yield an empty string.
func getBatteryInfo() string {
	bats, err := battery.GetAll()
	if len(bats) == 0 {
		log.WithError(err).Debug("battery probe failed")
		return ""
	}

	b := bats[0]
	if b.Full <= 0 {
		return ""
	}
	pct := int(math.Round(b.Current / b.Full * 100))
	if pct > 100 {
		pct = 100
	}

	if b.State == battery.Charging || b.State == battery.Full {
		return fmt.Sprintf("%d%% (AC)", pct)
	}
	return fmt.Sprintf("%d%%", pct)
}
