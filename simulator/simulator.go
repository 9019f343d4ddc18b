package simulator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-xcode/v2/destination"
	"github.com/hashicorp/go-version"
)

// PlatformIOS ...
const PlatformIOS = "iOS"

// Reported by the device finder once its retries are exhausted on a host without any available simulator.
const noAvailableDeviceMessage = "no available device found"

// Device is a simulator available for running tests
type Device struct {
	Name     string
	UDID     string
	State    string
	Platform string
	OS       string
}

// Directory lists the simulators known to the host
type Directory interface {
	ListDevices() ([]Device, error)
}

type directory struct {
	logger       log.Logger
	deviceFinder destination.DeviceFinder
	platform     string

	devices []Device
	listed  bool
}

// NewDirectory returns a Directory listing the available simulators of the given platform.
// The list is fetched once and reused by later calls.
func NewDirectory(logger log.Logger, deviceFinder destination.DeviceFinder, platform string) Directory {
	return &directory{
		logger:       logger,
		deviceFinder: deviceFinder,
		platform:     platform,
	}
}

// ListDevices returns the available devices ordered by ascending runtime version,
// devices of the same runtime keep the order reported by simctl.
func (d *directory) ListDevices() ([]Device, error) {
	if d.listed {
		return d.devices, nil
	}

	list, err := d.deviceFinder.ListDevices()
	if err != nil {
		if !strings.Contains(err.Error(), noAvailableDeviceMessage) {
			return nil, err
		}

		d.logger.Warnf("No available simulator found")
		list = &destination.DeviceList{}
	}

	devices, err := availableDevices(list, d.platform)
	if err != nil {
		return nil, err
	}

	d.devices = devices
	d.listed = true

	return devices, nil
}

type runtimeDevices struct {
	os         *version.Version
	osName     string
	identifier string
}

func availableDevices(list *destination.DeviceList, platform string) ([]Device, error) {
	var runtimes []runtimeDevices
	for _, runtime := range list.Runtimes {
		if runtime.Platform != platform {
			continue
		}

		osVersion, err := version.NewVersion(runtime.Version)
		if err != nil {
			return nil, fmt.Errorf("invalid runtime version (%s): %w", runtime.Identifier, err)
		}

		runtimes = append(runtimes, runtimeDevices{os: osVersion, osName: runtime.Version, identifier: runtime.Identifier})
	}

	sort.SliceStable(runtimes, func(i, j int) bool {
		return runtimes[i].os.LessThan(runtimes[j].os)
	})

	devices := []Device{}
	for _, runtime := range runtimes {
		for _, device := range list.Devices[runtime.identifier] {
			if !device.IsAvailable {
				continue
			}

			devices = append(devices, Device{
				Name:     device.Name,
				UDID:     device.UDID,
				State:    device.State,
				Platform: platform,
				OS:       runtime.osName,
			})
		}
	}

	return devices, nil
}

// LatestOSVersion returns the highest OS version among the given devices
func LatestOSVersion(devices []Device) (string, error) {
	var (
		latest     *version.Version
		latestName string
	)

	for _, device := range devices {
		osVersion, err := version.NewVersion(device.OS)
		if err != nil {
			return "", fmt.Errorf("failed to parse simulator version (%s): %w", device.OS, err)
		}

		if latest == nil || osVersion.GreaterThan(latest) {
			latest = osVersion
			latestName = device.OS
		}
	}

	if latest == nil {
		return "", fmt.Errorf("no simulator available")
	}

	return latestName, nil
}
