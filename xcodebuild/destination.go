package xcodebuild

import (
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-snapshot-test-command/simulator"
)

const destinationPlatform = "iOS Simulator"

// destination selects the simulator by UDID: xcodebuild rejects a name based destination
// when several simulators share the name and OS version.
func (g *generator) destination(cfg Config, deviceName string) ([]string, error) {
	devices, err := g.deviceDirectory.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to list simulators: %w", err)
	}

	udid := resolveDeviceID(devices, deviceName)
	if udid == "" {
		g.logger.Warnf("No simulator found with name (%s), the destination id is left empty", deviceName)
	} else {
		g.logger.Printf("- simulator (%s): %s", strings.TrimSpace(deviceName), udid)
	}

	value := fmt.Sprintf("platform=%s,id=%s,OS=%s", destinationPlatform, udid, cfg.IOSVersion)

	return []string{quotedFlag("destination", value)}, nil
}

// resolveDeviceID folds over the devices keeping the last exact (trimmed) name match,
// so the directory's ordering decides between same named simulators.
func resolveDeviceID(devices []simulator.Device, deviceName string) string {
	wanted := strings.TrimSpace(deviceName)

	udid := ""
	for _, device := range devices {
		if strings.TrimSpace(device.Name) == wanted {
			udid = device.UDID
		}
	}

	return udid
}
