package disk

import (
	"fmt"
)

// DeviceNotFoundError indicates that a device path could not be resolved to
// a real file.
type DeviceNotFoundError struct {
	Path string
}

func (e DeviceNotFoundError) Error() string {
	return fmt.Sprintf("Device not found: %s", e.Path)
}

// MissingToolError indicates a required external tool is not installed.
type MissingToolError struct {
	Tool string
}

func (e MissingToolError) Error() string {
	return fmt.Sprintf("Required tool not found: %s", e.Tool)
}

// DeviceInfoError indicates the topology query failed or produced
// unparsable output.
type DeviceInfoError struct {
	Message string
}

func (e DeviceInfoError) Error() string {
	return fmt.Sprintf("Failed to get device info: %s", e.Message)
}

// GrowPartitionError indicates every partition-growth strategy was
// exhausted without a success or idempotency signal.
type GrowPartitionError struct {
	Message string
}

func (e GrowPartitionError) Error() string {
	return fmt.Sprintf("Failed to grow partition: %s", e.Message)
}

// FileSystemDetectionError indicates all filesystem type detection
// strategies were exhausted.
type FileSystemDetectionError struct {
	DevicePath string
}

func (e FileSystemDetectionError) Error() string {
	return fmt.Sprintf("Failed to detect filesystem type for %s", e.DevicePath)
}

// FileSystemResizeError indicates all resize attempts for the resolved
// filesystem type failed.
type FileSystemResizeError struct {
	Message string
}

func (e FileSystemResizeError) Error() string {
	return fmt.Sprintf("Failed to resize filesystem: %s", e.Message)
}

// LuksResizeError indicates the container resize tool reported a failure.
type LuksResizeError struct {
	Message string
}

func (e LuksResizeError) Error() string {
	return fmt.Sprintf("Failed to resize LUKS container: %s", e.Message)
}
