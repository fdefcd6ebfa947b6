package disk

type ResizeVerifier interface {
	// VerifyResize reports the current capacity and usage of a mount
	// point as a human-readable summary for operator confirmation.
	VerifyResize(mountPoint string) (string, error)
}
