package disk

import (
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type ToolChecker interface {
	// CheckTools verifies that every external tool needed to resize the
	// given filesystem types is installed.
	CheckTools(fsTypes []FileSystemType) error
}

type toolChecker struct {
	cmdRunner boshsys.CmdRunner
}

func NewToolChecker(cmdRunner boshsys.CmdRunner) ToolChecker {
	return toolChecker{cmdRunner: cmdRunner}
}

func (c toolChecker) CheckTools(fsTypes []FileSystemType) error {
	requiredTools := []string{"lsblk", "growpart"}

	for _, fsType := range fsTypes {
		var tool string
		switch {
		case fsType.IsExtFamily():
			tool = "resize2fs"
		case fsType == FileSystemXFS:
			tool = "xfs_growfs"
		case fsType == FileSystemBtrfs:
			tool = "btrfs"
		default:
			return MissingToolError{Tool: "unsupported filesystem: " + string(fsType)}
		}

		if !contains(requiredTools, tool) {
			requiredTools = append(requiredTools, tool)
		}
	}

	for _, tool := range requiredTools {
		if !c.cmdRunner.CommandExists(tool) {
			return MissingToolError{Tool: tool}
		}
	}

	return nil
}

func contains(tools []string, tool string) bool {
	for _, t := range tools {
		if t == tool {
			return true
		}
	}
	return false
}
