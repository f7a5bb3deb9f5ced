//go:build unix

package copilot

import (
	"os/exec"
	"syscall"
)

// setSysProcAttr places the child in its own process group so a timeout
// kill reaches any helpers it has spawned.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup force-kills the child's process group, falling back
// to the child alone if the group signal fails.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		cmd.Process.Kill()
	}
}
