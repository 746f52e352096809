//go:build !windows
// +build !windows

package sysutil

import "golang.org/x/sys/unix"

// RlimitNoFile reports the current open file limit in number of files.
func RlimitNoFile() (cur uint64, err error) {
	var r unix.Rlimit
	err = unix.Getrlimit(unix.RLIMIT_NOFILE, &r)
	return r.Cur, err
}
