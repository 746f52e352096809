//go:build windows
// +build windows

package sysutil

import "errors"

// RlimitNoFile is not available on Windows, there is no open file limit.
func RlimitNoFile() (uint64, error) {
	return 0, errors.New("open file limit is not supported on windows")
}
