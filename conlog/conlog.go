// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"os"
)

var (
	p      func(string, ...interface{})
	debugP func(string, ...interface{})
)

func init() {
	p = func(format string, v ...interface{}) {
		fmt.Fprintf(os.Stdout, format, v...)
	}
	debugP = func(string, ...interface{}) {}
}

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

func SetDebugPrintf(f func(string, ...interface{})) {
	debugP = f
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// DPrintf only prints when a debug print hook was installed.
func DPrintf(format string, v ...interface{}) {
	debugP(format, v...)
}
