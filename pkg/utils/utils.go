package utils

import (
	"fmt"
	"io"
	"os"
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// CheckErr prints msg and err to stderr and exits with status 1 when err is
// non-nil. It is meant for setup failures that happen before logging exists.
func CheckErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", msg, err)
		exit(1)
	}
}
