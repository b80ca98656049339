// Package debug provides env-gated diagnostics for the tree algorithms.
// Set JT_DEBUG_MERGE=1 (etc.) to trace on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge    bool
	Schema   bool
	Parse    bool
	Assemble bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("JT_DEBUG_MERGE")
	d.Schema = boolEnv("JT_DEBUG_SCHEMA")
	d.Parse = boolEnv("JT_DEBUG_PARSE")
	d.Assemble = boolEnv("JT_DEBUG_ASSEMBLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Schema() bool {
	return d.Schema
}
func Parse() bool {
	return d.Parse
}
func Assemble() bool {
	return d.Assemble
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
