// Package debug provides env-var gated tracing for the conl packages.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Schema   bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONL_DEBUG_PARSE")
	d.Schema = boolEnv("CONL_DEBUG_SCHEMA")
	d.Validate = boolEnv("CONL_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Schema() bool {
	return d.Schema
}
func Validate() bool {
	return d.Validate
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
