package main

// Notes:
// - printUsage: we test that required content strings are present in the
//   output. We don't test exact formatting as that's an implementation detail.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	requiredStrings := []string{
		"Usage: svgater",
		"--mode",
		"--suffix",
		"--config",
		"SVGATER_MODE",
		"Exit codes:",
	}

	for _, s := range requiredStrings {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}
