package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgater [flags] <file.svg | glob>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite ID-based CSS in an SVG and write <name>-updated.svg next to it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file.svg    SVG file, or a quoted glob such as 'icons/**/*.svg'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -m, --mode <s>        Rewrite mode: class (default), inline")
	fmt.Fprintln(w, "                          class:  #a {..} -> .a {..}, id=\"a\" -> class=\"a\"")
	fmt.Fprintln(w, "                          inline: #a {..} removed, id=\"a\" -> id=\"a\" style=\"..\"")
	fmt.Fprintln(w, "  -s, --suffix <s>      Output file name suffix (default \"-updated\")")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --show-config     Print the resolved configuration and exit")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show found IDs and timing")
	fmt.Fprintln(w, "      --version         Show version information")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVGATER_CONFIG, SVGATER_MODE, SVGATER_SUFFIX")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  missing file argument, bad flags or config")
	fmt.Fprintln(w, "  2  rewrite failed (no IDs found, rule not extractable)")
	fmt.Fprintln(w, "  3  reading or writing a file failed")
}
