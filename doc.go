// Package svgater rewrites ID-based CSS styling in SVG markup.
//
// # Quick Start
//
// Rewrite text directly:
//
//	out, err := svgater.ToClasses(`<style>#a{fill:red}</style><rect id="a"/>`)
//	// out == `<style>.a{fill:red}</style><rect class="a"/>`
//
//	out, err = svgater.ToInlineStyles(`<style>#a{fill:red}</style><rect id="a"/>`)
//	// out == `<style></style><rect id="a" style="fill:red"/>`
//
// Or convert a file next to itself with a Converter:
//
//	conv := svgater.NewConverter(svgater.WithMode(svgater.ModeInline))
//	result, err := conv.ConvertFile(ctx, "icons/logo.svg")
//	// result.OutputPath == "icons/logo-updated.svg"
//
// # Modes
//
// ModeClass finds every "#name" selector anywhere in the text, turns it into
// ".name" in place and rewrites id="name" attributes to class="name".
//
// ModeInline finds every "#name { declarations }" rule, removes it and adds
// style="declarations" after each id="name" attribute. Declarations may only
// contain letters, digits, whitespace and colons. Emptied <style> elements
// are left in place.
//
// # Limitations
//
// Neither mode parses SVG or CSS. A "#" inside an attribute value, such as
// fill="#fff", or inside a comment is treated as a selector.
package svgater
