package svgater_test

import (
	"fmt"

	"github.com/alnah/go-svgater"
)

// Example converts ID selectors to classes.
func Example() {
	out, err := svgater.ToClasses(`<style>#logo{fill:red}</style><path id="logo"/>`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: <style>.logo{fill:red}</style><path class="logo"/>
}

// ExampleToInlineStyles moves ID rules into style attributes.
// The emptied <style> element is kept.
func ExampleToInlineStyles() {
	out, err := svgater.ToInlineStyles(`<style>#a{fill:blue}</style><rect id="a"/>`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: <style></style><rect id="a" style="fill:blue"/>
}
