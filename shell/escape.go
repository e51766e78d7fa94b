// Package shell detects the interactive shell and adapts escape sequences to
// its prompt syntax.
package shell

import "github.com/fwojciec/promptline"

// Escaper returns the escaper that marks control sequences as zero-width for
// the named shell, so line editing measures the prompt correctly. Shells
// without known markers get nil, which leaves sequences raw.
func Escaper(name string) promptline.Escaper {
	switch name {
	case "bash":
		return wrap(`\[`, `\]`)
	case "zsh":
		return wrap("%{", "%}")
	case "readline":
		return wrap("\x01", "\x02")
	default:
		return nil
	}
}

func wrap(start, end string) promptline.Escaper {
	return func(seq string) string {
		return start + seq + end
	}
}
