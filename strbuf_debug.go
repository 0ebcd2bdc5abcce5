//go:build xmlscanlint

package xmlscan

import (
	"fmt"
	"os"
)

// Under the xmlscanlint build tag, every Event the engine yields bumps the
// debug borrow counter, and the next Resume call checks it and resets it;
// UnshiftReset does no check of its own. This is the dynamic stand-in §9 calls for in languages
// that cannot express "event borrow invalidated by next resume" statically.

func (b *StrBuf) borrowOpen() { b.borrows++ }

func (b *StrBuf) borrowCheckReleased(tr Tracer) {
	if b.borrows > 1 {
		tr.Tracef("\nERROR: %d outstanding StrBuf borrows at resume boundary\n", b.borrows)
	}
	b.borrows = 0
}

func init() {
	fmt.Fprintf(os.Stderr, "xmlscan: built with xmlscanlint borrow checking\n")
}
