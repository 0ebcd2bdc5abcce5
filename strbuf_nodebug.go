//go:build !xmlscanlint

package xmlscan

// Without the xmlscanlint build tag these are no-ops compiled away entirely;
// production builds pay nothing for the borrow discipline described in §9.

func (b *StrBuf) borrowOpen() {}

func (b *StrBuf) borrowCheckReleased(tr Tracer) {}
