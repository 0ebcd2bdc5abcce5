package xmlscan

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Source reads a non-UTF-8 document into a StrBuf's tail, transcoding with
// the encoding the caller names (normally the slice a Scanner reported via
// an EvEncodingNameChunk event from the EncodingDecl production). The
// scanner's own Non-goal is "character encoding detection beyond what the
// XMLDecl advertises" — Source is the optional external consumer that acts
// on the name the scanner only reports, keeping that boundary intact.
//
// Source does not drive a Scanner itself; a caller alternates between
// Source.Fill and Scanner.Resume the same way it would with a plain reader,
// just substituting Source.Fill for a raw r.Read.
type Source struct {
	r   io.Reader
	dec *encoding.Decoder
	buf []byte // transcoded bytes not yet copied into the caller's StrBuf
}

// NewSource wraps r, transcoding its bytes from the named encoding (an IANA
// name such as "ISO-8859-1", "UTF-16", "Shift_JIS" — whatever the scanner's
// EncodingDecl event reported) into UTF-8. An unrecognized or empty name
// falls back to passing bytes through unchanged, matching UTF-8/US-ASCII's
// declared-but-trivial transcode.
func NewSource(r io.Reader, declaredEncoding string) (*Source, error) {
	src := &Source{r: r}
	if declaredEncoding == "" {
		return src, nil
	}
	enc, err := ianaindex.IANA.Encoding(declaredEncoding)
	if err != nil || enc == nil {
		return src, nil
	}
	src.dec = enc.NewDecoder()
	return src, nil
}

// Fill reads and transcodes up to len(dst) bytes of UTF-8 output into dst,
// returning how many bytes were written. It returns io.EOF once the
// underlying reader and any buffered transcoded tail are both exhausted,
// the same contract as io.Reader.Read, so a caller can feed it straight
// into StrBuf.RemainingMaybeUninitialized followed by AssumeFilledNRemaining.
func (s *Source) Fill(dst []byte) (int, error) {
	for len(s.buf) == 0 {
		raw := make([]byte, len(dst))
		n, err := s.r.Read(raw)
		if n > 0 {
			if s.dec == nil {
				s.buf = raw[:n]
			} else {
				out, _, terr := transform.Bytes(s.dec, raw[:n])
				if terr != nil {
					return 0, terr
				}
				s.buf = out
			}
		}
		if err != nil {
			if len(s.buf) == 0 {
				return 0, err
			}
			break
		}
		if n == 0 {
			continue
		}
	}
	n := copy(dst, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// EncodingNameFromEvent extracts the IANA encoding name StrBuf handed back
// verbatim in an EvEncodingNameChunk event's Bytes, trimming nothing: the
// EncodingDecl production yields only EncName bytes. A name that was split
// across buffer fills arrives in several chunk events, and this returns
// only the one chunk it is given.
func EncodingNameFromEvent(ev Event) string {
	if ev.Kind != EvEncodingNameChunk {
		return ""
	}
	return string(ev.Bytes)
}

// Read adapts Source to io.Reader, so a *Source can be handed to anything
// that expects a plain reader.
func (s *Source) Read(p []byte) (int, error) { return s.Fill(p) }

var _ io.Reader = (*Source)(nil)
