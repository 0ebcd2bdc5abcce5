package xmlscan

import "unicode/utf8"

// Comment = '<!--' ((Char - '-') | ('-' (Char - '-')))* '-->'
// Implemented as a priority loop: at the top of each iteration, try the
// closing "-->" first, then a bare "--" (illegal anywhere else in a
// comment, §6's ErrDoubleDashInComment), and only then consume an ordinary
// content chunk up to the next occurrence of either.
func commentProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!--"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvCommentStart, Bytes: []byte("<!--")}}, nil
	case 1:
		_, end, err := buf.ShiftKnownArray([]byte("-->"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if end {
			return next{tag: nYield, nextState: 2, event: Event{Kind: EvCommentEnd, Bytes: []byte("-->")}}, nil
		}
		_, dash, err := buf.ShiftKnownArray([]byte("--"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if dash {
			return nErr(ErrDoubleDashInComment), nil
		}
		data, err := buf.ShiftCharsWhileDelimited(sc.grammar.testChar, []byte("--"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nContinueTo(1), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvCommentChunk, Bytes: data}}, nil
	case 2:
		return nExitAccept(), nil
	}
	panic("xmlscan: commentProd: bad state")
}

// PI = '<?' PITarget (S (Char* - (Char* '?>' Char*)))? '?>'
func piProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<?"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvPIStart, Bytes: []byte("<?")}}, nil
	case 1:
		return nCallProd(2, pPITarget), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedPITarget), nil
		}
		return nContinueTo(3), nil
	case 3:
		_, end, err := buf.ShiftKnownArray([]byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if end {
			return next{tag: nYield, nextState: 6, event: Event{Kind: EvPIEnd, Bytes: []byte("?>")}}, nil
		}
		return nCallProd(4, pS), nil
	case 4:
		if ret == RReject {
			return nErr(ErrExpectedWhitespaceOrPIEnd), nil
		}
		return nContinueTo(5), nil
	case 5:
		_, end, err := buf.ShiftKnownArray([]byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if end {
			return next{tag: nYield, nextState: 6, event: Event{Kind: EvPIEnd, Bytes: []byte("?>")}}, nil
		}
		data, err := buf.ShiftCharsWhileDelimited(sc.grammar.testChar, []byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nContinueTo(5), nil
		}
		return next{tag: nYield, nextState: 5, event: Event{Kind: EvPIChunk, Bytes: data}}, nil
	case 6:
		return nExitAccept(), nil
	}
	panic("xmlscan: piProd: bad state")
}

// PITarget = Name - (('X'|'x')('M'|'m')('L'|'l')). Unlike Name, this must
// see the whole token before committing (a chunked partial match could turn
// out to be the forbidden "xml" once more bytes arrive), so it peeks via
// buf.Filled() and only calls the unexported shiftFilled once the full
// token — and the xml/XML exclusion — is known, instead of streaming
// NameChunk-style events like nameProd does.
func piTargetProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		filled := buf.Filled()
		if len(filled) == 0 {
			return next{}, Indeterminate
		}
		r, size := utf8.DecodeRune(filled)
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(filled) {
				return next{}, Indeterminate
			}
			return nErr(ErrInvalidUTF8), nil
		}
		if !isNameStartChar(r) {
			return nExitReject(), nil
		}
		restLen, incomplete, _ := scanRunesWhile(filled[size:], isNameChar)
		if incomplete || size+restLen == len(filled) {
			return next{}, Indeterminate
		}
		total := size + restLen
		name := filled[:total]
		if len(name) == 3 && isASCIICaseInsensitive(name, "xml") {
			return nExitReject(), nil
		}
		data := buf.shiftFilled(total)
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvPITargetChunk, Bytes: data}}, nil
	case 1:
		return nExitAccept(), nil
	}
	panic("xmlscan: piTargetProd: bad state")
}

func isASCIICaseInsensitive(b []byte, lower string) bool {
	if len(b) != len(lower) {
		return false
	}
	for i := range b {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

// CDStart = '<![CDATA['
func cdStartProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	_, matched, err := buf.ShiftKnownArray([]byte("<![CDATA["))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if !matched {
		return nExitReject(), nil
	}
	return nExitAccept(), nil
}

// CDEnd = ']]>'
func cdEndProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	_, matched, err := buf.ShiftKnownArray([]byte("]]>"))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if !matched {
		return nExitReject(), nil
	}
	return nExitAccept(), nil
}

// CData streams content up to (not including) the next "]]>", which CDEnd
// consumes — CData itself only peeks for it so CDSect can hand off cleanly.
func cdataProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	matches, err := buf.PeekEquals([]byte("]]>"))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if matches {
		return nExitAccept(), nil
	}
	data, err := buf.ShiftCharsWhileDelimited(sc.grammar.testChar, []byte("]]>"))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if len(data) == 0 {
		return nContinueTo(state), nil
	}
	return next{tag: nYield, nextState: state, event: Event{Kind: EvCDChunk, Bytes: data}}, nil
}

// CDSect = CDStart CData CDEnd
func cdSectProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pCDStart), nil
	case 1:
		if ret == RReject {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 2, event: Event{Kind: EvCDStart, Bytes: []byte("<![CDATA[")}}, nil
	case 2:
		return nCallProd(3, pCData), nil
	case 3:
		return nCallProd(4, pCDEnd), nil
	case 4:
		if ret == RReject {
			return nErrLiteral("]]>"), nil
		}
		return next{tag: nYield, nextState: 5, event: Event{Kind: EvCDEnd, Bytes: []byte("]]>")}}, nil
	case 5:
		return nExitAccept(), nil
	}
	panic("xmlscan: cdSectProd: bad state")
}
