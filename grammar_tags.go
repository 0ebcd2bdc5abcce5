package xmlscan

// element = EmptyElemTag | STag content ETag
// Both tag shapes share the same "<" Name (S Attribute)* S? prefix; which
// one it turns out to be is only known at the very end, at the "/>" vs ">"
// decision, so a single state machine carries both instead of trying STag
// then backtracking into EmptyElemTag.
func elementProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		// content tries Element before conceding to its caller's ETag (see
		// contentProd's order below), so a bare "<" must be distinguished from
		// the "</" that actually starts an end-tag before committing to either.
		isETag, err := buf.PeekEquals([]byte("</"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if isETag {
			return nExitReject(), nil
		}
		_, matched, err := buf.ShiftKnownArray([]byte("<"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvStartTagStart, Bytes: []byte("<")}}, nil
	case 1:
		return nCallProd(2, pName), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nContinueTo(10), nil

	case 10: // optional (S Attribute)* loop head
		return nCallProd(11, pS), nil
	case 11:
		if ret == RReject {
			return nContinueTo(20), nil
		}
		return nCallProd(12, pAttribute), nil
	case 12:
		// A Reject here (S matched but no Attribute followed) just means the
		// whitespace belonged to S? before the tag end, not another attribute.
		if ret == RAccept {
			return nContinueTo(10), nil
		}
		return nContinueTo(20), nil

	case 20: // tag-end decision
		_, empty, err := buf.ShiftKnownArray([]byte("/>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if empty {
			return next{tag: nYield, nextState: 30, event: Event{Kind: EvStartTagEndEmpty, Bytes: []byte("/>")}}, nil
		}
		_, end, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !end {
			return nErr(ErrExpectedStartTagEnd), nil
		}
		return next{tag: nYield, nextState: 21, event: Event{Kind: EvStartTagEnd, Bytes: []byte(">")}}, nil
	case 21:
		return nCallProd(22, pContent), nil
	case 22:
		return nCallProd(23, pETag), nil
	case 23:
		if ret == RReject {
			return nErr(ErrExpectedETag), nil
		}
		return nExitAccept(), nil

	case 30:
		return nExitAccept(), nil
	}
	panic("xmlscan: elementProd: bad state")
}

// Attribute = Name Eq AttValue
func attributeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pName), nil
	case 1:
		if ret == RReject {
			return nExitReject(), nil
		}
		return nCallProd(2, pEq), nil
	case 2:
		return nCallProd(3, pAttValue), nil
	case 3:
		if ret == RReject {
			return nErr(ErrExpectedAttValue), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: attributeProd: bad state")
}

// ETag = '</' Name S? '>'
func etagProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("</"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvEndTagStart, Bytes: []byte("</")}}, nil
	case 1:
		return nCallProd(2, pName), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nCallProd(3, pS), nil
	case 3:
		_, matched, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedEndTagEnd), nil
		}
		return next{tag: nYield, nextState: 4, event: Event{Kind: EvEndTagEnd, Bytes: []byte(">")}}, nil
	case 4:
		return nExitAccept(), nil
	}
	panic("xmlscan: etagProd: bad state")
}

// content = CharData? ((element | Reference | CDSect | PI | Comment) CharData?)*
// Each alternative is tried in turn; whichever Accepts triggers another
// optional CharData run and the loop repeats. When none match, content is
// done — the remaining bytes (an ETag) are left untouched for elementProd's
// own pETag call.
func contentProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pCharData), nil
	case 1:
		return nContinueTo(10), nil
	case 10:
		return nCallProd(11, pComment), nil
	case 11:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(12, pPI), nil
	case 12:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(13, pCDSect), nil
	case 13:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(14, pReference), nil
	case 14:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(15, pElement), nil
	case 15:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: contentProd: bad state")
}

// AttValue = '"' ([^<&"] | Reference)* '"' | "'" ([^<&'] | Reference)* "'"
func attValueProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		ok, q, handled := tryEitherQuote(buf)
		if !handled {
			return next{}, Indeterminate
		}
		if !ok {
			return nExitReject(), nil
		}
		if q == '\'' {
			return next{tag: nYield, nextState: 10, event: Event{Kind: EvAttValueStart, Bytes: []byte{'\''}}}, nil
		}
		return next{tag: nYield, nextState: 20, event: Event{Kind: EvAttValueStart, Bytes: []byte{'"'}}}, nil

	case 10, 20:
		quote := byte('\'')
		if state == 20 {
			quote = '"'
		}
		data, err := buf.ShiftCharsWhile(func(r rune) bool {
			if r == '<' || r == '&' || r == rune(quote) {
				return false
			}
			return sc.grammar.testChar(r)
		})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) > 0 {
			return next{tag: nYield, nextState: state, event: Event{Kind: EvAttValueChunk, Bytes: data}}, nil
		}
		_, closed, err := buf.ShiftKnownArray([]byte{quote})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if closed {
			return next{tag: nYield, nextState: 100, event: Event{Kind: EvAttValueEnd, Bytes: []byte{quote}}}, nil
		}
		return nCallProd(state+1, pReference), nil
	case 11, 21:
		if ret == RReject {
			return nErr(ErrExpectedAttValue), nil
		}
		return nContinueTo(state - 1), nil

	case 100:
		return nExitAccept(), nil
	}
	panic("xmlscan: attValueProd: bad state")
}
