package xmlscan

// CharRef = '&#' [0-9]+ ';' | '&#x' [0-9a-fA-F]+ ';'
// The decimal/hex digits are chunked the same way VersionNum's digit runs
// are, but the running value also accumulates onto the Scanner's scratch
// fields so the closing ';' can validate the code point (legal Char, no
// surrogate) before committing to Accept.
func charRefProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, hexMatched, err := buf.ShiftKnownArray([]byte("&#x"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if hexMatched {
			sc.charRefValue, sc.charRefDigits, sc.charRefOverflow = 0, 0, false
			return next{tag: nYield, nextState: 10, event: Event{Kind: EvCharRefHexadecimalStart, Bytes: []byte("&#x")}}, nil
		}
		_, decMatched, err := buf.ShiftKnownArray([]byte("&#"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if decMatched {
			sc.charRefValue, sc.charRefDigits, sc.charRefOverflow = 0, 0, false
			return next{tag: nYield, nextState: 20, event: Event{Kind: EvCharRefDecimalStart, Bytes: []byte("&#")}}, nil
		}
		return nExitReject(), nil

	case 10: // hex digit run
		data, err := buf.ShiftBytesWhile(isHexDigit)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nContinueTo(11), nil
		}
		sc.accumulateHexDigits(data)
		return next{tag: nYield, nextState: 10, event: Event{Kind: EvCharRefHexadecimalChunk, Bytes: data}}, nil
	case 11:
		if sc.charRefDigits == 0 {
			return nErr(ErrExpectedHexDigit), nil
		}
		return sc.finishCharRef(buf)

	case 20: // decimal digit run
		data, err := buf.ShiftBytesWhile(isDigit)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nContinueTo(21), nil
		}
		sc.accumulateDecimalDigits(data)
		return next{tag: nYield, nextState: 20, event: Event{Kind: EvCharRefDecimalChunk, Bytes: data}}, nil
	case 21:
		if sc.charRefDigits == 0 {
			return nErr(ErrExpectedDecimalDigit), nil
		}
		return sc.finishCharRef(buf)

	case 30:
		return nExitAccept(), nil
	}
	panic("xmlscan: charRefProd: bad state")
}

func (sc *Scanner) accumulateHexDigits(data []byte) {
	for _, b := range data {
		sc.charRefDigits++
		if sc.charRefOverflow {
			continue
		}
		var v uint32
		switch {
		case b >= '0' && b <= '9':
			v = uint32(b - '0')
		case b >= 'a' && b <= 'f':
			v = uint32(b-'a') + 10
		case b >= 'A' && b <= 'F':
			v = uint32(b-'A') + 10
		}
		if sc.charRefValue > 0x10FFFF {
			sc.charRefOverflow = true
			continue
		}
		sc.charRefValue = sc.charRefValue*16 + v
	}
}

func (sc *Scanner) accumulateDecimalDigits(data []byte) {
	for _, b := range data {
		sc.charRefDigits++
		if sc.charRefOverflow {
			continue
		}
		if sc.charRefValue > 0x10FFFF {
			sc.charRefOverflow = true
			continue
		}
		sc.charRefValue = sc.charRefValue*10 + uint32(b-'0')
	}
}

// finishCharRef matches the closing ';' and validates the accumulated code
// point against the active grammar's Char production before yielding
// CharRefEnd; an out-of-range or surrogate value is ErrInvalidCharRefValue
// rather than a silent pass-through.
func (sc *Scanner) finishCharRef(buf *StrBuf) (next, error) {
	_, matched, err := buf.ShiftKnownArray([]byte(";"))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if !matched {
		return nErrLiteral(";"), nil
	}
	if sc.charRefOverflow || sc.charRefValue > 0x10FFFF || !sc.grammar.testChar(rune(sc.charRefValue)) {
		return nErr(ErrInvalidCharRefValue), nil
	}
	return next{tag: nYield, nextState: 30, event: Event{Kind: EvCharRefEnd, Bytes: []byte(";")}}, nil
}

// Reference = EntityRef | CharRef
func referenceProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pCharRef), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pEntityRef), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: referenceProd: bad state")
}

// EntityRef = '&' Name ';'
func entityRefProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("&"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvEntityRefStart, Bytes: []byte("&")}}, nil
	case 1:
		return nCallProd(2, pName), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nContinueTo(3), nil
	case 3:
		_, matched, err := buf.ShiftKnownArray([]byte(";"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral(";"), nil
		}
		return next{tag: nYield, nextState: 4, event: Event{Kind: EvEntityRefEnd, Bytes: []byte(";")}}, nil
	case 4:
		return nExitAccept(), nil
	}
	panic("xmlscan: entityRefProd: bad state")
}

// PEReference = '%' Name ';'
func peReferenceProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("%"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvPEReferenceStart, Bytes: []byte("%")}}, nil
	case 1:
		return nCallProd(2, pName), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nContinueTo(3), nil
	case 3:
		_, matched, err := buf.ShiftKnownArray([]byte(";"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral(";"), nil
		}
		return next{tag: nYield, nextState: 4, event: Event{Kind: EvPEReferenceEnd, Bytes: []byte(";")}}, nil
	case 4:
		return nExitAccept(), nil
	}
	panic("xmlscan: peReferenceProd: bad state")
}
