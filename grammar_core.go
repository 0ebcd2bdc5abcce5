package xmlscan

// prologAfterXMLDeclState is the state at which both prolog variants enter
// their shared "Misc* (doctypedecl Misc*)?" tail, right after XMLDecl (or
// its absence, in 1.0) has been settled. document's downgrade re-entry
// states jump straight into pProlog at this state, skipping the part of
// XMLDecl that xmlDeclResume has already replayed.
const prologAfterXMLDeclState uint8 = 2

// document = prolog element Misc*
// Two dedicated re-entry states (startAtVersionNumberSingleQuote/Double)
// let a downgrade resume mid-XMLDecl without re-parsing the already
// consumed "<?xml version=" prefix (§4.4).
func docProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pProlog), nil
	case 1:
		return nCallProd(2, pElement), nil
	case 2:
		return nCallProd(3, pMisc), nil
	case 3:
		if ret == RReject {
			return nExitAccept(), nil
		}
		return nCallProd(3, pMisc), nil

	case startAtVersionNumberSingleQuote:
		return nCallProdState(50, pXMLDeclResume, 0), nil
	case startAtVersionNumberDoubleQuote:
		return nCallProdState(50, pXMLDeclResume, 1), nil
	case 50:
		return nCallProdState(1, pProlog, prologAfterXMLDeclState), nil
	}
	panic("xmlscan: docProd: bad state")
}

// pXMLDeclResume picks VersionNum(1.0) up mid-literal after a downgrade,
// then consumes the closing quote and the rest of the XML declaration
// (EncodingDecl?, SDDecl?, S*, "?>"), matching the prefix VersionInfo(1.1)
// had already consumed before it detected a non-"1.1" version token.
func xmlDeclResume(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0: // single-quote entry
		return nCallProdState(2, pVersionNum, 0), nil
	case 1: // double-quote entry
		return nCallProdState(3, pVersionNum, 0), nil
	case 2:
		if ret == RReject {
			return nErr(ErrUnsupportedVersion), nil
		}
		return nContinueTo(10), nil
	case 3:
		if ret == RReject {
			return nErr(ErrUnsupportedVersion), nil
		}
		return nContinueTo(11), nil
	case 10:
		data, matched, err := buf.ShiftKnownArray([]byte{'\''})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("'"), nil
		}
		_ = data
		return nContinueTo(20), nil
	case 11:
		data, matched, err := buf.ShiftKnownArray([]byte{'"'})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("\""), nil
		}
		_ = data
		return nContinueTo(20), nil
	case 20:
		return nCallProd(22, pS), nil
	case 22:
		return nCallProd(21, pEncodingDecl), nil
	case 21:
		if ret == RAccept {
			return nCallProd(30, pS), nil
		}
		return nContinueTo(30), nil
	case 30:
		return nCallProd(31, pSDDecl), nil
	case 31:
		return nContinueTo(40), nil
	case 40:
		return nCallProd(41, pS), nil
	case 41:
		return nContinueTo(42), nil
	case 42:
		data, matched, err := buf.ShiftKnownArray([]byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrVal(errLiteral("?>")), nil
		}
		_ = data
		return nExitAccept(), nil
	}
	panic("xmlscan: xmlDeclResume: bad state")
}

// S = whitespace+. Productions needing mandatory whitespace Exit(Reject)
// when the buffer does not start with whitespace so callers can raise the
// right ErrExpectedWhitespace themselves.
func sProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	data, err := buf.ShiftCharsWhile(isWhitespace)
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if len(data) == 0 {
		return nExitReject(), nil
	}
	return nExitAccept(), nil
}

// Name = NameStartChar NameChar*, chunked via NameChunk events the same way
// CharData/Comment chunk their unbounded content.
func nameProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		data, err := buf.ShiftCharsStartWhile(isNameStartChar, isNameChar)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvNameChunk, Bytes: data}}, nil
	case 1:
		data, err := buf.ShiftCharsWhile(isNameChar)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nExitAccept(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvNameChunk, Bytes: data}}, nil
	}
	panic("xmlscan: nameProd: bad state")
}

// CharData = any run of Char not containing '<', '&', or the literal ']]>'.
func charDataProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	grammar := sc.grammar
	isCharDataChar := func(r rune) bool {
		if r == '<' || r == '&' {
			return false
		}
		return grammar.testChar(r)
	}
	data, err := buf.ShiftCharsWhileDelimited(isCharDataChar, []byte("]]>"))
	if n, e, handled := bufErr(err); handled {
		return n, e
	}
	if len(data) == 0 {
		return nExitReject(), nil
	}
	return next{tag: nYield, nextState: 0, event: Event{Kind: EvCharDataChunk, Bytes: data}}, nil
}

// Eq = S? '=' S?
func eqProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pS), nil
	case 1:
		data, matched, err := buf.ShiftKnownArray([]byte{'='})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedEq), nil
		}
		_ = data
		return nCallProd(2, pS), nil
	case 2:
		return nExitAccept(), nil
	}
	panic("xmlscan: eqProd: bad state")
}

// Misc = Comment | PI | S, tried in that order; the first to Accept wins,
// Reject from all three means "no more Misc here" (Exit Reject, not fatal —
// document and prolog both treat that as "move on").
func miscProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pComment), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pPI), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(3, pS), nil
	case 3:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: miscProd: bad state")
}
