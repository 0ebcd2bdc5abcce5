package xmlscan

// XMLDecl = '<?xml' VersionInfo EncodingDecl? SDDecl? S? '?>'
//
// EncodingDecl and SDDecl each formally start with a mandatory S of their
// own (S 'encoding' ... / S 'standalone' ...), but trying one, having it
// consume that S, then Reject on the keyword would leave the other unable
// to find its own leading S — a consume-then-reject violation (§4.3). So,
// mirroring the original's split into an "EncodingDecl/SDDecl minus initial
// S" shape, XMLDecl consumes one optional S itself before each keyword
// attempt and the two productions below assume it is already gone.
func xmlDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<?xml"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pVersionInfo), nil
	case 1:
		if ret == RReject {
			return nErr(ErrExpectedVersionInfo), nil
		}
		return nCallProd(2, pS), nil
	case 2:
		return nCallProd(3, pEncodingDecl), nil
	case 3:
		if ret == RAccept {
			return nCallProd(4, pS), nil
		}
		return nContinueTo(4), nil
	case 4:
		return nCallProd(5, pSDDecl), nil
	case 5:
		return nCallProd(6, pS), nil
	case 6:
		_, matched, err := buf.ShiftKnownArray([]byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedXMLDeclEnd), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: xmlDeclProd: bad state")
}

// TextDecl = '<?xml' VersionInfo? EncodingDecl S? '?>' — EncodingDecl is
// mandatory here (§12, matching the original's text_decl flag reuse of
// XMLDecl's shape), VersionInfo optional.
func textDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<?xml"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pVersionInfo), nil
	case 1:
		// VersionInfo is optional here, so its ret is ignored. A Reject may
		// already have consumed VersionInfo's leading S; that whitespace is
		// the same S the call below would otherwise consume.
		return nCallProd(2, pS), nil
	case 2:
		return nCallProd(3, pEncodingDecl), nil
	case 3:
		if ret == RReject {
			return nErr(ErrExpectedLiteral), nil
		}
		return nCallProd(4, pS), nil
	case 4:
		_, matched, err := buf.ShiftKnownArray([]byte("?>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedXMLDeclEnd), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: textDeclProd: bad state")
}

func isEncNameChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '_' || r == '-':
		return true
	}
	return false
}

// encodingDeclProd implements EncodingDecl minus its leading S (see
// xmlDeclProd's doc comment): 'encoding' Eq ('"' EncName '"' | "'" EncName "'").
func encodingDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("encoding"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pEq), nil
	case 1:
		ok, q, handled := tryEitherQuote(buf)
		if !handled {
			return next{}, Indeterminate
		}
		if !ok {
			return nErr(ErrExpectedQuote), nil
		}
		if q == '\'' {
			return nContinueTo(10), nil
		}
		return nContinueTo(20), nil
	case 10, 20:
		data, err := buf.ShiftCharsWhile(isEncNameChar)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) > 0 {
			return next{tag: nYield, nextState: state, event: Event{Kind: EvEncodingNameChunk, Bytes: data}}, nil
		}
		closing := byte('\'')
		if state == 20 {
			closing = '"'
		}
		_, matched, err := buf.ShiftKnownArray([]byte{closing})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedQuote), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: encodingDeclProd: bad state")
}

// tryEitherQuote consumes a single quote byte (either style) if present.
// Returns (matched, quoteByte, true) on a definite outcome, or
// (false, 0, false) when more input is needed (caller must propagate
// Indeterminate itself, since this helper has no error channel of its own).
func tryEitherQuote(buf *StrBuf) (matched bool, quote byte, handled bool) {
	data, m, err := buf.ShiftKnownArray([]byte{'\''})
	if err == Indeterminate {
		return false, 0, false
	}
	if m {
		_ = data
		return true, '\'', true
	}
	data, m, err = buf.ShiftKnownArray([]byte{'"'})
	if err == Indeterminate {
		return false, 0, false
	}
	if m {
		_ = data
		return true, '"', true
	}
	return false, 0, true
}

// sddeclProd implements SDDecl minus its leading S:
// 'standalone' Eq (("'" ('yes'|'no') "'") | ('"' ('yes'|'no') '"'))
func sddeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("standalone"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvSDDeclStart, Bytes: []byte("standalone")}}, nil
	case 1:
		return nCallProd(2, pEq), nil
	case 2:
		ok, q, handled := tryEitherQuote(buf)
		if !handled {
			return next{}, Indeterminate
		}
		if !ok {
			return nErr(ErrExpectedQuote), nil
		}
		if q == '\'' {
			return nContinueTo(10), nil
		}
		return nContinueTo(20), nil
	case 10, 20:
		_, matched, err := buf.ShiftKnownArray([]byte("yes"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return next{tag: nYield, nextState: state + 1, event: Event{Kind: EvSDYes, Bytes: []byte("yes")}}, nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("no"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("yes|no"), nil
		}
		return next{tag: nYield, nextState: state + 1, event: Event{Kind: EvSDNo, Bytes: []byte("no")}}, nil
	case 11, 21:
		closing := byte('\'')
		if state == 21 {
			closing = '"'
		}
		_, matched, err := buf.ShiftKnownArray([]byte{closing})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedQuote), nil
		}
		return next{tag: nYield, nextState: 100, event: Event{Kind: EvSDDeclEnd, Bytes: []byte{closing}}}, nil
	case 100:
		return nExitAccept(), nil
	}
	panic("xmlscan: sddeclProd: bad state")
}

// SystemLiteral = ('"' [^"]* '"') | ("'" [^']* "'"), streamed as chunks.
func systemLiteralProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	return quotedCharDataLike(sc, buf, state, EvSystemLiteralChunk)
}

// PubidLiteral = ('"' PubidChar* '"') | ("'" (PubidChar - "'")* "'")
func pubidLiteralProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
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
			return nContinueTo(10), nil
		}
		return nContinueTo(20), nil
	case 10, 20:
		excludeQuote := byte('\'')
		if state == 20 {
			excludeQuote = '"'
		}
		data, err := buf.ShiftCharsWhile(func(r rune) bool {
			return isPubidChar(r) && byte(r) != excludeQuote
		})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) > 0 {
			return next{tag: nYield, nextState: state, event: Event{Kind: EvPubidLiteralChunk, Bytes: data}}, nil
		}
		_, matched, err := buf.ShiftKnownArray([]byte{excludeQuote})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedPubidLiteral), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: pubidLiteralProd: bad state")
}

// quotedCharDataLike is shared by SystemLiteral-style productions: parse an
// opening quote, stream everything up to the matching closing quote as
// chunks of the given kind.
func quotedCharDataLike(sc *Scanner, buf *StrBuf, state uint8, kind EventKind) (next, error) {
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
			return nContinueTo(10), nil
		}
		return nContinueTo(20), nil
	case 10, 20:
		excludeQuote := byte('\'')
		if state == 20 {
			excludeQuote = '"'
		}
		data, err := buf.ShiftCharsWhile(func(r rune) bool {
			return sc.grammar.testChar(r) && r != rune(excludeQuote)
		})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) > 0 {
			return next{tag: nYield, nextState: state, event: Event{Kind: kind, Bytes: data}}, nil
		}
		_, matched, err := buf.ShiftKnownArray([]byte{excludeQuote})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedSystemLiteral), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: quotedCharDataLike: bad state")
}

// ExternalID = 'SYSTEM' S SystemLiteral | 'PUBLIC' S PubidLiteral S SystemLiteral
func externalIDProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("SYSTEM"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nCallProd(1, pS), nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("PUBLIC"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nCallProd(10, pS), nil
		}
		return nExitReject(), nil
	case 1:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(2, pSystemLiteral), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedSystemLiteral), nil
		}
		return nExitAccept(), nil
	case 10:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(11, pPubidLiteral), nil
	case 11:
		if ret == RReject {
			return nErr(ErrExpectedPubidLiteral), nil
		}
		return nCallProd(12, pS), nil
	case 12:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(13, pSystemLiteral), nil
	case 13:
		if ret == RReject {
			return nErr(ErrExpectedSystemLiteral), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: externalIDProd: bad state")
}

// NotationDecl = '<!NOTATION' S Name S (ExternalID | PublicID) S? '>'
// Only the ExternalID form is accepted: a bare PublicID ('PUBLIC' S
// PubidLiteral with no SystemLiteral after it) fails inside ExternalID.
func notationDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!NOTATION"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvNotationDeclStart, Bytes: []byte("<!NOTATION")}}, nil
	case 1:
		return nCallProd(2, pS), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(3, pName), nil
	case 3:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nCallProd(4, pS), nil
	case 4:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(5, pExternalID), nil
	case 5:
		if ret == RReject {
			return nErr(ErrExpectedSystemOrPublic), nil
		}
		return nCallProd(6, pS), nil
	case 6:
		_, matched, err := buf.ShiftKnownArray([]byte{'>'})
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedNotationDeclEnd), nil
		}
		return next{tag: nYield, nextState: 7, event: Event{Kind: EvNotationDeclEnd, Bytes: []byte{'>'}}}, nil
	case 7:
		return nExitAccept(), nil
	}
	panic("xmlscan: notationDeclProd: bad state")
}
