package xmlscan

// prologXML10 = XMLDecl? Misc* (doctypedecl Misc*)?
func prologXML10(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pXMLDecl), nil
	case 1:
		// XMLDecl is optional in 1.0; its ret is ignored either way.
		return nContinueTo(prologAfterXMLDeclState), nil
	}
	return prologTail(sc, buf, state, ret)
}

// prolog11 = XMLDecl Misc* (doctypedecl Misc*)? — XMLDecl is mandatory in
// the 1.1 grammar itself, but input that never begins with "<?xml" at all
// is not a 1.1 document missing its declaration — it is an XML 1.0 document
// with no XMLDecl, which 1.0 permits (prologXML10 above). xmlDeclProd only
// Exits Reject from its very first state, before consuming anything, so a
// Reject here always means "no bytes consumed, <?xml is definitely absent"
// (any later failure inside XMLDecl itself surfaces as a hard error instead
// of a Reject). That is exactly RebootToVersion1_0's trigger (§4.4): clear
// the stack, switch grammars, and let XML 1.0's prolog try again from state 0.
func prolog11(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pXMLDecl), nil
	case 1:
		if ret == RReject {
			return nYieldControl(0, ctrlRebootTo10), nil
		}
		return nContinueTo(prologAfterXMLDeclState), nil
	}
	return prologTail(sc, buf, state, ret)
}

// prologTail is the Misc* (doctypedecl Misc*)? shape shared by both grammar
// versions, entered at prologAfterXMLDeclState — the same state a downgrade
// re-entry jumps to (docProd), so both variants must keep this numbering
// identical.
func prologTail(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case prologAfterXMLDeclState: // 2
		return nCallProd(3, pMisc), nil
	case 3:
		if ret == RReject {
			return nContinueTo(4), nil
		}
		return nCallProd(3, pMisc), nil
	case 4:
		return nCallProd(5, pDoctypedecl), nil
	case 5:
		if ret == RReject {
			return nExitAccept(), nil
		}
		return nCallProd(6, pMisc), nil
	case 6:
		if ret == RReject {
			return nExitAccept(), nil
		}
		return nCallProd(6, pMisc), nil
	}
	panic("xmlscan: prologTail: bad state")
}

// versionInfoImpl holds the VersionInfo state machine common to both
// grammars: S 'version' Eq ("'" VersionNum "'" | '"' VersionNum '"'). The two
// grammars differ only in what happens when VersionNum rejects — XML 1.0
// treats it as a hard unsupported-version error, 1.1 yields a downgrade
// control event instead (§4.4) — so that single branch is parameterized.
func versionInfoImpl(sc *Scanner, buf *StrBuf, state uint8, ret RetVal, onVersionNumReject func(singleQuote bool) (next, error)) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pS), nil
	case 1:
		if ret == RReject {
			return nExitReject(), nil
		}
		_, matched, err := buf.ShiftKnownArray([]byte("version"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
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
			return nCallProdState(3, pVersionNum, 0), nil
		}
		return nCallProdState(4, pVersionNum, 0), nil
	case 3, 4:
		if ret == RReject {
			return onVersionNumReject(state == 3)
		}
		closing := byte('\'')
		if state == 4 {
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
	panic("xmlscan: versionInfoImpl: bad state")
}

func versionInfoXML10(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	return versionInfoImpl(sc, buf, state, ret, func(singleQuote bool) (next, error) {
		return nErr(ErrUnsupportedVersion), nil
	})
}

func versionInfo11(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	return versionInfoImpl(sc, buf, state, ret, func(singleQuote bool) (next, error) {
		if singleQuote {
			return nYieldControl(3, ctrlDowngradeSingleQuote), nil
		}
		return nYieldControl(4, ctrlDowngradeDoubleQuote), nil
	})
}

// versionNum10 = '1.' [0-9]+, chunked: the literal prefix and each run of
// digits are separate VersionChunk events, matching the two-chunk pattern a
// chunked input naturally produces when digits arrive across buffer fills.
func versionNum10(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("1."))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nYieldEvent(1, EvVersionChunk, []byte("1.")), nil
	case 1:
		data, err := buf.ShiftBytesWhile(isDigit)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nExitReject(), nil
		}
		return nYieldEvent(2, EvVersionChunk, data), nil
	case 2:
		data, err := buf.ShiftBytesWhile(isDigit)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nExitAccept(), nil
		}
		return nYieldEvent(2, EvVersionChunk, data), nil
	}
	panic("xmlscan: versionNum10: bad state")
}

// versionNum11 requires the exact literal "1.1" (§9: only 1.1 itself is
// accepted by the 1.1 grammar; anything else downgrades), so it never needs
// to chunk.
func versionNum11(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		matched, err := buf.PeekEquals([]byte("1.1"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		// "1.1" followed by another digit (e.g. "1.12345") is a different
		// version number and downgrades like any other.
		filled := buf.Filled()
		if len(filled) < 4 {
			return next{}, Indeterminate
		}
		if isDigit(filled[3]) {
			return nExitReject(), nil
		}
		buf.shiftFilled(3)
		return nYieldEvent(1, EvVersionChunk, []byte("1.1")), nil
	case 1:
		return nExitAccept(), nil
	}
	panic("xmlscan: versionNum11: bad state")
}
