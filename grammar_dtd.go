package xmlscan

// doctypedecl = '<!DOCTYPE' S Name (S ExternalID)? S? ('[' intSubset ']' S?)? '>'
func doctypedeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!DOCTYPE"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvDoctypedeclStart, Bytes: []byte("<!DOCTYPE")}}, nil
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
			return nContinueTo(6), nil
		}
		return nCallProd(5, pExternalID), nil
	case 5:
		// A Reject here means the S belonged to the trailing S?, not an
		// ExternalID — harmless either way since S doesn't consume on Reject.
		return nContinueTo(6), nil
	case 6:
		return nCallProd(7, pS), nil
	case 7:
		return nContinueTo(8), nil
	case 8:
		_, matched, err := buf.ShiftKnownArray([]byte("["))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nContinueTo(12), nil
		}
		return nCallProd(9, pIntSubset), nil
	case 9:
		_, matched, err := buf.ShiftKnownArray([]byte("]"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedIntSubset), nil
		}
		return nCallProd(10, pS), nil
	case 10:
		return nContinueTo(12), nil
	case 12:
		_, matched, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedDoctypedeclEnd), nil
		}
		return next{tag: nYield, nextState: 13, event: Event{Kind: EvDoctypedeclEnd, Bytes: []byte(">")}}, nil
	case 13:
		return nExitAccept(), nil
	}
	panic("xmlscan: doctypedeclProd: bad state")
}

// DeclSep = PEReference | S
func declSepProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pPEReference), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pS), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: declSepProd: bad state")
}

// intSubset = (markupdecl | DeclSep)*
func intSubsetProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pMarkupdecl), nil
	case 1:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(2, pDeclSep), nil
	case 2:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: intSubsetProd: bad state")
}

// markupdecl = elementdecl | AttlistDecl | EntityDecl | NotationDecl | PI | Comment
func markupdeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pElementdecl), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pAttlistDecl), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(3, pEntityDecl), nil
	case 3:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(4, pNotationDecl), nil
	case 4:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(5, pPI), nil
	case 5:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(6, pComment), nil
	case 6:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: markupdeclProd: bad state")
}

// extSubset = TextDecl? extSubsetDecl
func extSubsetProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pTextDecl), nil
	case 1:
		return nContinueTo(2), nil
	case 2:
		return nCallProd(3, pExtSubsetDecl), nil
	case 3:
		if ret == RReject {
			return nExitReject(), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: extSubsetProd: bad state")
}

// extSubsetDecl = (markupdecl | conditionalSect | DeclSep)*
func extSubsetDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pMarkupdecl), nil
	case 1:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(2, pConditionalSect), nil
	case 2:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nCallProd(3, pDeclSep), nil
	case 3:
		if ret == RAccept {
			return nContinueTo(0), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: extSubsetDeclProd: bad state")
}

// elementdecl = '<!ELEMENT' S Name S contentspec S? '>'
// contentspec (EMPTY | ANY | Mixed | children) is accepted structurally: the
// two keyword forms are matched directly, and a parenthesized Mixed/children
// group is skipped as a balanced-paren span via sc.parenDepth rather than
// parsed token-by-token — this scanner reports lexical boundaries, not the
// internal shape of a content model (see DESIGN.md).
func elementdeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!ELEMENT"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvElementDeclStart, Bytes: []byte("<!ELEMENT")}}, nil
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
		return nContinueTo(5), nil
	case 5:
		_, matched, err := buf.ShiftKnownArray([]byte("EMPTY"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nContinueTo(8), nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("ANY"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nContinueTo(8), nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("("))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedContentspec), nil
		}
		sc.parenDepth = 1
		return nContinueTo(6), nil
	case 6:
		if sc.parenDepth == 0 {
			return nContinueTo(8), nil
		}
		_, open, err := buf.ShiftKnownArray([]byte("("))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if open {
			sc.parenDepth++
			return nContinueTo(6), nil
		}
		_, closeP, err := buf.ShiftKnownArray([]byte(")"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if closeP {
			sc.parenDepth--
			return nContinueTo(6), nil
		}
		_, _, err = buf.ShiftArrayTestFull(1, func([]byte) bool { return true })
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		return nContinueTo(6), nil
	case 8:
		return nCallProd(9, pS), nil
	case 9:
		return nContinueTo(10), nil
	case 10:
		_, matched, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedElementDeclEnd), nil
		}
		return next{tag: nYield, nextState: 11, event: Event{Kind: EvElementDeclEnd, Bytes: []byte(">")}}, nil
	case 11:
		return nExitAccept(), nil
	}
	panic("xmlscan: elementdeclProd: bad state")
}

// AttlistDecl = '<!ATTLIST' S Name AttDef* S? '>'
func attlistDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!ATTLIST"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvAttlistDeclStart, Bytes: []byte("<!ATTLIST")}}, nil
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
		return nContinueTo(4), nil
	case 4:
		return nCallProd(5, pAttDef), nil
	case 5:
		if ret == RAccept {
			return nContinueTo(4), nil
		}
		return nCallProd(6, pS), nil
	case 6:
		_, matched, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedAttlistEnd), nil
		}
		return next{tag: nYield, nextState: 7, event: Event{Kind: EvAttlistDeclEnd, Bytes: []byte(">")}}, nil
	case 7:
		return nExitAccept(), nil
	}
	panic("xmlscan: attlistDeclProd: bad state")
}

// AttDef = S Name S AttType S DefaultDecl
func attDefProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pS), nil
	case 1:
		if ret == RReject {
			return nExitReject(), nil
		}
		data, err := buf.ShiftCharsStartWhile(isNameStartChar, isNameChar)
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if len(data) == 0 {
			return nErr(ErrExpectedName), nil
		}
		return next{tag: nYield, nextState: 2, event: Event{Kind: EvAttDefNameChunk, Bytes: data}}, nil
	case 2:
		return nCallProd(3, pS), nil
	case 3:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(4, pAttType), nil
	case 4:
		if ret == RReject {
			return nErr(ErrExpectedAttType), nil
		}
		return nCallProd(5, pS), nil
	case 5:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nContinueTo(6), nil
	case 6:
		_, matched, err := buf.ShiftKnownArray([]byte("#REQUIRED"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nExitAccept(), nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("#IMPLIED"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nExitAccept(), nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("#FIXED"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return nCallProd(7, pS), nil
		}
		return nContinueTo(7), nil
	case 7:
		return nCallProd(8, pAttValue), nil
	case 8:
		if ret == RReject {
			return nErr(ErrExpectedAttValue), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: attDefProd: bad state")
}

// AttType = StringType | TokenizedType | EnumeratedType
func attTypeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pStringType), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pTokenizedType), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(3, pEnumeratedType), nil
	case 3:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: attTypeProd: bad state")
}

// StringType = 'CDATA'
func stringTypeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("CDATA"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvStringType, Bytes: []byte("CDATA")}}, nil
	case 1:
		return nExitAccept(), nil
	}
	panic("xmlscan: stringTypeProd: bad state")
}

// TokenizedType = 'ID' | 'IDREF' | 'IDREFS' | 'ENTITY' | 'ENTITIES' |
// 'NMTOKEN' | 'NMTOKENS'. Tried longest-overlapping-prefix-first (IDREFS
// before IDREF before ID; NMTOKENS before NMTOKEN) since ShiftKnownArray
// matches a literal prefix without a trailing word-boundary check.
func tokenizedTypeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	candidates := []struct {
		lit string
		sub TokenizedTypeKind
	}{
		{"IDREFS", TokIDREFS},
		{"IDREF", TokIDREF},
		{"ID", TokID},
		{"ENTITIES", TokENTITIES},
		{"ENTITY", TokENTITY},
		{"NMTOKENS", TokNMTOKENS},
		{"NMTOKEN", TokNMTOKEN},
	}
	switch state {
	case 0:
		for _, c := range candidates {
			_, matched, err := buf.ShiftKnownArray([]byte(c.lit))
			if n, e, handled := bufErr(err); handled {
				return n, e
			}
			if matched {
				return next{tag: nYield, nextState: 1, event: Event{Kind: EvTokenizedType, Sub: c.sub}}, nil
			}
		}
		return nExitReject(), nil
	case 1:
		return nExitAccept(), nil
	}
	panic("xmlscan: tokenizedTypeProd: bad state")
}

// EnumeratedType = NotationType | Enumeration
func enumeratedTypeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		return nCallProd(1, pNotationType), nil
	case 1:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nCallProd(2, pEnumeration), nil
	case 2:
		if ret == RAccept {
			return nExitAccept(), nil
		}
		return nExitReject(), nil
	}
	panic("xmlscan: enumeratedTypeProd: bad state")
}

// NotationType = 'NOTATION' S '(' S? Name (S? '|' S? Name)* S? ')'
func notationTypeProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("NOTATION"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pS), nil
	case 1:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nContinueTo(2), nil
	case 2:
		_, matched, err := buf.ShiftKnownArray([]byte("("))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("("), nil
		}
		return nCallProd(3, pS), nil
	case 3:
		return nContinueTo(4), nil
	case 4:
		return nCallProd(5, pName), nil
	case 5:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nCallProd(6, pS), nil
	case 6:
		return nContinueTo(7), nil
	case 7:
		_, matched, err := buf.ShiftKnownArray([]byte("|"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nContinueTo(8), nil
		}
		return nCallProd(9, pS), nil
	case 9:
		return nContinueTo(4), nil
	case 8:
		_, matched, err := buf.ShiftKnownArray([]byte(")"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral(")"), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: notationTypeProd: bad state")
}

// Enumeration = '(' S? Nmtoken (S? '|' S? Nmtoken)* S? ')'. Nmtoken is
// approximated with Name (NameChar+ without the NameStartChar restriction is
// a strict superset in practice for the identifiers this distinguishes —
// see DESIGN.md).
func enumerationProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("("))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pS), nil
	case 1:
		return nContinueTo(2), nil
	case 2:
		return nCallProd(3, pName), nil
	case 3:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nCallProd(4, pS), nil
	case 4:
		return nContinueTo(5), nil
	case 5:
		_, matched, err := buf.ShiftKnownArray([]byte("|"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nContinueTo(6), nil
		}
		return nCallProd(7, pS), nil
	case 7:
		return nContinueTo(2), nil
	case 6:
		_, matched, err := buf.ShiftKnownArray([]byte(")"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral(")"), nil
		}
		return nExitAccept(), nil
	}
	panic("xmlscan: enumerationProd: bad state")
}

// EntityDecl covers both GEDecl and PEDecl:
// '<!ENTITY' S '%'? S? Name S (EntityValue | (ExternalID NDataDecl?)) S? '>'
// EntityValue is approximated as SystemLiteral-shaped quoted text (embedded
// '&'/'%' references are not separately tokenized — see DESIGN.md).
// NDataDecl is not recognized: an 'NDATA' clause after the ExternalID makes
// the declaration fail with ErrExpectedEntityDeclEnd.
func entityDeclProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!ENTITY"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return next{tag: nYield, nextState: 1, event: Event{Kind: EvEntityDeclStart, Bytes: []byte("<!ENTITY")}}, nil
	case 1:
		return nCallProd(2, pS), nil
	case 2:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nContinueTo(3), nil
	case 3:
		_, _, err := buf.ShiftKnownArray([]byte("%"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		return nCallProd(4, pS), nil
	case 4:
		return nContinueTo(5), nil
	case 5:
		return nCallProd(6, pName), nil
	case 6:
		if ret == RReject {
			return nErr(ErrExpectedName), nil
		}
		return nCallProd(7, pS), nil
	case 7:
		if ret == RReject {
			return nErr(ErrExpectedWhitespace), nil
		}
		return nCallProd(8, pExternalID), nil
	case 8:
		if ret == RAccept {
			return nContinueTo(11), nil
		}
		return nCallProd(9, pSystemLiteral), nil
	case 9:
		if ret == RReject {
			return nErr(ErrExpectedSystemLiteral), nil
		}
		return nContinueTo(11), nil
	case 11:
		return nCallProd(12, pS), nil
	case 12:
		return nContinueTo(13), nil
	case 13:
		_, matched, err := buf.ShiftKnownArray([]byte(">"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedEntityDeclEnd), nil
		}
		return next{tag: nYield, nextState: 14, event: Event{Kind: EvEntityDeclEnd, Bytes: []byte(">")}}, nil
	case 14:
		return nExitAccept(), nil
	}
	panic("xmlscan: entityDeclProd: bad state")
}

// conditionalSect = includeSect | ignoreSect
// includeSect = '<![' S? 'INCLUDE' S? '[' extSubsetDecl ']]>'
// ignoreSect  = '<![' S? 'IGNORE' S? '[' ignoreSectContents* ']]>'
func conditionalSectProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		_, matched, err := buf.ShiftKnownArray([]byte("<!["))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nExitReject(), nil
		}
		return nCallProd(1, pS), nil
	case 1:
		return nContinueTo(2), nil
	case 2:
		_, matched, err := buf.ShiftKnownArray([]byte("INCLUDE"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return next{tag: nYield, nextState: 10, event: Event{Kind: EvConditionalIncludeStart, Bytes: []byte("INCLUDE")}}, nil
		}
		_, matched, err = buf.ShiftKnownArray([]byte("IGNORE"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if matched {
			return next{tag: nYield, nextState: 20, event: Event{Kind: EvConditionalIgnoreStart, Bytes: []byte("IGNORE")}}, nil
		}
		return nErrLiteral("INCLUDE|IGNORE"), nil

	case 10:
		return nCallProd(11, pS), nil
	case 11:
		return nContinueTo(12), nil
	case 12:
		_, matched, err := buf.ShiftKnownArray([]byte("["))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("["), nil
		}
		return nCallProd(13, pExtSubsetDecl), nil
	case 13:
		return nContinueTo(30), nil

	case 20:
		return nCallProd(21, pS), nil
	case 21:
		return nContinueTo(22), nil
	case 22:
		_, matched, err := buf.ShiftKnownArray([]byte("["))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErrLiteral("["), nil
		}
		return nCallProd(23, pIgnoreSectContents), nil
	case 23:
		return nContinueTo(30), nil

	case 30:
		_, matched, err := buf.ShiftKnownArray([]byte("]]>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if !matched {
			return nErr(ErrExpectedConditionalSectEnd), nil
		}
		return next{tag: nYield, nextState: 31, event: Event{Kind: EvConditionalEnd, Bytes: []byte("]]>")}}, nil
	case 31:
		return nExitAccept(), nil
	}
	panic("xmlscan: conditionalSectProd: bad state")
}

// ignoreSectContents scans the body of an ignoreSect up to (not including)
// its closing ']]>', tracking nested '<![' ... ']]>' pairs via sc.ignoreDepth
// rather than recursing — the grammar's own recursive Ignore/ignoreSectContents
// shape collapses to an iterative depth counter since none of the nested
// bytes are otherwise interpreted.
func ignoreSectContentsProd(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch state {
	case 0:
		sc.ignoreDepth = 0
		return nContinueTo(1), nil
	case 1:
		atEnd, err := buf.PeekEquals([]byte("]]>"))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if atEnd {
			if sc.ignoreDepth == 0 {
				return nExitAccept(), nil
			}
			_, _, err := buf.ShiftKnownArray([]byte("]]>"))
			if n, e, handled := bufErr(err); handled {
				return n, e
			}
			sc.ignoreDepth--
			return nContinueTo(1), nil
		}
		_, opened, err := buf.ShiftKnownArray([]byte("<!["))
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		if opened {
			sc.ignoreDepth++
			return nContinueTo(1), nil
		}
		_, _, err = buf.ShiftArrayTestFull(1, func([]byte) bool { return true })
		if n, e, handled := bufErr(err); handled {
			return n, e
		}
		return nContinueTo(1), nil
	}
	panic("xmlscan: ignoreSectContentsProd: bad state")
}
