package xmlscan

// prodID names a grammar production (a "Frame" in the glossary sense: a
// pair of state and production function on the scanner's call stack).
// Keeping this as an integer tag rather than a raw function pointer lets a
// single frame slice serve both grammars: the function dispatched for a
// given prodID is looked up through the active *grammar table, so only the
// productions that actually differ between XML 1.0 and 1.1 need two bodies.
type prodID uint8

const (
	pDocument prodID = iota
	pProlog
	pMisc
	pXMLDecl
	pVersionInfo
	pVersionNum
	pEq
	pS
	pName
	pCharData
	pComment
	pPI
	pPITarget
	pCDSect
	pCDStart
	pCData
	pCDEnd
	pDoctypedecl
	pDeclSep
	pIntSubset
	pMarkupdecl
	pExtSubset
	pExtSubsetDecl
	pSDDecl
	pElement
	pAttribute
	pETag
	pContent
	pElementdecl
	pAttlistDecl
	pAttDef
	pAttType
	pStringType
	pTokenizedType
	pEnumeratedType
	pNotationType
	pEnumeration
	pConditionalSect
	pIgnoreSectContents
	pCharRef
	pReference
	pEntityRef
	pPEReference
	pEntityDecl
	pExternalID
	pTextDecl
	pEncodingDecl
	pNotationDecl
	pAttValue
	pSystemLiteral
	pPubidLiteral
	pXMLDeclResume
)

// RetVal is the Accept/Reject status a production's Exit carries to its
// caller's next dispatch.
type RetVal uint8

const (
	RAccept RetVal = iota
	RReject
)

// nextTag discriminates the Next sum described in spec.md §4.2.
type nextTag uint8

const (
	nContinue nextTag = iota
	nCall
	nExit
	nYield
	nError
)

// controlKind distinguishes a Yield carrying a public Event from one
// carrying a private version-switch request (§4.4).
type controlKind uint8

const (
	ctrlNone controlKind = iota
	ctrlRebootTo10
	ctrlDowngradeSingleQuote
	ctrlDowngradeDoubleQuote
)

// Next is the return value of a production function for one dispatch.
type next struct {
	tag nextTag

	nextState   uint8 // Continue/Call/Yield: resumption state of the CURRENT frame
	callee      prodID
	calleeState uint8

	exitVal RetVal

	event   Event
	control controlKind

	err Error
}

func nContinueTo(state uint8) next { return next{tag: nContinue, nextState: state} }

func nCallProd(nextState uint8, callee prodID) next {
	return next{tag: nCall, nextState: nextState, callee: callee, calleeState: 0}
}

func nCallProdState(nextState uint8, callee prodID, calleeState uint8) next {
	return next{tag: nCall, nextState: nextState, callee: callee, calleeState: calleeState}
}

func nExitAccept() next { return next{tag: nExit, exitVal: RAccept} }
func nExitReject() next { return next{tag: nExit, exitVal: RReject} }

func nYieldEvent(nextState uint8, kind EventKind, bytes []byte) next {
	return next{tag: nYield, nextState: nextState, event: Event{Kind: kind, Bytes: bytes}}
}

func nYieldTokenized(nextState uint8, sub TokenizedTypeKind) next {
	return next{tag: nYield, nextState: nextState, event: Event{Kind: EvTokenizedType, Sub: sub}}
}

func nYieldControl(nextState uint8, ctrl controlKind) next {
	return next{tag: nYield, nextState: nextState, control: ctrl}
}

func nErr(kind ErrorKind) next { return next{tag: nError, err: Error{Kind: kind}} }

func nErrLiteral(lit string) next { return next{tag: nError, err: errLiteral(lit)} }

func nErrVal(e Error) next { return next{tag: nError, err: e} }

// productionFn is a pure function over the current buffer, this frame's
// state, and the ret_val carried from a just-exited callee. It returns the
// next engine action, or an error — which is always either Indeterminate
// (propagated as MoreInputRequired) or nil; a hard parse error is encoded
// as next{tag: nError}, never as the returned error.
type productionFn func(sc *Scanner, buf *StrBuf, state uint8, ret RetVal) (next, error)

// bufErr adapts a StrBuf method's (data, error) result into the (next, error)
// shape productions return: Indeterminate passes through as-is, any other
// error becomes a terminal nError, and the zero value means "keep going".
func bufErr(err error) (next, error, bool) {
	if err == nil {
		return next{}, nil, false
	}
	if err == Indeterminate {
		return next{}, Indeterminate, true
	}
	if e, ok := err.(Error); ok {
		return next{tag: nError, err: e}, nil, true
	}
	return next{tag: nError, err: Error{Kind: ErrUnknown}}, nil, true
}

// frame is one (state, production) pair on the scanner's call stack.
type frame struct {
	state uint8
	id    prodID
}
