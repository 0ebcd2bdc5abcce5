package xmlscan

// grammar holds the handful of productions that actually differ between
// XML 1.0 and 1.1 (§4.4, §9's "cyclic references between 1.0 and 1.1
// grammars... two separate tables that differ only at the override
// points"). Every other production is shared and looked up directly by
// prodID in Scanner.dispatch.
type grammar struct {
	testChar    func(rune) bool
	prolog      productionFn
	versionInfo productionFn
	versionNum  productionFn
}

var xml10Grammar = &grammar{
	testChar:    testChar10,
	prolog:      prologXML10,
	versionInfo: versionInfoXML10,
	versionNum:  versionNum10,
}

var xml11Grammar = &grammar{
	testChar:    testChar11,
	prolog:      prolog11,
	versionInfo: versionInfo11,
	versionNum:  versionNum11,
}

// Special resumption states used only when a downgrade pushes a fresh
// Xml 1.0 document frame mid-XMLDecl: the version literal's opening quote
// has already been consumed by the 1.1 VersionInfo, so Xml 1.0's document
// production must re-enter inside VersionNum at the right quote style
// instead of re-parsing "<?xml version=".
const (
	startAtVersionNumberSingleQuote uint8 = 200
	startAtVersionNumberDoubleQuote uint8 = 201
)

// ErrDocumentComplete is returned by Resume once the root document
// production has Accepted — the stack is empty and there is nothing further
// to scan. Callers that only care about a prefix of the document can ignore
// it and simply stop calling Resume.
type errDocumentComplete struct{}

func (errDocumentComplete) Error() string { return "document scan complete" }

var ErrDocumentComplete error = errDocumentComplete{}

// Scanner drives an XML grammar as an explicit call stack of resumable
// per-production state machines (§2, §4.2). It holds no reference to any
// StrBuf; a buffer is passed to each Resume call, so one Scanner only ever
// scans one logical byte stream but can be handed freshly-filled buffers
// across calls.
type Scanner struct {
	stack   []frame
	retVal  RetVal
	grammar *grammar
	cfg     Config
	stats   ScannerStats

	// charRefValue/charRefDigits/charRefOverflow are scratch accumulator
	// state for the production currently scanning a CharRef. A frame only
	// carries a state byte (§4.2), not arbitrary payload, so the running
	// numeric value of "&#123;"/"&#x7B;" lives here instead — safe because
	// CharRef never recurses into another CharRef.
	charRefValue    uint32
	charRefDigits   int
	charRefOverflow bool

	// parenDepth/ignoreDepth are scratch nesting counters for elementdecl's
	// contentspec skip and conditionalSect's IGNORE skip respectively — same
	// reasoning as the charRef fields above: each belongs to exactly one
	// in-flight production instance at a time.
	parenDepth  int
	ignoreDepth int
}

// ScannerStats tracks ambient metrics that aren't part of the wire protocol
// but help a caller tune Config.DepthLimit (§12 "Depth-limited recursion
// metrics", grounded on the original's pathological-nesting test).
type ScannerStats struct {
	maxDepth int
}

// MaxDepthReached returns the deepest the call stack has grown so far.
func (s ScannerStats) MaxDepthReached() int { return s.maxDepth }

// NewScanner creates a Scanner starting in the XML 1.1 grammar with the
// document production pushed at state 0, per §3's Scanner lifecycle.
func NewScanner(opts ...Option) *Scanner {
	return &Scanner{
		stack:   []frame{{state: 0, id: pDocument}},
		retVal:  RAccept,
		grammar: xml11Grammar,
		cfg:     newConfig(opts...),
	}
}

// Stats reports ambient scan metrics (§12).
func (sc *Scanner) Stats() ScannerStats { return sc.stats }

// Resume runs productions against buf until an Event is ready, more input
// is required, the document completes, or a fatal error occurs (§4.2's
// engine loop, steps 1-7).
func (sc *Scanner) Resume(buf *StrBuf) (Event, error) {
	buf.borrowCheckReleased(sc.cfg.tracer)

	for {
		if len(sc.stack) == 0 {
			return Event{}, ErrDocumentComplete
		}

		top := sc.stack[len(sc.stack)-1]
		n, err := sc.dispatch(top.id, buf, top.state, sc.retVal)
		if err != nil {
			if buf.IsAtOrigin() && buf.IsFull() {
				return Event{}, errKind(ErrBufferClogged)
			}
			return Event{}, MoreInputRequired
		}

		switch n.tag {
		case nContinue:
			sc.stack[len(sc.stack)-1].state = n.nextState

		case nCall:
			if len(sc.stack) >= sc.cfg.depthLimit {
				return Event{}, errKind(ErrDepthLimitExceeded)
			}
			sc.stack[len(sc.stack)-1].state = n.nextState
			sc.stack = append(sc.stack, frame{state: n.calleeState, id: n.callee})
			if len(sc.stack) > sc.stats.maxDepth {
				sc.stats.maxDepth = len(sc.stack)
			}
			sc.retVal = RAccept

		case nExit:
			sc.stack = sc.stack[:len(sc.stack)-1]
			sc.retVal = n.exitVal

		case nYield:
			sc.stack[len(sc.stack)-1].state = n.nextState
			switch n.control {
			case ctrlNone:
				buf.borrowOpen()
				return n.event, nil
			case ctrlRebootTo10:
				sc.grammar = xml10Grammar
				sc.stack = []frame{{state: 0, id: pDocument}}
				sc.retVal = RAccept
			case ctrlDowngradeSingleQuote:
				sc.grammar = xml10Grammar
				sc.stack = []frame{{state: startAtVersionNumberSingleQuote, id: pDocument}}
				sc.retVal = RAccept
			case ctrlDowngradeDoubleQuote:
				sc.grammar = xml10Grammar
				sc.stack = []frame{{state: startAtVersionNumberDoubleQuote, id: pDocument}}
				sc.retVal = RAccept
			}

		case nError:
			return Event{}, n.err
		}
	}
}

// dispatch looks up the production function for id, consulting the active
// grammar's override table first (prolog, VersionNum — the productions
// §4.4 names as differing between versions) and falling back to the shared
// table for everything else.
func (sc *Scanner) dispatch(id prodID, buf *StrBuf, state uint8, ret RetVal) (next, error) {
	switch id {
	case pProlog:
		return sc.grammar.prolog(sc, buf, state, ret)
	case pVersionInfo:
		return sc.grammar.versionInfo(sc, buf, state, ret)
	case pVersionNum:
		return sc.grammar.versionNum(sc, buf, state, ret)
	}
	fn, ok := sharedProductions[id]
	if !ok {
		panic("xmlscan: no production registered for prodID")
	}
	return fn(sc, buf, state, ret)
}
