package strmatch

// Op is an edit operation on a result.
type Op uint8

const (
	OpBefore  Op = iota // insert text before each match
	OpAfter             // insert text after each match
	OpReplace           // replace each match
	OpRemove            // remove each match
)

func (op Op) String() string {
	switch op {
	case OpBefore:
		return "before"
	case OpAfter:
		return "after"
	case OpReplace:
		return "replace"
	case OpRemove:
		return "remove"
	}
	return "unknown"
}

// Splice describes a single change of a result's text, performed for one
// match record during an edit: Deleted has been cut out at byte position At,
// then Inserted has been put there. At refers to the text immediately
// before the splice, i.e. after all splices preceding it.
type Splice struct {
	Op       Op
	Record   int // index of the match record
	At       int
	Deleted  string
	Inserted string
}

// Observer is notified about every splice of a result's text.
//
// Spliced is called while the result is locked; observers must not call
// methods of the result.
type Observer interface {
	Spliced(s Splice)
}

// Before inserts text in front of every match. Match records move
// behind the inserted text.
func (r *Result) Before(text string) *Result {
	return r.edit(OpBefore, text)
}

// After inserts text after every match. Match records stay in place.
func (r *Result) After(text string) *Result {
	return r.edit(OpAfter, text)
}

// Replace replaces every match with text. Match records cover the
// inserted text afterwards. For zero-width match records (e.g., after Remove)
// this is an insertion, thus
//
//	r.Remove().Replace(x)
//
// results in the same text and records as r.Replace(x).
func (r *Result) Replace(text string) *Result {
	return r.edit(OpReplace, text)
}

// Remove removes every match. Match records collapse to zero width at the
// position where the match has been.
func (r *Result) Remove() *Result {
	return r.edit(OpRemove, "")
}

// edit applies op to all match records, in order. Each splice shifts the
// text following it, so delta accumulates the length changes of all splices
// so far and is added to every record before it is processed.
func (r *Result) edit(op Op, text string) *Result {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.offsets) == 0 {
		return r
	}
	sp := newSplicer(r.buf, len(r.offsets)*len(text))
	delta, floor := 0, 0
	for i := range r.offsets {
		rec := &r.offsets[i]
		start, end := shift(rec, delta, floor, sp.len())
		var at, cut int
		var ins string
		switch op {
		case OpBefore:
			at, ins = start, text
			rec.Start, rec.End = start+len(text), end+len(text)
		case OpAfter:
			at, ins = end, text
			rec.Start, rec.End = start, end
		case OpReplace:
			at, cut, ins = start, end-start, text
			rec.Start, rec.End = start, start+len(text)
		case OpRemove:
			at, cut = start, end-start
			rec.Start, rec.End = start, start
		}
		if cut > 0 || ins != "" {
			deleted := sp.splice(at, cut, ins)
			r.notify(Splice{Op: op, Record: i, At: at, Deleted: deleted, Inserted: ins})
		}
		delta += len(ins) - cut
		floor = rec.Start
	}
	r.buf = sp.bytes()
	T().Debugf("strmatch: %s on %d record(s), length changed by %d", op, len(r.offsets), delta)
	return r
}

// shift moves a record by delta and clamps it to a text of length n.
// Records never start before floor, the start of the preceding record.
// Clamping only takes effect for records which overlap a preceding one.
func shift(rec *Offset, delta, floor, n int) (int, int) {
	start := min(max(rec.Start+delta, floor), n)
	end := min(max(rec.End+delta, start), n)
	return start, end
}

func (r *Result) notify(s Splice) {
	if r.observer != nil {
		r.observer.Spliced(s)
	}
}

// splicer builds an edited copy of a buffer. The current text is done
// followed by src[rest:]. As long as splices arrive at ascending positions,
// every byte of src is copied once, so an edit of k records costs
// O(n + k·len(text)) instead of moving the whole buffer for every record.
// A splice before the end of done, caused by overlapping records, moves
// the tail of done back in front of the unprocessed text.
type splicer struct {
	done []byte
	src  []byte
	rest int
}

func newSplicer(src []byte, grow int) *splicer {
	return &splicer{
		done: make([]byte, 0, len(src)+grow),
		src:  src,
	}
}

func (sp *splicer) len() int {
	return len(sp.done) + len(sp.src) - sp.rest
}

// splice replaces cut bytes at position at with ins and returns the bytes
// deleted.
func (sp *splicer) splice(at, cut int, ins string) string {
	if at < len(sp.done) {
		tail := make([]byte, 0, len(sp.done)-at+len(sp.src)-sp.rest)
		tail = append(tail, sp.done[at:]...)
		tail = append(tail, sp.src[sp.rest:]...)
		sp.done, sp.src, sp.rest = sp.done[:at], tail, 0
	}
	n := at - len(sp.done)
	sp.done = append(sp.done, sp.src[sp.rest:sp.rest+n]...)
	sp.rest += n
	deleted := string(sp.src[sp.rest : sp.rest+cut])
	sp.rest += cut
	sp.done = append(sp.done, ins...)
	return deleted
}

func (sp *splicer) bytes() []byte {
	return append(sp.done, sp.src[sp.rest:]...)
}
