package journal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/strmatch"
)

// ChangeType categorizes a change.
type ChangeType uint8

const (
	ChangeInsert  ChangeType = iota // text has been inserted, OldText is empty
	ChangeDelete                    // text has been deleted, NewText is empty
	ChangeReplace                   // text has been replaced
)

func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	}
	return "unknown"
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start, End int
}

// Change is a single change to the text of a result.
type Change struct {
	Type     ChangeType
	Range    Span // affected range in the text before the change
	NewRange Span // affected range in the text after the change
	OldText  string
	NewText  string
	Op       strmatch.Op // edit operation which caused the change
	Record   int         // index of the match record the change was made for
}

// changeFromSplice converts a splice as reported by a strmatch.Result.
func changeFromSplice(s strmatch.Splice) Change {
	c := Change{
		Range:    Span{s.At, s.At + len(s.Deleted)},
		NewRange: Span{s.At, s.At + len(s.Inserted)},
		OldText:  s.Deleted,
		NewText:  s.Inserted,
		Op:       s.Op,
		Record:   s.Record,
	}
	switch {
	case s.Deleted == "":
		c.Type = ChangeInsert
	case s.Inserted == "":
		c.Type = ChangeDelete
	default:
		c.Type = ChangeReplace
	}
	return c
}

// Delta returns the change in length of the text. Positive values mean that
// the text grew.
func (c Change) Delta() int {
	return len(c.NewText) - len(c.OldText)
}

func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("insert %q at %d", c.NewText, c.Range.Start)
	case ChangeDelete:
		return fmt.Sprintf("delete %q at [%d,%d)", c.OldText, c.Range.Start, c.Range.End)
	case ChangeReplace:
		return fmt.Sprintf("replace %q with %q at [%d,%d)", c.OldText, c.NewText,
			c.Range.Start, c.Range.End)
	}
	return "unknown change"
}

// --- Journal ---------------------------------------------------------------

// Journal records the changes made to the text of one or more results.
// It implements strmatch.Observer:
//
//	j := journal.New()
//	r.Observe(j).Replace("x")
//	j.Changes()   // one change per replaced match
//
// Changes are recorded in the order they have been applied. In addition, every
// change is broadcast to subscribers (see Subscribe).
type Journal struct {
	mu      sync.Mutex
	changes []Change
	cast    *caster.Caster
	closed  bool
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{cast: caster.New(nil)}
}

// Spliced records a splice. It is part of interface strmatch.Observer.
//
// Spliced blocks until the change has been handed to the broadcaster.
func (j *Journal) Spliced(s strmatch.Splice) {
	c := changeFromSplice(s)
	j.mu.Lock()
	j.changes = append(j.changes, c)
	j.mu.Unlock()
	tracer().Debugf("journal: %s", c)
	j.cast.Pub(c)
}

// Changes returns a copy of the recorded changes.
func (j *Journal) Changes() []Change {
	j.mu.Lock()
	defer j.mu.Unlock()
	changes := make([]Change, len(j.changes))
	copy(changes, j.changes)
	return changes
}

// Len returns the number of recorded changes.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.changes)
}

// Reset drops all recorded changes. Subscriptions are not affected.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.changes = nil
}

// Replay applies the recorded changes, in order, to text and returns the
// resulting text. Replaying the journal of a result onto the text the result
// has been searched in yields the current text of the result.
//
// If a change does not fit into the text, Replay returns an error wrapping
// strmatch.ErrRangeOutOfBounds. If the text to be replaced differs from the
// recorded one, the error wraps strmatch.ErrIllegalArguments.
func (j *Journal) Replay(text string) (string, error) {
	changes := j.Changes()
	for i, c := range changes {
		if c.Range.Start < 0 || c.Range.End < c.Range.Start || c.Range.End > len(text) {
			tracer().Errorf("journal: change #%d at %v does not fit text of length %d",
				i, c.Range, len(text))
			return text, fmt.Errorf("journal: change #%d: %w", i, strmatch.ErrRangeOutOfBounds)
		}
		if text[c.Range.Start:c.Range.End] != c.OldText {
			return text, fmt.Errorf("journal: change #%d: text differs from %q: %w", i,
				c.OldText, strmatch.ErrIllegalArguments)
		}
		var b strings.Builder
		b.Grow(len(text) + c.Delta())
		b.WriteString(text[:c.Range.Start])
		b.WriteString(c.NewText)
		b.WriteString(text[c.Range.End:])
		text = b.String()
	}
	return text, nil
}

// Subscribe creates a subscription to the changes recorded from now on.
// The returned channel is closed when ctx is done or the journal is closed.
// Subscribers have to keep up with edits: edits block while the
// buffer of a subscription (of size capacity) is full.
//
// If the journal has already been closed, Subscribe returns false.
func (j *Journal) Subscribe(ctx context.Context, capacity uint) (<-chan Change, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	j.mu.Lock()
	closed := j.closed
	j.mu.Unlock()
	if closed {
		return nil, false
	}
	sub, _ := j.cast.Sub(ctx, capacity)
	ch := make(chan Change, capacity)
	go forward(ctx, sub, ch)
	return ch, true
}

// forward hands changes from a caster subscription to a subscriber, until
// ctx is done or the caster closes the subscription.
//
// After ctx is done, the caster keeps the subscription until the next
// broadcast. forward drains it until then, so broadcasting never blocks
// on a subscriber which has gone away.
func forward(ctx context.Context, sub <-chan interface{}, ch chan<- Change) {
	defer func() {
		for range sub {
		}
	}()
	defer close(ch)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub:
			if !ok {
				return
			}
			c, ok := msg.(Change)
			if !ok {
				continue
			}
			select {
			case ch <- c:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Close ends all subscriptions. Changes are still recorded after Close, but no
// longer broadcast.
func (j *Journal) Close() {
	j.mu.Lock()
	j.closed = true
	j.mu.Unlock()
	j.cast.Close()
}

var _ strmatch.Observer = (*Journal)(nil)
