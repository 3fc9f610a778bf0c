// Package oplog reads and writes scripts of tree operations, one per
// line, and applies them to an rbtree.Tree.
//
// A line has the form
//
//	<op> <key> [value]
//
// where op is one of insert (put), delete (del), get or depth. The value
// of an insert is the rest of the line after the key and may contain
// spaces. Blank lines and lines starting with '#' are skipped.
package oplog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/AlonMell/rbmap/internal/rbtree"
)

// Op is the kind of operation an entry performs.
type Op byte

// Operation types for log entries
const (
	OpInsert Op = iota
	OpDelete
	OpGet
	OpDepth
)

var (
	ErrMalformed  = errors.New("malformed entry")
	ErrInvalidKey = errors.New("invalid key")
)

var opNames = map[string]Op{
	"insert": OpInsert,
	"put":    OpInsert,
	"delete": OpDelete,
	"del":    OpDelete,
	"get":    OpGet,
	"depth":  OpDepth,
}

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpGet:
		return "get"
	case OpDepth:
		return "depth"
	}
	return fmt.Sprintf("Op(%d)", byte(o))
}

// Entry represents a single operation.
type Entry struct {
	Op    Op
	Key   string
	Value string // only for OpInsert
}

// Validate checks that the entry can be written as a single line and
// read back unchanged.
func (e *Entry) Validate() error {
	if _, ok := opNames[e.Op.String()]; !ok {
		return fmt.Errorf("%w: unknown op %v", ErrMalformed, e.Op)
	}
	if e.Key == "" || strings.IndexFunc(e.Key, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidKey, e.Key)
	}
	if strings.ContainsAny(e.Value, "\r\n") {
		return fmt.Errorf("%w: value of %q spans lines", ErrMalformed, e.Key)
	}
	if strings.TrimSpace(e.Value) != e.Value {
		return fmt.Errorf("%w: value of %q has surrounding white space", ErrMalformed, e.Key)
	}
	if e.Op != OpInsert && e.Value != "" {
		return fmt.Errorf("%w: %s takes no value", ErrMalformed, e.Op)
	}
	return nil
}

// Writer appends entries to an underlying writer.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Append adds a new entry to the log.
func (w *Writer) Append(entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	line := entry.Op.String() + " " + entry.Key
	if entry.Op == OpInsert && entry.Value != "" {
		line += " " + entry.Value
	}
	if _, err := w.w.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// Flush writes any buffered entries to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush log buffer: %w", err)
	}
	return nil
}

// Replay reads entries from r, calling the provided function for each
// entry. It stops at the first malformed line or the first error fn
// returns.
func Replay(r io.Reader, fn func(*Entry) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, err := parseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if entry == nil {
			continue
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	return nil
}

// parseLine returns nil for lines that carry no entry.
func parseLine(line string) (*Entry, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	name, rest := cutSpace(line)
	op, ok := opNames[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown op %q", ErrMalformed, name)
	}

	key, value := cutSpace(rest)
	entry := &Entry{
		Op:    op,
		Key:   key,
		Value: value,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// cutSpace splits s around its first run of white space.
func cutSpace(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// Result describes the outcome of applying an entry.
type Result struct {
	Entry *Entry
	// Found is true when the key was present before the operation.
	Found bool
	// Changed is true when the tree was modified.
	Changed bool
	Value   string
	Depth   int
}

func (r Result) String() string {
	e := r.Entry
	switch e.Op {
	case OpInsert:
		if r.Changed {
			return fmt.Sprintf("insert %s: ok", e.Key)
		}
		return fmt.Sprintf("insert %s: duplicate", e.Key)
	case OpDelete:
		if r.Changed {
			return fmt.Sprintf("delete %s: ok", e.Key)
		}
		return fmt.Sprintf("delete %s: absent", e.Key)
	case OpGet:
		if r.Found {
			return fmt.Sprintf("get %s: %s", e.Key, r.Value)
		}
		return fmt.Sprintf("get %s: absent", e.Key)
	case OpDepth:
		return fmt.Sprintf("depth %s: %d", e.Key, r.Depth)
	}
	return e.Op.String()
}

// Apply executes entry against t.
func Apply(t *rbtree.Tree[string], entry *Entry) Result {
	res := Result{Entry: entry}
	switch entry.Op {
	case OpInsert:
		res.Changed = t.Insert(entry.Key, entry.Value)
		res.Found = !res.Changed
	case OpDelete:
		res.Value, res.Found = t.Delete(entry.Key)
		res.Changed = res.Found
	case OpGet:
		res.Value, res.Found = t.Get(entry.Key)
	case OpDepth:
		res.Depth = t.Depth(entry.Key)
		res.Found = res.Depth > 0
	}
	return res
}
