package tes3

import (
	"errors"
)

// record is a minimal plugin record for tests: it writes its tag and its id
// as an auto-encoded string.
type record struct {
	tag  Tag
	id   string
	hint int32
}

func (r *record) Tag() Tag        { return r.tag }
func (r *record) ID() string      { return r.id }
func (r *record) SortHint() int32 { return r.hint }

func (r *record) Save(w *Writer) error {
	if err := w.Save(r.tag); err != nil {
		return err
	}
	return w.SaveStringAuto(r.id)
}

// anonymous has no id and no hint.
type anonymous struct {
	tag Tag
	seq int
}

func (a *anonymous) Tag() Tag { return a.tag }

func (a *anonymous) Save(w *Writer) error {
	if err := w.Save(a.tag); err != nil {
		return err
	}
	Put(w, int32(a.seq))
	return nil
}

var errBroken = errors.New("broken record")

// broken writes a few bytes and then fails.
type broken struct{}

func (broken) Tag() Tag { return TagStatic }

func (broken) Save(w *Writer) error {
	w.SaveBytes([]byte("half"))
	return errBroken
}

func tags(objects []Object) []string {
	out := make([]string, len(objects))
	for i, o := range objects {
		out[i] = o.Tag().String()
	}
	return out
}
