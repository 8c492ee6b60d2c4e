// Package forms holds the draft state behind each submission form.
// A draft is unsaved input; it is cleared only after a successful submit.
package forms

import "sync"

type Form[D any] struct {
	mu    sync.Mutex
	draft D
	blank func() D
}

func newForm[D any](blank func() D) *Form[D] {
	return &Form[D]{draft: blank(), blank: blank}
}

func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Update applies fn to the draft and returns the result.
func (f *Form[D]) Update(fn func(d *D)) D {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
	return f.draft
}

func (f *Form[D]) Reset() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.blank()
	return f.draft
}

// Submit hands the current draft to fn and resets the draft when fn succeeds.
// The form stays locked for the duration, so two submits never see the same draft.
func (f *Form[D]) Submit(fn func(d D) error) error {
	return f.SubmitWith(nil, fn)
}

// SubmitWith is Submit with apply run on the draft first, under the same lock.
// A failed fn leaves the applied changes in the draft.
func (f *Form[D]) SubmitWith(apply func(d *D), fn func(d D) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if apply != nil {
		apply(&f.draft)
	}
	if err := fn(f.draft); err != nil {
		return err
	}
	f.draft = f.blank()
	return nil
}
