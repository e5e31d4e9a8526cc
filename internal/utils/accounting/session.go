package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

var (
	ErrInvalidTransition = fmt.Errorf("%w: invalid payment state transition", apperrors.ErrValidation)
	ErrPaymentIndex      = fmt.Errorf("%w: payment index out of range", apperrors.ErrValidation)
)

// PaymentState is one of Idle, Drafting or Editing.
type PaymentState interface {
	paymentState()
}

// Idle means committed payments are only being viewed.
type Idle struct{}

// Drafting means the register payment sub-form is open.
type Drafting struct {
	Fields domain.PaymentInput
}

// Editing means a committed payment is being modified.
type Editing struct {
	Index  int
	Fields domain.PaymentInput
}

func (Idle) paymentState()     {}
func (Drafting) paymentState() {}
func (Editing) paymentState()  {}

// PaymentSession tracks the payment list of one transaction while an operator
// works on it. It is not safe for concurrent use; a session belongs to a
// single request or editing session.
type PaymentSession struct {
	committed []domain.PaymentEntry
	state     PaymentState
}

// NewPaymentSession starts an idle session over a copy of committed.
func NewPaymentSession(committed []domain.PaymentEntry) *PaymentSession {
	payments := make([]domain.PaymentEntry, len(committed))
	copy(payments, committed)
	return &PaymentSession{committed: payments, state: Idle{}}
}

// State returns the current state.
func (s *PaymentSession) State() PaymentState {
	return s.state
}

// Payments returns a copy of the committed payments.
func (s *PaymentSession) Payments() []domain.PaymentEntry {
	payments := make([]domain.PaymentEntry, len(s.committed))
	copy(payments, s.committed)
	return payments
}

func (s *PaymentSession) checkIndex(index int) error {
	if index < 0 || index >= len(s.committed) {
		return fmt.Errorf("%w: %d (have %d)", ErrPaymentIndex, index, len(s.committed))
	}
	return nil
}

// OpenDraft opens an empty draft.
func (s *PaymentSession) OpenDraft() error {
	if _, ok := s.state.(Idle); !ok {
		return fmt.Errorf("%w: open draft from %T", ErrInvalidTransition, s.state)
	}
	s.state = Drafting{Fields: domain.PaymentInput{Currency: domain.EUR}}
	return nil
}

// UpdateDraft replaces the draft fields.
func (s *PaymentSession) UpdateDraft(fields domain.PaymentInput) error {
	if _, ok := s.state.(Drafting); !ok {
		return fmt.Errorf("%w: update draft from %T", ErrInvalidTransition, s.state)
	}
	s.state = Drafting{Fields: fields}
	return nil
}

// CommitDraft converts the draft, appends it and returns to Idle.
func (s *PaymentSession) CommitDraft(now time.Time) (domain.PaymentEntry, error) {
	d, ok := s.state.(Drafting)
	if !ok {
		return domain.PaymentEntry{}, fmt.Errorf("%w: commit draft from %T", ErrInvalidTransition, s.state)
	}
	entry := NewPaymentEntry(d.Fields, now)
	s.committed = append(s.committed, entry)
	s.state = Idle{}
	return entry, nil
}

// DiscardDraft drops the draft.
func (s *PaymentSession) DiscardDraft() error {
	if _, ok := s.state.(Drafting); !ok {
		return fmt.Errorf("%w: discard draft from %T", ErrInvalidTransition, s.state)
	}
	s.state = Idle{}
	return nil
}

// BeginEdit starts editing the committed payment at index.
func (s *PaymentSession) BeginEdit(index int) error {
	if _, ok := s.state.(Idle); !ok {
		return fmt.Errorf("%w: begin edit from %T", ErrInvalidTransition, s.state)
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.state = Editing{Index: index, Fields: s.committed[index].Input()}
	return nil
}

// UpdateEdit replaces the fields of the payment being edited.
func (s *PaymentSession) UpdateEdit(fields domain.PaymentInput) error {
	e, ok := s.state.(Editing)
	if !ok {
		return fmt.Errorf("%w: update edit from %T", ErrInvalidTransition, s.state)
	}
	s.state = Editing{Index: e.Index, Fields: fields}
	return nil
}

// SaveEdit recomputes the edited payment and writes it back. The original
// creation time is kept, and so is the proof unless a new one was given.
func (s *PaymentSession) SaveEdit() (domain.PaymentEntry, error) {
	e, ok := s.state.(Editing)
	if !ok {
		return domain.PaymentEntry{}, fmt.Errorf("%w: save edit from %T", ErrInvalidTransition, s.state)
	}
	entry := s.edited(e)
	s.committed[e.Index] = entry
	s.state = Idle{}
	return entry, nil
}

// CancelEdit leaves the payment untouched.
func (s *PaymentSession) CancelEdit() error {
	if _, ok := s.state.(Editing); !ok {
		return fmt.Errorf("%w: cancel edit from %T", ErrInvalidTransition, s.state)
	}
	s.state = Idle{}
	return nil
}

// Delete removes the committed payment at index.
func (s *PaymentSession) Delete(index int) (domain.PaymentEntry, error) {
	if _, ok := s.state.(Idle); !ok {
		return domain.PaymentEntry{}, fmt.Errorf("%w: delete from %T", ErrInvalidTransition, s.state)
	}
	if err := s.checkIndex(index); err != nil {
		return domain.PaymentEntry{}, err
	}
	removed := s.committed[index]
	s.committed = append(s.committed[:index], s.committed[index+1:]...)
	return removed, nil
}

// Summary recomputes the ledger including whatever is being typed: a draft
// counts as an extra payment, an edit replaces the payment it targets.
func (s *PaymentSession) Summary(policy LedgerPolicy, basis domain.LedgerBasis) Summary {
	switch st := s.state.(type) {
	case Drafting:
		draft := NewPaymentEntry(st.Fields, time.Time{})
		return Summarize(policy, basis, s.committed, &draft)
	case Editing:
		preview := s.Payments()
		preview[st.Index] = s.edited(st)
		return Summarize(policy, basis, preview, nil)
	default:
		return Summarize(policy, basis, s.committed, nil)
	}
}

func (s *PaymentSession) edited(e Editing) domain.PaymentEntry {
	original := s.committed[e.Index]
	fields := e.Fields
	if fields.ProofPath == "" {
		fields.ProofPath = original.ProofPath
	}
	return NewPaymentEntry(fields, original.CreatedAt)
}
