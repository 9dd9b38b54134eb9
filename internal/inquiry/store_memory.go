package inquiry

import (
	"context"
	"sync"

	"veristub/pkg/platform/sentinel"
)

// InMemoryStore keeps the engine's records for the process lifetime. It
// intentionally favors clarity over performance; listing is a full scan.
type InMemoryStore struct {
	mu            sync.RWMutex
	inquiries     map[string]*Inquiry
	inquiryOrder  []string
	verifications map[string]*Verification
}

func NewInMemoryStore() *InMemoryStore {
	s := &InMemoryStore{}
	s.reset()
	return s
}

func (s *InMemoryStore) reset() {
	s.inquiries = make(map[string]*Inquiry)
	s.inquiryOrder = nil
	s.verifications = make(map[string]*Verification)
}

func (s *InMemoryStore) SaveInquiry(_ context.Context, inq *Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.inquiries[inq.ID]; !exists {
		s.inquiryOrder = append(s.inquiryOrder, inq.ID)
	}
	s.inquiries[inq.ID] = inq.Clone()
	return nil
}

func (s *InMemoryStore) FindInquiry(_ context.Context, id string) (*Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if inq, ok := s.inquiries[id]; ok {
		return inq.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) ListInquiries(_ context.Context) ([]*Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Inquiry, 0, len(s.inquiryOrder))
	for _, id := range s.inquiryOrder {
		if inq, ok := s.inquiries[id]; ok {
			out = append(out, inq.Clone())
		}
	}
	return out, nil
}

// ExecuteInquiry holds the write lock across validate and mutate so a
// read-modify-write on one inquiry never interleaves with another.
func (s *InMemoryStore) ExecuteInquiry(_ context.Context, id string, validate func(*Inquiry) error, mutate func(*Inquiry)) (*Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inq, ok := s.inquiries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(inq); err != nil {
			return nil, err
		}
	}
	if mutate != nil {
		mutate(inq)
	}
	return inq.Clone(), nil
}

func (s *InMemoryStore) SaveVerification(_ context.Context, ver *Verification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifications[ver.ID] = ver.Clone()
	return nil
}

func (s *InMemoryStore) FindVerification(_ context.Context, id string) (*Verification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ver, ok := s.verifications[id]; ok {
		return ver.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) CountInquiries(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inquiries)
}

func (s *InMemoryStore) CountVerifications(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.verifications)
}

func (s *InMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}
