package service

// Service provides the site's content operations.
type Service struct {
	store Store
}

// New creates a new Service with the given store.
func New(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Store returns the underlying store.
func (s *Service) Store() Store {
	return s.store
}
