// Package mocks provides hand-written mock implementations of the store and
// service interfaces for use in tests.
//
// Each mock has one function field per interface method. A nil field falls
// back to the default return values held on the mock:
//
//	cards := &mocks.MockCardStore{
//	    GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
//	        return nil, store.ErrUnavailable
//	    },
//	}
package mocks
