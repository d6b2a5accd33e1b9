// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fitd/internal/errors"
	"github.com/KirkDiggler/fitd/internal/names"
	"github.com/KirkDiggler/fitd/internal/repositories/nameindex"
	nameindexmock "github.com/KirkDiggler/fitd/internal/repositories/nameindex/mock"
)

// ExpectCacheMiss sets up a cache lookup for root that finds nothing
func ExpectCacheMiss(mockRepo *nameindexmock.MockRepository, root string) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), nameindex.GetInput{Root: root}).
		Return(nil, errors.NotFoundf("name index for %s not found", root))
}

// ExpectCacheHit sets up a cache lookup for root that returns an index of
// the given names, inserted in order, saved under fingerprint.
func ExpectCacheHit(mockRepo *nameindexmock.MockRepository, root, fingerprint string, ns ...string) *gomock.Call {
	idx := names.NewIndex()
	idx.InsertAll(ns)

	return mockRepo.EXPECT().
		Get(gomock.Any(), nameindex.GetInput{Root: root}).
		Return(&nameindex.GetOutput{Root: root, Fingerprint: fingerprint, Entries: idx.Entries()}, nil)
}

// ExpectCacheSave accepts one save for root and hands the input to check
func ExpectCacheSave(mockRepo *nameindexmock.MockRepository, root string, check func(nameindex.SaveInput)) *gomock.Call {
	return mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input nameindex.SaveInput) (*nameindex.SaveOutput, error) {
			if check != nil {
				check(input)
			}
			return &nameindex.SaveOutput{Key: nameindex.Key(root)}, nil
		})
}
