// Package mocks provides shared mock implementations for tests.
//
// It is imported only from _test.go files, so the testify/mock dependency
// never reaches the server or CLI binaries.
//
//	backend := &mocks.MockBackend{}
//	backend.On("Generate", mock.Anything, mock.Anything).Return(`["a"]`, nil)
package mocks
