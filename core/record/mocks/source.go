package mocks

import (
	"github.com/stretchr/testify/mock"

	"numcompare/core/record"
)

// Source is a mock implementation of record.Source
type Source struct {
	mock.Mock
}

func (m *Source) Scan() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Source) Record() record.Record {
	args := m.Called()
	return args.Get(0).(record.Record)
}

func (m *Source) Err() error {
	args := m.Called()
	return args.Error(0)
}
