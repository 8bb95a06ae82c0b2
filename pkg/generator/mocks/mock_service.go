package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeforge/pkg/generator"
	"resumeforge/pkg/resume"
)

// MockService is a testify mock of generator.Service.
type MockService struct {
	mock.Mock
}

func (m *MockService) Generate(ctx context.Context, r *resume.Resume, opts generator.Options) (*generator.Result, error) {
	args := m.Called(ctx, r, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generator.Result), args.Error(1)
}

func (m *MockService) Enhance(ctx context.Context, r *resume.Resume) (*resume.Resume, []string) {
	args := m.Called(ctx, r)
	var warnings []string
	if args.Get(1) != nil {
		warnings = args.Get(1).([]string)
	}
	if args.Get(0) == nil {
		return nil, warnings
	}
	return args.Get(0).(*resume.Resume), warnings
}
