package libevents

import (
	"github.com/stretchr/testify/mock"
)

// MockRegistry is a testify mock of the Registry interface, for tests of
// code that consumes a registry. Its On method implements the Registry
// operation and shadows mock.Mock.On, so expectations are set through the
// embedded Mock field: m.Mock.On("Emit", ...).
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) AddListener(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) On(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) PrependListener(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) Once(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) PrependOnce(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) RemoveListener(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) Off(names string, fn Listener) error {
	args := m.Called(names, fn)
	return args.Error(0)
}

func (m *MockRegistry) RemoveAllListeners(name string) {
	m.Called(name)
}

func (m *MockRegistry) Clear() {
	m.Called()
}

func (m *MockRegistry) Emit(name string, args ...any) bool {
	called := m.Called(name, args)
	return called.Bool(0)
}

func (m *MockRegistry) EventNames() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockRegistry) Listeners(name string) []Listener {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]Listener)
}

func (m *MockRegistry) ListenerCount(name string) int {
	args := m.Called(name)
	return args.Int(0)
}

func (m *MockRegistry) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockRegistry) MaxListeners() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockRegistry) SetMaxListeners(max float64) error {
	args := m.Called(max)
	return args.Error(0)
}
