package mocks

// MockSink 是 ResultSink 接口的模拟实现
type MockSink struct {
	EmitFunc func(result int) error
	Results  []int
}

func (m *MockSink) Emit(result int) error {
	if m.EmitFunc != nil {
		if err := m.EmitFunc(result); err != nil {
			return err
		}
	}
	m.Results = append(m.Results, result)
	return nil
}
