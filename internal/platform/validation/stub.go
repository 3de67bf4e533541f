package validation

type StubValidator struct {
	ValidateStructFunc func(any) map[string]string
}

var _ Validator = (*StubValidator)(nil)

// ValidateStruct reports every struct as valid when ValidateStructFunc is nil.
func (s *StubValidator) ValidateStruct(st any) map[string]string {
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}
