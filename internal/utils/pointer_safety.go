package utils

func Value[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}

func Ptr[T any](v T) *T {
	return &v
}

// NonEmptyPtr returns nil for the empty string, otherwise a pointer to s.
func NonEmptyPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
