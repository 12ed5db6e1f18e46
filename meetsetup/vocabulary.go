package meetsetup

import "github.com/samber/lo"

// spelling binds one variant to every token the vendor has been seen to
// write for it. The first token is the canonical one.
type spelling[T comparable] struct {
	value  T
	tokens []string
}

type vocabulary[T comparable] []spelling[T]

func (v vocabulary[T]) parse(s string) (T, error) {
	for _, sp := range v {
		if lo.Contains(sp.tokens, s) {
			return sp.value, nil
		}
	}
	var zero T
	return zero, &UnknownVariantError{Input: s, Allowed: v.allowed()}
}

func (v vocabulary[T]) allowed() []string {
	return lo.FlatMap(v, func(sp spelling[T], _ int) []string {
		return sp.tokens
	})
}

func (v vocabulary[T]) token(value T) string {
	sp, ok := lo.Find(v, func(sp spelling[T]) bool {
		return sp.value == value
	})
	if !ok {
		return ""
	}
	return sp.tokens[0]
}
