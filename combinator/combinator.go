// Package combinator provides generic parser combinators over a cursor.
//
// A Parser either consumes input and produces a value, or reports no match.
// No-match is ordinary control flow, not an error: alternation and
// repetition depend on failed attempts being cheap and position-transparent.
// The two-variant (value, ok) result keeps a legitimately "empty" parsed
// value, such as zero or an empty slice, distinct from failure.
package combinator

import (
	"strings"

	"github.com/mithra-lang/mithra/cursor"
)

// Parser consumes input from a cursor and produces a value of type T.
// On no-match it returns the zero value and false; callers that need the
// cursor restored must wrap the parser with Run.
type Parser[T any] func(*cursor.Cursor) (T, bool)

// Run wraps a parser so that failure is positionally transparent: the
// cursor position is snapshotted before the parser runs and restored if it
// reports no match. Every alternation and repetition combinator depends on
// this property to retry cleanly from the same starting position.
func Run[T any](p Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, bool) {
		before := c.Snapshot()
		result, ok := p(c)
		if !ok {
			c.Restore(before)
		}
		return result, ok
	}
}

// StepBack wraps a parser that must consume one rune beyond the token it
// recognizes in order to find the token's end, such as reading digits until
// a non-digit appears. On success the cursor retreats by exactly one rune so
// it sits immediately after the token. On failure it does nothing extra.
func StepBack[T any](p Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, bool) {
		result, ok := p(c)
		if ok {
			c.Retreat()
		}
		return result, ok
	}
}

// Match returns a parser for a single rune satisfying the predicate.
// It never matches at end of input.
func Match(pred func(rune) bool) Parser[rune] {
	return Run(func(c *cursor.Cursor) (rune, bool) {
		r := c.Next()
		if r == cursor.EOF || !pred(r) {
			return 0, false
		}
		return r, true
	})
}

// Rune returns a parser for one specific rune.
func Rune(want rune) Parser[rune] {
	return Match(func(r rune) bool { return r == want })
}

// Literal returns a parser that matches the given string rune for rune.
func Literal(want string) Parser[string] {
	return Run(func(c *cursor.Cursor) (string, bool) {
		for _, r := range want {
			if c.Next() != r {
				return "", false
			}
		}
		return want, true
	})
}

// TakeWhile1 returns a parser for a run of one or more runes satisfying the
// predicate. It scans until the first rune that does not satisfy the
// predicate and then steps back over it, so the cursor ends immediately
// after the last matching rune. Zero matching runes is a no-match.
func TakeWhile1(pred func(rune) bool) Parser[string] {
	return Run(StepBack(func(c *cursor.Cursor) (string, bool) {
		var sb strings.Builder
		for {
			r := c.Next()
			if r == cursor.EOF || !pred(r) {
				break
			}
			sb.WriteRune(r)
		}
		if sb.Len() == 0 {
			return "", false
		}
		return sb.String(), true
	}))
}

// Choice tries each parser in order and returns the first success. Each
// branch is backtracking-wrapped, so a failed branch never contaminates the
// next attempt. If every branch fails, Choice fails.
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	wrapped := make([]Parser[T], len(parsers))
	for i, p := range parsers {
		wrapped[i] = Run(p)
	}
	return func(c *cursor.Cursor) (T, bool) {
		for _, p := range wrapped {
			if result, ok := p(c); ok {
				return result, true
			}
		}
		var zero T
		return zero, false
	}
}

// Pair holds the two results of Seq2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq2 applies two parsers in order and succeeds only if both succeed.
// Composed with Run, a partial match leaves the cursor unchanged.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return Run(func(c *cursor.Cursor) (Pair[A, B], bool) {
		a, ok := pa(c)
		if !ok {
			return Pair[A, B]{}, false
		}
		b, ok := pb(c)
		if !ok {
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: a, Second: b}, true
	})
}

// Between applies open, body and close in order and returns the body's
// result. It fails as a unit, leaving the cursor unchanged.
func Between[O, T, C any](open Parser[O], body Parser[T], closing Parser[C]) Parser[T] {
	return Run(func(c *cursor.Cursor) (T, bool) {
		var zero T
		if _, ok := open(c); !ok {
			return zero, false
		}
		result, ok := body(c)
		if !ok {
			return zero, false
		}
		if _, ok := closing(c); !ok {
			return zero, false
		}
		return result, true
	})
}

// Many applies a parser repeatedly, collecting successes until the first
// failure, which leaves the cursor unchanged. Zero successes yields an
// empty slice, which is still a match.
//
// The parser must consume input on every success. A parser that can succeed
// on zero runes would loop forever here, so Many panics if it detects a
// success without progress: that is a bug in the grammar, not an input
// condition.
func Many[T any](p Parser[T]) Parser[[]T] {
	wrapped := Run(p)
	return func(c *cursor.Cursor) ([]T, bool) {
		var results []T
		for {
			before := c.Snapshot()
			result, ok := wrapped(c)
			if !ok {
				return results, true
			}
			if c.Snapshot() == before {
				panic("combinator: Many applied to a parser that succeeds without consuming input")
			}
			results = append(results, result)
		}
	}
}

// SepBy applies main at least once, with sep between occurrences. If main
// fails immediately, SepBy fails: an empty list is not representable here
// and grammars that allow empty constructs must special-case them.
//
// After a successful separator, a failing main ends the loop without the
// separator's consumption being rolled back. Callers that need clean "no
// trailing separator" semantics wrap the whole SepBy in Run at their own
// level.
func SepBy[T, S any](main Parser[T], sep Parser[S]) Parser[[]T] {
	mainW, sepW := Run(main), Run(sep)
	return Run(func(c *cursor.Cursor) ([]T, bool) {
		first, ok := mainW(c)
		if !ok {
			return nil, false
		}
		results := []T{first}
		for {
			if _, ok := sepW(c); !ok {
				break
			}
			next, ok := mainW(c)
			if !ok {
				break
			}
			results = append(results, next)
		}
		return results, true
	})
}
