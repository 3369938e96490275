package duet_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/duet/pkg/duet"
	"github.com/ib-77/duet/pkg/duet/maybe"
	"github.com/ib-77/duet/pkg/duet/result"
)

// Both containers expose the same read-side surface.
var (
	_ duet.Value[int]    = maybe.Just(1)
	_ duet.Value[string] = result.Ok[string, error]("ok")
	_ fmt.Stringer       = maybe.Nothing[int]()
	_ fmt.Stringer       = result.Err[int]("x")
)

// enforcePresent checks every read-side accessor of a variant holding want.
func enforcePresent[A comparable](t *testing.T, v duet.Value[A], want, fallback A) {
	t.Helper()

	got, err := v.Get()
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, v.MustGet())
	assert.Equal(t, want, v.GetOrElse(fallback))

	u, ok := v.Unpack()
	assert.True(t, ok)
	assert.Equal(t, want, u)
}

// enforceEmpty checks every read-side accessor of a variant holding nothing.
func enforceEmpty[A comparable](t *testing.T, v duet.Value[A], fallback A) {
	t.Helper()

	_, err := v.Get()
	assert.Error(t, err)
	assert.True(t, duet.IsEmptyValue(err))
	assert.Equal(t, fallback, v.GetOrElse(fallback))

	_, ok := v.Unpack()
	assert.False(t, ok)
	assert.Panics(t, func() { v.MustGet() })
}

func TestReadSurface_AcrossContainers(t *testing.T) {
	id := uuid.New()

	enforcePresent[uuid.UUID](t, maybe.Just(id), id, uuid.Nil)
	enforcePresent[uuid.UUID](t, result.Ok[uuid.UUID, error](id), id, uuid.Nil)

	enforceEmpty[uuid.UUID](t, maybe.Nothing[uuid.UUID](), uuid.Nil)
	enforceEmpty[uuid.UUID](t, result.Err[uuid.UUID](fmt.Errorf("gone")), uuid.Nil)
}

func TestEmptyValueErrors_NameTheVariant(t *testing.T) {
	_, nothingErr := maybe.Nothing[int]().Get()
	assert.EqualError(t, nothingErr, "value missing in a Nothing variant")

	_, errErr := result.Err[int]("why").Get()
	assert.EqualError(t, errErr, "value missing in an Err variant")

	// both are the one shared error kind
	for _, e := range []error{nothingErr, errErr} {
		assert.True(t, duet.IsEmptyValue(e))
	}
}

func TestUserLookupPipeline(t *testing.T) {
	aliceID := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
	directory := map[uuid.UUID]string{aliceID: "alice"}

	find := func(id uuid.UUID) maybe.Maybe[string] {
		name, ok := directory[id]
		return maybe.Of(name, ok)
	}
	lookup := func(raw string) result.Result[string, error] {
		parsed := result.Of(uuid.Parse(raw))
		return result.FlatMap(parsed, func(id uuid.UUID) result.Result[string, error] {
			return result.FromMaybe(find(id), fmt.Errorf("no user with id %s", id))
		})
	}
	display := func(r result.Result[string, error]) string {
		return result.Fold(r,
			func(name string) string { return "hello " + name },
			func(err error) string { return "lookup failed: " + err.Error() },
		)
	}

	// known id
	got := lookup(aliceID.String())
	assert.True(t, got.IsOk())
	assert.Equal(t, "alice", got.MustGet())
	assert.Equal(t, "hello alice", display(got))

	// well-formed but unknown id
	got = lookup(uuid.Nil.String())
	assert.True(t, got.IsErr())
	e, isErr := got.UnpackErr()
	assert.True(t, isErr)
	assert.EqualError(t, e, "no user with id 00000000-0000-0000-0000-000000000000")

	// malformed id never reaches the directory
	got = lookup("not-a-uuid")
	assert.True(t, got.IsErr())
	e, _ = got.UnpackErr()
	assert.Contains(t, e.Error(), "invalid UUID")
	assert.Equal(t, "fallback", got.GetOrElse("fallback"))
}
