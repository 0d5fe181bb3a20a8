package answers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ReplacesInPlace(t *testing.T) {
	s := NewSet()
	s.Record("a", Int(1))
	s.Record("b", Text("x"))
	s.Record("a", Int(4))

	require.Equal(t, 2, s.Len())
	got := s.Slice()
	assert.Equal(t, "a", got[0].QuestionID)
	assert.Equal(t, Int(4), got[0].Value)
	assert.Equal(t, "b", got[1].QuestionID)
}

func TestGet_Unanswered(t *testing.T) {
	var s Set
	_, ok := s.Get("a")
	assert.False(t, ok)

	s.Record("a", Int(0))
	a, ok := s.Get("a")
	require.True(t, ok)
	n, isInt := a.Value.AsInt()
	assert.True(t, isInt)
	assert.Equal(t, 0, n)
}

func TestAll_Restartable(t *testing.T) {
	s := NewSet()
	s.Record("a", Int(1))
	s.Record("b", Int(2))
	s.Record("c", Int(3))

	seq := s.All()
	var first, second []string
	for a := range seq {
		first = append(first, a.QuestionID)
	}
	for a := range seq {
		second = append(second, a.QuestionID)
		if a.QuestionID == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestAll_NeverExceedsDistinctIDs(t *testing.T) {
	s := NewSet()
	ids := []string{"a", "b", "a", "c", "b", "a"}
	for i, id := range ids {
		s.Record(id, Int(i))
	}
	n := 0
	for range s.All() {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestClone_IsIndependent(t *testing.T) {
	s := NewSet()
	s.Record("a", Int(1))
	c := s.Clone()

	s.Record("a", Int(5))
	s.Record("b", Int(2))

	assert.Equal(t, 1, c.Len())
	a, _ := c.Get("a")
	assert.Equal(t, Int(1), a.Value)
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Slice())
	for range s.All() {
		t.Fatal("nil set should yield nothing")
	}
}

func TestJSON(t *testing.T) {
	s := NewSet()
	s.Record("interest-1", Int(4))
	s.Record("technical-2", Text("SAML"))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"questionId":"interest-1","value":4},{"questionId":"technical-2","value":"SAML"}]`, string(data))

	var back Set
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.Slice(), back.Slice())
}

func TestJSON_EmptySet(t *testing.T) {
	data, err := json.Marshal(NewSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestValue_UnmarshalRejects(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`2.5`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &v))
}

func TestValue_Accessors(t *testing.T) {
	n, ok := Int(3).AsInt()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = Int(3).AsText()
	assert.False(t, ok)

	s, ok := Text("SAML").AsText()
	assert.True(t, ok)
	assert.Equal(t, "SAML", s)
	_, ok = Text("SAML").AsInt()
	assert.False(t, ok)

	assert.Equal(t, KindNone, Value{}.Kind())
	assert.Equal(t, "3", Int(3).String())
}
