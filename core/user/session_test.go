package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Session_transitions(t *testing.T) {
	s := NewSession()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	_, ok := s.Current()
	assert.False(t, ok)

	s.Login(User{ID: "u1", Name: "Jane", Role: RoleStudent})
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	usr, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "u1", usr.ID)

	// login overwrites the slot wholesale
	s.Login(User{ID: "u2", Name: "Admin", Role: RoleAdmin})
	usr, _ = s.Current()
	assert.Equal(t, "u2", usr.ID)
	assert.True(t, s.IsAdmin())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
}

func Test_Session_Subscribe(t *testing.T) {
	s := NewSession()

	var states []State
	cancel := s.Subscribe(func(st State) { states = append(states, st) })

	s.Login(User{ID: "u1", Role: RoleAdmin})
	s.Logout()
	s.Logout() // anonymous logout still notifies

	if assert.Len(t, states, 3) {
		assert.True(t, states[0].Authenticated)
		assert.True(t, states[0].Admin)
		assert.False(t, states[1].Authenticated)
		assert.Nil(t, states[1].User)
		assert.False(t, states[2].Authenticated)
	}

	// a cancelled subscriber is never re-rendered
	cancel()
	s.Login(User{ID: "u2"})
	assert.Len(t, states, 3)
}

func Test_Session_Subscribe_snapshot(t *testing.T) {
	s := NewSession()

	// subscribers get a copy; mutating it must not leak into the session
	s.Subscribe(func(st State) {
		if st.User != nil {
			st.User.Name = "mutated"
		}
	})

	s.Login(User{ID: "u1", Name: "Jane"})
	usr, _ := s.Current()
	assert.Equal(t, "Jane", usr.Name)
}
