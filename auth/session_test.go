package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Cleanup(Clear)
	t.Setenv("HOLDUP_PLAYER_ID", "p1")
	t.Setenv("HOLDUP_NICKNAME", "Alice")
	t.Setenv("HOLDUP_TOKEN", "tok")

	session, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "p1", session.PlayerID)
	assert.Equal(t, "Alice", session.Nickname)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, session, Current())
}

func TestLoad_DefaultsAcrossFields(t *testing.T) {
	t.Cleanup(Clear)
	t.Setenv("HOLDUP_PLAYER_ID", "p1")
	t.Setenv("HOLDUP_NICKNAME", "")
	t.Setenv("HOLDUP_TOKEN", "")

	session, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "p1", session.Nickname)

	t.Setenv("HOLDUP_PLAYER_ID", "")
	t.Setenv("HOLDUP_NICKNAME", "Bob")

	session, err = Load()
	assert.NoError(t, err)
	assert.Equal(t, "Bob", session.PlayerID)
}

func TestLoad_MissingIdentity(t *testing.T) {
	t.Cleanup(Clear)
	t.Setenv("HOLDUP_PLAYER_ID", "")
	t.Setenv("HOLDUP_NICKNAME", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSetAndClear(t *testing.T) {
	Set(&Session{PlayerID: "p9", Nickname: "Nina"})
	assert.Equal(t, "p9", Current().PlayerID)

	Clear()
	assert.Nil(t, Current())
}
