package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorValidation(t *testing.T) {
	v := NewErrorValidation(errors.New("quota exceeded"))

	assert.True(t, v.Failed)
	assert.Equal(t, ErrorSummary, v.Summary)
	require.Len(t, v.ValidationResults, 1)
	assert.Equal(t, "quota exceeded", v.ValidationResults[0].IncorrectText)
	assert.Equal(t, ErrorCorrectText, v.ValidationResults[0].CorrectText)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleBot.IsValid())
	assert.True(t, RoleValidation.IsValid())
	assert.False(t, Role("assistant").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestConversationEntry_String(t *testing.T) {
	e := ConversationEntry{Role: RoleBot, Message: "hello"}
	assert.Equal(t, "bot: hello", e.String())
}
