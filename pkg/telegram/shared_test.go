package telegram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersShared_UserID_WarnsAndReturnsFirst(t *testing.T) {
	rec := &WarningRecorder{}
	prev := SetWarnFunc(rec.Warn)
	defer SetWarnFunc(prev)

	shared := &UsersShared{RequestID: 789, UserIDs: []int64{101112, 101113}}

	assert.Equal(t, int64(101112), shared.UserID())

	warnings := rec.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, CategoryDeprecation, warnings[0].Category)
	assert.Equal(t, "Bot API 7.0 renamed the attribute 'user_id' to 'user_ids'.", warnings[0].Message)
}

func TestUsersShared_UserID_Empty(t *testing.T) {
	rec := &WarningRecorder{}
	prev := SetWarnFunc(rec.Warn)
	defer SetWarnFunc(prev)

	shared := &UsersShared{RequestID: 789}

	assert.Zero(t, shared.UserID())
	assert.Equal(t, 1, rec.Count(), "accessor warns even when nothing was shared")
}

func TestUsersShared_JSON(t *testing.T) {
	raw := []byte(`{"request_id":789,"user_ids":[101112,101113]}`)

	var shared UsersShared
	require.NoError(t, json.Unmarshal(raw, &shared))
	assert.Equal(t, int64(789), shared.RequestID)
	assert.Equal(t, []int64{101112, 101113}, shared.UserIDs)

	out, err := json.Marshal(shared)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))
}

func TestChatShared_JSON(t *testing.T) {
	raw := []byte(`{"request_id":789,"chat_id":-100123456}`)

	var shared ChatShared
	require.NoError(t, json.Unmarshal(raw, &shared))
	assert.Equal(t, int64(789), shared.RequestID)
	assert.Equal(t, int64(-100123456), shared.ChatID)
}
