package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"
)

func TestMarshaledRestoresVariant(t *testing.T) {
	w := NewWebhookUser(testUserID, 223704706495545344, 197038439483310086)
	require.NoError(t, w.Update(fullPayload()))

	b, err := msgpack.Marshal(w.Marshaled())
	require.NoError(t, err)

	var ma MarshalUser
	require.NoError(t, msgpack.Unmarshal(b, &ma))

	u := FromMarshaled(ma)
	require.IsType(t, &WebhookUser{}, u)
	assert.Equal(t, w, u)
}

func TestMarshaledPlainUser(t *testing.T) {
	u := NewUser(testUserID)
	u.Username = "Ada"

	restored := FromMarshaled(u.Marshaled())
	require.IsType(t, &User{}, restored)
	assert.False(t, restored.IsWebhook())
	assert.Equal(t, u, restored)
}
