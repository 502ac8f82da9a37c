package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/rpg-session-api/internal/dice"
	"github.com/KirkDiggler/rpg-session-api/internal/handlers/session/v1alpha1"
)

func TestCodec_IsRegistered(t *testing.T) {
	assert.NotNil(t, encoding.GetCodec(v1alpha1.CodecName))
}

func TestCodec_PlainMessages(t *testing.T) {
	codec := v1alpha1.Codec{}

	data, err := codec.Marshal(&v1alpha1.RollDiceRequest{
		SessionID: "ses_1",
		Spec:      dice.Spec{Dice: []dice.Die{dice.D20}, Modifier: -1},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"session_id":"ses_1","spec":{"dice":["d20"],"modifier":-1}}`, string(data))

	var decoded v1alpha1.RollDiceRequest
	require.NoError(t, codec.Unmarshal(data, &decoded))
	assert.Equal(t, "ses_1", decoded.SessionID)
	assert.Equal(t, int32(-1), decoded.Spec.Modifier)

	assert.Error(t, codec.Unmarshal([]byte("{"), &decoded))
}

func TestCodec_ProtoMessagesUseProtoJSON(t *testing.T) {
	codec := v1alpha1.Codec{}

	data, err := codec.Marshal(wrapperspb.String("goblin"))
	require.NoError(t, err)
	assert.JSONEq(t, `"goblin"`, string(data))

	decoded := &wrapperspb.StringValue{}
	require.NoError(t, codec.Unmarshal(data, decoded))
	assert.Equal(t, "goblin", decoded.GetValue())
}
