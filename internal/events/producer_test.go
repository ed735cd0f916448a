package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledProducerIsNoOp(t *testing.T) {
	p := NewProducer("")

	err := p.Publish(context.Background(), "user_events", "1", map[string]interface{}{
		"type": "user_registered",
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestZeroValueProducerIsNoOp(t *testing.T) {
	var p Producer
	require.NoError(t, p.Publish(context.Background(), "t", "k", nil))
	require.NoError(t, p.Close())
}
