package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodec_PlainMessages(t *testing.T) {
	c := Codec{}
	b, err := c.Marshal(&LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","password":"p"}`, string(b))

	var out LoginRequest
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, LoginRequest{Email: "a@x.com", Password: "p"}, out)

	require.Error(t, c.Unmarshal([]byte("{"), &out))
}

func TestCodec_ProtoMessages(t *testing.T) {
	c := Codec{}
	b, err := c.Marshal(&healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING})
	require.NoError(t, err)
	assert.Contains(t, string(b), "SERVING")

	var out healthpb.HealthCheckResponse
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, out.GetStatus())
}
