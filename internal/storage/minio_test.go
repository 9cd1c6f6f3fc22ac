package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinioClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  MinioConfig
	}{
		{"missing endpoint", MinioConfig{AccessKey: "ak", SecretKey: "sk"}},
		{"missing access key", MinioConfig{Endpoint: "localhost:9000", SecretKey: "sk"}},
		{"missing secret key", MinioConfig{Endpoint: "localhost:9000", AccessKey: "ak"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinioClient(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewMinioClientStripsScheme(t *testing.T) {
	client, err := NewMinioClient(MinioConfig{
		Endpoint:  "https://storage.example.com:9000",
		AccessKey: "ak",
		SecretKey: "sk",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
