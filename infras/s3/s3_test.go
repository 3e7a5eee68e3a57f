package s3_test

import (
	"testing"

	"venuebook/config"
	"venuebook/infras/otel/mocks"
	"venuebook/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "http://minio:9000"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"
	cfg.External.S3.BucketName = "venues"

	client := s3.New(cfg, mocks.NewOtel())

	assert.Equal(t, "venues/v1/cover.png", client.GetObjectNameFromURL("", "https://cdn.example.com/venues/v1/cover.png"))
	assert.Equal(t, "venues/v1/cover.png", client.GetObjectNameFromURL("", "http://minio:9000/venues/venues/v1/cover.png"))
	assert.Empty(t, client.GetObjectNameFromURL("", "https://elsewhere.example.com/a.png"))
	assert.Empty(t, client.GetObjectNameFromURL("", ""))
}
