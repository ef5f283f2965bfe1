package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"skillswitch-service/src/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinioStorageDisabledWithoutEndpoint(t *testing.T) {
	s, err := NewMinioStorage(Config{}, log.Discard())
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = NewMinioStorage(Config{Endpoint: "localhost:9000"}, log.Discard())
	assert.Error(t, err)
}

func TestDownloadURLIsPresigned(t *testing.T) {
	s, err := NewMinioStorage(Config{
		Endpoint:  "files.skillswitch.local:9000",
		AccessKey: "access",
		SecretKey: "secret-key-123",
		Bucket:    "resources",
		Region:    "us-east-1",
		Expiry:    5 * time.Minute,
	}, log.Discard())
	require.NoError(t, err)

	raw, err := s.DownloadURL(context.Background(), "resources/3.pdf", "Calculus Formula Sheet.pdf")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "files.skillswitch.local:9000", u.Host)
	assert.Equal(t, "/resources/resources/3.pdf", u.Path)
	q := u.Query()
	assert.Equal(t, "300", q.Get("X-Amz-Expires"))
	assert.NotEmpty(t, q.Get("X-Amz-Signature"))
	assert.Contains(t, q.Get("response-content-disposition"), `filename="Calculus Formula Sheet.pdf"`)
}
