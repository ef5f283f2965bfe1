package config

import (
	"skillswitch-service/src/internal/gateway/ai"
	"skillswitch-service/src/internal/gateway/identity"
	"skillswitch-service/src/internal/gateway/storage"
	"skillswitch-service/src/pkg/log"

	"github.com/spf13/viper"
)

// NewGenerator returns nil when no Gemini key is configured; callers treat nil as "AI disconnected".
func NewGenerator(v *viper.Viper, logger log.Log) ai.Generator {
	client := ai.NewGeminiClient(ai.Config{
		BaseURL: v.GetString("thirdparty.gemini.base_url"),
		Model:   v.GetString("thirdparty.gemini.model"),
		APIKey:  v.GetString("thirdparty.gemini.api_key"),
		Timeout: v.GetDuration("thirdparty.gemini.timeout"),
	}, logger)
	if client == nil {
		logger.Info("thirdparty-config", "gemini api key not set, AI features disabled", "NewGenerator", "")
		return nil
	}
	return client
}

// NewIdentityVerifier returns nil when Google sign-in is not configured.
func NewIdentityVerifier(v *viper.Viper, logger log.Log) identity.Verifier {
	verifier := identity.NewGoogleVerifier(identity.Config{
		TokenInfoURL: v.GetString("thirdparty.google.tokeninfo_url"),
		ClientID:     v.GetString("thirdparty.google.client_id"),
		Timeout:      v.GetDuration("thirdparty.google.timeout"),
	}, logger)
	if verifier == nil {
		logger.Info("thirdparty-config", "google client id not set, provider sign-in disabled", "NewIdentityVerifier", "")
		return nil
	}
	return verifier
}

// NewFileStorage returns nil when no object store is configured; downloads then carry no link.
func NewFileStorage(v *viper.Viper, logger log.Log) storage.FileLinker {
	files, err := storage.NewMinioStorage(storage.Config{
		Endpoint:  v.GetString("storage.endpoint"),
		AccessKey: v.GetString("storage.access_key"),
		SecretKey: v.GetString("storage.secret_key"),
		Bucket:    v.GetString("storage.bucket"),
		Region:    v.GetString("storage.region"),
		UseSSL:    v.GetBool("storage.use_ssl"),
		Expiry:    v.GetDuration("storage.link_expiry"),
	}, logger)
	if err != nil {
		panic(err)
	}
	if files == nil {
		logger.Info("thirdparty-config", "object storage not configured, download links disabled", "NewFileStorage", "")
		return nil
	}
	return files
}
