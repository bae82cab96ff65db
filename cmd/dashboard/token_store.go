package main

import (
	"context"
)

// tokenSettingKey is the settings row holding the backend bearer token
const tokenSettingKey = "backend_token"

// settingStore is the part of the settings repository the token store needs
type settingStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// tokenStore adapts the settings repository to api.TokenStore
type tokenStore struct {
	settings settingStore
}

// LoadToken returns the persisted token, empty if none was saved
func (s *tokenStore) LoadToken(ctx context.Context) (string, error) {
	return s.settings.GetSetting(ctx, tokenSettingKey)
}

// SaveToken persists the token
func (s *tokenStore) SaveToken(ctx context.Context, token string) error {
	return s.settings.SetSetting(ctx, tokenSettingKey, token)
}

// ClearToken drops the persisted token
func (s *tokenStore) ClearToken(ctx context.Context) error {
	return s.settings.DeleteSetting(ctx, tokenSettingKey)
}
