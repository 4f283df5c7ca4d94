package services

import "context"

// SettingsSvcFacade manages the persisted exchange-rate endpoint URL. The URL
// survives restarts; the rate table itself resets to the fallback until a
// caller explicitly reloads.
type SettingsSvcFacade interface {
	GetRateURL(ctx context.Context) (string, error)
	SetRateURL(ctx context.Context, url string) error
	ClearRateURL(ctx context.Context) error
}
