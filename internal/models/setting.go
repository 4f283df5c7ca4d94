package models

import "time"

// Setting is a single key/value configuration row. The only key in use today
// is the exchange-rate endpoint URL, which must survive restarts even though
// the rate table itself does not.
type Setting struct {
	Key           string    `json:"key"` // Primary Key
	Value         string    `json:"value"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SettingKeyRateURL is the settings row holding the exchange-rate endpoint URL.
const SettingKeyRateURL = "exchange_rate_url"
