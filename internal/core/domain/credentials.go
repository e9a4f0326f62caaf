package domain

import "time"

// Credentials holds the signed-in user's OAuth tokens and identity.
// There is exactly one set per installation: StorySpark is a
// single-user tool.
type Credentials struct {
	// AccessToken is the current OAuth access token.
	AccessToken string `json:"access_token"`

	// RefreshToken allows obtaining a new access token when the
	// current one expires. May be empty if the provider withheld it.
	RefreshToken string `json:"refresh_token,omitempty"`

	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry"`

	// Account is the Google account email the tokens belong to.
	Account string `json:"account"`

	// Name is the account's display name.
	Name string `json:"name,omitempty"`
}

// Expired reports whether the access token is past its expiry.
// A zero Expiry means the token never expires.
func (c Credentials) Expired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}
