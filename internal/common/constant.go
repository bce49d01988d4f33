package common

// AuthHeaderName is the HTTP header used to carry the session token on
// inbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the conventional prefix for the carried credential. The
// prefix is optional: a raw value without it is treated as the token itself.
const AuthScheme = "Bearer"
