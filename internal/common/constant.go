package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token minted after a successful verification.
const AccessTokenHeaderName = "access_token"
