package auth

import "time"

// JWTIssuer signs and checks HS256 access tokens with a fixed secret and
// lifetime.
type JWTIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewJWTIssuer(secret []byte, validity time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: secret, validity: validity}
}

func (i *JWTIssuer) Issue(userName, sessionID string) (string, error) {
	return GenerateToken(userName, sessionID, i.secret, i.validity)
}

func (i *JWTIssuer) Parse(token string) (userName, sessionID string, err error) {
	claims, err := ParseToken(token, i.secret)
	if err != nil {
		return "", "", err
	}
	return claims.UserName(), claims.SessionID(), nil
}
