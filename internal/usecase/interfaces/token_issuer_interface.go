package interfaces

import "time"

// ITokenIssuer signs access tokens for authenticated staff.
type ITokenIssuer interface {
	Issue(subject string, roles []string) (token string, expiresAt time.Time, err error)
}
