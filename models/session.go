package models

import "time"

// Session is owned by the session store, not the database; the cookie
// only carries the opaque token.
type Session struct {
	Token     string    `json:"token"`
	AdminID   uint      `json:"admin_id"`
	Username  string    `json:"username"`
	Role      AdminRole `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AdminIdentity is the resolved caller of an authenticated request.
type AdminIdentity struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     AdminRole `json:"role"`
}
