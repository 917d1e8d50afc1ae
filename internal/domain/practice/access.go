package practice

import "errors"

var (
	ErrPremiumRequired = errors.New("premium required for this practice set")
	ErrNotOwner        = errors.New("session belongs to another user")
)

// CheckAccess enforces premium gating. A missing profile is treated as a
// non-premium user.
func CheckAccess(set *PracticeSet, profile *Profile) error {
	if !set.IsPremium {
		return nil
	}
	if profile != nil && profile.IsPremium {
		return nil
	}
	return ErrPremiumRequired
}

// CheckOwner fails unless the session was started by userID.
func (s *Session) CheckOwner(userID string) error {
	if s.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
