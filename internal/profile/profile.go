package profile

// Profile is the authenticated account. At most one profile is current at a
// time; no current profile means guest mode.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarRef string `json:"avatar_ref"`
	Bio       string `json:"bio"`
}
