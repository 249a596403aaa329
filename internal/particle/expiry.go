package particle

// Expiry decides the fate of an entity whose lifetime ran out.
type Expiry uint8

const (
	// ExpiryNone keeps expired entities untouched.
	ExpiryNone Expiry = iota
	// ExpiryRespawn reassigns position and lifetime from a fresh spawn.
	ExpiryRespawn
	// ExpiryRemove drops the entity from its population.
	ExpiryRemove
)

func (x Expiry) String() string {
	switch x {
	case ExpiryRespawn:
		return "respawn"
	case ExpiryRemove:
		return "remove"
	default:
		return "none"
	}
}
