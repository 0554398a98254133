package services

// Authorized reports whether the actor may mutate a resource: true iff the
// actor is the resource's owner. Ownership is permanent, so this comparison
// never goes stale between the check and the mutation.
func Authorized(actorID, ownerID int) bool {
	return actorID == ownerID
}
