package auth

// Authorize allows a mutation only when identity is the recorded author.
// It is applied before edits and deletes, never to creation or reads.
func Authorize(identity, authorID string) error {
	if identity == "" || identity != authorID {
		return ErrForbidden
	}
	return nil
}
