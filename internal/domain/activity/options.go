package activity

// ListOptions provides filtering options for listing history.
type ListOptions struct {
	SessionID string
	Type      *Type
	Limit     int
}
