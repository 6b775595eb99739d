package season

// Season is one entry of the league's season catalog. HasData is resolved per
// request against the statistics store and is never persisted.
type Season struct {
	ID      int64
	Name    string
	HasData bool
}
