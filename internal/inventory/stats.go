package inventory

// Stats is a snapshot of derived aggregates over the collection. It is
// recomputed on demand and never cached; the invariant
// ForSaleValue + SoldValue == TotalValue holds for any collection state.
type Stats struct {
	TotalCount   int
	ForSaleCount int
	SoldCount    int
	TotalValue   float64
	ForSaleValue float64
	SoldValue    float64
	AveragePrice float64
}

// Stats computes aggregate counts and valuations for the current collection.
func (s *Store) Stats() Stats {
	items := s.Items()
	var st Stats
	st.TotalCount = len(items)
	for _, it := range items {
		st.TotalValue += it.Price
		switch it.Status {
		case StatusSold:
			st.SoldCount++
			st.SoldValue += it.Price
		default:
			st.ForSaleCount++
			st.ForSaleValue += it.Price
		}
	}
	if st.TotalCount > 0 {
		st.AveragePrice = st.TotalValue / float64(st.TotalCount)
	}
	return st
}

// CategoryDistribution returns the number of items per distinct category,
// for the analytics distribution chart.
func (s *Store) CategoryDistribution() map[string]int {
	dist := make(map[string]int)
	for _, it := range s.Items() {
		dist[it.Category]++
	}
	return dist
}
