package domain

// Distribution maps a distinct record name to its occurrence count.
type Distribution map[string]int

// RankEntry is one (name, count) pair of a Ranking.
type RankEntry struct {
	Name  string
	Count int
}

// Ranking holds distribution entries ordered by descending count.
// Entries with equal counts keep the order in which their name first
// appeared in the input.
type Ranking []RankEntry

// Summary is the aggregate view of a fetched collection.
type Summary struct {
	Total        int
	Distribution Distribution
	Ranking      Ranking
}

// Distinct reports how many different names the summary covers.
func (s Summary) Distinct() int {
	return len(s.Distribution)
}

// Top returns the highest-ranked entry, if any.
func (s Summary) Top() (RankEntry, bool) {
	if len(s.Ranking) == 0 {
		return RankEntry{}, false
	}
	return s.Ranking[0], true
}

// ChartData is the categorical series a renderer draws: Labels[i] is
// the category for Counts[i]. Renderers must reject mismatched lengths.
type ChartData struct {
	Labels []string
	Counts []int
}

// ChartData lays the summary out in ranking order, one bar per name.
func (s Summary) ChartData() ChartData {
	data := ChartData{
		Labels: make([]string, 0, len(s.Ranking)),
		Counts: make([]int, 0, len(s.Ranking)),
	}
	for _, e := range s.Ranking {
		data.Labels = append(data.Labels, e.Name)
		data.Counts = append(data.Counts, e.Count)
	}
	return data
}
