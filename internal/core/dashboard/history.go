package dashboard

import "strings"

// MaxHistory bounds the number of remembered searches
const MaxHistory = 5

// SearchHistory lists previously resolved city names, most recent first
type SearchHistory []string

// Add returns a new history with city moved to the front. Existing entries
// equal to city ignoring case are removed and the oldest entry is evicted
// beyond MaxHistory.
func (h SearchHistory) Add(city string) SearchHistory {
	city = strings.TrimSpace(city)
	if city == "" {
		return h.clone()
	}

	out := make(SearchHistory, 0, MaxHistory)
	out = append(out, city)
	for _, entry := range h {
		if strings.EqualFold(entry, city) {
			continue
		}
		if len(out) == MaxHistory {
			break
		}
		out = append(out, entry)
	}
	return out
}

// At returns the entry at index i
func (h SearchHistory) At(i int) (string, bool) {
	if i < 0 || i >= len(h) {
		return "", false
	}
	return h[i], true
}

// Normalize drops blanks and case-insensitive duplicates and applies the cap.
// It is applied to histories read back from storage.
func (h SearchHistory) Normalize() SearchHistory {
	out := make(SearchHistory, 0, MaxHistory)
	for _, entry := range h {
		entry = strings.TrimSpace(entry)
		if entry == "" || out.contains(entry) {
			continue
		}
		out = append(out, entry)
		if len(out) == MaxHistory {
			break
		}
	}
	return out
}

func (h SearchHistory) contains(city string) bool {
	for _, entry := range h {
		if strings.EqualFold(entry, city) {
			return true
		}
	}
	return false
}

func (h SearchHistory) clone() SearchHistory {
	out := make(SearchHistory, len(h))
	copy(out, h)
	return out
}
