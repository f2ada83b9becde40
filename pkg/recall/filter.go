package recall

import "strings"

// FilterCritical returns the records flagged as critical safety recalls
// (do-not-drive or park-outside), preserving input order.
func FilterCritical(records []*Record) []*Record {
	var critical []*Record
	for _, r := range records {
		if r.IsCriticalSafety() {
			critical = append(critical, r)
		}
	}
	return critical
}

// FilterByComponent returns the records whose Component contains keyword as
// a case-insensitive substring, preserving input order. Records without a
// component never match. An empty keyword returns the input unchanged.
func FilterByComponent(records []*Record, keyword string) []*Record {
	if keyword == "" {
		return records
	}
	keyword = strings.ToLower(keyword)

	var matched []*Record
	for _, r := range records {
		if r.Component != "" && strings.Contains(strings.ToLower(r.Component), keyword) {
			matched = append(matched, r)
		}
	}
	return matched
}

// UnknownYear is the group key for records without a model year.
const UnknownYear = "Unknown"

// YearGroup holds the recalls sharing one model year.
type YearGroup struct {
	Year    string
	Records []*Record
}

// GroupByYear partitions records by model year. Groups appear in the order
// each year is first encountered, records keep their relative order within a
// group, and records without a model year fall under [UnknownYear].
func GroupByYear(records []*Record) []YearGroup {
	index := make(map[string]int)
	var groups []YearGroup

	for _, r := range records {
		year := r.ModelYear
		if year == "" {
			year = UnknownYear
		}
		i, ok := index[year]
		if !ok {
			i = len(groups)
			index[year] = i
			groups = append(groups, YearGroup{Year: year})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}
