package schedule

import "sort"

// Teams returns the distinct team names appearing in the events, sorted.
// Team identity is just the trimmed name string; there is no roster database.
func Teams(events []Event) []string {
	set := map[string]struct{}{}
	for _, e := range events {
		set[e.HomeTeam] = struct{}{}
		set[e.AwayTeam] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FilterByTeams returns the events in which any of the selected teams play,
// home or away, sorted by start time. The stable sort keeps input order for
// games starting at the same instant, which keeps conflict detection
// deterministic.
func FilterByTeams(events []Event, selected []string) []Event {
	set := map[string]struct{}{}
	for _, name := range selected {
		set[name] = struct{}{}
	}
	var filtered []Event
	for _, e := range events {
		if _, ok := set[e.HomeTeam]; ok {
			filtered = append(filtered, e)
			continue
		}
		if _, ok := set[e.AwayTeam]; ok {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Start.Before(filtered[j].Start)
	})
	return filtered
}
