package contract

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/harrisonrobin/planus/pkg/model"
)

const maxSuggestions = 3

// Suggest ranks schedule task names against each missing activity with a
// subsequence matcher and keeps the best few distinct names. Activities with
// no candidate are left out.
func Suggest(missing []string, tasks []model.Task) map[string][]string {
	if len(missing) == 0 || len(tasks) == 0 {
		return nil
	}
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = strings.ToLower(t.Name)
	}

	out := map[string][]string{}
	for _, act := range missing {
		var picks []string
		seen := map[string]bool{}
		for _, m := range fuzzy.Find(strings.ToLower(act), names) {
			name := tasks[m.Index].Name
			if seen[name] {
				continue
			}
			seen[name] = true
			picks = append(picks, name)
			if len(picks) == maxSuggestions {
				break
			}
		}
		if len(picks) > 0 {
			out[act] = picks
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
