package github

import "github.com/vukan322/statcards/internal/core"

// Aggregate folds a user response into a Snapshot. Only repositories accepted
// by filter contribute stars and language bytes; contribution counters are
// copied as-is. user is not modified.
func Aggregate(user User, filter core.RepositoryFilter) core.Snapshot {
	included := includedRepos(user.Repositories.Nodes, filter)

	stats := core.Snapshot{
		Login:                user.Login,
		DisplayName:          pickName(user),
		Stars:                sumStars(included),
		Commits:              user.ContributionsCollection.TotalCommitContributions,
		PullRequests:         user.ContributionsCollection.TotalPullRequestContributions,
		Issues:               user.ContributionsCollection.TotalIssueContributions,
		Contributions:        user.ContributionsCollection.ContributionCalendar.TotalContributions,
		RepositoryCount:      len(user.Repositories.Nodes),
		IncludedRepositories: len(included),
	}

	for _, r := range included {
		for _, edge := range r.Languages.Edges {
			stats.Languages.Add(edge.Node.Name, edge.Size)
		}
	}

	return stats
}

func includedRepos(repos []Repository, filter core.RepositoryFilter) []Repository {
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if filter.Includes(r.IsArchived, r.IsFork) {
			out = append(out, r)
		}
	}
	return out
}

func sumStars(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.StargazerCount
	}
	return total
}

func pickName(u User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
