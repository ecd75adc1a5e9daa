package github

// The field names below map onto the GraphQL schema by githubv4's
// lower-camel-case convention; tags only carry arguments.

type statsQuery struct {
	User User `graphql:"user(login: $login)"`
}

type User struct {
	Login                   string
	Name                    string
	Repositories            RepositoryConnection `graphql:"repositories(ownerAffiliations: OWNER, first: 100)"`
	ContributionsCollection Contributions
}

type RepositoryConnection struct {
	Nodes []Repository
}

type Repository struct {
	IsArchived     bool
	IsFork         bool
	StargazerCount int
	Languages      LanguageConnection `graphql:"languages(first: 50)"`
}

type LanguageConnection struct {
	Edges []LanguageEdge
}

type LanguageEdge struct {
	Size int64
	Node Language
}

type Language struct {
	Name string
}

type Contributions struct {
	TotalCommitContributions      int
	TotalPullRequestContributions int
	TotalIssueContributions       int
	ContributionCalendar          ContributionCalendar
}

type ContributionCalendar struct {
	TotalContributions int
}
