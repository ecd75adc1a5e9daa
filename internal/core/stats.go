package core

// LanguageUsage is the cumulative byte size of one language.
type LanguageUsage struct {
	Name  string
	Bytes int64
}

// LanguageBytes accumulates byte sizes per language. It keeps the order in
// which languages were first seen so that rankings over it are reproducible.
// The zero value is ready to use.
type LanguageBytes struct {
	order []string
	sizes map[string]int64
}

// Add adds size bytes to the running total for name. Negative sizes count as zero.
func (l *LanguageBytes) Add(name string, size int64) {
	if size < 0 {
		size = 0
	}
	if l.sizes == nil {
		l.sizes = make(map[string]int64)
	}
	if _, ok := l.sizes[name]; !ok {
		l.order = append(l.order, name)
	}
	l.sizes[name] += size
}

func (l LanguageBytes) Bytes(name string) int64 {
	return l.sizes[name]
}

func (l LanguageBytes) Len() int {
	return len(l.order)
}

func (l LanguageBytes) Total() int64 {
	var total int64
	for _, size := range l.sizes {
		total += size
	}
	return total
}

// Entries returns a copy of the accumulated sizes in first-seen order.
func (l LanguageBytes) Entries() []LanguageUsage {
	out := make([]LanguageUsage, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, LanguageUsage{Name: name, Bytes: l.sizes[name]})
	}
	return out
}

// RepositoryFilter selects which upstream repositories count toward a Snapshot.
type RepositoryFilter struct {
	IncludeArchived bool
	IncludeForks    bool
}

func (f RepositoryFilter) Includes(archived, fork bool) bool {
	if archived && !f.IncludeArchived {
		return false
	}
	if fork && !f.IncludeForks {
		return false
	}
	return true
}

// Snapshot is the aggregated activity of one account. It is built once per
// run and only read afterwards.
type Snapshot struct {
	Login       string
	DisplayName string

	Stars         int
	Commits       int
	PullRequests  int
	Issues        int
	Contributions int

	RepositoryCount      int
	IncludedRepositories int

	Languages LanguageBytes
}

// Name returns the display name, or the login when none is set.
func (s Snapshot) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Login
}
