package domain

// CommitEntry is one commit as read from a repository's history.
// Title is the first line of the message, Body the rest.
type CommitEntry struct {
	Hash  string
	Title string
	Body  string
}

// CommitLog reads recent commits from a local repository.
type CommitLog interface {
	Recent(path string, limit int) ([]CommitEntry, error)
}

// PolicyLoader loads the compliance policy for a project.
type PolicyLoader interface {
	Load(projectPath string) (Policy, error)
}
