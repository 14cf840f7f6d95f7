package staging

import (
	"sort"
)

// Area is the staging area: files marked for inclusion in the next commit
// and files marked for removal from tracking, each with its content.
//
// A path is never kept in both maps; staging it one way drops it from the
// other.
//
// Persisted form (.gitlet/stage):
//
//	{"add": {"a.txt": "hello\n"}, "remove": {"old.txt": "bye\n"}}
type Area struct {
	Add    map[string]string `json:"add"`
	Remove map[string]string `json:"remove"`
}

// NewArea creates an empty staging area.
func NewArea() *Area {
	return &Area{
		Add:    make(map[string]string),
		Remove: make(map[string]string),
	}
}

// StageAdd records content for path in the next commit, replacing any
// earlier staged content.
func (a *Area) StageAdd(path, content string) {
	a.Add[path] = content
	delete(a.Remove, path)
}

// StageRemove marks path for removal, recording the content it was tracked with.
func (a *Area) StageRemove(path, content string) {
	a.Remove[path] = content
	delete(a.Add, path)
}

// UnstageAdd drops path from the files to add and reports whether it was there.
func (a *Area) UnstageAdd(path string) bool {
	_, ok := a.Add[path]
	delete(a.Add, path)
	return ok
}

// UnstageRemove drops path from the files to remove and reports whether it was there.
func (a *Area) UnstageRemove(path string) bool {
	_, ok := a.Remove[path]
	delete(a.Remove, path)
	return ok
}

// IsStagedForAdd reports whether path is staged for addition.
func (a *Area) IsStagedForAdd(path string) bool {
	_, ok := a.Add[path]
	return ok
}

// IsStagedForRemove reports whether path is staged for removal.
func (a *Area) IsStagedForRemove(path string) bool {
	_, ok := a.Remove[path]
	return ok
}

// AddedPaths returns the paths staged for addition, sorted.
func (a *Area) AddedPaths() []string {
	return sortedPaths(a.Add)
}

// RemovedPaths returns the paths staged for removal, sorted.
func (a *Area) RemovedPaths() []string {
	return sortedPaths(a.Remove)
}

// IsEmpty reports whether nothing is staged.
func (a *Area) IsEmpty() bool {
	return len(a.Add) == 0 && len(a.Remove) == 0
}

// Count returns the number of staged paths.
func (a *Area) Count() int {
	return len(a.Add) + len(a.Remove)
}

// Clear empties both maps.
func (a *Area) Clear() {
	a.Add = make(map[string]string)
	a.Remove = make(map[string]string)
}

func sortedPaths(m map[string]string) []string {
	paths := make([]string, 0, len(m))
	for p := range m {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
