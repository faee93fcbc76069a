package gen

import "github.com/qobs-build/ipxact-compile/internal/ipxact"

// FileGroup is a run of consecutive files sharing type and logical name
type FileGroup struct {
	Paths       []string
	FileType    string
	LogicalName *string
}

func (g FileGroup) Library() string {
	if g.LogicalName == nil {
		return ""
	}
	return *g.LogicalName
}

func sameGroup(a, b ipxact.File) bool {
	if a.FileType != b.FileType || a.HasLogicalName() != b.HasLogicalName() {
		return false
	}
	return a.Library() == b.Library()
}

// GroupFiles merges consecutive files with the same type and logical name.
// Non-adjacent files are never merged, so compile order is preserved.
func GroupFiles(files []ipxact.File) []FileGroup {
	var groups []FileGroup
	for i, f := range files {
		if i > 0 && sameGroup(files[i-1], f) {
			last := &groups[len(groups)-1]
			last.Paths = append(last.Paths, f.Path)
			continue
		}
		groups = append(groups, FileGroup{
			Paths:       []string{f.Path},
			FileType:    f.FileType,
			LogicalName: f.LogicalName,
		})
	}
	return groups
}
