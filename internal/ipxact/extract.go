package ipxact

import "fmt"

type Violation int

const (
	Missing Violation = iota
	Multiple
	Empty
)

// ElementError reports an element that is absent, repeated or empty where
// the descriptor requires exactly one with content.
type ElementError struct {
	// Where names the element that was searched, e.g. "xml" or "file 3"
	Where     string
	Element   string
	Top       bool
	Violation Violation
}

func (e *ElementError) Error() string {
	top := ""
	if e.Top {
		top = "top "
	}
	tag := "<" + e.Element + "></" + e.Element + ">"
	switch e.Violation {
	case Multiple:
		return fmt.Sprintf("%s contains multiple %s%s elements", e.Where, top, tag)
	case Empty:
		return fmt.Sprintf("%s contains an empty %s%s element", e.Where, top, tag)
	default:
		return fmt.Sprintf("%s contains no %s%s element", e.Where, top, tag)
	}
}

const (
	elemName        = "name"
	elemFileSets    = "fileSets"
	elemFileSet     = "fileSet"
	elemFile        = "file"
	elemFileType    = "fileType"
	elemLogicalName = "logicalName"
)

func exactlyOne(parent *element, local, where string, top bool) (*element, error) {
	nodes := parent.children(local)
	switch len(nodes) {
	case 0:
		return nil, &ElementError{Where: where, Element: local, Top: top, Violation: Missing}
	case 1:
		return nodes[0], nil
	default:
		return nil, &ElementError{Where: where, Element: local, Top: top, Violation: Multiple}
	}
}

func requiredText(parent *element, local, where string, top bool) (string, error) {
	node, err := exactlyOne(parent, local, where, top)
	if err != nil {
		return "", err
	}
	text := node.text()
	if text == "" {
		return "", &ElementError{Where: where, Element: local, Top: top, Violation: Empty}
	}
	return text, nil
}

func extract(root *element) (*Component, error) {
	name, err := extractTopName(root)
	if err != nil {
		return nil, err
	}

	fileSet, warnings, err := extractFileSet(root)
	if err != nil {
		return nil, err
	}

	fileSetName, err := requiredText(fileSet, elemName, elemFileSet, false)
	if err != nil {
		return nil, err
	}

	files, err := extractFiles(fileSet)
	if err != nil {
		return nil, err
	}

	return &Component{
		Name:     name,
		FileSet:  FileSet{Name: fileSetName, Files: files},
		Warnings: warnings,
	}, nil
}

func extractTopName(root *element) (string, error) {
	return requiredText(root, elemName, "xml", true)
}

// extractFileSet returns the first <fileSet> of the single top <fileSets>
func extractFileSet(root *element) (*element, []string, error) {
	fileSets, err := exactlyOne(root, elemFileSets, "xml", true)
	if err != nil {
		return nil, nil, err
	}

	nodes := fileSets.children(elemFileSet)
	if len(nodes) == 0 {
		return nil, nil, &ElementError{Where: "xml", Element: elemFileSet, Violation: Missing}
	}

	var warnings []string
	if len(nodes) > 1 {
		warnings = append(warnings, fmt.Sprintf("xml contains multiple <%s></%s> elements, will use the first one", elemFileSet, elemFileSet))
	}
	return nodes[0], warnings, nil
}

func extractFiles(fileSet *element) ([]File, error) {
	nodes := fileSet.children(elemFile)
	files := make([]File, 0, len(nodes))
	for i, node := range nodes {
		where := fmt.Sprintf("file %d", i+1)

		path, err := requiredText(node, elemName, where, false)
		if err != nil {
			return nil, err
		}
		fileType, err := requiredText(node, elemFileType, where, false)
		if err != nil {
			return nil, err
		}

		f := File{Path: path, FileType: fileType}
		switch logical := node.children(elemLogicalName); len(logical) {
		case 0:
		case 1:
			lib := logical[0].text()
			if lib == "" {
				return nil, &ElementError{Where: where, Element: elemLogicalName, Violation: Empty}
			}
			f.LogicalName = &lib
		default:
			return nil, &ElementError{Where: where, Element: elemLogicalName, Violation: Multiple}
		}
		files = append(files, f)
	}
	return files, nil
}
