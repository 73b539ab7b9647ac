package format

import (
	"path/filepath"
	"sort"
	"strings"
)

// treeNode is a nested directory map; files carry a nil child map.
type treeNode map[string]treeNode

// Tree renders the discovered files as an indented tree rooted at root.
// Entries are sorted case-insensitively so the output is deterministic.
// Files outside root are silently dropped.
func Tree(files []string, root string) string {
	tree := treeNode{}
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		cur := tree
		for _, part := range parts[:len(parts)-1] {
			next := cur[part]
			if next == nil {
				next = treeNode{}
				cur[part] = next
			}
			cur = next
		}
		if _, ok := cur[parts[len(parts)-1]]; !ok {
			cur[parts[len(parts)-1]] = nil
		}
	}

	var b strings.Builder
	renderTree(&b, tree, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func renderTree(b *strings.Builder, node treeNode, prefix string) {
	names := make([]string, 0, len(node))
	for name := range node {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	for i, name := range names {
		last := i == len(names)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteByte('\n')

		if child := node[name]; child != nil {
			extension := "│   "
			if last {
				extension = "    "
			}
			renderTree(b, child, prefix+extension)
		}
	}
}
