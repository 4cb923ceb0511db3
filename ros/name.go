package ros

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	Sep       = "/"
	GlobalNS  = "/"
	PrivateNS = "~"
)

type NameMap map[string]string

var validName = regexp.MustCompile(`^[~/]?([a-zA-Z]\w*/)*([a-zA-Z]\w*/?)?$`)

// getNamespace returns the parent namespace of name, with a trailing
// separator.
func getNamespace(name string) string {
	if len(name) == 0 {
		return GlobalNS
	} else if name[len(name)-1] == '/' {
		name = name[:len(name)-1]
	}
	result := name[:strings.LastIndex(name, Sep)+1]
	if len(result) == 0 {
		return Sep
	}
	return result
}

// qualifyNodeName splits a node name into its namespace and base name.
func qualifyNodeName(nodeName string) (string, string, error) {
	if nodeName == "" {
		return "", "", errors.New("empty node name")
	}
	if isPrivateName(nodeName) {
		return "", "", errors.Errorf("node name %q should not contain '~'", nodeName)
	}
	if !isValidName(nodeName) {
		return "", "", errors.Errorf("invalid node name %q", nodeName)
	}
	canonName := canonicalizeName(nodeName)
	base := canonName[strings.LastIndex(canonName, Sep)+1:]
	if base == "" {
		return "", "", errors.Errorf("invalid node name %q", nodeName)
	}
	return canonicalizeName(getNamespace(GlobalNS + canonName)), base, nil
}

// resolveName expands name to a global name. Relative names live in
// namespace and private names below namespace/nodeName.
func resolveName(name string, namespace string, nodeName string) string {
	if len(name) == 0 {
		return canonicalizeName(namespace)
	}
	canonName := canonicalizeName(name)
	switch {
	case isGlobalName(canonName):
		return canonName
	case isPrivateName(canonName):
		return canonicalizeName(GlobalNS + namespace + Sep + nodeName + Sep + canonName[1:])
	default:
		return canonicalizeName(GlobalNS + namespace + Sep + canonName)
	}
}

func isValidName(name string) bool {
	return validName.MatchString(name)
}

func isGlobalName(name string) bool {
	return len(name) > 0 && name[0:1] == GlobalNS
}

func isPrivateName(name string) bool {
	return len(name) > 0 && name[0:1] == PrivateNS
}

// Remove sequential separators and the trailing one
func canonicalizeName(name string) string {
	if name == "" || name == GlobalNS {
		return name
	}
	components := []string{}
	for _, word := range strings.Split(name, Sep) {
		if len(word) > 0 {
			components = append(components, word)
		}
	}
	if name[0:1] == GlobalNS {
		return GlobalNS + strings.Join(components, Sep)
	}
	return strings.Join(components, Sep)
}

// NameResolver resolves names against a node's namespace and applies the
// remappings given on the command line.
type NameResolver struct {
	nodeName  string
	namespace string
	mapping   NameMap
}

func newNameResolver(namespace string, nodeName string, remapping NameMap) *NameResolver {
	n := new(NameResolver)
	n.namespace = canonicalizeName(GlobalNS + namespace)
	n.nodeName = nodeName
	n.mapping = make(NameMap)
	for k, v := range remapping {
		n.mapping[n.resolve(k)] = n.resolve(v)
	}
	return n
}

func (n *NameResolver) resolve(name string) string {
	return resolveName(name, n.namespace, n.nodeName)
}

func (n *NameResolver) remap(name string) string {
	r := n.resolve(name)
	if remapped, ok := n.mapping[r]; ok {
		return remapped
	}
	return r
}
