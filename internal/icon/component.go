package icon

import (
	"fmt"
	"strings"
)

// ComponentName identifies an application activity: its package and class.
type ComponentName struct {
	Package string
	Class   string
}

// ParseComponentName parses "pkg/cls" or "pkg/.Cls". A bare package is
// accepted with an empty class. Short class names are expanded against the
// package.
func ParseComponentName(s string) (ComponentName, error) {
	s = strings.TrimSpace(s)
	pkg, cls, _ := strings.Cut(s, "/")
	pkg = strings.TrimSpace(pkg)
	cls = strings.TrimSpace(cls)
	if pkg == "" {
		return ComponentName{}, fmt.Errorf("invalid component name %q: package is required", s)
	}
	if strings.HasPrefix(cls, ".") {
		cls = pkg + cls
	}
	return ComponentName{Package: pkg, Class: cls}, nil
}

// String returns the flattened "pkg/cls" form.
func (c ComponentName) String() string {
	if c.Class == "" {
		return c.Package
	}
	return c.Package + "/" + c.Class
}
