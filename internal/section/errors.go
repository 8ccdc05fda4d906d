package section

import (
	"fmt"
	"strings"
)

// MissingGeometryError aborts a calculation: a property the formulas need is
// absent or zero for this section.
type MissingGeometryError struct {
	Section string
	Missing []string
}

func (e *MissingGeometryError) Error() string {
	return fmt.Sprintf("section %q: missing required properties: %s",
		e.Section, strings.Join(e.Missing, ", "))
}

// UnknownFamilyError marks an unsupported section family.
type UnknownFamilyError struct {
	Family string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unsupported section family %q", e.Family)
}

// NotFoundError marks a catalog miss.
type NotFoundError struct {
	Name     string
	Family   Family
	Database string
}

func (e *NotFoundError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("section %q (%s) not found in %s", e.Name, e.Family, e.Database)
	}
	return fmt.Sprintf("section %q not found in %s", e.Name, e.Database)
}

// AmbiguousNameError marks a catalog name that matched several families while
// the caller did not disambiguate.
type AmbiguousNameError struct {
	Name     string
	Families []Family
}

func (e *AmbiguousNameError) Error() string {
	names := make([]string, len(e.Families))
	for i, f := range e.Families {
		names[i] = string(f)
	}
	return fmt.Sprintf("section name %q exists in %d families (%s): specify a family",
		e.Name, len(e.Families), strings.Join(names, ", "))
}
