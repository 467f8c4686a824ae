// Package rbac derives navigation visibility and field-level rights from a
// role's flat permission-code set.
package rbac

// Flag identifies one of the four per-page capability booleans.
type Flag int

const (
	FlagRead Flag = iota
	FlagWrite
	FlagCreate
	FlagDelete
)

// PagePermission holds the four capability flags edited per page.
// Invariants: write implies read, create implies write and read, delete
// implies read.
type PagePermission struct {
	Page   string `json:"page"`
	Read   bool   `json:"read"`
	Write  bool   `json:"write"`
	Create bool   `json:"create"`
	Delete bool   `json:"delete"`
}

// Has reports the current value of a flag.
func (p *PagePermission) Has(f Flag) bool {
	switch f {
	case FlagRead:
		return p.Read
	case FlagWrite:
		return p.Write
	case FlagCreate:
		return p.Create
	case FlagDelete:
		return p.Delete
	}
	return false
}

// Toggle flips a flag and propagates the dependency rules: enabling write,
// create, or delete pulls in the flags they require; disabling read or write
// drops the flags that required them.
func (p *PagePermission) Toggle(f Flag) {
	switch f {
	case FlagRead:
		p.Read = !p.Read
		if !p.Read {
			p.Write, p.Create, p.Delete = false, false, false
		}
	case FlagWrite:
		p.Write = !p.Write
		if p.Write {
			p.Read = true
		} else {
			p.Create = false
		}
	case FlagCreate:
		p.Create = !p.Create
		if p.Create {
			p.Read = true
			p.Write = true
		}
	case FlagDelete:
		p.Delete = !p.Delete
		if p.Delete {
			p.Read = true
		}
	}
}

// Set drives a flag to an explicit value through Toggle, so the same
// propagation applies.
func (p *PagePermission) Set(f Flag, on bool) {
	if p.Has(f) != on {
		p.Toggle(f)
	}
}

// Normalize repairs a grid row that violates the invariants, with grants
// winning: create pulls in write and read, write and delete pull in read.
func (p *PagePermission) Normalize() {
	if p.Create {
		p.Write = true
	}
	if p.Write || p.Delete {
		p.Read = true
	}
}

// Valid reports whether the dependency invariants hold.
func (p *PagePermission) Valid() bool {
	if p.Write && !p.Read {
		return false
	}
	if p.Create && (!p.Write || !p.Read) {
		return false
	}
	if p.Delete && !p.Read {
		return false
	}
	return true
}

// SelectAll toggles one flag column across all rows: if every row already has
// the flag it is cleared everywhere, otherwise it is set everywhere. Each row
// then gets the usual dependency propagation.
func SelectAll(pages []PagePermission, f Flag) {
	all := len(pages) > 0
	for i := range pages {
		if !pages[i].Has(f) {
			all = false
			break
		}
	}
	target := !all
	for i := range pages {
		pages[i].Set(f, target)
	}
}
