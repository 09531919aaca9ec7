package attrib

// Component is the attribute contract a geometry component fulfills.
// A component borrows exactly one geometry buffer, which may be
// absent; an absent buffer is the "no geometry present" state, not an
// error, and makes every domain empty.
//
// Lookups return nil for names that do not resolve; Create and Delete
// report success with a bool. None of these are error conditions.
type Component interface {
	// SupportsDomain reports whether the component has the domain at all.
	SupportsDomain(domain Domain) bool

	// SupportsDataType reports whether user-created attributes of the
	// given (domain, type) combination are legal on this component.
	SupportsDataType(domain Domain, dtype DataType) bool

	// DomainLen returns the element count of a domain: 0 when the
	// geometry buffer is absent. Asking for an unsupported domain is a
	// programmer error and panics.
	DomainLen(domain Domain) int

	// IsBuiltin reports whether the name is reserved for a builtin
	// attribute. Builtins cannot be created or deleted through the
	// generic paths.
	IsBuiltin(name string) bool

	// Read resolves a name to a read attribute, or nil.
	Read(name string) ReadAttribute

	// Write resolves a name to a writable attribute, or nil.
	Write(name string) WriteAttribute

	// AdaptDomain converts an attribute to the target domain, or
	// returns nil when the conversion is unsupported. Components in
	// this package only support the identity adaptation.
	AdaptDomain(attr ReadAttribute, domain Domain) ReadAttribute

	// Create adds a new zero-initialized named attribute and reports
	// whether it was created. Creation fails for builtin names, names
	// already in use, and unsupported (domain, type) combinations.
	Create(name string, domain Domain, dtype DataType) bool

	// Delete removes a non-builtin named attribute and reports whether
	// a matching entry was found and removed.
	Delete(name string) bool
}

// BaseComponent provides the conservative defaults of the component
// contract, for embedding: no domains, no attributes, and every name
// treated as builtin so that a component which forgets to override
// IsBuiltin cannot create or delete names it does not understand.
type BaseComponent struct{}

// SupportsDomain reports false: the base supports no domains.
func (BaseComponent) SupportsDomain(Domain) bool { return false }

// SupportsDataType reports false: the base supports no attribute types.
func (BaseComponent) SupportsDataType(Domain, DataType) bool { return false }

// DomainLen panics: the base has no supported domains.
func (BaseComponent) DomainLen(domain Domain) int {
	panic("attrib: domain " + domain.String() + " not supported by component")
}

// IsBuiltin reports true for every name. The restrictive default
// protects unknown names from the generic create and delete paths.
func (BaseComponent) IsBuiltin(string) bool { return true }

// Read resolves nothing.
func (BaseComponent) Read(string) ReadAttribute { return nil }

// Write resolves nothing.
func (BaseComponent) Write(string) WriteAttribute { return nil }

// AdaptDomain only succeeds when the attribute already has the target
// domain. Cross-domain interpolation is an extension point; the base
// reports it unsupported by returning nil.
func (BaseComponent) AdaptDomain(attr ReadAttribute, domain Domain) ReadAttribute {
	return adaptIdentity(attr, domain)
}

// Create always fails on the base.
func (BaseComponent) Create(string, Domain, DataType) bool { return false }

// Delete always fails on the base.
func (BaseComponent) Delete(string) bool { return false }

// adaptIdentity is the shared identity-only domain adaptation.
func adaptIdentity(attr ReadAttribute, domain Domain) ReadAttribute {
	if attr != nil && attr.Domain() == domain {
		return attr
	}
	return nil
}

// ReadTyped resolves a name to a read attribute with exactly the
// requested domain and type, or nil. The attribute's domain is
// adapted when it differs from the requested one; a type mismatch is
// never converted.
func ReadTyped(c Component, name string, domain Domain, dtype DataType) ReadAttribute {
	if !c.SupportsDataType(domain, dtype) {
		return nil
	}
	attr := c.Read(name)
	if attr == nil {
		return nil
	}
	if attr.Domain() != domain {
		attr = c.AdaptDomain(attr, domain)
		if attr == nil {
			return nil
		}
	}
	if attr.DataType() != dtype {
		// No implicit conversion between attribute types.
		return nil
	}
	return attr
}

// ReadWithDefault resolves like ReadTyped but never returns nil: any
// failure yields a constant attribute holding def, sized to the
// domain's element count. This is the entry point generic algorithms
// should prefer.
//
// def must hold the Go type matching dtype, and domain must be
// supported by the component (an unsupported domain is a programmer
// error and panics in DomainLen).
func ReadWithDefault(c Component, name string, domain Domain, dtype DataType, def any) ReadAttribute {
	if attr := ReadTyped(c, name, domain, dtype); attr != nil {
		return attr
	}
	return NewConstant(domain, c.DomainLen(domain), def)
}

// EnsureWrite returns a writable attribute with the requested name,
// domain, and type, creating or replacing as needed:
//
//   - an existing attribute that matches exactly is returned as is;
//   - an existing attribute under the name with a different domain or
//     type is deleted and a fresh zero-initialized one is created —
//     the old values are not migrated;
//   - an absent attribute is created fresh.
//
// Returns nil when the deletion fails, the (domain, type) combination
// is unsupported, or the creation fails.
func EnsureWrite(c Component, name string, domain Domain, dtype DataType) WriteAttribute {
	attr := c.Write(name)
	if attr != nil && attr.Domain() == domain && attr.DataType() == dtype {
		return attr
	}
	if attr != nil {
		Logger().Warn("replacing attribute with mismatched domain or type",
			"name", name,
			"old_domain", attr.Domain(), "old_type", attr.DataType(),
			"new_domain", domain, "new_type", dtype)
		if !c.Delete(name) {
			return nil
		}
	}
	if !c.SupportsDataType(domain, dtype) {
		return nil
	}
	if !c.Create(name, domain, dtype) {
		return nil
	}
	return c.Write(name)
}
