package domain

// Kind is the kind of entity a Symbol names.
type Kind int

const (
	SK_VAR Kind = iota
	SK_PARAM
	SK_FN
	SK_STRUCT
)

func (k Kind) String() string {
	switch k {
	case SK_VAR:
		return "var"
	case SK_PARAM:
		return "param"
	case SK_FN:
		return "function"
	case SK_STRUCT:
		return "struct"
	default:
		return "?"
	}
}

// Symbol is a named entity: a variable, parameter, function, or struct.
// Fields are a superset across kinds; only the fields relevant to Kind are
// meaningful, matching the C union-of-payloads the spec's Symbol
// generalises (spec §3, §9 "intrusive single-link lists with
// duplication").
type Symbol struct {
	// Owner is the enclosing function (for locals/params) or struct (for
	// members); nil at global scope.
	Owner *Symbol

	Name string
	Type Type
	Kind Kind

	// VarIdx is, depending on Owner: the local's position among a
	// function's locals, or a struct member's byte offset. Unused by
	// globals (which instead get Storage) and by PARAM (which uses
	// ParamIdx).
	VarIdx int

	// ParamIdx is the 0-based position of a PARAM within its function's
	// parameter list.
	ParamIdx int

	// Storage backs a global VAR: a heap region sized to hold one value of
	// Type, allocated once at declaration (spec §3, "fresh heap region").
	Storage []byte

	// Params and Locals are a FN's ordered parameter and local-variable
	// lists, populated as the parser walks the function's declaration and
	// body.
	Params []*Symbol
	Locals []*Symbol

	// Members is a STRUCT's ordered member list.
	Members []*Symbol
}

// AddParam appends p to the function symbol's parameter list and assigns
// its ParamIdx.
func (s *Symbol) AddParam(p *Symbol) {
	p.ParamIdx = len(s.Params)
	p.Owner = s
	s.Params = append(s.Params, p)
}

// AddLocal appends v to the function symbol's local list and assigns its
// VarIdx.
func (s *Symbol) AddLocal(v *Symbol) {
	v.VarIdx = len(s.Locals)
	v.Owner = s
	s.Locals = append(s.Locals, v)
}

// AddMember appends m to the struct symbol's member list at the running
// byte offset (spec §4.3: "sum of preceding members' sizes").
func (s *Symbol) AddMember(m *Symbol, size func(Type) int) {
	offset := 0
	for _, prev := range s.Members {
		offset += size(prev.Type)
	}
	m.VarIdx = offset
	m.Owner = s
	s.Members = append(s.Members, m)
}
