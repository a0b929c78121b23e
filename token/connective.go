package token

// Connective identifies one of the five SL connectives.  The numeric value is
// the connective's index in the connective table.
type Connective int

const (
	NoConn Connective = iota - 1
	Not
	And
	Or
	Cond
	Bicond
)

type connEntry struct {
	scan    byte
	surface string
	name    string
}

// the table stores only the first character of each connective for scanning;
// the surface form carries the full token.
var connTable = [...]connEntry{
	Not:    {scan: '~', surface: "~", name: "negation"},
	And:    {scan: '.', surface: ".", name: "conjunction"},
	Or:     {scan: 'v', surface: "v", name: "disjunction"},
	Cond:   {scan: '-', surface: "->", name: "conditional"},
	Bicond: {scan: '<', surface: "<->", name: "biconditional"},
}

// Connectives returns the connectives in table order.
func Connectives() []Connective {
	return []Connective{Not, And, Or, Cond, Bicond}
}

// Match reports whether c is the scan character of the connective at table
// index i.
func Match(c byte, i int) bool {
	if i < 0 || i >= len(connTable) {
		return false
	}
	return connTable[i].scan == c
}

// ScanConnective returns the connective whose scan character is c.
func ScanConnective(c byte) (Connective, bool) {
	for i := range connTable {
		if Match(c, i) {
			return Connective(i), true
		}
	}
	return NoConn, false
}

func (c Connective) valid() bool {
	return c >= Not && int(c) < len(connTable)
}

// Surface is the connective as written in a formula.
func (c Connective) Surface() string {
	if !c.valid() {
		return ""
	}
	return connTable[c].surface
}

// Width is the number of bytes the connective occupies in a formula.
func (c Connective) Width() int {
	return len(c.Surface())
}

// Scan is the character the connective is recognized by.
func (c Connective) Scan() byte {
	if !c.valid() {
		return 0
	}
	return connTable[c].scan
}

func (c Connective) IsBinary() bool {
	return c.valid() && c != Not
}

func (c Connective) String() string {
	if !c.valid() {
		return "none"
	}
	return connTable[c].name
}

// ParseConnective maps a surface form back to its connective.
func ParseConnective(s string) (Connective, bool) {
	for i := range connTable {
		if connTable[i].surface == s {
			return Connective(i), true
		}
	}
	return NoConn, false
}
