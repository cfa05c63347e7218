package list

// DeallocMode tells a removal operation whether destroying a node must also
// release its payload. Weak frees the node alone, for payloads owned
// somewhere else; Strong frees the payload too, for payloads allocated for
// that node and owned by the list only.
type DeallocMode int

const (
	Weak DeallocMode = iota
	Strong
)

// DataType is the runtime discriminant generic operations use to decide how
// to reinterpret a payload. Only Int, Char, Float and String have behavior;
// the remaining tags are valid values that report ErrNotImplemented.
type DataType int

const (
	Int DataType = iota
	Char
	Float
	String
	Double
	LongInt
	ShortInt
	LongDouble
	SignedChar
	UnsignedInt
	UnsignedChar
	LongLongInt
	UnsignedLongInt
	UnsignedLongLongInt
)

var dataTypeNames = []string{
	"int",
	"char",
	"float",
	"string",
	"double",
	"long int",
	"short int",
	"long double",
	"signed char",
	"unsigned int",
	"unsigned char",
	"long long int",
	"unsigned long int",
	"unsigned long long int",
}

func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[t]
}

// Implemented reports whether generic operations have behavior for the tag.
func (t DataType) Implemented() bool {
	switch t {
	case Int, Char, Float, String:
		return true
	}
	return false
}
