package verilog

// SourceFile represents a parsed Verilog source text. The frontend
// compiles exactly one module per netlist; files with several modules
// are rejected at compile time, not parse time.
type SourceFile struct {
	Modules []*Module `parser:"@@+"`
}

// Module represents one structural module declaration.
// Example: module top(a, b, y); ... endmodule
type Module struct {
	Name  string        `parser:"KwModule @Ident"`
	Ports []*HeaderPort `parser:"( LParen ( @@ ( Comma @@ )* )? RParen )? Semicolon"`
	Items []*ModuleItem `parser:"@@* KwEndmodule"`
}

// HeaderPort is one entry of the module port list. The direction is
// present in ANSI headers (module m(input a, output y)) and absent in
// non-ANSI ones, where body declarations carry it.
type HeaderPort struct {
	Dir  string `parser:"@( KwInput | KwOutput | KwInout )?"`
	Name string `parser:"@Ident"`
}

// ModuleItem is one statement in the module body.
type ModuleItem struct {
	Decl   *Decl          `parser:"  @@"`
	Assign *Assign        `parser:"| @@"`
	Inst   *Instantiation `parser:"| @@"`
}

// Decl declares ports or wires.
// Example: input a, b;  wire [3:0] w;
type Decl struct {
	Kind  string   `parser:"@( KwInput | KwOutput | KwInout | KwWire )"`
	Range *Range   `parser:"@@?"`
	Names []string `parser:"@Ident ( Comma @Ident )* Semicolon"`
}

// Range is a vector range. The grammar accepts it so the compiler can
// reject vectors with a proper diagnostic instead of a parse error.
type Range struct {
	High int `parser:"LBracket @Number"`
	Low  int `parser:"Colon @Number RBracket"`
}

// Assign is a continuous assignment between two scalar signals,
// compiled as a buffer. Example: assign y = w;
type Assign struct {
	LHS string `parser:"KwAssign @Ident"`
	RHS string `parser:"Equals @Ident Semicolon"`
}

// Instantiation places one primitive cell.
// Example: AND2 g1 (.A(a), .B(b), .Y(w));
type Instantiation struct {
	Cell  string        `parser:"@Ident"`
	Name  string        `parser:"@Ident"`
	Conns []*Connection `parser:"LParen ( @@ ( Comma @@ )* )? RParen Semicolon"`
}

// Connection is one port connection, named or positional. Positional
// connections follow the cell's declared input-then-output port order.
type Connection struct {
	Named      *NamedConn `parser:"  @@"`
	Positional string     `parser:"| @Ident"`
}

// NamedConn is a named port connection: .Port(net)
type NamedConn struct {
	Port string `parser:"Dot @Ident"`
	Net  string `parser:"LParen @Ident RParen"`
}
